package main

import (
	"context"
	"fmt"

	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/leandrodaf/drawsound/sdk/sonify"
)

func main() {
	log := logger.NewDevelopmentLogger()

	session, err := sonify.NewSession(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithBackend(sonify.BackendSpeaker),
	)
	if err != nil {
		log.Error("Failed to initialize drawing session", log.Field().Error("error", err))
		return
	}
	defer session.Close()

	canvas := session.Canvas()

	// A rising green line followed by a low blue one and a few noise dots.
	_ = canvas.SetBrushColor(contracts.LimeGreen)
	_ = canvas.SetBrushSize(20)
	_ = canvas.PointerDown(20, 380)
	for x := 40.0; x <= 780; x += 40 {
		_ = canvas.PointerMove(x, 380-x/2.5)
	}
	canvas.PointerUp()

	_ = canvas.SetBrushColor(contracts.Blue)
	_ = canvas.SetBrushSize(35)
	_ = canvas.PointerDown(100, 360)
	_ = canvas.PointerMove(300, 360)
	canvas.PointerUp()

	_ = canvas.SetBrushColor(contracts.Black)
	for _, x := range []float64{200, 400, 600} {
		_ = canvas.PointerDown(x, 200)
		canvas.PointerUp()
	}

	report, err := session.Play()
	if err != nil {
		log.Error("Playback failed", log.Field().Error("error", err))
		return
	}
	fmt.Printf("Playing %d events...\n", len(report.Events))

	if err := session.Wait(context.Background(), report.EndTime); err != nil {
		log.Error("Wait interrupted", log.Field().Error("error", err))
	}
}
