//go:build !(darwin || windows || ((linux || freebsd) && cgo))

package speaker

import (
	"fmt"
	"runtime"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// New reports that no audio device can be driven on this build.
func New(options *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	options.Logger.Warn("Speaker backend not available in this build",
		options.Logger.Field().String("os", runtime.GOOS))
	return nil, fmt.Errorf("%w: speaker output needs cgo on %s", contracts.ErrUnsupportedCapability, runtime.GOOS)
}
