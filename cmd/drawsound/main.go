package main

import "github.com/leandrodaf/drawsound/cmd"

func main() {
	cmd.Execute()
}
