package main

import (
	"fmt"

	"github.com/kpfaulkner/grain-go/color"
	"github.com/kpfaulkner/grain-go/noise"
)

func main() {
	fmt.Printf("So it begins...\n")

	tf, err := color.GetTransferFunction(color.TC_SRGB)
	if err != nil {
		fmt.Printf("Error getting transfer function: %v\n", err)
		return
	}

	model, err := noise.NewModel(noise.Config{
		Width:            3840,
		Height:           2160,
		ISOSetting:       25600,
		TransferFunction: tf,
	})
	if err != nil {
		fmt.Printf("Error building model: %v\n", err)
		return
	}

	for _, p := range model.ScalingCurve() {
		fmt.Printf("x %3d noise %3d\n", p.X, p.Noise)
	}
}
