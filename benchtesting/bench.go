package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/grain-go/color"
	"github.com/kpfaulkner/grain-go/noise"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	tf, err := color.GetTransferFunction(color.TC_SMPTE2084)
	if err != nil {
		log.Errorf("Error getting transfer function: %v", err)
		return
	}

	start := time.Now()
	for count := 0; count < 1000000; count++ {
		model, err := noise.NewModel(noise.Config{
			Width:            3840,
			Height:           2160,
			ISOSetting:       float64(100 + count%25500),
			TransferFunction: tf,
		})
		if err != nil {
			log.Errorf("Error building model: %v", err)
			return
		}
		model.ScalingCurve()
	}
	fmt.Printf("sampling took %d ms\n", time.Since(start).Milliseconds())
}
