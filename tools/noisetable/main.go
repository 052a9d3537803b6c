package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/kpfaulkner/grain-go/color"
	"github.com/kpfaulkner/grain-go/grain"
	"github.com/kpfaulkner/grain-go/noise"
	"github.com/kpfaulkner/grain-go/options"
	log "github.com/sirupsen/logrus"
)

func main() {
	width := flag.Int("width", 0, "width of the image in pixels (required)")
	height := flag.Int("height", 0, "height of the image in pixels (required)")
	iso := flag.Float64("iso", 0, "35mm-equivalent ISO setting indicative of the light level (required)")
	output := flag.String("output", "", "output film grain table file (required)")
	tfName := flag.String("transfer-function", "srgb",
		fmt.Sprintf("transfer function used by the encoded image (%s)", strings.Join(options.TransferFunctionNames(), ", ")))
	flag.Parse()

	tc, err := options.TransferCharacteristicsFromName(*tfName)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	opt := options.NewNoiseTableOptions(&options.NoiseTableOptions{
		Width:                   int32(*width),
		Height:                  int32(*height),
		ISO:                     *iso,
		TransferCharacteristics: tc,
		OutputFilename:          *output,
	})
	if err := opt.Validate(); err != nil {
		fmt.Printf("%v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	tf, err := color.GetTransferFunction(opt.TransferCharacteristics)
	if err != nil {
		log.Fatalf("Error selecting transfer function: %v", err)
	}

	model, err := noise.NewModel(noise.Config{
		Width:            opt.Width,
		Height:           opt.Height,
		ISOSetting:       opt.ISO,
		TransferFunction: tf,
	})
	if err != nil {
		log.Fatalf("Error building noise model: %v", err)
	}

	curve := model.ScalingCurve()
	fmt.Printf("pixel area %.2f um^2, %.1f electrons per pixel at full scale\n",
		model.PixelAreaUm2(), model.MaxElectronsPerPixel())

	table := &grain.Table{}
	table.Append(0, math.MaxInt64, grain.NewPhotonNoiseParams(curve))
	if err := grain.WriteTableFile(table, opt.OutputFilename); err != nil {
		log.Fatalf("Failed to write film grain table: %v", err)
	}
	fmt.Printf("wrote %s\n", opt.OutputFilename)
}
