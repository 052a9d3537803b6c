package options

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/grain-go/color"
)

var (
	ErrInvalidWidth            = errors.New("width must be positive")
	ErrInvalidHeight           = errors.New("height must be positive")
	ErrInvalidISO              = errors.New("iso must be positive")
	ErrMissingOutput           = errors.New("output filename must be set")
	ErrUnknownTransferFunction = errors.New("unknown transfer function name")
)

// Names accepted on the command line for each supported transfer
// characteristics code.
var transferFunctionNames = map[string]int32{
	"bt470m":    color.TC_BT470M,
	"bt470bg":   color.TC_BT470BG,
	"srgb":      color.TC_SRGB,
	"smpte2084": color.TC_SMPTE2084,
	"hlg":       color.TC_HLG,
}

// NoiseTableOptions holds the validated inputs of a table generation run.
type NoiseTableOptions struct {
	Width  int32
	Height int32

	// 35mm-equivalent ISO setting indicative of the light level.
	ISO float64

	// CICP transfer characteristics code of the encoded stream.
	TransferCharacteristics int32

	OutputFilename string
}

func NewNoiseTableOptions(opts *NoiseTableOptions) *NoiseTableOptions {

	opt := &NoiseTableOptions{TransferCharacteristics: color.TC_SRGB}
	if opts != nil {
		opt.Width = opts.Width
		opt.Height = opts.Height
		opt.ISO = opts.ISO
		opt.OutputFilename = opts.OutputFilename
		if opts.TransferCharacteristics != 0 {
			opt.TransferCharacteristics = opts.TransferCharacteristics
		}
	}
	return opt
}

// Validate reports the first configuration error. The model derives scalars
// by dividing by width*height and iso, so non-positive values are fatal here
// rather than producing non-finite noise curves downstream.
func (o *NoiseTableOptions) Validate() error {
	if o.Width <= 0 {
		return ErrInvalidWidth
	}
	if o.Height <= 0 {
		return ErrInvalidHeight
	}
	if o.ISO <= 0 {
		return ErrInvalidISO
	}
	if !color.ValidateTransferCharacteristics(o.TransferCharacteristics) {
		return fmt.Errorf("%w: %d", color.ErrUnsupportedTransferFunction, o.TransferCharacteristics)
	}
	if o.OutputFilename == "" {
		return ErrMissingOutput
	}
	return nil
}

// TransferCharacteristicsFromName maps a CLI name (srgb, smpte2084, ...) to
// its CICP code.
func TransferCharacteristicsFromName(name string) (int32, error) {
	tc, ok := transferFunctionNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTransferFunction, name)
	}
	return tc, nil
}

// TransferFunctionNames lists the accepted CLI names.
func TransferFunctionNames() []string {
	return []string{"bt470m", "bt470bg", "srgb", "smpte2084", "hlg"}
}
