package options

import (
	"testing"

	"github.com/kpfaulkner/grain-go/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() *NoiseTableOptions {
	return &NoiseTableOptions{
		Width:                   3840,
		Height:                  2160,
		ISO:                     25600,
		TransferCharacteristics: color.TC_SRGB,
		OutputFilename:          "noise.tbl",
	}
}

func TestNewNoiseTableOptionsDefaults(t *testing.T) {
	opt := NewNoiseTableOptions(nil)
	assert.Equal(t, color.TC_SRGB, opt.TransferCharacteristics)
	assert.Zero(t, opt.Width)
	assert.Zero(t, opt.Height)
}

func TestNewNoiseTableOptionsCopies(t *testing.T) {
	opt := NewNoiseTableOptions(&NoiseTableOptions{
		Width:                   1920,
		Height:                  1080,
		ISO:                     800,
		TransferCharacteristics: color.TC_HLG,
		OutputFilename:          "out.tbl",
	})
	assert.Equal(t, int32(1920), opt.Width)
	assert.Equal(t, int32(1080), opt.Height)
	assert.Equal(t, 800.0, opt.ISO)
	assert.Equal(t, color.TC_HLG, opt.TransferCharacteristics)
	assert.Equal(t, "out.tbl", opt.OutputFilename)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validOptions().Validate())

	for _, tc := range []struct {
		name        string
		mutate      func(*NoiseTableOptions)
		expectedErr error
	}{
		{"zero width", func(o *NoiseTableOptions) { o.Width = 0 }, ErrInvalidWidth},
		{"negative height", func(o *NoiseTableOptions) { o.Height = -1 }, ErrInvalidHeight},
		{"zero iso", func(o *NoiseTableOptions) { o.ISO = 0 }, ErrInvalidISO},
		{"bad transfer function", func(o *NoiseTableOptions) { o.TransferCharacteristics = 2 }, color.ErrUnsupportedTransferFunction},
		{"missing output", func(o *NoiseTableOptions) { o.OutputFilename = "" }, ErrMissingOutput},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := validOptions()
			tc.mutate(opt)
			assert.ErrorIs(t, opt.Validate(), tc.expectedErr)
		})
	}
}

func TestTransferCharacteristicsFromName(t *testing.T) {
	for name, want := range map[string]int32{
		"bt470m":    color.TC_BT470M,
		"bt470bg":   color.TC_BT470BG,
		"srgb":      color.TC_SRGB,
		"smpte2084": color.TC_SMPTE2084,
		"hlg":       color.TC_HLG,
	} {
		tc, err := TransferCharacteristicsFromName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, tc, name)
	}

	_, err := TransferCharacteristicsFromName("rec709")
	assert.ErrorIs(t, err, ErrUnknownTransferFunction)
}
