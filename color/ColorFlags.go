package color

// Transfer characteristics codes, matching the CICP (ITU-T H.273) values
// used by AV1 streams.
const (
	TC_BT470M    int32 = 4  // gamma 2.2
	TC_BT470BG   int32 = 5  // gamma 2.8
	TC_SRGB      int32 = 13
	TC_SMPTE2084 int32 = 16 // PQ
	TC_HLG       int32 = 18
)

func ValidateTransferCharacteristics(tc int32) bool {
	switch tc {
	case TC_BT470M, TC_BT470BG, TC_SRGB, TC_SMPTE2084, TC_HLG:
		return true
	}
	return false
}
