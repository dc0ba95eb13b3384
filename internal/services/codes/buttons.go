package codes

import "strconv"

// ButtonName returns the display name for a pointer button code. Codes
// outside the recognized set render as the raw number.
func ButtonName(code int) string {
	switch code {
	case 272:
		return "LEFT"
	case 273:
		return "RIGHT"
	case 274:
		return "MIDDLE"
	case 275:
		return "SIDE"
	case 276:
		return "EXTRA"
	default:
		return strconv.Itoa(code)
	}
}
