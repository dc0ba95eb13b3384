// Package codes maps raw input codes to display names. Both tables are built
// once and read-only afterwards, so lookups are safe from any goroutine.
package codes

// UnknownKey is returned for any code outside the recognized key set.
const UnknownKey = "UNKNOWN KEY"

var keyNames = map[int]string{
	1: "ESC", 28: "ENTER", 14: "BACKSPACE", 15: "TAB", 57: "SPACE",

	// Letters
	16: "Q", 17: "W", 18: "E", 19: "R", 20: "T",
	21: "Y", 22: "U", 23: "I", 24: "O", 25: "P",
	30: "A", 31: "S", 32: "D", 33: "F", 34: "G",
	35: "H", 36: "J", 37: "K", 38: "L",
	44: "Z", 45: "X", 46: "C", 47: "V", 48: "B",
	49: "N", 50: "M",

	// Arrow keys
	103: "UP", 105: "LEFT", 106: "RIGHT", 108: "DOWN",

	// Function keys
	59: "F1", 60: "F2", 61: "F3", 62: "F4",
	63: "F5", 64: "F6", 65: "F7", 66: "F8",
	67: "F9", 68: "F10", 87: "F11", 88: "F12",

	// Modifiers
	29: "CTRL", 42: "SHIFT (LEFT)", 54: "SHIFT (RIGHT)",
	56: "ALT", 100: "ALT GR", 125: "SUPER/WIN",

	// Number row and punctuation
	2: "1", 3: "2", 4: "3", 5: "4", 6: "5",
	7: "6", 8: "7", 9: "8", 10: "9", 11: "0",
	12: "-", 13: "=", 26: "[", 27: "]", 39: ";",
	40: "'", 41: "`", 43: "\\", 51: ",", 52: ".",
	53: "/", 58: "CAPS LOCK", 69: "NUM LOCK", 70: "SCROLL LOCK",

	// Numpad
	71: "NUM 7", 72: "NUM 8", 73: "NUM 9", 74: "NUM -",
	75: "NUM 4", 76: "NUM 5", 77: "NUM 6", 78: "NUM +",
	79: "NUM 1", 80: "NUM 2", 81: "NUM 3", 82: "NUM 0",
	83: "NUM .", 96: "NUM ENTER", 98: "NUM /", 55: "NUM *",

	// Media keys
	113: "MUTE", 114: "VOLUME DOWN", 115: "VOLUME UP",

	// System keys
	99: "PRINT SCREEN", 119: "PAUSE", 110: "HOME", 102: "PAGE UP",
	107: "END", 109: "PAGE DOWN", 111: "DELETE", 118: "INSERT",

	127: "PAUSE", 128: "PREV TRACK", 129: "NEXT TRACK",
	130: "STOP", 131: "PLAY/PAUSE",
}

// KeyName returns the display name for a key code, or UnknownKey for any
// code outside the table.
func KeyName(code int) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	return UnknownKey
}
