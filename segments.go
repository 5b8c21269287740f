package tm1637

import "fmt"

// segmentTable maps glyph indices to segment bitmasks. Bit 0 is
// segment A through bit 6 segment G; bit 7 is the decimal point.
// Indices 0-9 are the digits, 10-35 the letters A-Z (only the subset
// that renders usefully on seven segments), 36 space, 37 minus and 38
// a degree-like ring. Never mutated after initialization.
var segmentTable = [39]byte{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, // 0-7
	0x7F, 0x6F, // 8-9
	0x77, 0x7C, 0x39, 0x5E, 0x79, 0x71, 0x3D, 0x76, // A-H
	0x06, 0x1E, 0x76, 0x38, 0x55, 0x54, 0x3F, 0x73, // I-P
	0x67, 0x50, 0x6D, 0x78, 0x3E, 0x1C, 0x2A, 0x76, // Q-X
	0x6E, 0x5B, // Y-Z
	0x00, // space
	0x40, // minus
	0x63, // degree
}

// EncodeChar returns the segment byte for c. Digits, letters (case
// insensitive), space, '-' and '*' (rendered as a degree symbol) are
// supported; anything else is rejected.
func EncodeChar(c byte) (byte, error) {
	switch {
	case c == ' ':
		return segmentTable[36], nil
	case c == '*':
		return segmentTable[38], nil
	case c == '-':
		return segmentTable[37], nil
	case c >= 'A' && c <= 'Z':
		return segmentTable[c-55], nil
	case c >= 'a' && c <= 'z':
		return segmentTable[c-87], nil
	case c >= '0' && c <= '9':
		return segmentTable[c-'0'], nil
	}
	return 0, fmt.Errorf("tm1637: character out of range: %d %q", c, c)
}

// EncodeString encodes every character of s into a segment byte. It
// fails on the first unsupported character and returns no partial
// result.
func EncodeString(s string) ([]byte, error) {
	segs := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b, err := EncodeChar(s[i])
		if err != nil {
			return nil, err
		}
		segs[i] = b
	}
	return segs, nil
}
