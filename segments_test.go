package tm1637

import (
	"strings"
	"testing"
)

func TestEncodeCharValues(t *testing.T) {
	tests := []struct {
		c    byte
		want byte
	}{
		{'0', 0x3F},
		{'1', 0x06},
		{'8', 0x7F},
		{'9', 0x6F},
		{'A', 0x77},
		{'C', 0x39},
		{'F', 0x71},
		{'Z', 0x5B},
		{'o', 0x3F},
		{'z', 0x5B},
		{' ', 0x00},
		{'-', 0x40},
		{'*', 0x63},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			got, err := EncodeChar(tt.c)
			if err != nil {
				t.Fatalf("EncodeChar(%q) failed: %v", tt.c, err)
			}
			if got != tt.want {
				t.Errorf("EncodeChar(%q) = 0x%02X, want 0x%02X", tt.c, got, tt.want)
			}
		})
	}
}

func TestEncodeCharFullAlphabet(t *testing.T) {
	const supported = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ -*"
	for i := 0; i < len(supported); i++ {
		if _, err := EncodeChar(supported[i]); err != nil {
			t.Errorf("EncodeChar(%q) failed: %v", supported[i], err)
		}
	}
}

func TestEncodeCharCaseInsensitive(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		lower, err := EncodeChar(c)
		if err != nil {
			t.Fatalf("EncodeChar(%q) failed: %v", c, err)
		}
		upper, err := EncodeChar(c - 'a' + 'A')
		if err != nil {
			t.Fatalf("EncodeChar(%q) failed: %v", c-'a'+'A', err)
		}
		if lower != upper {
			t.Errorf("EncodeChar(%q) = 0x%02X but EncodeChar(%q) = 0x%02X", c, lower, c-'a'+'A', upper)
		}
	}
}

func TestEncodeCharRejected(t *testing.T) {
	for _, c := range []byte{'!', '@', '.', ':', '+', '/', 0x00, 0x7F} {
		got, err := EncodeChar(c)
		if err == nil {
			t.Errorf("EncodeChar(%q) = 0x%02X, want error", c, got)
			continue
		}
		if !strings.Contains(err.Error(), "character out of range") {
			t.Errorf("EncodeChar(%q) error = %v, want character out of range", c, err)
		}
	}
}

func TestEncodeString(t *testing.T) {
	got, err := EncodeString("AB42")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x77, 0x7C, 0x66, 0x5B}
	if len(got) != len(want) {
		t.Fatalf("EncodeString length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EncodeString[%d] = 0x%02X, want 0x%02X", i, got[i], want[i])
		}
	}
}

func TestEncodeStringAtomic(t *testing.T) {
	segs, err := EncodeString("ab!cd")
	if err == nil {
		t.Fatal("EncodeString with unsupported character should fail")
	}
	if segs != nil {
		t.Errorf("EncodeString returned partial result %v, want nil", segs)
	}
}

func TestEncodeStringEmpty(t *testing.T) {
	segs, err := EncodeString("")
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 0 {
		t.Errorf("EncodeString(\"\") length = %d, want 0", len(segs))
	}
}
