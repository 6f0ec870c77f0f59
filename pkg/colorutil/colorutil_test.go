package colorutil

import "testing"

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{"red", 0, 1, 1, 255, 0, 0},
		{"green", 120, 1, 1, 0, 255, 0},
		{"blue", 240, 1, 1, 0, 0, 255},
		{"white", 0, 0, 1, 255, 255, 255},
		{"black", 0, 0, 0, 0, 0, 0},
		{"wrapped hue", 360, 1, 1, 255, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.h, tt.s, tt.v)
			if got.R != tt.r || got.G != tt.g || got.B != tt.b {
				t.Errorf("HSVToRGB(%v,%v,%v) = %v, want {%d %d %d}", tt.h, tt.s, tt.v, got, tt.r, tt.g, tt.b)
			}
			if got.A != 255 {
				t.Errorf("alpha = %d, want 255", got.A)
			}
		})
	}
}

func TestTintForNameStable(t *testing.T) {
	a := TintForName("sunset.jpg")
	b := TintForName("sunset.jpg")
	if a != b {
		t.Errorf("tint not stable: %v vs %v", a, b)
	}
	if a == TintForName("noise.png") && a == TintForName("portrait.webp") {
		t.Error("distinct names all map to the same tint")
	}
}
