package render

import "testing"

func TestRGBf(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    Color
	}{
		{0, 0, 0, ColorBlack},
		{1, 1, 1, ColorWhite},
		{0.2, 0.4, 0.5, RGB(51, 102, 128)},
		{-1, 2, 0.5, RGB(0, 255, 128)},
	}
	for _, tt := range tests {
		if got := RGBf(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBf(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 128 || a>>8 != 255 {
		t.Errorf("RGBA() = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}
