package stipple

import "testing"

func TestBitmap_BitLayout(t *testing.T) {
	bm := NewBitmap(10, 2)
	bm.SetWhite(0, 0)
	bm.SetWhite(7, 0)
	bm.SetWhite(9, 1)

	// MSB-first packing: x=0 is bit 0x80 of the row's first byte.
	if bm.Bits[0] != 0x81 {
		t.Errorf("row 0 byte 0: got %#x, want 0x81", bm.Bits[0])
	}
	if bm.Bits[1] != 0x00 {
		t.Errorf("row 0 byte 1: got %#x, want 0x00", bm.Bits[1])
	}
	if bm.Bits[3] != 0x40 {
		t.Errorf("row 1 byte 1: got %#x, want 0x40", bm.Bits[3])
	}

	if !bm.White(0, 0) || !bm.White(7, 0) || !bm.White(9, 1) {
		t.Error("set pixels not reported white")
	}
	if bm.White(1, 0) || bm.White(9, 0) || bm.White(0, 1) {
		t.Error("unset pixels reported white")
	}
}

func TestNewBuffers_InvalidDimensionsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"rgb zero width", func() { NewRGBBuffer(0, 5) }},
		{"gray zero height", func() { NewGrayBuffer(5, 0) }},
		{"bitmap negative", func() { NewBitmap(-1, 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("constructor should panic on invalid dimensions")
				}
			}()
			tt.fn()
		})
	}
}
