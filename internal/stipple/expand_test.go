package stipple

import "testing"

func TestExpand_Mapping(t *testing.T) {
	bm := NewBitmap(3, 2)
	bm.SetWhite(0, 0)
	bm.SetWhite(2, 0)
	bm.SetWhite(1, 1)

	rgb := Expand(bm)

	if rgb.Width != 3 || rgb.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", rgb.Width, rgb.Height)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			i := (y*3 + x) * 3
			var want uint8
			if bm.White(x, y) {
				want = 255
			}
			if rgb.Pix[i] != want || rgb.Pix[i+1] != want || rgb.Pix[i+2] != want {
				t.Errorf("(%d,%d): got (%d,%d,%d), want all %d",
					x, y, rgb.Pix[i], rgb.Pix[i+1], rgb.Pix[i+2], want)
			}
		}
	}
}

func TestExpand_NonByteAlignedWidth(t *testing.T) {
	// Width 9 leaves 7 padding bits per row; they must not leak into
	// neighboring rows of the output.
	bm := NewBitmap(9, 3)
	for x := 0; x < 9; x++ {
		bm.SetWhite(x, 1)
	}

	rgb := Expand(bm)
	for y := 0; y < 3; y++ {
		for x := 0; x < 9; x++ {
			i := (y*9 + x) * 3
			var want uint8
			if y == 1 {
				want = 255
			}
			if rgb.Pix[i] != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, rgb.Pix[i], want)
			}
		}
	}
}

func TestExpand_MalformedBitmapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expand should panic on a stride-mismatched bitmap")
		}
	}()

	Expand(&Bitmap{Width: 16, Height: 2, Stride: 1, Bits: make([]uint8, 2)})
}
