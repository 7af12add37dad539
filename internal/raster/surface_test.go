package raster

import "testing"

func TestNewSurface(t *testing.T) {
	s := NewSurface(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", s.Width(), s.Height())
	}
	if s.Stride() != 28 {
		t.Errorf("Stride() = %d, want 28", s.Stride())
	}
	if len(s.Data()) != 7*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(s.Data()), 7*3*4)
	}
	for i, b := range s.Data() {
		if b != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, b)
		}
	}
}

func TestNewSurfaceInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSurface(%d, %d) did not panic", size[0], size[1])
				}
			}()
			NewSurface(size[0], size[1])
		}()
	}
}

func TestSurfaceRGBASwapsChannels(t *testing.T) {
	s := NewSurface(2, 1)
	copy(s.Data(), []byte{1, 2, 3, 4, 10, 20, 30, 40})

	img := s.RGBA()
	want := []byte{3, 2, 1, 4, 30, 20, 10, 40}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("RGBA().Pix = %v, want %v", img.Pix, want)
		}
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Errorf("bounds = %v, want 2x1", img.Bounds())
	}

	// The export is a copy.
	img.Pix[0] = 99
	if s.Data()[2] != 3 {
		t.Error("RGBA() aliases the surface")
	}
}
