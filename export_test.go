package sketch

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePNGRejectsOtherExtensions(t *testing.T) {
	for _, name := range []string{"out.jpg", "out.PNG", "out.png.bak", "png"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			l, buf := newTestLogger()
			c := NewCanvas(8, 8, WithLogger(l))

			if err := c.SavePNG(filepath.Join(dir, name)); err != nil {
				t.Fatalf("SavePNG(%q) = %v, want nil", name, err)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("SavePNG(%q) created %d files, want none", name, len(entries))
			}
			if !strings.Contains(buf.String(), msgInvalidPath) {
				t.Errorf("missing diagnostic; log: %q", buf.String())
			}
			if !strings.Contains(buf.String(), "level=ERROR") {
				t.Errorf("diagnostic not at error level: %q", buf.String())
			}
		})
	}
}

func TestSavePNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(12, 9, WithBackground(RGB{R: 10, G: 20, B: 30}), quiet())
	c.DrawCircle(Pt(6, 4.5), 4, FillColour(RGB{R: 250, G: 128, B: 5}))

	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("bounds = %v, want 12x9", b)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{6, 4, color.RGBA{R: 250, G: 128, B: 5, A: 255}},
	}
	for _, tt := range tests {
		got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
		if got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSavePNGCreateError(t *testing.T) {
	c := NewCanvas(4, 4, quiet())
	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	if err == nil {
		t.Fatal("SavePNG into a missing directory returned nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SavePNG() = %v, want an fs.ErrNotExist error", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodePNGWriterError(t *testing.T) {
	c := NewCanvas(4, 4, quiet())
	err := c.EncodePNG(failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("EncodePNG() = %v, want the writer's error", err)
	}
}

func TestEncodePNGChannelOrder(t *testing.T) {
	c := NewCanvas(3, 2, WithTransparentBackground(), quiet())
	c.DrawPolygon(rectPoints(0, 0, 3, 2), FillColour(RGB{R: 255, G: 64}))

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if want := (color.RGBA{R: 255, G: 64, A: 255}); got != want {
		t.Errorf("decoded pixel = %v, want %v", got, want)
	}
}

func TestImageMatchesArray(t *testing.T) {
	c := NewCanvas(16, 10, quiet())
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 15, Y: 2}, {X: 8, Y: 9}},
		FillColour(RGB{R: 90, G: 30, B: 160}), FillAlpha(0.35))

	img := c.Image()
	a := c.Array()
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 10 {
		t.Fatalf("Image() bounds = %v, want 16x10", img.Bounds())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 16; x++ {
			p := img.RGBAAt(x, y)
			if got, want := a.At(x, y), [4]uint8{p.R, p.G, p.B, p.A}; got != want {
				t.Fatalf("Array().At(%d, %d) = %v, Image() has %v", x, y, got, want)
			}
		}
	}
}

func TestExportsAreCopies(t *testing.T) {
	c := NewCanvas(2, 2, quiet())
	c.Image().Pix[0] = 0
	c.Array().Pix[1] = 0
	if p := c.Array().At(0, 0); p != [4]uint8{255, 255, 255, 255} {
		t.Errorf("pixel after mutating exports = %v, want white", p)
	}
}

func TestExportInterleavedWithDraws(t *testing.T) {
	c := NewCanvas(10, 10, WithTransparentBackground(), quiet())
	first := c.Array()
	c.DrawPolygon(rectPoints(0, 0, 10, 10), FillColour(Black))
	second := c.Array()

	if first.At(5, 5)[3] != 0 {
		t.Error("first export changed by a later draw")
	}
	if second.At(5, 5) != [4]uint8{0, 0, 0, 255} {
		t.Errorf("second export = %v, want opaque black", second.At(5, 5))
	}
}

// brokenFile accepts the create but fails every write.
type brokenFile struct {
	*os.File
}

func (brokenFile) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSavePNGRemovesPartialFile(t *testing.T) {
	orig := createFile
	t.Cleanup(func() { createFile = orig })
	createFile = func(path string) (io.WriteCloser, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return brokenFile{f}, nil
	}

	path := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(4, 4, quiet())
	if err := c.SavePNG(path); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("SavePNG() = %v, want the write error", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("partial file left behind: Stat() = %v", err)
	}
}
