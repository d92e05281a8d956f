package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 127, G: 178, B: 255, A: 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"127 178 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWritePPM_EmptyImage(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0))); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "P3\n0 0\n255\n" {
		t.Errorf("Expected header only, got %q", buf.String())
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestWritePPM_WriterError(t *testing.T) {
	err := WritePPM(failingWriter{}, testImage())
	if !errors.Is(err, errWrite) {
		t.Errorf("Expected write error, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		file  string
		check func(t *testing.T, data []byte)
	}{
		{
			name: "ppm",
			file: "render.ppm",
			check: func(t *testing.T, data []byte) {
				if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
					t.Errorf("Expected PPM header, got %q", data)
				}
			},
		},
		{
			name: "png in nested directory",
			file: filepath.Join("nested", "render.PNG"),
			check: func(t *testing.T, data []byte) {
				decoded, err := png.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatalf("Expected valid PNG: %v", err)
				}
				r, g, b, _ := decoded.At(1, 1).RGBA()
				if r>>8 != 127 || g>>8 != 178 || b>>8 != 255 {
					t.Errorf("Unexpected pixel (%d, %d, %d)", r>>8, g>>8, b>>8)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Save(path, testImage()); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			tt.check(t, data)
		})
	}
}
