package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png fixture: %v", err)
	}
	return buf.Bytes()
}

func makeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeWebP(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output bukan webp valid: %v", err)
	}
	return img
}

func TestTranscodeDownscalesWideImage(t *testing.T) {
	src := makePNG(t, 3000, 2000)

	out, err := Transcode(src, 1600, DefaultQuality)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	img := decodeWebP(t, out)
	if got := img.Bounds().Dx(); got != 1600 {
		t.Errorf("lebar hasil = %d, want 1600", got)
	}
	// Aspect ratio dipertahankan (3000x2000 → 1600x1067)
	if got := img.Bounds().Dy(); got < 1066 || got > 1068 {
		t.Errorf("tinggi hasil = %d, want ~1067", got)
	}
}

func TestTranscodeNeverUpscales(t *testing.T) {
	src := makePNG(t, 640, 480)

	out, err := Transcode(src, 1920, DefaultQuality)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	img := decodeWebP(t, out)
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 480 {
		t.Errorf("dimensi hasil = %dx%d, gambar kecil tidak boleh di-upscale", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestTranscodeReencodesWithoutResize(t *testing.T) {
	src := makeJPEG(t, 500, 300)

	out, err := Transcode(src, 0, DefaultQuality)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	img := decodeWebP(t, out)
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 300 {
		t.Errorf("dimensi hasil = %dx%d, want 500x300", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestTranscodeRejectsNonImage(t *testing.T) {
	_, err := Transcode([]byte("bukan gambar sama sekali"), 1600, DefaultQuality)
	if err == nil {
		t.Fatal("expected error untuk input non-gambar")
	}
	var imgErr *ImageProcessingError
	if !errors.As(err, &imgErr) {
		t.Fatalf("error bukan *ImageProcessingError: %T", err)
	}
	if imgErr.Stage != "decode" {
		t.Errorf("stage = %q, want decode", imgErr.Stage)
	}
}

func TestTranscodeEmptyInput(t *testing.T) {
	if _, err := Transcode(nil, 1600, DefaultQuality); err == nil {
		t.Fatal("expected error untuk input kosong")
	}
}

func TestTranscodeNamedExtensionFallback(t *testing.T) {
	// webp bisa lolos sniffing; pastikan jalur nama file juga jalan
	src := makeJPEG(t, 100, 100)
	out, err := TranscodeNamed(src, "foto.jpg", 50, DefaultQuality)
	if err != nil {
		t.Fatalf("TranscodeNamed: %v", err)
	}
	img := decodeWebP(t, out)
	if img.Bounds().Dx() != 50 {
		t.Errorf("lebar hasil = %d, want 50", img.Bounds().Dx())
	}
}

func TestThumbnail(t *testing.T) {
	src := makePNG(t, 1200, 900)

	out, err := Thumbnail(src, 400, ThumbQuality)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	img := decodeWebP(t, out)
	if img.Bounds().Dx() != 400 {
		t.Errorf("lebar thumbnail = %d, want 400", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 300 {
		t.Errorf("tinggi thumbnail = %d, want 300", img.Bounds().Dy())
	}
}

func TestThumbnailSmallSourceKeptAsIs(t *testing.T) {
	src := makePNG(t, 200, 150)

	out, err := Thumbnail(src, 400, ThumbQuality)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	img := decodeWebP(t, out)
	if img.Bounds().Dx() != 200 {
		t.Errorf("lebar thumbnail = %d, thumbnail tidak boleh di-upscale", img.Bounds().Dx())
	}
}
