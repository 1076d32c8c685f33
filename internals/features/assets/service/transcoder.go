package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	DefaultQuality float32 = 80
	ThumbQuality   float32 = 75
)

// ImageProcessingError menandai kegagalan decode/encode gambar.
// Caller bebas memilih fallback (mis. simpan bytes asli apa adanya).
type ImageProcessingError struct {
	Stage string // "decode" | "encode"
	Err   error
}

func (e *ImageProcessingError) Error() string {
	return fmt.Sprintf("image processing (%s): %v", e.Stage, e.Err)
}

func (e *ImageProcessingError) Unwrap() error { return e.Err }

// Transcode: decode → downscale (keep aspect, tanpa upscale) → encode webp.
// maxWidth <= 0 berarti tanpa resize, tetap re-encode.
func Transcode(buf []byte, maxWidth int, quality float32) ([]byte, error) {
	img, err := decodeImage(buf, "")
	if err != nil {
		return nil, &ImageProcessingError{Stage: "decode", Err: err}
	}
	if maxWidth > 0 {
		img = downscaleIfNeeded(img, maxWidth)
	}
	return encodeWebP(img, quality)
}

// TranscodeNamed sama dengan Transcode tapi memakai nama file asli sebagai
// fallback deteksi format saat sniff gagal.
func TranscodeNamed(buf []byte, filename string, maxWidth int, quality float32) ([]byte, error) {
	img, err := decodeImage(buf, filename)
	if err != nil {
		return nil, &ImageProcessingError{Stage: "decode", Err: err}
	}
	if maxWidth > 0 {
		img = downscaleIfNeeded(img, maxWidth)
	}
	return encodeWebP(img, quality)
}

// Thumbnail menghasilkan turunan kecil (lebar maksimum width) dalam webp.
func Thumbnail(buf []byte, width int, quality float32) ([]byte, error) {
	img, err := decodeImage(buf, "")
	if err != nil {
		return nil, &ImageProcessingError{Stage: "decode", Err: err}
	}
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return encodeWebP(img, quality)
}

// decodeImage: sniff MIME dari 512 byte pertama, fallback ke ekstensi.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
}

// downscaleIfNeeded: keep aspect, pakai CatmullRom (kualitas bagus).
func downscaleIfNeeded(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || w <= maxW {
		return src
	}
	scale := float64(maxW) / float64(w)
	nw := maxW
	nh := int(math.Round(float64(h) * scale))
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultQuality
	}
	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, &ImageProcessingError{Stage: "encode", Err: err}
	}
	return out.Bytes(), nil
}
