package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"path"
	"strings"
	"time"
)

// ObjectStorage adalah kontrak minimal blob store yang dipakai pipeline
// (implementasi produksi: helpers/oss.Service).
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	PublicURL(key string) string
}

// StorageError menandai kegagalan tulis/hapus di blob store.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// extContentType: tabel tetap ekstensi → MIME untuk jalur pass-through.
var extContentType = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".avif": "image/avif",
	".svg":  "image/svg+xml",
	".gif":  "image/gif",
	".ico":  "image/x-icon",
	".pdf":  "application/pdf",
}

func contentTypeForExt(ext string) string {
	if ct, ok := extContentType[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsVectorFormat: SVG tidak pernah di-transcode atau di-thumbnail.
func IsVectorFormat(filename string) bool {
	return strings.ToLower(path.Ext(filename)) == ".svg"
}

type IngestResult struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ThumbnailKey string `json:"thumbnail_key,omitempty"`
}

// Ingestor menggabungkan key mapper + transcoder + blob store.
type Ingestor struct {
	Storage ObjectStorage
}

func NewIngestor(storage ObjectStorage) *Ingestor {
	return &Ingestor{Storage: storage}
}

// Ingest menyimpan file ke "{category}/{filename}".
//
// slug kosong → nama file dibangun dari nama asli + timestamp + suffix acak
// (idempoten di level key karena key baru selalu unik); slug terisi →
// key deterministik "{category}/{slug}{ext}".
//
// Raster di kategori ber-MaxWidth di-transcode ke webp; SVG dan kategori
// tanpa MaxWidth (branding) disimpan byte-identik. Tulis gambar utama
// selalu mendahului thumbnail; kegagalan tulis mana pun membatalkan operasi
// dengan *StorageError tanpa pembersihan parsial.
func (ing *Ingestor) Ingest(ctx context.Context, buf []byte, originalFilename string, category Category, slug string) (*IngestResult, error) {
	cfg := ConfigFor(category)
	ext := strings.ToLower(path.Ext(originalFilename))
	isVector := IsVectorFormat(originalFilename)
	shouldProcess := !isVector && cfg.MaxWidth != nil

	data := buf
	contentType := contentTypeForExt(ext)
	outExt := ext
	if shouldProcess {
		transcoded, err := TranscodeNamed(buf, originalFilename, *cfg.MaxWidth, DefaultQuality)
		if err != nil {
			return nil, err
		}
		data = transcoded
		contentType = "image/webp"
		outExt = ".webp"
	}

	filename := slug
	if filename == "" {
		filename = buildObjectFilename(originalFilename)
	}
	key := path.Join(string(category), filename+outExt)

	if err := ing.Storage.PutObject(ctx, key, data, contentType); err != nil {
		return nil, &StorageError{Op: "put", Key: key, Err: err}
	}

	res := &IngestResult{
		URL: ing.Storage.PublicURL(key),
		Key: key,
	}

	if cfg.ThumbWidth > 0 && !isVector {
		tbuf, err := Thumbnail(buf, cfg.ThumbWidth, ThumbQuality)
		if err != nil {
			return nil, err
		}
		thumbKey := thumbKeyFor(key)
		if err := ing.Storage.PutObject(ctx, thumbKey, tbuf, "image/webp"); err != nil {
			return nil, &StorageError{Op: "put", Key: thumbKey, Err: err}
		}
		res.ThumbnailKey = thumbKey
		res.ThumbnailURL = ing.Storage.PublicURL(thumbKey)
	}

	return res, nil
}

// IngestFromSource memetakan path sumber lewat MapToKey lalu menyimpan di
// key hasil pemetaan (dipakai migrasi aset lama).
func (ing *Ingestor) IngestFromSource(ctx context.Context, buf []byte, sourcePath string) (*IngestResult, error) {
	category, key := MapToKey(sourcePath)
	if key == "" {
		return nil, fmt.Errorf("path sumber kosong")
	}

	cfg := ConfigFor(category)
	isVector := IsVectorFormat(key)
	shouldProcess := !isVector && cfg.MaxWidth != nil

	data := buf
	contentType := contentTypeForExt(path.Ext(key))
	if shouldProcess {
		transcoded, err := TranscodeNamed(buf, key, *cfg.MaxWidth, DefaultQuality)
		if err != nil {
			return nil, err
		}
		data = transcoded
		contentType = "image/webp"
		key = strings.TrimSuffix(key, path.Ext(key)) + ".webp"
	}

	if err := ing.Storage.PutObject(ctx, key, data, contentType); err != nil {
		return nil, &StorageError{Op: "put", Key: key, Err: err}
	}

	res := &IngestResult{URL: ing.Storage.PublicURL(key), Key: key}

	if cfg.ThumbWidth > 0 && !isVector {
		tbuf, err := Thumbnail(buf, cfg.ThumbWidth, ThumbQuality)
		if err != nil {
			return nil, err
		}
		thumbKey := thumbKeyFor(key)
		if err := ing.Storage.PutObject(ctx, thumbKey, tbuf, "image/webp"); err != nil {
			return nil, &StorageError{Op: "put", Key: thumbKey, Err: err}
		}
		res.ThumbnailKey = thumbKey
		res.ThumbnailURL = ing.Storage.PublicURL(thumbKey)
	}

	return res, nil
}

// Replace meng-ingest file baru lalu menghapus key lama (beserta
// thumbnail-nya) hanya setelah tulisan baru dikonfirmasi. Key lama yang
// mengandung penanda placeholder/default tidak pernah dihapus. Kegagalan
// hapus dicatat saja — key lama yatim lebih murah daripada kehilangan aset.
func (ing *Ingestor) Replace(ctx context.Context, buf []byte, originalFilename string, category Category, slug, oldKey, oldThumbKey string) (*IngestResult, error) {
	res, err := ing.Ingest(ctx, buf, originalFilename, category, slug)
	if err != nil {
		return nil, err
	}
	ing.deleteSuperseded(ctx, oldKey, res.Key)
	ing.deleteSuperseded(ctx, oldThumbKey, res.ThumbnailKey)
	return res, nil
}

func (ing *Ingestor) deleteSuperseded(ctx context.Context, oldKey, newKey string) {
	if oldKey == "" || oldKey == newKey {
		return
	}
	if isPermanentFixture(oldKey) {
		return
	}
	if err := ing.Storage.DeleteObject(ctx, oldKey); err != nil {
		log.Printf("[ASSET] gagal hapus key lama %s: %v", oldKey, err)
	}
}

// Remove menghapus key (best-effort) dengan guard fixture yang sama
// seperti Replace. Dipakai saat record pemilik aset dihapus.
func (ing *Ingestor) Remove(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if k == "" || isPermanentFixture(k) {
			continue
		}
		if err := ing.Storage.DeleteObject(ctx, k); err != nil {
			log.Printf("[ASSET] gagal hapus key %s: %v", k, err)
		}
	}
}

// isPermanentFixture: aset placeholder/default adalah fixture permanen,
// tidak ikut garbage-collect saat diganti.
func isPermanentFixture(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "placeholder") || strings.Contains(lower, "default")
}

// thumbKeyFor menyisipkan segmen "thumbs/" tepat sebelum nama file.
func thumbKeyFor(key string) string {
	dir, file := path.Split(key)
	return dir + "thumbs/" + file
}

func buildObjectFilename(original string) string {
	ext := strings.ToLower(path.Ext(original))
	base := strings.TrimSuffix(path.Base(original), ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s", slugifyFilename(base), ts, randHex(3))
}

func slugifyFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
