package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type putCall struct {
	Key         string
	Data        []byte
	ContentType string
}

type mockStorage struct {
	putFn    func(ctx context.Context, key string, data []byte, contentType string) error
	deleteFn func(ctx context.Context, key string) error

	puts    []putCall
	deletes []string
}

func (m *mockStorage) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	m.puts = append(m.puts, putCall{Key: key, Data: data, ContentType: contentType})
	if m.putFn != nil {
		return m.putFn(ctx, key, data, contentType)
	}
	return nil
}

func (m *mockStorage) DeleteObject(ctx context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestIngestRasterTranscodedToWebP(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 3000, 2000)

	res, err := ing.Ingest(context.Background(), src, "rumah besar.png", CategoryProperties, "rumah-besar")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if res.Key != "properties/rumah-besar.webp" {
		t.Errorf("key = %q, want properties/rumah-besar.webp", res.Key)
	}
	if res.ThumbnailKey != "properties/thumbs/rumah-besar.webp" {
		t.Errorf("thumb key = %q, want properties/thumbs/rumah-besar.webp", res.ThumbnailKey)
	}
	if res.URL != "https://cdn.example.com/properties/rumah-besar.webp" {
		t.Errorf("url = %q", res.URL)
	}

	if len(st.puts) != 2 {
		t.Fatalf("jumlah put = %d, want 2", len(st.puts))
	}
	// Gambar utama selalu ditulis sebelum thumbnail
	if st.puts[0].Key != res.Key || st.puts[1].Key != res.ThumbnailKey {
		t.Errorf("urutan put salah: %q lalu %q", st.puts[0].Key, st.puts[1].Key)
	}
	if st.puts[0].ContentType != "image/webp" {
		t.Errorf("content type utama = %q, want image/webp", st.puts[0].ContentType)
	}

	main := decodeWebP(t, st.puts[0].Data)
	if main.Bounds().Dx() > 1600 {
		t.Errorf("lebar utama = %d, melebihi 1600", main.Bounds().Dx())
	}
	thumb := decodeWebP(t, st.puts[1].Data)
	if thumb.Bounds().Dx() > 400 {
		t.Errorf("lebar thumbnail = %d, melebihi 400", thumb.Bounds().Dx())
	}
}

func TestIngestNoThumbnailOutsideProperties(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 2200, 1000)

	res, err := ing.Ingest(context.Background(), src, "hero.png", CategorySlider, "hero-utama")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.ThumbnailKey != "" || res.ThumbnailURL != "" {
		t.Errorf("slider tidak boleh punya thumbnail: %+v", res)
	}
	if len(st.puts) != 1 {
		t.Fatalf("jumlah put = %d, want 1", len(st.puts))
	}
	img := decodeWebP(t, st.puts[0].Data)
	if img.Bounds().Dx() != 1920 {
		t.Errorf("lebar slider = %d, want 1920", img.Bounds().Dx())
	}
}

func TestIngestSVGPassThrough(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`)

	res, err := ing.Ingest(context.Background(), svg, "logo.svg", CategoryPartners, "acme")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Key != "partners/acme.svg" {
		t.Errorf("key = %q, want partners/acme.svg", res.Key)
	}
	if res.ThumbnailKey != "" {
		t.Error("svg tidak boleh punya thumbnail")
	}
	if len(st.puts) != 1 {
		t.Fatalf("jumlah put = %d, want 1", len(st.puts))
	}
	if !bytes.Equal(st.puts[0].Data, svg) {
		t.Error("svg harus disimpan byte-identik")
	}
	if st.puts[0].ContentType != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", st.puts[0].ContentType)
	}
}

func TestIngestBrandingPassThrough(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 2400, 800)

	res, err := ing.Ingest(context.Background(), src, "logo.png", CategoryBranding, "logo")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Key != "branding/logo.png" {
		t.Errorf("key = %q, want branding/logo.png (ekstensi asli dipertahankan)", res.Key)
	}
	if !bytes.Equal(st.puts[0].Data, src) {
		t.Error("branding harus disimpan byte-identik")
	}
	if st.puts[0].ContentType != "image/png" {
		t.Errorf("content type = %q, want image/png", st.puts[0].ContentType)
	}
}

func TestIngestGeneratedFilenameWhenNoSlug(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 100, 100)

	res, err := ing.Ingest(context.Background(), src, "Foto Kantor Baru.png", CategoryTeam, "")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !strings.HasPrefix(res.Key, "team/foto-kantor-baru_") {
		t.Errorf("key = %q, want prefix team/foto-kantor-baru_", res.Key)
	}
	if !strings.HasSuffix(res.Key, ".webp") {
		t.Errorf("key = %q, want suffix .webp", res.Key)
	}

	res2, err := ing.Ingest(context.Background(), src, "Foto Kantor Baru.png", CategoryTeam, "")
	if err != nil {
		t.Fatalf("Ingest kedua: %v", err)
	}
	if res.Key == res2.Key {
		t.Errorf("dua upload tanpa slug harus menghasilkan key berbeda, dapat %q", res.Key)
	}
}

func TestIngestStorageFailureAborts(t *testing.T) {
	boom := errors.New("oss down")
	st := &mockStorage{
		putFn: func(ctx context.Context, key string, data []byte, ct string) error {
			return boom
		},
	}
	ing := NewIngestor(st)
	src := makePNG(t, 100, 100)

	_, err := ing.Ingest(context.Background(), src, "x.png", CategoryTeam, "x")
	if err == nil {
		t.Fatal("expected error saat storage gagal")
	}
	var stErr *StorageError
	if !errors.As(err, &stErr) {
		t.Fatalf("error bukan *StorageError: %T", err)
	}
	if !errors.Is(err, boom) {
		t.Error("error asal harus bisa di-unwrap")
	}
}

func TestIngestThumbnailFailureAbortsWithoutCleanup(t *testing.T) {
	st := &mockStorage{}
	st.putFn = func(ctx context.Context, key string, data []byte, ct string) error {
		if strings.Contains(key, "thumbs/") {
			return errors.New("oss down")
		}
		return nil
	}
	ing := NewIngestor(st)
	src := makePNG(t, 2000, 1000)

	_, err := ing.Ingest(context.Background(), src, "r.png", CategoryProperties, "r")
	if err == nil {
		t.Fatal("expected error saat tulis thumbnail gagal")
	}
	if len(st.deletes) != 0 {
		t.Errorf("tidak boleh ada pembersihan parsial, terjadi delete: %v", st.deletes)
	}
}

func TestReplaceDeletesOldKeysAfterSuccess(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 800, 600)

	_, err := ing.Replace(context.Background(), src, "baru.png", CategoryProperties, "rumah",
		"properties/lama.webp", "properties/thumbs/lama.webp")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(st.deletes) != 2 {
		t.Fatalf("jumlah delete = %d, want 2 (%v)", len(st.deletes), st.deletes)
	}
	if st.deletes[0] != "properties/lama.webp" || st.deletes[1] != "properties/thumbs/lama.webp" {
		t.Errorf("key lama yang dihapus salah: %v", st.deletes)
	}
}

func TestReplaceFailureKeepsOldKeys(t *testing.T) {
	st := &mockStorage{
		putFn: func(ctx context.Context, key string, data []byte, ct string) error {
			return errors.New("oss down")
		},
	}
	ing := NewIngestor(st)

	_, err := ing.Replace(context.Background(), makePNG(t, 100, 100), "baru.png", CategoryTeam, "budi",
		"team/lama.webp", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(st.deletes) != 0 {
		t.Errorf("key lama tidak boleh dihapus saat ingest gagal: %v", st.deletes)
	}
}

func TestReplaceNeverDeletesFixtures(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)

	_, err := ing.Replace(context.Background(), makePNG(t, 100, 100), "baru.png", CategoryTeam, "budi",
		"team/placeholder-agent.webp", "")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(st.deletes) != 0 {
		t.Errorf("placeholder tidak boleh dihapus: %v", st.deletes)
	}
}

func TestReplaceSkipsDeleteWhenKeyUnchanged(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)

	_, err := ing.Replace(context.Background(), makePNG(t, 100, 100), "budi.png", CategoryTeam, "budi",
		"team/budi.webp", "")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(st.deletes) != 0 {
		t.Errorf("key identik tidak boleh dihapus: %v", st.deletes)
	}
}

func TestRemoveSkipsEmptyAndFixtureKeys(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)

	ing.Remove(context.Background(), "", "misc/default-cover.webp", "team/budi.webp")
	if len(st.deletes) != 1 || st.deletes[0] != "team/budi.webp" {
		t.Errorf("delete = %v, want hanya team/budi.webp", st.deletes)
	}
}

func TestIngestFromSourceMapsKey(t *testing.T) {
	st := &mockStorage{}
	ing := NewIngestor(st)
	src := makePNG(t, 2000, 1000)

	res, err := ing.IngestFromSource(context.Background(), src, "hero/main.png")
	if err != nil {
		t.Fatalf("IngestFromSource: %v", err)
	}
	if res.Key != "slider/hero/main.webp" {
		t.Errorf("key = %q, want slider/hero/main.webp", res.Key)
	}
	img := decodeWebP(t, st.puts[0].Data)
	if img.Bounds().Dx() != 1920 {
		t.Errorf("lebar = %d, want 1920", img.Bounds().Dx())
	}
}
