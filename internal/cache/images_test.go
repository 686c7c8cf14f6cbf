package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// chanPoster hands posted funcs to the test goroutine.
type chanPoster chan func()

func (p chanPoster) Post(f func()) { p <- f }

func (p chanPoster) next(t *testing.T) {
	t.Helper()
	select {
	case f := <-p:
		f()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a posted callback")
	}
}

func inMemory(ic *ImageCache, url string) bool {
	_, ok := ic.memory.Load(url)
	return ok
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadAsyncCachesOnDiskAndInMemory(t *testing.T) {
	data := pngBytes(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(data)
	}))
	defer srv.Close()

	post := make(chanPoster, 4)
	ic, err := NewImageCache(t.TempDir(), post)
	if err != nil {
		t.Fatal(err)
	}

	var got image.Image
	ic.LoadAsync(srv.URL+"/a.png", func(img image.Image) { got = img })
	post.next(t)
	if got == nil || got.Bounds().Dx() != 4 {
		t.Fatalf("callback image = %v", got)
	}
	if !inMemory(ic, srv.URL+"/a.png") {
		t.Error("image not kept in memory")
	}

	// memory hit: no request, callback still posted
	got = nil
	ic.LoadAsync(srv.URL+"/a.png", func(img image.Image) { got = img })
	post.next(t)
	if got == nil || hits.Load() != 1 {
		t.Errorf("memory hit: got %v after %d requests", got, hits.Load())
	}

	// disk hit after clearing memory
	ic.Clear()
	if inMemory(ic, srv.URL+"/a.png") {
		t.Fatal("Clear kept the image")
	}
	ic.LoadAsync(srv.URL+"/a.png", func(img image.Image) { got = img })
	post.next(t)
	if hits.Load() != 1 {
		t.Errorf("disk cache missed: %d requests", hits.Load())
	}
}

func TestLoadAsyncFailureSkipsCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	post := make(chanPoster, 1)
	ic, err := NewImageCache(t.TempDir(), post)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ic.loadImage(srv.URL + "/missing.png"); err == nil {
		t.Fatal("expected an error for a 404")
	}

	ic.LoadAsync(srv.URL+"/missing.png", func(image.Image) { t.Error("callback ran for a failed load") })
	select {
	case f := <-post:
		f()
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDiskUsage(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	post := make(chanPoster, 4)
	ic, err := NewImageCache(t.TempDir(), post)
	if err != nil {
		t.Fatal(err)
	}
	if files, size, err := ic.DiskUsage(); err != nil || files != 0 || size != 0 {
		t.Fatalf("empty cache usage = %d files, %d bytes, %v", files, size, err)
	}

	ic.LoadAsync(srv.URL+"/a.png", func(image.Image) {})
	post.next(t)
	files, size, err := ic.DiskUsage()
	if err != nil || files != 1 || size != int64(len(data)) {
		t.Errorf("usage = %d files, %d bytes, %v; want 1 file, %d bytes", files, size, err, len(data))
	}

	if err := ic.ClearDisk(); err != nil {
		t.Fatal(err)
	}
	if files, _, err := ic.DiskUsage(); err != nil || files != 0 {
		t.Errorf("after ClearDisk: %d files, %v", files, err)
	}
}
