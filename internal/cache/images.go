package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Poster runs f on the UI thread. loop.Loop implements it.
type Poster interface {
	Post(f func())
}

// ImageCache provides disk + memory caching for artwork.
type ImageCache struct {
	cacheDir string
	post     Poster
	memory   sync.Map // url -> image.Image
	loading  sync.Map // url -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight downloads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(image.Image)
}

// NewImageCache creates a new image cache with the given disk directory.
// Callbacks passed to LoadAsync are delivered through post.
func NewImageCache(cacheDir string, post Poster) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		post:     post,
		sem:      make(chan struct{}, 4),
	}, nil
}

// LoadAsync starts loading an image from URL in the background. The callback
// runs on the UI thread once the image is ready, and not at all on failure.
func (ic *ImageCache) LoadAsync(url string, callback func(image.Image)) {
	// Already in memory?
	if v, ok := ic.memory.Load(url); ok {
		img := v.(image.Image)
		ic.post.Post(func() { callback(img) })
		return
	}

	// Join an in-flight download of the same URL if there is one
	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(url, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		// Acquire semaphore to limit concurrent downloads
		ic.sem <- struct{}{}
		img, err := ic.loadImage(url)
		<-ic.sem
		if err != nil {
			ic.loading.Delete(url)
			log.Printf("Artwork load failed: %v", err)
			return
		}
		// Store before leaving the in-flight set so later callers hit memory.
		ic.memory.Store(url, img)
		ic.loading.Delete(url)

		// Notify all waiters
		entry.mu.Lock()
		cbs := make([]func(image.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		ic.post.Post(func() {
			for _, cb := range cbs {
				cb(img)
			}
		})
	}()
}

func (ic *ImageCache) loadImage(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		defer f.Close()
		img, _, err := image.Decode(f)
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	// Download with timeout-aware client
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	// Save to disk
	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// DiskUsage returns the number of cached files and their total size. A
// missing cache directory counts as empty.
func (ic *ImageCache) DiskUsage() (files int, bytes int64, err error) {
	err = filepath.WalkDir(ic.cacheDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files++
		bytes += info.Size()
		return nil
	})
	return files, bytes, err
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
