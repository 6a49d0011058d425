// Package texture decodes image files in the background. Decoding runs on its own goroutines;
// results are handed back on the frame goroutine through Poll, where the GPU upload happens.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"

	"gallery/internal/logger"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxSize is the largest texture edge uploaded; bigger images are scaled down to fit.
const MaxSize = 2048

// Result is one finished load. Exactly one of Image and Err is set.
type Result struct {
	Path  string
	Image image.Image
	Err   error
}

// Loader runs loads concurrently and queues their results.
type Loader struct {
	results chan Result
	wg      sync.WaitGroup
	log     *logger.Logger
	open    func(string) (io.ReadCloser, error)
}

// NewLoader returns a loader. log may be nil.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{
		results: make(chan Result, 16),
		log:     log,
		open:    func(p string) (io.ReadCloser, error) { return os.Open(p) },
	}
}

// Load starts decoding path and returns immediately.
func (l *Loader) Load(path string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.decodeFile(path)
		l.results <- Result{Path: path, Image: img, Err: err}
	}()
}

func (l *Loader) decodeFile(path string) (image.Image, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return img, nil
}

// Poll hands every finished load to fn without blocking and returns how many there were.
// Failed loads are logged before fn sees them.
func (l *Loader) Poll(fn func(Result)) int {
	n := 0
	for {
		select {
		case r := <-l.results:
			if r.Err != nil && l.log != nil {
				l.log.Logf("texture load failed, keeping base color: %v", r.Err)
			}
			fn(r)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every started load has finished decoding. Results still need Poll.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Decode reads a JPEG, PNG, BMP or WebP image and scales it down to fit MaxSize.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return Fit(img, MaxSize), nil
}

// Fit scales img down, keeping its aspect ratio, so neither edge exceeds limit.
// Images that already fit are returned unchanged.
func Fit(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return img
	}
	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}
	return transform.Resize(img, w, h, transform.Linear)
}
