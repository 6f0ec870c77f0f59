package media

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	// Decoders for dimension probing. GIF/JPEG/PNG come from the standard
	// library; the rest from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"
)

// Fallback dimensions used when a probe fails. Layout always completes even
// under partial asset failure; a broken file simply lays out at this size.
const (
	FallbackWidth  = 800
	FallbackHeight = 600
)

// ProbedItem is an item together with its natural pixel dimensions, or the
// fallback dimensions when the probe failed.
type ProbedItem struct {
	Item
	Width  int
	Height int
	Failed bool
}

// Prober reads natural image dimensions without decoding pixel data. Probes
// are independent and unordered; a failed probe resolves to the fallback size
// rather than an error. There is no retry and no timeout beyond what the
// decoder itself reports.
type Prober struct {
	log *log.Logger
}

// NewProber creates a prober. A nil logger discards probe diagnostics.
func NewProber(logger *log.Logger) *Prober {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prober{log: logger}
}

// Probe returns the natural dimensions of the image at path.
func (p *Prober) Probe(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ProbeAll probes every item concurrently and returns results in input order.
// Items whose probe fails carry the fallback dimensions and Failed=true; the
// call itself never fails.
func (p *Prober) ProbeAll(items []Item) []ProbedItem {
	results := make([]ProbedItem, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item Item) {
			defer wg.Done()
			w, h, err := p.Probe(item.Path)
			if err != nil {
				p.log.Warn("dimension probe failed, using fallback size",
					"item", item.Name, "error", err)
				results[i] = ProbedItem{Item: item, Width: FallbackWidth, Height: FallbackHeight, Failed: true}
				return
			}
			results[i] = ProbedItem{Item: item, Width: w, Height: h}
		}(i, item)
	}
	wg.Wait()

	return results
}
