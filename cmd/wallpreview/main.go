// Command wallpreview renders a packing pass over a media folder to a PNG,
// for inspecting layout tuning without launching the application.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	"media-wall/internal/layout"
	"media-wall/internal/media"
	"media-wall/pkg/colorutil"
	"media-wall/pkg/geometry"
)

func main() {
	dir := flag.String("dir", ".", "media folder to lay out")
	out := flag.String("out", "preview.png", "output PNG path")
	width := flag.Float64("width", 1280, "viewport width in px")
	height := flag.Float64("height", 800, "viewport height in px")
	seed := flag.Int64("seed", 0, "layout seed (0 = time-based)")
	tuningPath := flag.String("tuning", "", "optional tuning.toml path")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wallpreview"})

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tuning := layout.DefaultTuning()
	if *tuningPath != "" {
		loaded, err := layout.LoadTuning(*tuningPath)
		if err != nil {
			logger.Fatal("failed to load tuning", "path", *tuningPath, "err", err)
		}
		tuning = loaded
	}

	items, err := media.ScanFolder(*dir)
	if err != nil {
		logger.Fatal("scan failed", "dir", *dir, "err", err)
	}
	if len(items) == 0 {
		logger.Fatal("no media files found", "dir", *dir)
	}

	prober := media.NewProber(logger)
	probed := prober.ProbeAll(items)

	infos := make([]layout.ItemInfo, len(probed))
	for i, p := range probed {
		infos[i] = layout.NewItemInfo(p.ID, p.Width, p.Height)
	}

	planner := layout.NewPlanner(tuning, *seed)
	plan := planner.Plan(infos, geometry.NewSize(*width, *height))

	logger.Info("plan complete",
		"items", plan.Stats.Items,
		"meanArea", fmt.Sprintf("%.0f", plan.Stats.MeanArea),
		"stdDevArea", fmt.Sprintf("%.0f", plan.Stats.StdDevArea),
		"occupancy", fmt.Sprintf("%.2f", plan.Stats.Occupancy),
		"grid", plan.Stats.GridPlaced,
		"probe", plan.Stats.ProbePlaced,
		"pushed", plan.Stats.PushedDown,
		"seed", *seed)

	img := render(plan, probed)
	if err := writePNG(*out, img); err != nil {
		logger.Fatal("write failed", "path", *out, "err", err)
	}
	logger.Info("wrote preview", "path", *out,
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
}

// render draws every placement as a scaled thumbnail on a dark background.
// Items that fail to decode are drawn as gray boxes.
func render(plan *layout.Plan, probed []media.ProbedItem) *image.RGBA {
	bounds := plan.Bounds
	img := image.NewRGBA(image.Rect(0, 0, int(bounds.Width), int(bounds.Height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{20, 20, 22, 255}), image.Point{}, draw.Src)

	byID := make(map[string]media.ProbedItem, len(probed))
	for _, p := range probed {
		byID[p.ID] = p
	}

	for _, placement := range plan.SortedByZ() {
		rect := image.Rect(
			int(placement.Rect.X), int(placement.Rect.Y),
			int(placement.Rect.X+placement.Rect.Width), int(placement.Rect.Y+placement.Rect.Height))

		item := byID[placement.ItemID]
		src := loadThumb(item.Path)
		if src == nil {
			draw.Draw(img, rect, image.NewUniform(colorutil.TintForName(item.Name)), image.Point{}, draw.Src)
		} else {
			xdraw.ApproxBiLinear.Scale(img, rect, src, src.Bounds(), draw.Src, nil)
		}
		strokeRect(img, rect, color.RGBA{90, 90, 96, 255})
	}
	return img
}

func loadThumb(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return src
}

// strokeRect draws a 1px border.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
