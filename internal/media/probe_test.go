package media

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestProbeDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	writeTestPNG(t, path, 640, 480)

	w, h, err := NewProber(nil).Probe(path)
	if err != nil {
		t.Fatalf("Probe() returned error: %v", err)
	}
	if w != 640 || h != 480 {
		t.Errorf("Probe() = %dx%d, want 640x480", w, h)
	}
}

func TestProbeAllFallbackOnFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writeTestPNG(t, good, 320, 200)
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	items := []Item{
		{ID: "1", Name: "good", Path: good, Kind: KindImage},
		{ID: "2", Name: "bad", Path: bad, Kind: KindImage},
		{ID: "3", Name: "missing", Path: filepath.Join(dir, "absent.png"), Kind: KindImage},
	}

	results := NewProber(nil).ProbeAll(items)

	if len(results) != 3 {
		t.Fatalf("ProbeAll() returned %d results, want 3", len(results))
	}
	if results[0].Failed || results[0].Width != 320 || results[0].Height != 200 {
		t.Errorf("good item = %+v, want 320x200 without failure", results[0])
	}
	for _, r := range results[1:] {
		if !r.Failed {
			t.Errorf("item %s: Failed = false, want fallback", r.Name)
		}
		if r.Width != FallbackWidth || r.Height != FallbackHeight {
			t.Errorf("item %s = %dx%d, want fallback %dx%d",
				r.Name, r.Width, r.Height, FallbackWidth, FallbackHeight)
		}
	}

	// Results stay in input order regardless of probe completion order.
	for i, want := range []string{"1", "2", "3"} {
		if results[i].ID != want {
			t.Errorf("results[%d].ID = %s, want %s", i, results[i].ID, want)
		}
	}
}

func TestProbeAllEmpty(t *testing.T) {
	results := NewProber(nil).ProbeAll(nil)
	if len(results) != 0 {
		t.Errorf("ProbeAll(nil) returned %d results, want 0", len(results))
	}
}
