// Package media provides the media item catalog: folder scanning and
// asynchronous image dimension probing.
package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a media item by its content type.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage        // still image
	KindAnimation    // animated image (gif)
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Item is an immutable media descriptor. The layout core only reads it;
// ownership stays with the catalog.
type Item struct {
	ID   string
	Name string
	Path string
	Kind Kind
}

// imageExtensions maps recognized file extensions to item kinds.
var imageExtensions = map[string]Kind{
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".webp": KindImage,
	".bmp":  KindImage,
	".tif":  KindImage,
	".tiff": KindImage,
	".gif":  KindAnimation,
}

// KindForPath returns the item kind for a file path, or KindUnknown for
// unrecognized extensions.
func KindForPath(path string) Kind {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}
