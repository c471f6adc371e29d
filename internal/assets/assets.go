// Package assets loads custom figure images and scales them to fit the
// play area.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is a decoded picture ready to be shown in place of a figure.
type Image struct {
	Name   string // File name without extension
	Pixels image.Image
}

// Size returns the image dimensions in pixels.
func (i *Image) Size() (w, h int) {
	b := i.Pixels.Bounds()
	return b.Dx(), b.Dy()
}

// Loader reads images from a directory.
type Loader struct {
	Dir    string
	Logger *log.Logger
}

// NewLoader creates a loader for dir.
func NewLoader(dir string, logger *log.Logger) *Loader {
	return &Loader{Dir: dir, Logger: logger}
}

// Load decodes every image in the directory and downscales each one to fit
// within a fifth of the given resolution. Files that fail to decode are
// skipped. Names are unique: when two files share a stem, the first in name
// order wins. A missing or empty Dir yields no images and no error.
func (l *Loader) Load(resW, resH int) ([]*Image, error) {
	if l.Dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("assets: read dir %s: %w", l.Dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []*Image
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(l.Dir, e.Name())
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if seen[name] {
			l.debug("skipping duplicate image name", "path", path, "name", name)
			continue
		}
		img, err := decodeFile(path)
		if err != nil {
			l.debug("skipping image", "path", path, "err", err)
			continue
		}
		seen[name] = true
		out = append(out, &Image{
			Name:   name,
			Pixels: Fit(img, resW/5, resH/5),
		})
	}
	return out, nil
}

func (l *Loader) debug(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, keyvals...)
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Fit shrinks img until it is no wider than maxW and no taller than maxH.
// Width is corrected first, then height, repeating until both fit. The
// aspect ratio is kept. Images that already fit are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 || maxH <= 0 {
		return img
	}
	for {
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()

		var ratio float64
		switch {
		case w > maxW:
			ratio = float64(maxW) / float64(w)
		case h > maxH:
			ratio = float64(maxH) / float64(h)
		default:
			return img
		}

		nw, nh := max(int(float64(w)*ratio), 1), max(int(float64(h)*ratio), 1)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
}
