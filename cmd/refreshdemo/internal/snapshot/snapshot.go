// Package snapshot renders every bundled content view in every state to PNG
// files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/refresh/pkg/refresh"
)

// Default image size: a 320-unit wide header at the default expanded
// height.
const (
	DefaultWidth  = 320
	DefaultHeight = int(refresh.DefaultExpandedHeight)
)

// Options configures Write.
type Options struct {
	Dir           string
	Theme         refresh.Theme
	Width, Height int
	// LastUpdatedAt is shown by views that display it.
	LastUpdatedAt time.Time
}

var (
	views  = []string{refresh.ContentViewDefault, refresh.ContentViewSimple}
	states = []struct {
		state    refresh.State
		progress float64
	}{
		{refresh.StateClosed, 0.6},
		{refresh.StateReady, 1.2},
		{refresh.StateRefreshing, 0},
		{refresh.StateClosing, 0},
	}
)

// Write renders the snapshots into opts.Dir and returns the file paths.
func Write(opts Options) ([]string, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Dir, err)
	}

	var paths []string
	for _, name := range views {
		for _, st := range states {
			view, err := refresh.NewContentView(name, opts.Theme)
			if err != nil {
				return paths, err
			}
			view.SetState(st.state)
			view.SetProgress(st.progress)
			view.SetLastUpdatedAt(opts.LastUpdatedAt)

			r, ok := view.(refresh.Rasterizer)
			if !ok {
				return paths, fmt.Errorf("content view %q cannot be rasterized", name)
			}
			path := filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.png", name, st.state))
			if err := writePNG(path, r.Image(opts.Width, opts.Height)); err != nil {
				return paths, err
			}
			paths = append(paths, path)

			if d, ok := view.(refresh.Detacher); ok {
				d.Detach()
			}
		}
	}
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
