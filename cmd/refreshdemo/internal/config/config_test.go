package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/refresh/pkg/refresh"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, refresh.DefaultConfig(), s.Refresh)
	assert.Equal(t, BackendTea, s.Backend)
	assert.Equal(t, 1500*time.Millisecond, s.LoadDelay)
	assert.Equal(t, 5, s.FeedSize)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: tview
load_delay: 250ms
refresh:
  expanded_height: 80
  content_view: simple
`), 0o644))
	t.Setenv("REFRESHDEMO_REFRESH_THEME", "light")

	v, err := New(path)
	require.NoError(t, err)
	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, BackendTview, s.Backend)
	assert.Equal(t, 250*time.Millisecond, s.LoadDelay)
	assert.Equal(t, 80.0, s.Refresh.ExpandedHeight)
	assert.Equal(t, "simple", s.Refresh.ContentView)
	assert.Equal(t, "light", s.Refresh.Theme)
	assert.Equal(t, refresh.DefaultAnimationDuration, s.Refresh.AnimationDuration)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"backend":  "backend",
		"theme":    "refresh.theme",
		"style":    "refresh.style",
		"feedsize": "feed_size",
	}
	values := map[string]any{
		"backend":  "gtk",
		"theme":    "sepia",
		"style":    "floating",
		"feedsize": -1,
	}
	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := New("")
			require.NoError(t, err)
			v.Set(key, values[name])
			_, err = Load(v)
			assert.Error(t, err)
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
