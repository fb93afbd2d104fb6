package host

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refresh/cmd/refreshdemo/internal/screen"
	"github.com/go-drift/refresh/pkg/platform"
	"github.com/go-drift/refresh/pkg/refresh"
	refreshtest "github.com/go-drift/refresh/pkg/testing"
)

func newTestScreen(t *testing.T) *screen.Screen {
	t.Helper()
	refreshtest.NewTesterWithT(t)
	s, err := screen.New(&config.Settings{
		Refresh:   refresh.DefaultConfig(),
		Backend:   config.BackendTea,
		LoadDelay: time.Hour,
		FeedSize:  3,
	}, 50, 10, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestTeaModel_KeysAndFrames(t *testing.T) {
	s := newTestScreen(t)
	m := NewTeaModel(s)
	t.Cleanup(func() { platform.RegisterDispatch(nil) })

	require.NotNil(t, m.Init())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, 1, m.queue.Len(), "the transition waits for a frame")

	_, cmd := m.Update(frameMsg(time.Now()))
	assert.NotNil(t, cmd, "frames keep ticking")
	assert.Zero(t, m.queue.Len())
	assert.Equal(t, refresh.StateRefreshing, s.Control().State())
	assert.Contains(t, m.View(), "refreshing")
}

func TestTeaModel_MouseDrag(t *testing.T) {
	s := newTestScreen(t)
	m := NewTeaModel(s)
	t.Cleanup(func() { platform.RegisterDispatch(nil) })

	m.Update(tea.MouseMsg{Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	assert.Equal(t, -32.0, s.View().ContentOffset().Y)

	m.Update(tea.MouseMsg{Y: 3, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})
	assert.False(t, s.View().IsDragging())
}

func TestTeaModel_Quit(t *testing.T) {
	s := newTestScreen(t)
	m := NewTeaModel(s)
	t.Cleanup(func() { platform.RegisterDispatch(nil) })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTeaModel_Resize(t *testing.T) {
	s := newTestScreen(t)
	m := NewTeaModel(s)
	t.Cleanup(func() { platform.RegisterDispatch(nil) })

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})
	assert.Equal(t, 5*screen.RowHeight, s.View().ViewportSize().Height)
}
