package screen

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refresh/pkg/refresh"
	refreshtest "github.com/go-drift/refresh/pkg/testing"
)

func testSettings(delay time.Duration) *config.Settings {
	return &config.Settings{
		Refresh:   refresh.DefaultConfig(),
		Backend:   config.BackendTea,
		LoadDelay: delay,
		FeedSize:  5,
	}
}

func newScreen(t *testing.T, delay time.Duration, logger *log.Logger) (*Screen, *refreshtest.Tester) {
	t.Helper()
	tester := refreshtest.NewTesterWithT(t)
	s, err := New(testSettings(delay), 60, 12, logger)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, tester
}

// pumpUntil pumps frames until cond holds, giving the feed's loader
// goroutine real time to post its result.
func pumpUntil(t *testing.T, tester *refreshtest.Tester, cond func() bool) {
	t.Helper()
	for range 2000 {
		if cond() {
			return
		}
		require.NoError(t, tester.PumpFrames(1))
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached")
}

func TestRender_Layout(t *testing.T) {
	s, _ := newScreen(t, 0, nil)
	lines := strings.Split(s.Render(), "\n")

	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], s.Feed().Items()[0].Title())
	assert.Contains(t, lines[11], "closed")
	assert.Contains(t, lines[11], "[p]ull")
}

func TestNew_InvalidConfig(t *testing.T) {
	refreshtest.NewTesterWithT(t)
	settings := testSettings(0)
	settings.Refresh.Theme = "sepia"
	_, err := New(settings, 40, 10, nil)
	assert.Error(t, err)
}

func TestPull_RefreshesFeed(t *testing.T) {
	var buf bytes.Buffer
	s, tester := newScreen(t, 0, log.New(&buf, "", 0))

	s.Pull()
	pumpUntil(t, tester, func() bool {
		return s.Control().State() == refresh.StateClosed && s.Feed().Len() == 6
	})
	require.NoError(t, tester.PumpAndSettle(5*time.Second))

	assert.Equal(t, 0.0, s.View().ContentInset().Top)
	assert.InDelta(t, 0, s.View().ContentOffset().Y, 0.5)
	assert.Contains(t, buf.String(), "did transition ready -> refreshing (animated true)")
	assert.Contains(t, buf.String(), "did transition closing -> closed (animated false)")
}

func TestPointerDrag(t *testing.T) {
	s, _ := newScreen(t, 0, nil)

	s.Move(4)
	assert.Zero(t, s.View().ContentOffset().Y, "moves without a press are ignored")

	s.Press(1)
	s.Move(4)
	assert.Equal(t, -48.0, s.View().ContentOffset().Y)
	assert.InDelta(t, 0.75, s.Control().Progress(), 1e-9)

	s.Move(8)
	assert.Equal(t, refresh.StateReady, s.Control().State())
	s.Release()
	assert.False(t, s.View().IsDragging())
}

func TestRender_HeaderWhileRefreshing(t *testing.T) {
	s, tester := newScreen(t, time.Hour, nil)
	s.StartRefresh()
	require.NoError(t, tester.PumpAndSettle(5*time.Second))

	require.Equal(t, refresh.StateRefreshing, s.Control().State())
	lines := strings.Split(s.Render(), "\n")
	require.Len(t, lines, 12)
	header := strings.Join(lines[:4], "\n")
	assert.Contains(t, header, "Loading…")
	assert.Contains(t, lines[4], s.Feed().Items()[0].Title())
}
