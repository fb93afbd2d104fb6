// Package screen is the demo's list screen: a scroll view holding the feed,
// the refresh control attached to it, and a text renderer. Hosts feed it
// pointer and key input and call Frame once per frame on their UI thread.
package screen

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refresh/cmd/refreshdemo/internal/feed"
	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/scroll"
)

// RowHeight is the number of offset units one terminal row represents.
const RowHeight = 16.0

// FrameInterval is the frame period hosts should tick at.
const FrameInterval = 16 * time.Millisecond

var (
	rowStyle    = lipgloss.NewStyle().PaddingLeft(1)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Screen is not safe for concurrent use; every method runs on the host's
// UI thread.
type Screen struct {
	view    *scroll.View
	control *refresh.Control
	feed    *feed.Feed

	width, height int
	loadDelay     time.Duration
	logger        *log.Logger

	dragRow  int
	dragging bool
}

// New builds the screen for a width x height terminal. logger receives
// transition traces when non-nil.
func New(s *config.Settings, width, height int, logger *log.Logger) (*Screen, error) {
	sc := &Screen{
		feed:      feed.New(s.FeedSize, animation.Now()),
		loadDelay: s.LoadDelay,
		logger:    logger,
	}
	sc.view = scroll.NewView(graphics.Size{})
	sc.Resize(width, height)

	sc.control = refresh.Attach(sc.view, &delegate{screen: sc}, nil)
	if err := s.Refresh.Apply(sc.control); err != nil {
		sc.control.Detach()
		return nil, err
	}
	return sc, nil
}

// Control returns the refresh control.
func (s *Screen) Control() *refresh.Control { return s.control }

// View returns the scroll view.
func (s *Screen) View() *scroll.View { return s.view }

// Feed returns the list data.
func (s *Screen) Feed() *feed.Feed { return s.feed }

// Resize updates the terminal size. The last row is the status bar.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 2)
	s.view.SetViewportSize(graphics.Size{
		Width:  float64(s.width),
		Height: float64(s.listRows()) * RowHeight,
	})
	s.syncContentSize()
}

// Press starts a pointer drag at terminal row y.
func (s *Screen) Press(y int) {
	s.dragRow = y
	s.dragging = true
	s.view.BeginDrag()
}

// Move drags the content to follow the pointer at row y.
func (s *Screen) Move(y int) {
	if !s.dragging {
		return
	}
	s.view.Drag(float64(y-s.dragRow) * RowHeight)
	s.dragRow = y
}

// Release lifts the pointer.
func (s *Screen) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.view.EndDrag(0)
}

// Pull scripts a pull just past the header height and lets go.
func (s *Screen) Pull() {
	s.view.BeginDrag()
	s.view.SetContentOffset(graphics.Offset{Y: -(s.control.ExpandedHeight() + RowHeight)})
	s.view.EndDrag(0)
	s.dragging = false
}

// StartRefresh begins refreshing without a pull. Content resting at the
// top scrolls down to reveal the header once it has expanded.
func (s *Screen) StartRefresh() {
	s.control.StartRefreshing(true, true, func() {
		if s.view.ContentOffset().Y <= 0 && !s.view.IsDragging() {
			s.view.ScrollRectToVisible(graphics.RectFromLTWH(0, s.view.MinScrollOffset(), 1, 1), true)
		}
	})
}

// Frame advances scrolling and animations by one frame. Hosts drain their
// dispatch queue first.
func (s *Screen) Frame() {
	scroll.StepBallistics()
	animation.StepTickers()
}

// Close detaches the control.
func (s *Screen) Close() {
	s.view.StopBallistic()
	s.control.Detach()
}

// Render draws the header, the visible rows and the status bar.
func (s *Screen) Render() string {
	y := s.view.ContentOffset().Y
	rows := s.listRows()
	out := make([]string, 0, s.height)

	headerRows := min(int(math.Round(s.control.VisibleHeight()/RowHeight)), rows)
	if headerRows > 0 {
		out = append(out, s.header(headerRows)...)
	}

	first := max(int(math.Floor(math.Max(y, 0)/RowHeight)), 0)
	items := s.feed.Items()
	for i := first; len(out) < rows; i++ {
		if i < len(items) {
			out = append(out, rowStyle.Render(items[i].Title()))
			continue
		}
		out = append(out, "")
	}
	out = append(out, statusStyle.Render(s.status()))
	return strings.Join(out, "\n")
}

// header returns the content view's rows bottom-aligned in n rows.
func (s *Screen) header(n int) []string {
	lines := strings.Split(s.control.ContentView().Render(s.width), "\n")
	if len(lines) >= n {
		return lines[len(lines)-n:]
	}
	pad := make([]string, n-len(lines), n)
	return append(pad, lines...)
}

func (s *Screen) status() string {
	c := s.control
	return fmt.Sprintf("%-10s progress %4.2f  offset %6.1f  inset %4.1f  [p]ull [r]efresh [q]uit",
		c.State(), c.Progress(), s.view.ContentOffset().Y, s.view.ContentInset().Top)
}

func (s *Screen) listRows() int {
	return s.height - 1
}

func (s *Screen) syncContentSize() {
	s.view.SetContentSize(graphics.Size{
		Width:  float64(s.width),
		Height: float64(s.feed.Len()) * RowHeight,
	})
}

func (s *Screen) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// delegate loads the feed while the control is refreshing.
type delegate struct {
	refresh.BaseDelegate
	screen *Screen
}

func (d *delegate) DidStartRefreshing(c *refresh.Control) {
	s := d.screen
	err := s.feed.Load(s.loadDelay, func() {
		s.feed.Prepend(animation.Now())
		s.syncContentSize()
		c.FinishRefreshing(true, nil)
	})
	if err != nil {
		s.logf("refresh: %v", err)
	}
}

func (d *delegate) LastUpdatedAt(*refresh.Control) (time.Time, bool) {
	at := d.screen.feed.UpdatedAt()
	return at, !at.IsZero()
}

func (d *delegate) WillTransition(_ *refresh.Control, to, from refresh.State, animated bool) {
	d.screen.logf("will transition %s -> %s (animated %t)", from, to, animated)
}

func (d *delegate) DidTransition(_ *refresh.Control, to, from refresh.State, animated bool) {
	d.screen.logf("did transition %s -> %s (animated %t)", from, to, animated)
}
