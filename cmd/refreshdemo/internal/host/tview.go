package host

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/screen"
	"github.com/go-drift/refresh/pkg/platform"
)

// Tview runs a Screen in a tview application. The application's event
// goroutine is the UI thread; frames are queued onto it with
// QueueUpdateDraw and drain the dispatch queue first. Dispatching through
// QueueUpdate directly could block the event goroutine on its own channel.
type Tview struct {
	app    *tview.Application
	text   *tview.TextView
	screen *screen.Screen
	queue  *platform.Queue

	width, height int
	stopOnce      sync.Once
	done          chan struct{}
}

// NewTview builds the host. A nil ts uses the terminal.
func NewTview(s *screen.Screen, ts tcell.Screen) *Tview {
	h := &Tview{
		app:    tview.NewApplication(),
		text:   tview.NewTextView().SetDynamicColors(true).SetWrap(false),
		screen: s,
		queue:  &platform.Queue{},
		done:   make(chan struct{}),
	}
	if ts != nil {
		h.app.SetScreen(ts)
	}
	h.text.SetMouseCapture(h.mouse)
	h.app.SetInputCapture(h.key)
	h.app.SetBeforeDrawFunc(h.beforeDraw)
	h.app.EnableMouse(true)
	h.app.SetRoot(h.text, true)
	return h
}

// Run blocks until the user quits.
func (h *Tview) Run() error {
	platform.RegisterDispatch(h.queue.Post)
	defer platform.RegisterDispatch(nil)

	go h.frames()
	defer h.stop()
	return h.app.Run()
}

// Stop ends Run.
func (h *Tview) Stop() {
	h.app.Stop()
}

func (h *Tview) stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Tview) frames() {
	ticker := time.NewTicker(screen.FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.app.QueueUpdateDraw(h.frame)
		}
	}
}

func (h *Tview) frame() {
	h.queue.Drain()
	h.screen.Frame()
	h.render()
}

// render escapes the screen's literal brackets before translating its ANSI
// styling into tview tags.
func (h *Tview) render() {
	h.text.SetText(tview.TranslateANSI(tview.Escape(h.screen.Render())))
}

func (h *Tview) beforeDraw(ts tcell.Screen) bool {
	w, ht := ts.Size()
	if w != h.width || ht != h.height {
		h.width, h.height = w, ht
		h.screen.Resize(w, ht)
		h.render()
	}
	return false
}

func (h *Tview) key(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC || event.Key() == tcell.KeyEscape {
		h.app.Stop()
		return nil
	}
	switch event.Rune() {
	case 'p':
		h.screen.Pull()
	case 'r':
		h.screen.StartRefresh()
	case 'q':
		h.app.Stop()
	default:
		return event
	}
	return nil
}

func (h *Tview) mouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	_, y := event.Position()
	switch action {
	case tview.MouseLeftDown:
		h.screen.Press(y)
	case tview.MouseMove:
		h.screen.Move(y)
	case tview.MouseLeftUp:
		h.screen.Release()
	default:
		return action, event
	}
	return action, nil
}

// RunTview runs the tview host on the terminal.
func RunTview(s *screen.Screen) error {
	return NewTview(s, nil).Run()
}
