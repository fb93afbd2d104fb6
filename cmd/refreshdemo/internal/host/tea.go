// Package host runs the demo screen inside a terminal UI toolkit. Each host
// owns the UI thread: it installs platform.Dispatch, ticks frames and routes
// input to the screen.
package host

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/screen"
	"github.com/go-drift/refresh/pkg/platform"
)

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(screen.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// TeaModel adapts a Screen to bubbletea. Update is the UI thread: dispatched
// callbacks wait in a queue drained at the start of every frame.
type TeaModel struct {
	screen *screen.Screen
	queue  *platform.Queue
}

// NewTeaModel registers the model's queue as the dispatcher.
func NewTeaModel(s *screen.Screen) *TeaModel {
	m := &TeaModel{screen: s, queue: &platform.Queue{}}
	platform.RegisterDispatch(m.queue.Post)
	return m
}

// Init starts the frame clock.
func (m *TeaModel) Init() tea.Cmd {
	return frameTick()
}

// Update routes one message.
func (m *TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.queue.Drain()
		m.screen.Frame()
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			m.screen.Press(msg.Y)
		case tea.MouseActionMotion:
			m.screen.Move(msg.Y)
		case tea.MouseActionRelease:
			m.screen.Release()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			m.screen.Pull()
		case "r":
			m.screen.StartRefresh()
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the screen.
func (m *TeaModel) View() string {
	return m.screen.Render()
}

// RunTea runs the bubbletea host until the user quits.
func RunTea(s *screen.Screen) error {
	m := NewTeaModel(s)
	defer platform.RegisterDispatch(nil)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
