// Package scenario replays scripted scroll input against a refresh control
// and records what the control reports. Scenarios are YAML files; replay is
// headless and driven by the fake frame clock, so transcripts are
// reproducible.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	refreshtest "github.com/go-drift/refresh/pkg/testing"
)

// SettleTimeout bounds a settle step.
const SettleTimeout = 30 * time.Second

// Scenario is a scripted session.
type Scenario struct {
	Name string `yaml:"name"`
	// DefaultInset is the scroll view's top inset before attaching.
	DefaultInset float64 `yaml:"default_inset"`
	// Refuse makes the delegate decline every refresh.
	Refuse bool           `yaml:"refuse"`
	Config refresh.Config `yaml:"config"`
	Steps  []Step         `yaml:"steps"`
}

// Step is one action. Exactly one field is set.
type Step struct {
	// Drag moves the content to this offset, starting a drag if needed.
	Drag *float64 `yaml:"drag,omitempty"`
	// Release lifts the pointer with this velocity.
	Release *float64 `yaml:"release,omitempty"`
	// Settle pumps frames until nothing moves.
	Settle bool `yaml:"settle,omitempty"`
	// Frames pumps this many frames.
	Frames int         `yaml:"frames,omitempty"`
	Start  *StartStep  `yaml:"start,omitempty"`
	Finish *FinishStep `yaml:"finish,omitempty"`
	Detach bool        `yaml:"detach,omitempty"`
	// Expect fails the replay unless the control is in this state.
	Expect string `yaml:"expect,omitempty"`
}

// StartStep calls StartRefreshing.
type StartStep struct {
	Expand   bool `yaml:"expand"`
	Animated bool `yaml:"animated"`
}

// FinishStep calls FinishRefreshing.
type FinishStep struct {
	Animated bool `yaml:"animated"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Drag != nil, s.Release != nil, s.Settle, s.Frames > 0, s.Start != nil, s.Finish != nil, s.Detach, s.Expect != ""} {
		if set {
			n++
		}
	}
	return n
}

// Parse decodes a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Validate checks that every step names exactly one action.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario has no steps")
	}
	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return fmt.Errorf("step %d: want exactly one action, got %d", i+1, n)
		}
		if step.Frames < 0 {
			return fmt.Errorf("step %d: frames must not be negative", i+1)
		}
		if step.Expect != "" {
			if _, err := refresh.ParseState(step.Expect); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return s.Config.Validate()
}

// Transcript is the ordered record of a replay.
type Transcript struct {
	Lines []string
}

func (t *Transcript) add(format string, args ...any) {
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}

func (t *Transcript) String() string {
	if len(t.Lines) == 0 {
		return ""
	}
	return strings.Join(t.Lines, "\n") + "\n"
}

// Run replays s on a fresh scroll view with a fake clock.
func Run(s *Scenario) (*Transcript, error) {
	tester := refreshtest.NewTester()
	defer tester.Cleanup()

	view := tester.ScrollView()
	view.SetContentInset(graphics.EdgeInsetsTop(s.DefaultInset))
	view.SetContentOffset(graphics.Offset{Y: -s.DefaultInset})

	tr := &Transcript{}
	tr.add("# %s", s.Name)
	control := refresh.Attach(view, &recorder{tr: tr, refuse: s.Refuse}, nil)
	defer control.Detach()
	if err := s.Config.Apply(control); err != nil {
		return nil, err
	}

	for i, step := range s.Steps {
		if err := runStep(tester, control, tr, step); err != nil {
			return tr, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return tr, nil
}

func runStep(tester *refreshtest.Tester, c *refresh.Control, tr *Transcript, step Step) error {
	view := tester.ScrollView()
	switch {
	case step.Drag != nil:
		tr.add("> drag %g", *step.Drag)
		if !view.IsDragging() {
			tester.BeginDrag()
		}
		if err := tester.DragTo(*step.Drag); err != nil {
			return err
		}
		tr.add("  state=%s progress=%.2f", c.State(), c.Progress())

	case step.Release != nil:
		tr.add("> release %g", *step.Release)
		if err := tester.Release(*step.Release); err != nil {
			return err
		}
		tr.add("  state=%s", c.State())

	case step.Settle:
		tr.add("> settle")
		if err := tester.PumpAndSettle(SettleTimeout); err != nil {
			return err
		}
		tr.add("  state=%s offset=%.0f inset=%.0f", c.State(), view.ContentOffset().Y, view.ContentInset().Top)

	case step.Frames > 0:
		tr.add("> frames %d", step.Frames)
		if err := tester.PumpFrames(step.Frames); err != nil {
			return err
		}
		tr.add("  state=%s", c.State())

	case step.Start != nil:
		tr.add("> start expand=%t animated=%t", step.Start.Expand, step.Start.Animated)
		c.StartRefreshing(step.Start.Expand, step.Start.Animated, nil)
		tr.add("  state=%s", c.State())

	case step.Finish != nil:
		tr.add("> finish animated=%t", step.Finish.Animated)
		c.FinishRefreshing(step.Finish.Animated, nil)
		tr.add("  state=%s", c.State())

	case step.Detach:
		tr.add("> detach")
		c.Detach()

	case step.Expect != "":
		tr.add("> expect %s", step.Expect)
		want, err := refresh.ParseState(step.Expect)
		if err != nil {
			return err
		}
		if got := c.State(); got != want {
			return fmt.Errorf("state is %s, want %s", got, want)
		}
	}
	return nil
}

// recorder is the replay delegate.
type recorder struct {
	refresh.BaseDelegate
	tr     *Transcript
	refuse bool
}

func (r *recorder) ShouldStartRefreshing(*refresh.Control) bool {
	r.tr.add("  should start: %t", !r.refuse)
	return !r.refuse
}

func (r *recorder) DidStartRefreshing(*refresh.Control) {
	r.tr.add("  did start refreshing")
}

func (r *recorder) DidFinishRefreshing(*refresh.Control) {
	r.tr.add("  did finish refreshing")
}

func (r *recorder) DidUpdateContentInset(_ *refresh.Control, inset graphics.EdgeInsets) {
	r.tr.add("  inset top=%g", inset.Top)
}

func (r *recorder) WillTransition(_ *refresh.Control, to, from refresh.State, animated bool) {
	r.tr.add("  will %s <- %s%s", to, from, animatedSuffix(animated))
}

func (r *recorder) DidTransition(_ *refresh.Control, to, from refresh.State, animated bool) {
	r.tr.add("  did %s <- %s%s", to, from, animatedSuffix(animated))
}

func animatedSuffix(animated bool) string {
	if animated {
		return " (animated)"
	}
	return ""
}
