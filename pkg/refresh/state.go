package refresh

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a Control.
type State int

const (
	// StateClosed is the resting state: nothing pulled, nothing loading.
	StateClosed State = iota
	// StateOpening is reserved for content views; the control never enters it.
	StateOpening
	// StateReady means the content is pulled past the expanded height and
	// letting go will start a refresh.
	StateReady
	// StateRefreshing means the host is loading.
	StateRefreshing
	// StateClosing is the animated step from Refreshing back to Closed.
	StateClosing
)

var stateNames = [...]string{
	StateClosed:     "closed",
	StateOpening:    "opening",
	StateReady:      "ready",
	StateRefreshing: "refreshing",
	StateClosing:    "closing",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState parses a state name as produced by String.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateClosed, fmt.Errorf("unknown refresh state %q", name)
}

// Style is the positioning of the header relative to the content.
type Style int

const (
	// StyleScrolling moves the header with the content.
	StyleScrolling Style = iota
	// StyleStationary pins the header behind the content. It is not
	// supported; controls set to it behave like StyleScrolling.
	StyleStationary
)

func (s Style) String() string {
	switch s {
	case StyleScrolling:
		return "scrolling"
	case StyleStationary:
		return "stationary"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses a style name. The empty string means StyleScrolling.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "scrolling":
		return StyleScrolling, nil
	case "stationary":
		return StyleStationary, nil
	default:
		return StyleScrolling, fmt.Errorf("unknown refresh style %q", name)
	}
}
