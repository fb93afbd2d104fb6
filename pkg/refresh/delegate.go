package refresh

import (
	"time"

	"github.com/go-drift/refresh/pkg/graphics"
)

// Delegate receives the control's lifecycle notifications. All methods are
// called on the UI thread. Embed BaseDelegate to implement only some of them.
type Delegate interface {
	// ShouldStartRefreshing is asked when the user lets go of a Ready pull.
	// Returning false closes the header instead.
	ShouldStartRefreshing(c *Control) bool
	// DidStartRefreshing is called when the control enters StateRefreshing.
	DidStartRefreshing(c *Control)
	// DidFinishRefreshing is called when the control leaves StateRefreshing.
	DidFinishRefreshing(c *Control)
	// LastUpdatedAt returns the time the data was last loaded. ok false
	// means "now".
	LastUpdatedAt(c *Control) (t time.Time, ok bool)
	// DidUpdateContentInset is called after the control writes a new
	// content inset to the container.
	DidUpdateContentInset(c *Control, inset graphics.EdgeInsets)
	// WillTransition is called before a state change is applied.
	WillTransition(c *Control, to, from State, animated bool)
	// DidTransition is called after a state change (and its animation)
	// completes.
	DidTransition(c *Control, to, from State, animated bool)
}

// BaseDelegate implements Delegate with permissive defaults: refreshing is
// always allowed and there is no last-updated time.
type BaseDelegate struct{}

func (BaseDelegate) ShouldStartRefreshing(*Control) bool { return true }
func (BaseDelegate) DidStartRefreshing(*Control) {}
func (BaseDelegate) DidFinishRefreshing(*Control) {}
func (BaseDelegate) LastUpdatedAt(*Control) (time.Time, bool) { return time.Time{}, false }
func (BaseDelegate) DidUpdateContentInset(*Control, graphics.EdgeInsets) {}
func (BaseDelegate) WillTransition(*Control, State, State, bool) {}
func (BaseDelegate) DidTransition(*Control, State, State, bool) {}

// DelegateFuncs adapts plain functions to Delegate. Nil fields fall back to
// BaseDelegate behaviour.
type DelegateFuncs struct {
	OnShouldStartRefreshing func(c *Control) bool
	OnDidStartRefreshing    func(c *Control)
	OnDidFinishRefreshing   func(c *Control)
	OnLastUpdatedAt         func(c *Control) (time.Time, bool)
	OnDidUpdateContentInset func(c *Control, inset graphics.EdgeInsets)
	OnWillTransition        func(c *Control, to, from State, animated bool)
	OnDidTransition         func(c *Control, to, from State, animated bool)
}

func (d DelegateFuncs) ShouldStartRefreshing(c *Control) bool {
	if d.OnShouldStartRefreshing == nil {
		return true
	}
	return d.OnShouldStartRefreshing(c)
}

func (d DelegateFuncs) DidStartRefreshing(c *Control) {
	if d.OnDidStartRefreshing != nil {
		d.OnDidStartRefreshing(c)
	}
}

func (d DelegateFuncs) DidFinishRefreshing(c *Control) {
	if d.OnDidFinishRefreshing != nil {
		d.OnDidFinishRefreshing(c)
	}
}

func (d DelegateFuncs) LastUpdatedAt(c *Control) (time.Time, bool) {
	if d.OnLastUpdatedAt == nil {
		return time.Time{}, false
	}
	return d.OnLastUpdatedAt(c)
}

func (d DelegateFuncs) DidUpdateContentInset(c *Control, inset graphics.EdgeInsets) {
	if d.OnDidUpdateContentInset != nil {
		d.OnDidUpdateContentInset(c, inset)
	}
}

func (d DelegateFuncs) WillTransition(c *Control, to, from State, animated bool) {
	if d.OnWillTransition != nil {
		d.OnWillTransition(c, to, from, animated)
	}
}

func (d DelegateFuncs) DidTransition(c *Control, to, from State, animated bool) {
	if d.OnDidTransition != nil {
		d.OnDidTransition(c, to, from, animated)
	}
}
