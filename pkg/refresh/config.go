package refresh

import (
	"time"

	"github.com/go-drift/refresh/pkg/errors"
)

// Config holds the file- or flag-configurable settings of a Control.
// Zero fields leave the control's current value alone.
type Config struct {
	ExpandedHeight    float64       `yaml:"expanded_height" mapstructure:"expanded_height"`
	AnimationDuration time.Duration `yaml:"animation_duration" mapstructure:"animation_duration"`
	Style             string        `yaml:"style" mapstructure:"style"`
	ContentView       string        `yaml:"content_view" mapstructure:"content_view"`
	Theme             string        `yaml:"theme" mapstructure:"theme"`
}

// DefaultConfig returns the settings a fresh Control starts with.
func DefaultConfig() Config {
	return Config{
		ExpandedHeight:    DefaultExpandedHeight,
		AnimationDuration: DefaultAnimationDuration,
		Style:             StyleScrolling.String(),
		ContentView:       ContentViewDefault,
		Theme:             "dark",
	}
}

// Validate reports the first invalid field.
func (cfg Config) Validate() error {
	const op = "refresh.Config.Validate"
	if cfg.ExpandedHeight < 0 {
		return errors.Configf(op, "expanded_height must be positive, got %v", cfg.ExpandedHeight)
	}
	if cfg.AnimationDuration < 0 {
		return errors.Configf(op, "animation_duration must not be negative, got %v", cfg.AnimationDuration)
	}
	if _, err := ParseStyle(cfg.Style); err != nil {
		return &errors.RefreshError{Op: op, Kind: errors.KindConfig, Err: err}
	}
	if _, err := ThemeByName(cfg.Theme); err != nil {
		return &errors.RefreshError{Op: op, Kind: errors.KindConfig, Err: err}
	}
	if _, err := NewContentView(cfg.ContentView, Theme{}); err != nil {
		return &errors.RefreshError{Op: op, Kind: errors.KindConfig, Err: err}
	}
	return nil
}

// Apply validates cfg and applies it to c. Nothing is applied when cfg is
// invalid. A content view is only installed when ContentView or Theme is
// set.
func (cfg Config) Apply(c *Control) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ExpandedHeight > 0 {
		c.SetExpandedHeight(cfg.ExpandedHeight)
	}
	if cfg.AnimationDuration > 0 {
		c.SetAnimationDuration(cfg.AnimationDuration)
	}
	if cfg.Style != "" {
		style, _ := ParseStyle(cfg.Style)
		c.SetStyle(style)
	}
	if cfg.ContentView != "" || cfg.Theme != "" {
		theme, _ := ThemeByName(cfg.Theme)
		view, _ := NewContentView(cfg.ContentView, theme)
		c.SetContentView(view)
	}
	return nil
}
