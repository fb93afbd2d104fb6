// Package widgets provides the small text primitives the refresh content
// views are built from.
//
// [ActivityIndicator] is a spinner whose glyph is derived from the
// animation clock, so tests with a fake clock see deterministic frames.
// [LinearProgressIndicator] renders pull progress as a bar.
package widgets
