// Package testing provides a headless frame pump for testing code that
// runs on a UI thread.
//
// # Quick Start
//
// A [Tester] installs a fake animation clock and a dispatch queue, and owns
// a scroll view to drag:
//
//	func TestPull(t *testing.T) {
//	    tester := refreshtest.NewTesterWithT(t)
//	    view := tester.ScrollView()
//	    // attach whatever observes view ...
//
//	    tester.PullTo(-80)
//	    if err := tester.PumpAndSettle(2 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Frames
//
// Pump runs one frame without moving time: queued dispatches first, then
// scroll deceleration, then animation tickers. PumpFrames and
// PumpAndSettle advance the clock 16ms per frame.
//
// # Golden Files
//
// MatchesGolden compares text output with a file under testdata. Update
// goldens with:
//
//	REFRESH_UPDATE_GOLDEN=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import refreshtest "github.com/go-drift/refresh/pkg/testing"
package testing
