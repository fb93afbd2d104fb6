package refresh_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/platform"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/scroll"
	refreshtest "github.com/go-drift/refresh/pkg/testing"
)

const settleTimeout = 10 * time.Second

var _ = Describe("Control on a scroll view", func() {
	var (
		tester  *refreshtest.Tester
		view    *scroll.View
		control *refresh.Control
		events  []string
		refuse  bool
	)

	BeforeEach(func() {
		tester = refreshtest.NewTester()
		DeferCleanup(tester.Cleanup)
		view = tester.ScrollView()
		events = nil
		refuse = false

		control = refresh.Attach(view, refresh.DelegateFuncs{
			OnShouldStartRefreshing: func(*refresh.Control) bool { return !refuse },
			OnDidStartRefreshing:    func(*refresh.Control) { events = append(events, "start") },
			OnDidFinishRefreshing:   func(*refresh.Control) { events = append(events, "finish") },
			OnDidTransition: func(_ *refresh.Control, to, from refresh.State, _ bool) {
				events = append(events, fmt.Sprintf("%s->%s", from, to))
			},
		}, nil)
		DeferCleanup(control.Detach)
	})

	settle := func() {
		Expect(tester.PumpAndSettle(settleTimeout)).To(Succeed())
	}

	Describe("pulling", func() {
		It("springs back without refreshing when released short of the header", func() {
			Expect(tester.PullTo(-40)).To(Succeed())
			settle()

			Expect(control.State()).To(Equal(refresh.StateClosed))
			Expect(view.ContentOffset().Y).To(BeNumerically("~", 0, 0.5))
			Expect(events).To(BeEmpty())
		})

		It("becomes ready past the header and closes again when pushed back", func() {
			tester.BeginDrag()
			Expect(tester.DragTo(-90)).To(Succeed())
			Expect(control.State()).To(Equal(refresh.StateReady))
			Expect(control.Progress()).To(BeNumerically("~", 90.0/64, 1e-9))

			Expect(tester.DragTo(-20)).To(Succeed())
			Expect(control.State()).To(Equal(refresh.StateClosed))
			Expect(events).To(Equal([]string{"closed->ready", "ready->closed"}))
		})

		It("reports progress through physics-resisted drags", func() {
			tester.BeginDrag()
			for range 10 {
				Expect(tester.DragBy(20)).To(Succeed())
			}
			Expect(control.Progress()).To(BeNumerically(">", 0))
			Expect(control.Progress()).To(BeNumerically("<", 200.0/64), "resistance shortens the pull")
		})
	})

	Describe("a full refresh", func() {
		It("holds the header open while loading and closes it when finished", func() {
			Expect(tester.PullTo(-90)).To(Succeed())
			settle()

			Expect(control.State()).To(Equal(refresh.StateRefreshing))
			Expect(control.IsExpanded()).To(BeTrue())
			Expect(view.ContentInset().Top).To(Equal(refresh.DefaultExpandedHeight))
			Expect(view.ContentOffset().Y).To(BeNumerically("~", -64, 0.5), "content rests below the header")

			control.FinishRefreshing(true, nil)
			settle()

			Expect(control.State()).To(Equal(refresh.StateClosed))
			Expect(view.ContentInset().Top).To(BeZero())
			Expect(view.ContentOffset().Y).To(BeNumerically("~", 0, 0.5))
			Expect(events).To(Equal([]string{
				"closed->ready",
				"start",
				"ready->refreshing",
				"finish",
				"refreshing->closing",
				"closing->closed",
			}))
		})

		It("finishes when the load completes on another goroutine", func() {
			Expect(tester.PullTo(-90)).To(Succeed())
			settle()

			loaded := make(chan struct{})
			go func() {
				defer close(loaded)
				platform.Dispatch(func() { control.FinishRefreshing(true, nil) })
			}()
			Eventually(loaded).Should(BeClosed())

			Expect(control.State()).To(Equal(refresh.StateRefreshing), "nothing runs until the UI thread pumps")
			settle()
			Expect(control.State()).To(Equal(refresh.StateClosed))
		})

		It("closes instead when the delegate declines", func() {
			refuse = true
			Expect(tester.PullTo(-90)).To(Succeed())
			settle()

			Expect(control.State()).To(Equal(refresh.StateClosed))
			Expect(view.ContentInset().Top).To(BeZero())
			Expect(events).To(Equal([]string{"closed->ready", "ready->closed"}))
		})
	})

	Describe("refreshing started by the host", func() {
		It("keeps a scrolled position", func() {
			view.SetContentOffset(graphics.Offset{Y: 300})
			control.StartRefreshing(true, true, nil)
			settle()

			Expect(control.State()).To(Equal(refresh.StateRefreshing))
			Expect(view.ContentInset().Top).To(Equal(refresh.DefaultExpandedHeight))
			Expect(view.ContentOffset().Y).To(Equal(300.0))
		})

		It("runs out of view without expanding", func() {
			control.StartRefreshing(false, false, nil)
			Expect(control.State()).To(Equal(refresh.StateRefreshing))
			Expect(view.ContentInset().Top).To(BeZero())
		})

		It("lets the header scroll away while dragging", func() {
			control.StartRefreshing(true, false, nil)
			settle()

			tester.BeginDrag()
			Expect(tester.DragTo(-30)).To(Succeed())
			Expect(view.ContentInset().Top).To(Equal(30.0))

			Expect(tester.DragTo(120)).To(Succeed())
			Expect(view.ContentInset().Top).To(BeZero())

			Expect(tester.DragTo(-100)).To(Succeed())
			Expect(view.ContentInset().Top).To(Equal(refresh.DefaultExpandedHeight))
			Expect(control.State()).To(Equal(refresh.StateRefreshing))
		})
	})

	Describe("detaching", func() {
		It("stops observing the scroll view", func() {
			Expect(view.ListenerCount()).To(Equal(1))
			control.Detach()
			Expect(view.ListenerCount()).To(BeZero())

			Expect(tester.PullTo(-90)).To(Succeed())
			settle()
			Expect(control.State()).To(Equal(refresh.StateClosed))
			Expect(events).To(BeEmpty())
		})
	})
})
