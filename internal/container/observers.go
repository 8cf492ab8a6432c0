package container

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/term"
)

// Static reports a fixed width once, synchronously.
func Static(width int) Observer {
	return ObserverFunc(func(onResize func(int)) func() {
		onResize(width)
		return func() {}
	})
}

// Feed is a push-based observer. Whatever measures the region calls
// Publish; every subscriber receives the width. The Bubble Tea model uses a
// Feed driven by tea.WindowSizeMsg.
type Feed struct {
	mu   sync.Mutex
	next int
	subs map[int]func(int)
	last int
	seen bool
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(int))}
}

// Observe implements Observer. A subscriber that joins after a Publish is
// sent the latest width immediately.
func (f *Feed) Observe(onResize func(width int)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = onResize
	last, seen := f.last, f.seen
	f.mu.Unlock()

	if seen {
		onResize(last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Publish delivers width to every subscriber.
func (f *Feed) Publish(width int) {
	f.mu.Lock()
	f.last, f.seen = width, true
	subs := make([]func(int), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(width)
	}
}

// Subscribers returns the number of live subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// SizeFunc measures a terminal. It matches term.GetSize.
type SizeFunc func(fd int) (width, height int, err error)

// Terminal observes the width of the terminal behind fd. It measures once
// on Observe and again on every window-change signal where the platform has
// one. When fd is not a terminal nothing is reported.
func Terminal(fd int) Observer {
	return TerminalWithSize(fd, term.GetSize)
}

// TerminalWithSize is Terminal with an injectable measurement function.
func TerminalWithSize(fd int, size SizeFunc) Observer {
	return ObserverFunc(func(onResize func(int)) func() {
		measure := func() {
			w, _, err := size(fd)
			if err != nil {
				return
			}
			onResize(w)
		}
		measure()

		if len(resizeSignals) == 0 {
			return func() {}
		}

		sigs := make(chan os.Signal, 1)
		done := make(chan struct{})
		signal.Notify(sigs, resizeSignals...)
		go func() {
			for {
				select {
				case <-sigs:
					measure()
				case <-done:
					return
				}
			}
		}()

		var once sync.Once
		return func() {
			once.Do(func() {
				signal.Stop(sigs)
				close(done)
			})
		}
	})
}
