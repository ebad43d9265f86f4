// Package debounce collapses repeated invocations into one deferred call.
package debounce

import (
	"sync"
	"time"
)

// New wraps fn so that repeated calls within the window collapse to a
// single invocation, fired after the window elapses with no further
// calls. Each call resets the window; there is one timer per wrapper, so
// firings never overlap. stop cancels any pending invocation.
func New(window time.Duration, fn func()) (call func(), stop func()) {
	var mu sync.Mutex
	var timer *time.Timer

	call = func() {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, fn)
	}

	stop = func() {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}

	return call, stop
}
