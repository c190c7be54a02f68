package main

import "sync"

type closeRequester interface {
	SetShouldClose(bool)
}

// teardown coordinates the closer goroutine with the locked main thread.
// requestStop runs on the closer goroutine and only asks the render loop to
// finish; release runs the GL cleanup on the main thread exactly once. After
// release the window is never touched again.
type teardown struct {
	mu       sync.Mutex
	window   closeRequester
	stopping bool

	cleanup func()
	once    sync.Once
	done    chan struct{}
}

func newTeardown(window closeRequester, cleanup func()) *teardown {
	return &teardown{
		window:  window,
		cleanup: cleanup,
		done:    make(chan struct{}),
	}
}

// requestStop is bound to closer. It returns once release has finished.
func (t *teardown) requestStop() {
	t.mu.Lock()
	if !t.stopping {
		t.window.SetShouldClose(true)
	}
	t.mu.Unlock()
	<-t.done
}

func (t *teardown) release() {
	t.once.Do(func() {
		t.mu.Lock()
		t.stopping = true
		t.mu.Unlock()

		defer close(t.done)
		t.cleanup()
	})
}
