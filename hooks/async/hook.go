// Package asynchook decouples hook sinks from the codec's hot path. Events
// are handed to worker goroutines through a bounded queue; when the queue is
// full the event is dropped rather than blocking an encode or decode.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{RoleDropEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := framewire.New(framewire.Options{Hooks: hooks})
package asynchook

import (
	"sync"
	"time"

	"github.com/unkn0wn-root/framewire"
)

type Hooks struct {
	inner framewire.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ framewire.Hooks = (*Hooks)(nil)

func New(inner framewire.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events enqueued after Close
// are lost.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) FrameSerialized(ft string, lvl framewire.Level, orig, comp int) {
	h.try(func() { h.inner.FrameSerialized(ft, lvl, orig, comp) })
}

func (h *Hooks) FrameDeserialized(ft string, elapsed time.Duration) {
	h.try(func() { h.inner.FrameDeserialized(ft, elapsed) })
}

func (h *Hooks) IntegrityMismatch(stored, computed uint32) {
	h.try(func() { h.inner.IntegrityMismatch(stored, computed) })
}

func (h *Hooks) VersionSkew(got string) {
	h.try(func() { h.inner.VersionSkew(got) })
}

func (h *Hooks) RoleDropped(ft, role string) {
	h.try(func() { h.inner.RoleDropped(ft, role) })
}
