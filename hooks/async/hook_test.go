package asynchook

import (
	"sync"
	"testing"
	"time"

	"github.com/unkn0wn-root/framewire"
)

type capture struct {
	mu         sync.Mutex
	serialized int
	skews      []string
	dropped    []string
}

func (c *capture) FrameSerialized(string, framewire.Level, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serialized++
}
func (c *capture) FrameDeserialized(string, time.Duration) {}
func (c *capture) IntegrityMismatch(uint32, uint32)        {}
func (c *capture) VersionSkew(got string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skews = append(c.skews, got)
}
func (c *capture) RoleDropped(_, role string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropped = append(c.dropped, role)
}

func TestAsyncDelivery(t *testing.T) {
	sink := &capture{}
	h := New(sink, 2, 16)

	h.FrameSerialized("query", framewire.LevelStandard, 100, 30)
	h.VersionSkew("0.9")
	h.RoleDropped("query", "customRole")

	// Close drains the queue before returning
	h.Close()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.serialized != 1 {
		t.Fatalf("serialized: %d", sink.serialized)
	}
	if len(sink.skews) != 1 || sink.skews[0] != "0.9" {
		t.Fatalf("skews: %v", sink.skews)
	}
	if len(sink.dropped) != 1 || sink.dropped[0] != "customRole" {
		t.Fatalf("dropped: %v", sink.dropped)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&capture{}, 1, 1)
	h.Close()
	h.Close()
}

func TestDefaultsApplied(t *testing.T) {
	h := New(&capture{}, 0, 0)
	defer h.Close()
	if cap(h.q) != 1024 {
		t.Fatalf("default queue length: %d", cap(h.q))
	}
}
