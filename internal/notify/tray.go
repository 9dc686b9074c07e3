package notify

import (
	"time"

	"github.com/google/uuid"
)

// Tray stacks toasts for display. New toasts are held until Flush so the
// view can schedule their expiry.
type Tray struct {
	defaultTTL time.Duration
	max        int
	active     []Toast
	fresh      []Toast
}

// NewTray builds a tray. max <= 0 keeps every toast until it expires.
func NewTray(defaultTTL time.Duration, max int) *Tray {
	return &Tray{defaultTTL: defaultTTL, max: max}
}

func (t *Tray) Notify(message string, kind Kind, opts Options) {
	ttl := opts.AutoClose
	if ttl <= 0 {
		ttl = t.defaultTTL
	}
	toast := Toast{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		Icon:    opts.Icon,
		TTL:     ttl,
	}
	t.active = append(t.active, toast)
	if t.max > 0 && len(t.active) > t.max {
		// copy so evicted toasts are not pinned by the old backing array
		kept := make([]Toast, t.max)
		copy(kept, t.active[len(t.active)-t.max:])
		t.active = kept
	}
	t.fresh = append(t.fresh, toast)
}

// Flush returns toasts added since the last call.
func (t *Tray) Flush() []Toast {
	out := t.fresh
	t.fresh = nil
	return out
}

// Expire drops the toast with the given id. Unknown ids are ignored.
func (t *Tray) Expire(id string) {
	for i := range t.active {
		if t.active[i].ID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			return
		}
	}
}

// Active lists visible toasts, oldest first.
func (t *Tray) Active() []Toast {
	out := make([]Toast, len(t.active))
	copy(out, t.active)
	return out
}
