// Package notify defines the toast contract used by the admin handlers and
// the tray that collects toasts for the terminal view.
package notify

import "time"

// Kind selects toast styling.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarn    Kind = "warn"
	KindError   Kind = "error"
)

// Options tweaks a single toast. Zero values fall back to tray defaults.
type Options struct {
	AutoClose time.Duration
	Icon      string
}

// Notifier renders transient messages. Callers never read a response.
type Notifier interface {
	Notify(message string, kind Kind, opts Options)
}

// Toast is one queued notification.
type Toast struct {
	ID      string
	Message string
	Kind    Kind
	Icon    string
	TTL     time.Duration
}
