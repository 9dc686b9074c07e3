package service

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jask/helpie/internal/metrics"
	"github.com/jask/helpie/internal/notify"
	"github.com/jask/helpie/internal/provider"
)

const (
	msgDeleting       = "Deleting user..."
	msgDeleted        = "Service Provider successfully deleted."
	msgDeleteCanceled = "Deletion cancelled."
	msgToggled        = "Suspicious status toggled."

	activitySuspicious = "High volume of cancelled jobs or rating discrepancies detected."
	activityNormal     = "Normal job flow and customer interaction history."

	iconSuspicious = "shield-off"
	iconActivity   = "activity"
)

// DefaultActivityAutoClose keeps activity toasts up longer than the rest.
const DefaultActivityAutoClose = 3500 * time.Millisecond

// Admin holds the provider admin actions surfaced through the TUI.
type Admin struct {
	Providers         *provider.Store
	Notifier          notify.Notifier
	Metrics           metrics.Recorder
	Logger            *slog.Logger
	ActivityAutoClose time.Duration
}

// DeletePrompt is the confirmation question shown before a delete.
func DeletePrompt(name string) string {
	return fmt.Sprintf("WARNING: Are you sure you want to permanently delete the service provider: %s? This action cannot be undone.", name)
}

// ActivityMessage picks the canned activity summary for a provider.
func ActivityMessage(suspicious bool) string {
	if suspicious {
		return activitySuspicious
	}
	return activityNormal
}

// RequestDelete handles the answer to DeletePrompt. When it returns true the
// caller must run CompleteDelete once the delete delay has elapsed.
func (s *Admin) RequestDelete(id int, name string, confirmed bool) bool {
	if !confirmed {
		s.notify(msgDeleteCanceled, notify.KindInfo, notify.Options{})
		s.recorder().Action(metrics.ActionDelete, metrics.OutcomeCancelled)
		s.logger().Debug("delete cancelled", "id", id, "name", name)
		return false
	}
	s.notify(msgDeleting, notify.KindWarn, notify.Options{})
	s.recorder().Action(metrics.ActionDelete, metrics.OutcomeRequested)
	s.logger().Debug("delete scheduled", "id", id, "name", name)
	return true
}

// CompleteDelete removes the provider. A provider that is already gone is
// left alone, the success toast is shown either way.
func (s *Admin) CompleteDelete(id int) {
	outcome := metrics.OutcomeApplied
	if !s.Providers.Remove(id) {
		outcome = metrics.OutcomeNoop
		s.logger().Debug("delete target already removed", "id", id)
	}
	s.notify(msgDeleted, notify.KindSuccess, notify.Options{})
	s.recorder().Action(metrics.ActionDelete, outcome)
	s.publish()
}

// ViewActivity shows the canned activity summary. It never touches state.
func (s *Admin) ViewActivity(name string, suspicious bool) {
	icon := iconActivity
	if suspicious {
		icon = iconSuspicious
	}
	autoClose := s.ActivityAutoClose
	if autoClose <= 0 {
		autoClose = DefaultActivityAutoClose
	}
	msg := fmt.Sprintf("Viewing %s's Activity: %s", name, ActivityMessage(suspicious))
	s.notify(msg, notify.KindInfo, notify.Options{AutoClose: autoClose, Icon: icon})
	s.recorder().Action(metrics.ActionActivity, metrics.OutcomeApplied)
}

// ToggleSuspicious flips the suspicious flag on a provider.
func (s *Admin) ToggleSuspicious(id int) {
	outcome := metrics.OutcomeApplied
	if !s.Providers.ToggleSuspicious(id) {
		outcome = metrics.OutcomeNoop
	}
	s.notify(msgToggled, notify.KindInfo, notify.Options{})
	s.recorder().Action(metrics.ActionToggle, outcome)
	s.logger().Debug("suspicious toggled", "id", id, "outcome", outcome)
	s.publish()
}

// Summary returns the counts for the current provider list.
func (s *Admin) Summary() provider.Summary {
	return provider.Summarize(s.Providers.List())
}

func (s *Admin) publish() {
	s.recorder().Providers(s.Summary())
}

func (s *Admin) notify(message string, kind notify.Kind, opts notify.Options) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(message, kind, opts)
}

func (s *Admin) recorder() metrics.Recorder {
	if s.Metrics == nil {
		return metrics.Nop{}
	}
	return s.Metrics
}

func (s *Admin) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
