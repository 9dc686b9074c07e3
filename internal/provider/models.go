package provider

// Status is the registration state of a provider.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Record represents a registered service provider.
type Record struct {
	ID         int
	Name       string
	Email      string
	Status     Status
	Service    string
	Rating     float64
	Suspicious bool
}

// Active reports whether the provider is currently taking jobs.
func (r Record) Active() bool { return r.Status == StatusActive }
