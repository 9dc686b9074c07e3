package provider

// Seed returns the fixed provider list the panel starts from on every launch.
func Seed() []Record {
	return []Record{
		{ID: 1, Name: "Ravi Electricals", Email: "ravi@example.com", Status: StatusActive, Service: "Minor Repairs (Electrical)", Rating: 4.8},
		{ID: 2, Name: "Priya Tutors", Email: "priya@example.com", Status: StatusActive, Service: "Tutoring (Math & Science)", Rating: 4.9},
		{ID: 3, Name: "CleanSweep Team", Email: "cleansweep@example.com", Status: StatusInactive, Service: "Deep Cleaning (Home/Office)", Rating: 4.6},
		{ID: 4, Name: "Event Decor Masters", Email: "event@example.com", Status: StatusActive, Service: "Event Decorating", Rating: 4.5, Suspicious: true},
		{ID: 5, Name: "Plumbing Pro", Email: "pro@example.com", Status: StatusActive, Service: "Plumbing Fixes", Rating: 4.4},
	}
}
