package provider

// Summary is the set of counts shown in the metrics card.
type Summary struct {
	Total      int
	Suspicious int
	Active     int
}

// Summarize derives the card counts from records.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Suspicious {
			s.Suspicious++
		}
		if r.Active() {
			s.Active++
		}
	}
	return s
}
