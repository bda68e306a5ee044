package domain

// Priority orders alerts in the feed. Rank gives the sort key; unknown
// priorities sort last.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Alert is one "needs attention" item. ID is a stable composite of the
// alert type, the entity id, and the triggering date value so that
// regenerating from the same data yields the same id. Dismissal persistence
// depends on that stability.
type Alert struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	DaysLeft int      `json:"days_left"`
	Priority Priority `json:"priority"`
	Category Domain   `json:"category"`
	Link     string   `json:"link"`
}
