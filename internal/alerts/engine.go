// Package alerts merges every domain's "this might need attention" signals
// into one deduplicated, prioritized feed. The pipeline is pure given
// (snapshot, dismissed ids, now): generate candidates, classify severity,
// drop dismissed ids, sort by priority then urgency, truncate.
package alerts

import (
	"fmt"
	"sort"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultMaxAlerts caps the feed; the dashboard shows five.
	DefaultMaxAlerts = 5

	// DefaultDocumentLookaheadDays is how far ahead document and policy
	// expirations surface at all. Beyond the severity windows this is the
	// inclusion horizon.
	DefaultDocumentLookaheadDays = 90

	// DefaultBirthdayLeadDays and DefaultAnniversaryLeadDays are the
	// per-person reminder windows when a contact doesn't configure one.
	DefaultBirthdayLeadDays    = 7
	DefaultAnniversaryLeadDays = 14
)

// Engine generates the alert feed. Thresholds are held as fields rather
// than constants because several of them are heuristic tuning the original
// product exposed as settings.
type Engine struct {
	logger *zap.Logger

	MaxAlerts             int
	DocumentLookaheadDays int
	BirthdayLeadDays      int
	AnniversaryLeadDays   int
}

func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger:                logger,
		MaxAlerts:             DefaultMaxAlerts,
		DocumentLookaheadDays: DefaultDocumentLookaheadDays,
		BirthdayLeadDays:      DefaultBirthdayLeadDays,
		AnniversaryLeadDays:   DefaultAnniversaryLeadDays,
	}
}

// severity maps a countdown to a priority: overdue or inside a week is
// high, inside a month medium, anything further low.
func severity(daysLeft int) domain.Priority {
	switch {
	case daysLeft <= 7:
		return domain.PriorityHigh
	case daysLeft <= 30:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

// alertID builds the stable composite id: regenerating from unchanged data
// must reproduce it or dismissal persistence breaks.
func alertID(kind, entityID string, trigger time.Time) string {
	return fmt.Sprintf("%s:%s:%s", kind, entityID, trigger.Format("2006-01-02"))
}

// Build runs the full pipeline and returns the sorted, capped feed.
func (e *Engine) Build(snapshot domain.Snapshot, dismissed map[string]struct{}, now time.Time) []domain.Alert {
	var candidates []domain.Alert
	for _, gen := range e.generators() {
		candidates = append(candidates, gen(snapshot, now)...)
	}
	generatedTotal.Add(float64(len(candidates)))

	kept := candidates[:0]
	suppressed := 0
	for _, a := range candidates {
		if _, gone := dismissed[a.ID]; gone {
			suppressed++
			continue
		}
		kept = append(kept, a)
	}
	if suppressed > 0 {
		suppressedTotal.Add(float64(suppressed))
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority.Rank() != kept[j].Priority.Rank() {
			return kept[i].Priority.Rank() < kept[j].Priority.Rank()
		}
		return kept[i].DaysLeft < kept[j].DaysLeft
	})

	max := e.MaxAlerts
	if max <= 0 {
		max = DefaultMaxAlerts
	}
	if len(kept) > max {
		kept = kept[:max]
	}

	if e.logger != nil {
		e.logger.Debug("alert feed built",
			zap.Int("candidates", len(candidates)),
			zap.Int("suppressed", suppressed),
			zap.Int("returned", len(kept)))
	}
	return kept
}

type generator func(snapshot domain.Snapshot, now time.Time) []domain.Alert

func (e *Engine) generators() []generator {
	return []generator{
		e.billAlerts,
		e.taskAlerts,
		e.medicationAlerts,
		e.documentAlerts,
		e.insuranceAlerts,
		e.warrantyAlerts,
		e.birthdayAlerts,
		e.anniversaryAlerts,
		e.vehicleAlerts,
		e.lifecycleAlerts,
	}
}
