package alerts

import (
	"testing"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appliance(id string, m map[string]any) domain.Snapshot {
	return domain.Snapshot{
		domain.DomainAppliances: {{ID: id, Title: "Fridge", Metadata: m}},
	}
}

func TestLifespanProgress(t *testing.T) {
	purchase := now.AddDate(-2, 0, 0) // 24 months ago
	assert.InDelta(t, 20.0, LifespanProgress(purchase, now, 120), 0.01)

	// Clamped at 100 for display.
	old := now.AddDate(-20, 0, 0)
	assert.Equal(t, 100.0, LifespanProgress(old, now, 120))

	assert.Equal(t, 0.0, LifespanProgress(purchase, now, 0))
}

func TestLifecycle_YoungAssetNoAlerts(t *testing.T) {
	snapshot := appliance("fridge", map[string]any{
		"purchaseDate":           now.AddDate(-2, 0, 0).Format(time.RFC3339),
		"expectedLifespanMonths": 120.0,
	})
	assert.Empty(t, testEngine().Build(snapshot, nil, now))
}

func TestLifecycle_ReplacementWindow(t *testing.T) {
	// 102 of 120 months = 85%: inside the 80-95% window.
	snapshot := appliance("fridge", map[string]any{
		"purchaseDate":           now.AddDate(0, -102, 0).Format(time.RFC3339),
		"expectedLifespanMonths": 120.0,
	})
	feed := testEngine().Build(snapshot, nil, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Replacement window", feed[0].Subtitle)
	assert.Equal(t, domain.PriorityMedium, feed[0].Priority)
	assert.Greater(t, feed[0].DaysLeft, 0)
}

func TestLifecycle_ReplacementCritical(t *testing.T) {
	// 118 of 120 months = 98%.
	snapshot := appliance("fridge", map[string]any{
		"purchaseDate":           now.AddDate(0, -118, 0).Format(time.RFC3339),
		"expectedLifespanMonths": 120.0,
	})
	feed := testEngine().Build(snapshot, nil, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Replacement critical", feed[0].Subtitle)
	assert.Equal(t, domain.PriorityHigh, feed[0].Priority)
}

func TestLifecycle_MaintenanceDue(t *testing.T) {
	// Last maintained 6 months ago on a 6-month interval: due now.
	snapshot := appliance("hvac", map[string]any{
		"purchaseDate":              now.AddDate(-3, 0, 0).Format(time.RFC3339),
		"maintenanceIntervalMonths": 6.0,
		"lastMaintenanceDate":       now.AddDate(0, -6, 0).Format(time.RFC3339),
	})
	feed := testEngine().Build(snapshot, nil, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Maintenance due", feed[0].Subtitle)
	assert.LessOrEqual(t, feed[0].DaysLeft, 0)
	assert.Equal(t, domain.PriorityHigh, feed[0].Priority)
}

func TestLifecycle_MaintenanceApproaching(t *testing.T) {
	// One month away from due: included at medium severity.
	snapshot := appliance("hvac", map[string]any{
		"purchaseDate":              now.AddDate(-3, 0, 0).Format(time.RFC3339),
		"maintenanceIntervalMonths": 6.0,
		"lastMaintenanceDate":       now.AddDate(0, -5, 0).Format(time.RFC3339),
	})
	feed := testEngine().Build(snapshot, nil, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Maintenance due", feed[0].Subtitle)
	assert.Equal(t, domain.PriorityMedium, feed[0].Priority)
}

func TestLifecycle_MaintenanceDefaultsToPurchaseDate(t *testing.T) {
	// Never maintained: the purchase date anchors the schedule.
	snapshot := appliance("hvac", map[string]any{
		"purchaseDate":              now.AddDate(0, -9, 0).Format(time.RFC3339),
		"maintenanceIntervalMonths": 6.0,
	})
	feed := testEngine().Build(snapshot, nil, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Maintenance due", feed[0].Subtitle)
}

func TestLifecycle_NotYetDue(t *testing.T) {
	snapshot := appliance("hvac", map[string]any{
		"purchaseDate":              now.AddDate(0, -2, 0).Format(time.RFC3339),
		"maintenanceIntervalMonths": 6.0,
	})
	assert.Empty(t, testEngine().Build(snapshot, nil, now))
}
