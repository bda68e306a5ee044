package classify

import (
	"strings"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
)

// DocStatus is the lifecycle bucket for anything that expires: policies,
// documents, warranties.
type DocStatus string

const (
	StatusActive   DocStatus = "active"
	StatusExpiring DocStatus = "expiring"
	StatusExpired  DocStatus = "expired"
)

// ExpiringWindow is how close an expiry date has to be before a record is
// flagged as expiring soon.
const ExpiringWindow = 30 * 24 * time.Hour

var statusKeys = []string{"status", "state", "policyStatus", "policy_status"}

var expiryKeys = []string{
	"expiryDate", "expiry_date", "expirationDate", "expiration_date",
	"expiresAt", "expires_at", "expiry", "validUntil", "valid_until",
	"renewalDate", "renewal_date", "endDate", "end_date",
}

// Status resolves a record's lifecycle bucket by precedence: an explicit
// expired/cancelled status wins; otherwise the first parseable expiry date
// decides; otherwise the record is active.
func Status(r domain.Record, now time.Time) DocStatus {
	m := meta.Unwrap(r)

	if s := strings.ToLower(meta.PickString(m, statusKeys...)); s == "expired" || s == "cancelled" || s == "canceled" {
		return StatusExpired
	}
	if exp, ok := meta.PickFirstDate(m, expiryKeys...); ok {
		switch {
		case exp.Before(now):
			return StatusExpired
		case exp.Sub(now) <= ExpiringWindow:
			return StatusExpiring
		}
	}
	return StatusActive
}

// ExpiryDate returns a record's expiry date when one parses.
func ExpiryDate(r domain.Record) (time.Time, bool) {
	return meta.PickFirstDate(meta.Unwrap(r), expiryKeys...)
}

var serviceStatusHints = []string{"due", "overdue", "needs service", "attention"}

// ServiceDue reports whether a vehicle needs service. Checked in order: an
// explicit boolean flag, a parsed next-service date within 30 days, then a
// free-text status containing any of the service hints.
func ServiceDue(r domain.Record, now time.Time) bool {
	m := meta.Unwrap(r)

	if flag, ok := m["serviceDue"].(bool); ok {
		return flag
	}
	if flag, ok := m["service_due"].(bool); ok {
		return flag
	}

	if next, ok := meta.PickFirstDate(m, "nextServiceDate", "next_service_date", "nextService", "serviceDate", "service_date"); ok {
		if next.Sub(now) <= ExpiringWindow {
			return true
		}
	}

	status := strings.ToLower(meta.PickString(m, "serviceStatus", "service_status", "status"))
	for _, hint := range serviceStatusHints {
		if strings.Contains(status, hint) {
			return true
		}
	}
	return false
}
