package classify

import (
	"testing"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rec(title string, m map[string]any) domain.Record {
	return domain.Record{ID: "r1", Domain: domain.DomainFinancial, Title: title, Metadata: m}
}

func TestIsLiability(t *testing.T) {
	cases := []struct {
		name string
		r    domain.Record
		want bool
	}{
		{"credit card type", rec("", map[string]any{"type": "Credit Card"}), true},
		{"mortgage in title", rec("House Mortgage", nil), true},
		{"loan category", rec("", map[string]any{"category": "auto loan"}), true},
		{"checking account", rec("", map[string]any{"accountType": "checking"}), false},
		{"no evidence", rec("", nil), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsLiability(tc.r))
		})
	}
}

func TestIsAccountLike(t *testing.T) {
	assert.True(t, IsAccountLike(rec("", map[string]any{"accountType": "savings", "balance": 10.0})))

	// No explicit type: the value-floor fallback decides.
	assert.True(t, IsAccountLike(rec("", map[string]any{"balance": 250.0})))
	assert.False(t, IsAccountLike(rec("", map[string]any{"balance": 50.0})))

	// Negative balances count by magnitude.
	assert.True(t, IsAccountLike(rec("", map[string]any{"balance": -500.0})))

	// Liabilities never count as accounts.
	assert.False(t, IsAccountLike(rec("", map[string]any{"type": "credit card", "balance": 9000.0})))
}

func TestIsAccountLike_FallbackSuppressedByExplicitType(t *testing.T) {
	// An explicit but unrecognized type means no fallback; the record is
	// deliberately not counted.
	assert.False(t, IsAccountLike(rec("", map[string]any{"type": "crypto wallet", "balance": 5000.0})))
}

func TestIsSubscription(t *testing.T) {
	assert.True(t, IsSubscription(rec("Netflix", map[string]any{"billingCycle": "monthly"})))
	assert.True(t, IsSubscription(rec("Gym membership", nil)))
	assert.False(t, IsSubscription(rec("Groceries", nil)))
}

func TestIsMedication(t *testing.T) {
	assert.True(t, IsMedication(rec("", map[string]any{"type": "prescription"})))
	assert.True(t, IsMedication(rec("Refill: Metformin", nil)))
	assert.False(t, IsMedication(rec("Annual physical", nil)))
}

func TestStatus_Precedence(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Explicit status beats a future expiry date.
	r := rec("", map[string]any{"status": "Expired", "expiryDate": "2027-01-01"})
	assert.Equal(t, StatusExpired, Status(r, now))

	r = rec("", map[string]any{"status": "cancelled"})
	assert.Equal(t, StatusExpired, Status(r, now))

	r = rec("", map[string]any{"expiryDate": "2026-05-01"})
	assert.Equal(t, StatusExpired, Status(r, now))

	r = rec("", map[string]any{"expiryDate": "2026-06-15"})
	assert.Equal(t, StatusExpiring, Status(r, now))

	r = rec("", map[string]any{"expiryDate": "2027-01-01"})
	assert.Equal(t, StatusActive, Status(r, now))

	// No status, no date: default active.
	assert.Equal(t, StatusActive, Status(rec("", nil), now))
}

func TestServiceDue(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Explicit flag wins, both ways.
	assert.True(t, ServiceDue(rec("", map[string]any{"serviceDue": true}), now))
	assert.False(t, ServiceDue(rec("", map[string]any{"serviceDue": false, "status": "overdue"}), now))

	assert.True(t, ServiceDue(rec("", map[string]any{"nextServiceDate": "2026-06-20"}), now))
	assert.False(t, ServiceDue(rec("", map[string]any{"nextServiceDate": "2026-09-01"}), now))

	assert.True(t, ServiceDue(rec("", map[string]any{"status": "needs service soon"}), now))
	assert.False(t, ServiceDue(rec("", map[string]any{"status": "all good"}), now))
}
