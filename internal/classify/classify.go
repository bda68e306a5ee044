// Package classify tags records with semantic sub-categories using keyword
// heuristics over normalized metadata text. The rules live in one table so
// they can be tested and tuned without touching call sites. Classification
// is best-effort: when evidence is absent a documented fallback applies and
// nothing is ever dropped or raised.
package classify

import (
	"strings"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
)

// Rule pairs a keyword list with an optional numeric fallback. When no
// keyword matches and FallbackKeys is set, the rule matches if any fallback
// key's magnitude exceeds FallbackAbove. The fallback is intentionally
// approximate; tightening it silently changes displayed totals.
type Rule struct {
	Keywords      []string
	EvidenceKeys  []string
	FallbackKeys  []string
	FallbackAbove float64
}

// AccountValueFloor is the "significant enough to count" threshold used
// when a financial record carries no explicit type. Heuristic tuning, not a
// business rule; kept configurable rather than inferred stricter.
const AccountValueFloor = 100

var (
	liabilityRule = Rule{
		Keywords:     []string{"loan", "debt", "credit card", "mortgage", "owed", "liability"},
		EvidenceKeys: []string{"type", "accountType", "account_type", "category", "kind"},
	}

	accountRule = Rule{
		Keywords:      []string{"checking", "savings", "bank", "account", "brokerage", "investment", "retirement", "401k", "ira"},
		EvidenceKeys:  []string{"type", "accountType", "account_type", "category", "institution"},
		FallbackKeys:  []string{"balance", "value", "amount"},
		FallbackAbove: AccountValueFloor,
	}

	subscriptionRule = Rule{
		Keywords:     []string{"subscription", "membership", "recurring", "monthly", "annual plan", "streaming"},
		EvidenceKeys: []string{"type", "category", "billingCycle", "billing_cycle", "frequency"},
	}

	maintenanceRule = Rule{
		Keywords:     []string{"maintenance", "repair", "service", "inspect", "replace filter", "tune-up", "clean"},
		EvidenceKeys: []string{"type", "category", "taskType", "task_type"},
	}

	medicationRule = Rule{
		Keywords:     []string{"medication", "prescription", "refill", "rx", "dose", "pill"},
		EvidenceKeys: []string{"type", "category", "kind"},
	}

	incomeRule = Rule{
		Keywords:     []string{"income", "salary", "wage", "paycheck", "cash"},
		EvidenceKeys: []string{"type", "category", "source"},
	}
)

// evidence gathers the lower-cased classification text for a record: the
// rule's metadata fields plus the record title.
func evidence(r domain.Record, m map[string]any, rule Rule) string {
	tokens := meta.PickStringTokens(m, rule.EvidenceKeys...)
	if r.Title != "" {
		tokens = append(tokens, strings.ToLower(r.Title))
	}
	return strings.Join(tokens, " ")
}

// matches applies a rule: substring membership over gathered evidence, then
// the numeric fallback when configured and the record carries no explicit
// type field at all.
func matches(r domain.Record, m map[string]any, rule Rule) bool {
	text := evidence(r, m, rule)
	for _, kw := range rule.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	if len(rule.FallbackKeys) > 0 && len(meta.PickStringTokens(m, rule.EvidenceKeys...)) == 0 {
		for _, k := range rule.FallbackKeys {
			if v := meta.ParseNumeric(m[k]); v > rule.FallbackAbove || v < -rule.FallbackAbove {
				return true
			}
		}
	}
	return false
}

// IsLiability reports whether a financial record represents money owed.
func IsLiability(r domain.Record) bool {
	return matches(r, meta.Unwrap(r), liabilityRule)
}

// IsAccountLike reports whether a financial record should count toward
// asset totals: explicit bank/account-ish type, or a balance large enough
// to count under the fallback heuristic.
func IsAccountLike(r domain.Record) bool {
	m := meta.Unwrap(r)
	if matches(r, m, liabilityRule) {
		return false
	}
	return matches(r, m, accountRule)
}

func IsSubscription(r domain.Record) bool {
	return matches(r, meta.Unwrap(r), subscriptionRule)
}

func IsMaintenanceTask(r domain.Record) bool {
	return matches(r, meta.Unwrap(r), maintenanceRule)
}

func IsMedication(r domain.Record) bool {
	return matches(r, meta.Unwrap(r), medicationRule)
}

func IsIncome(r domain.Record) bool {
	return matches(r, meta.Unwrap(r), incomeRule)
}
