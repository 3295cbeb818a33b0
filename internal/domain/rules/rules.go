package rules

import (
	"fmt"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
)

// defaultWeight applies when a rule leaves a weight unset.
const defaultWeight = 0.5

// Rule is the keyword rule of one ITSM category (immutable value object).
type Rule struct {
	itsmType        itsm.Type
	primary         []string
	secondary       []string
	weightPrimary   float64
	weightSecondary float64
}

// NewRule validates and creates a Rule. Zero weights default to 0.5.
// Weights are expected to sum to 1.0 but this is not enforced.
func NewRule(t itsm.Type, primary, secondary []string, weightPrimary, weightSecondary float64) (Rule, error) {
	if !t.IsValid() {
		return Rule{}, fmt.Errorf("unknown itsm type %q", t)
	}
	if weightPrimary < 0 || weightPrimary > 1 {
		return Rule{}, fmt.Errorf("%s: weight_primary must be between 0 and 1", t)
	}
	if weightSecondary < 0 || weightSecondary > 1 {
		return Rule{}, fmt.Errorf("%s: weight_secondary must be between 0 and 1", t)
	}
	if weightPrimary == 0 {
		weightPrimary = defaultWeight
	}
	if weightSecondary == 0 {
		weightSecondary = defaultWeight
	}
	return Rule{
		itsmType:        t,
		primary:         append([]string(nil), primary...),
		secondary:       append([]string(nil), secondary...),
		weightPrimary:   weightPrimary,
		weightSecondary: weightSecondary,
	}, nil
}

// ITSMType returns the category this rule scores.
func (r Rule) ITSMType() itsm.Type { return r.itsmType }

// PrimaryKeywords returns a copy of the primary keywords in declaration order.
func (r Rule) PrimaryKeywords() []string { return append([]string(nil), r.primary...) }

// SecondaryKeywords returns a copy of the secondary keywords in declaration order.
func (r Rule) SecondaryKeywords() []string { return append([]string(nil), r.secondary...) }

// WeightPrimary returns the weight of the primary keyword ratio.
func (r Rule) WeightPrimary() float64 { return r.weightPrimary }

// WeightSecondary returns the weight of the secondary keyword ratio.
func (r Rule) WeightSecondary() float64 { return r.weightSecondary }

// Table is an ordered, immutable set of rules.
// Declaration order is the classifier's tie-break order.
type Table struct {
	rules []Rule
}

// NewTable creates a Table. Each category may appear at most once.
func NewTable(rs ...Rule) (Table, error) {
	seen := make(map[itsm.Type]struct{}, len(rs))
	for _, r := range rs {
		if _, dup := seen[r.itsmType]; dup {
			return Table{}, fmt.Errorf("duplicate rule for %s", r.itsmType)
		}
		seen[r.itsmType] = struct{}{}
	}
	return Table{rules: append([]Rule(nil), rs...)}, nil
}

// Rules returns the rules in declaration order.
func (t Table) Rules() []Rule { return append([]Rule(nil), t.rules...) }

// Len returns the number of rules.
func (t Table) Len() int { return len(t.rules) }
