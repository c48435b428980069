package extraction

import (
	"fmt"
	"strings"
)

// Indicator is a coverage bucket.
type Indicator string

const (
	Functions Indicator = "Functions"
	Methods   Indicator = "Methods"
	Classes   Indicator = "Classes"
	Types     Indicator = "Types"
)

// AllIndicators lists every bucket in reporting order.
var AllIndicators = []Indicator{Functions, Methods, Classes, Types}

// ParseIndicator matches name against the known buckets, ignoring case.
func ParseIndicator(name string) (Indicator, error) {
	for _, ind := range AllIndicators {
		if strings.EqualFold(string(ind), strings.TrimSpace(name)) {
			return ind, nil
		}
	}
	return "", fmt.Errorf("unknown indicator %q (valid: Functions, Methods, Classes, Types)", name)
}

// ParseIndicators parses every name, failing on the first unknown one.
func ParseIndicators(names []string) ([]Indicator, error) {
	indicators := make([]Indicator, 0, len(names))
	for _, name := range names {
		ind, err := ParseIndicator(name)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, ind)
	}
	return indicators, nil
}

// Count is a documented/documentable pair.
type Count struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Progress is the documentation coverage of a scope.
// Current and Total aggregate only the indicators that were requested;
// Breakdown always holds every indicator.
type Progress struct {
	Current   int                 `json:"current"`
	Total     int                 `json:"total"`
	Breakdown map[Indicator]Count `json:"breakdown"`
}

// NewProgress returns an empty Progress with every bucket present.
func NewProgress() Progress {
	breakdown := make(map[Indicator]Count, len(AllIndicators))
	for _, ind := range AllIndicators {
		breakdown[ind] = Count{}
	}
	return Progress{Breakdown: breakdown}
}

// Add returns the per-field sum of p and other. Neither operand is modified.
func (p Progress) Add(other Progress) Progress {
	sum := NewProgress()
	sum.Current = p.Current + other.Current
	sum.Total = p.Total + other.Total
	for _, ind := range AllIndicators {
		a, b := p.Breakdown[ind], other.Breakdown[ind]
		sum.Breakdown[ind] = Count{Current: a.Current + b.Current, Total: a.Total + b.Total}
	}
	return sum
}

// Ratio returns Current/Total, or 1 when there is nothing to document.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Current) / float64(p.Total)
}

// Includes reports whether ind is in indicators, ignoring case.
func Includes(indicators []Indicator, ind Indicator) bool {
	for _, want := range indicators {
		if strings.EqualFold(string(want), string(ind)) {
			return true
		}
	}
	return false
}
