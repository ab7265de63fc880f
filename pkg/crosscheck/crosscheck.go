// Package crosscheck implements the best-effort numeric validation that is
// appended to an answer when a question looks like a simple aggregate. It is
// a pluggable strategy: no failure here may ever affect the primary answer.
package crosscheck

import (
	"fmt"
	"strings"

	"ai-csvchat-be/pkg/table"
)

var aggregateKeywords = []string{"sum", "total", "average", "mean", "count"}

// Addendum returns a "Data Validation" line computed directly from the
// table when the question matches a supported aggregate and a column can be
// fuzzily matched. The second return is false when no check applies. Panics
// in the matching or computation path are swallowed.
func Addendum(question string, t *table.Table) (addendum string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			addendum, ok = "", false
		}
	}()

	q := strings.ToLower(question)
	if !containsAny(q, aggregateKeywords) {
		return "", false
	}

	// Currently the only supported check: "total ... sales" summed over a
	// column whose name contains "sales".
	if strings.Contains(q, "total") && strings.Contains(q, "sales") {
		for i, c := range t.Columns {
			if c.Kind != table.KindNumeric || !strings.Contains(strings.ToLower(c.Name), "sales") {
				continue
			}
			sum := 0.0
			for _, v := range t.Floats(i) {
				sum += v
			}
			return fmt.Sprintf("**Data Validation:** Based on direct calculation, total %s = %.2f", c.Name, sum), true
		}
	}

	return "", false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
