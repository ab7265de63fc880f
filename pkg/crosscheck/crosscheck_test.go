package crosscheck

import (
	"strings"
	"testing"

	"ai-csvchat-be/pkg/table"
)

func mustParse(t *testing.T, input string) *table.Table {
	t.Helper()
	tab, err := table.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return tab
}

func TestAddendumFires(t *testing.T) {
	tab := mustParse(t, "region,sales\nnorth,100\nsouth,250.5\n")

	addendum, ok := Addendum("What is the total sales?", tab)
	if !ok {
		t.Fatal("expected addendum to fire")
	}
	if !strings.Contains(addendum, "Data Validation") {
		t.Errorf("addendum = %q", addendum)
	}
	if !strings.Contains(addendum, "total sales = 350.50") {
		t.Errorf("addendum = %q", addendum)
	}
}

func TestAddendumFuzzyColumnMatch(t *testing.T) {
	tab := mustParse(t, "region,Monthly_Sales\nnorth,10\nsouth,20\n")

	addendum, ok := Addendum("show me the total sales please", tab)
	if !ok {
		t.Fatal("expected addendum to fire on a column containing 'sales'")
	}
	if !strings.Contains(addendum, "Monthly_Sales = 30.00") {
		t.Errorf("addendum = %q", addendum)
	}
}

func TestAddendumDoesNotFire(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		question string
	}{
		{
			name:     "no aggregate keyword",
			input:    "region,sales\nnorth,100\n",
			question: "which region performed best?",
		},
		{
			name:     "keyword without a matching column",
			input:    "name,score\na,10\nb,20\nc,30\n",
			question: "what is the average score?",
		},
		{
			name:     "sales column is not numeric",
			input:    "region,sales\nnorth,high\nsouth,low\n",
			question: "what is the total sales?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := mustParse(t, tt.input)
			if addendum, ok := Addendum(tt.question, tab); ok {
				t.Errorf("unexpected addendum %q", addendum)
			}
		})
	}
}

func TestAddendumSwallowsPanics(t *testing.T) {
	// A nil table panics inside the matching path; the addendum must
	// silently not apply.
	addendum, ok := Addendum("what is the total sales?", nil)
	if ok || addendum != "" {
		t.Errorf("expected swallowed failure, got %q, %v", addendum, ok)
	}
}
