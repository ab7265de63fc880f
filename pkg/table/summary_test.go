package table

import (
	"fmt"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Table {
	t.Helper()
	tab, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return tab
}

func TestSummarizeDeterminism(t *testing.T) {
	tab := mustParse(t, "name,score,city\na,10,paris\nb,20,paris\nc,30,london\n")
	opts := SummaryOptions{HeadRows: 3, TailRows: 3}

	first := Summarize(tab, opts)
	second := Summarize(tab, opts)
	if first != second {
		t.Error("summaries for the same table differ between invocations")
	}
}

func TestSummarizeSections(t *testing.T) {
	tab := mustParse(t, "name,score\na,10\nb,20\nc,30\n")
	summary := Summarize(tab, SummaryOptions{})

	for _, want := range []string{
		"- Total Rows: 3",
		"- Total Columns: 2",
		"- Column Names: name, score",
		"- name: text | Unique: 3 | Missing: 0",
		"- score: numeric | Unique: 3 | Missing: 0",
		"- score: count=3 mean=20.00 std=10.00 min=10.00 25%=15.00 50%=20.00 75%=25.00 max=30.00",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q\n%s", want, summary)
		}
	}
}

func TestSummarizeTruncationBound(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,value\n")
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&b, "%d,%d\n", i, i*2)
	}
	tab := mustParse(t, b.String())

	summary := Summarize(tab, SummaryOptions{HeadRows: 3, TailRows: 3})

	head := section(summary, "SAMPLE DATA (First 3 rows):")
	if got := strings.Count(head, "\n"); got != 5 { // heading + header line + 3 rows
		t.Errorf("head sample has %d lines, want 5:\n%s", got, head)
	}
	if !strings.Contains(summary, "- Total Rows: 10000") {
		t.Error("overview must still report the full row count")
	}
	if strings.Contains(head, "\n5000 | ") {
		t.Error("head sample leaked a middle row")
	}
}

// section returns the lines from the given heading up to the next blank line.
func section(summary, heading string) string {
	start := strings.Index(summary, heading)
	if start < 0 {
		return ""
	}
	rest := summary[start:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end+1]
	}
	return rest
}

func TestSummarizeNoNumericColumns(t *testing.T) {
	tab := mustParse(t, "name,city\na,paris\n")
	summary := Summarize(tab, SummaryOptions{})
	if !strings.Contains(summary, NoNumericSummaryMarker) {
		t.Errorf("summary missing the no-numeric marker:\n%s", summary)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	tab := mustParse(t, "name,score\n")
	summary := Summarize(tab, SummaryOptions{})

	if !strings.Contains(summary, "- Total Rows: 0") {
		t.Error("zero-row table must still report its shape")
	}
	// score has no values, so it infers as text and the numeric section
	// carries the explicit marker
	if !strings.Contains(summary, NoNumericSummaryMarker) {
		t.Errorf("summary missing the no-numeric marker:\n%s", summary)
	}
}

func TestSummarizeCategoricalTopValues(t *testing.T) {
	tab := mustParse(t, "city\nparis\nparis\nlondon\nrome\nrome\nrome\n")
	summary := Summarize(tab, SummaryOptions{TopValues: 2})

	categorical := section(summary, "CATEGORICAL SUMMARY (Top Values):")
	if !strings.Contains(categorical, "- city: rome=3, paris=2") {
		t.Errorf("categorical section wrong:\n%s", summary)
	}
	if strings.Contains(categorical, "london") {
		t.Error("value beyond the top-M limit must not appear")
	}
}

func TestSummarizeTailSection(t *testing.T) {
	tab := mustParse(t, "n\n1\n2\n3\n4\n5\n")
	with := Summarize(tab, SummaryOptions{HeadRows: 2, TailRows: 2})
	without := Summarize(tab, SummaryOptions{HeadRows: 2})

	if !strings.Contains(with, "SAMPLE DATA (Last 2 rows):") {
		t.Error("tail section missing when TailRows > 0")
	}
	if strings.Contains(without, "SAMPLE DATA (Last") {
		t.Error("tail section present when TailRows == 0")
	}
}
