package table

import (
	"fmt"
	"sort"
	"strings"
)

// NoNumericSummaryMarker is emitted verbatim when a table has no numeric
// columns, so prompt consumers never see an ambiguous empty section.
const NoNumericSummaryMarker = "No numeric columns for statistical summary"

// SummaryOptions bound the size of the generated context. The zero value is
// usable; unset fields fall back to the defaults below.
type SummaryOptions struct {
	HeadRows       int // sample rows from the top, default 3
	TailRows       int // sample rows from the bottom, 0 disables the section
	MaxCategorical int // how many text columns get a top-values breakdown, default 5
	TopValues      int // values listed per categorical column, default 5
}

func (o SummaryOptions) withDefaults() SummaryOptions {
	if o.HeadRows <= 0 {
		o.HeadRows = 3
	}
	if o.MaxCategorical <= 0 {
		o.MaxCategorical = 5
	}
	if o.TopValues <= 0 {
		o.TopValues = 5
	}
	return o
}

// Summarize renders a bounded textual context for a table: shape, column
// catalog, head/tail samples and full-table statistics. Output is
// deterministic, the same table always produces byte-identical text. The
// sample sections never exceed the configured row counts no matter how
// large the table is.
func Summarize(t *Table, opts SummaryOptions) string {
	opts = opts.withDefaults()

	var b strings.Builder
	b.WriteString("CSV DATA CONTEXT:\n\n")

	b.WriteString("DATASET OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Rows: %d\n", t.RowCount())
	fmt.Fprintf(&b, "- Total Columns: %d\n", t.ColumnCount())
	fmt.Fprintf(&b, "- Column Names: %s\n", strings.Join(t.ColumnNames(), ", "))

	b.WriteString("\nCOLUMN DETAILS:\n")
	for i, c := range t.Columns {
		fmt.Fprintf(&b, "- %s: %s | Unique: %d | Missing: %d\n",
			c.Name, c.Kind, t.DistinctCount(i), t.MissingCount(i))
	}

	fmt.Fprintf(&b, "\nSAMPLE DATA (First %d rows):\n", opts.HeadRows)
	writeSample(&b, t, t.Head(opts.HeadRows))

	if opts.TailRows > 0 {
		fmt.Fprintf(&b, "\nSAMPLE DATA (Last %d rows):\n", opts.TailRows)
		writeSample(&b, t, t.Tail(opts.TailRows))
	}

	b.WriteString("\nSTATISTICAL SUMMARY:\n")
	numeric := false
	for i, c := range t.Columns {
		if c.Kind != KindNumeric {
			continue
		}
		numeric = true
		s := Describe(t.Floats(i))
		fmt.Fprintf(&b, "- %s: count=%d mean=%s std=%s min=%s 25%%=%s 50%%=%s 75%%=%s max=%s\n",
			c.Name, s.Count,
			fmtFloat(s.Mean), fmtFloat(s.Std), fmtFloat(s.Min),
			fmtFloat(s.Q25), fmtFloat(s.Q50), fmtFloat(s.Q75), fmtFloat(s.Max))
	}
	if !numeric {
		b.WriteString(NoNumericSummaryMarker + "\n")
	}

	writeCategorical(&b, t, opts)

	return b.String()
}

func writeSample(b *strings.Builder, t *Table, rows [][]string) {
	b.WriteString(strings.Join(t.ColumnNames(), " | "))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteByte('\n')
	}
}

func writeCategorical(b *strings.Builder, t *Table, opts SummaryOptions) {
	written := 0
	for i, c := range t.Columns {
		if c.Kind != KindText || written >= opts.MaxCategorical {
			continue
		}
		top := t.topValues(i, opts.TopValues)
		if len(top) == 0 {
			continue
		}
		if written == 0 {
			b.WriteString("\nCATEGORICAL SUMMARY (Top Values):\n")
		}
		parts := make([]string, len(top))
		for j, vc := range top {
			parts[j] = fmt.Sprintf("%s=%d", vc.Value, vc.Count)
		}
		fmt.Fprintf(b, "- %s: %s\n", c.Name, strings.Join(parts, ", "))
		written++
	}
}

type valueCount struct {
	Value string
	Count int
	first int
}

// topValues ranks distinct non-missing values by frequency. Ties are broken
// by first appearance so the result is stable for a given table.
func (t *Table) topValues(idx, limit int) []valueCount {
	counts := make(map[string]*valueCount)
	order := make([]*valueCount, 0)
	for pos, row := range t.Rows {
		v := row[idx]
		if v == "" {
			continue
		}
		vc, ok := counts[v]
		if !ok {
			vc = &valueCount{Value: v, first: pos}
			counts[v] = vc
			order = append(order, vc)
		}
		vc.Count++
	}
	sort.SliceStable(order, func(a, b int) bool {
		if order[a].Count != order[b].Count {
			return order[a].Count > order[b].Count
		}
		return order[a].first < order[b].first
	})
	if limit < len(order) {
		order = order[:limit]
	}
	result := make([]valueCount, len(order))
	for i, vc := range order {
		result[i] = *vc
	}
	return result
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
