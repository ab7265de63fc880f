package table

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantRows int
		wantCols int
	}{
		{
			name:     "simple table",
			input:    "name,score\na,10\nb,20\nc,30\n",
			wantRows: 3,
			wantCols: 2,
		},
		{
			name:     "header only",
			input:    "name,score\n",
			wantRows: 0,
			wantCols: 2,
		},
		{
			name:     "fully empty rows dropped",
			input:    "name,score\na,10\n,\nb,20\n",
			wantRows: 2,
			wantCols: 2,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "ragged row",
			input:   "name,score\na,10,extra\n",
			wantErr: true,
		},
		{
			name:    "duplicate column names",
			input:   "name,name\na,b\n",
			wantErr: true,
		},
		{
			name:    "empty column name",
			input:   "name,\na,b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if tab.RowCount() != tt.wantRows {
				t.Errorf("RowCount = %d, want %d", tab.RowCount(), tt.wantRows)
			}
			if tab.ColumnCount() != tt.wantCols {
				t.Errorf("ColumnCount = %d, want %d", tab.ColumnCount(), tt.wantCols)
			}
		})
	}
}

func TestKindInference(t *testing.T) {
	input := "id,label,joined,mixed\n1,alpha,2024-01-02,5\n2,beta,2024-02-10,x\n3,gamma,2024-03-15,7\n"
	tab, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := map[string]string{
		"id":     KindNumeric,
		"label":  KindText,
		"joined": KindTemporal,
		"mixed":  KindText,
	}
	for name, kind := range want {
		idx, ok := tab.ColumnIndex(name)
		if !ok {
			t.Fatalf("column %q missing", name)
		}
		if tab.Columns[idx].Kind != kind {
			t.Errorf("column %q kind = %s, want %s", name, tab.Columns[idx].Kind, kind)
		}
	}
}

func TestKindInferenceMissingValues(t *testing.T) {
	// Missing cells must not break numeric inference, and an all-missing
	// column defaults to text.
	input := "score,empty\n10,\n,\n30,\n"
	tab, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if idx, _ := tab.ColumnIndex("score"); tab.Columns[idx].Kind != KindNumeric {
		t.Errorf("score kind = %s, want numeric", tab.Columns[idx].Kind)
	}
	if idx, _ := tab.ColumnIndex("empty"); tab.Columns[idx].Kind != KindText {
		t.Errorf("empty kind = %s, want text", tab.Columns[idx].Kind)
	}
}

func TestDistinctAndMissingCounts(t *testing.T) {
	input := "city\nparis\nparis\n\nlondon\n"
	tab, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// The blank line is a fully empty row, so it is dropped entirely
	if tab.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", tab.RowCount())
	}
	if got := tab.DistinctCount(0); got != 2 {
		t.Errorf("DistinctCount = %d, want 2", got)
	}
	if got := tab.MissingCount(0); got != 0 {
		t.Errorf("MissingCount = %d, want 0", got)
	}
}

func TestHeadTail(t *testing.T) {
	input := "n\n1\n2\n3\n4\n5\n"
	tab, _ := Parse(strings.NewReader(input))

	head := tab.Head(3)
	if len(head) != 3 || head[0][0] != "1" || head[2][0] != "3" {
		t.Errorf("Head(3) = %v", head)
	}
	tail := tab.Tail(2)
	if len(tail) != 2 || tail[0][0] != "4" || tail[1][0] != "5" {
		t.Errorf("Tail(2) = %v", tail)
	}
	if got := tab.Head(10); len(got) != 5 {
		t.Errorf("Head(10) len = %d, want 5", len(got))
	}
}

func TestRecords(t *testing.T) {
	input := "name,score\na,10\n"
	tab, _ := Parse(strings.NewReader(input))
	records := tab.Records(tab.Head(1))
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["name"] != "a" || records[0]["score"] != "10" {
		t.Errorf("record = %v", records[0])
	}
}
