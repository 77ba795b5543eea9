package format

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "json", want: JSON},
		{input: "lisp", want: Lisp},
		{input: "csv", want: CSV},
		{input: "tabular", want: Tabular},
		{input: "Tabular", want: Tabular},
		{input: "JSON", want: JSON},
		{input: "yaml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type sample struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Done  bool   `json:"done"`
}

func sampleTable() Table {
	return Table{
		Header: []string{"ID", "NAME"},
		Rows:   [][]string{{"a1", "invoice"}, {"b2", "receipt"}},
	}
}

func TestWrite_JSON(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, JSON, sample{ID: "a1", Name: "invoice", Count: 2, Done: true}, sampleTable())
	if err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"id": "a1"`) {
		t.Errorf("json output missing id field: %s", out)
	}
}

func TestWrite_Lisp(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, Lisp, sample{ID: "a1", Name: "invoice", Count: 2, Done: true}, sampleTable())
	if err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`:id "a1"`, ":count 2", ":done t"} {
		if !strings.Contains(out, want) {
			t.Errorf("lisp output missing %q: %s", want, out)
		}
	}
}

func TestWrite_Lisp_ListsAndNulls(t *testing.T) {
	var sb strings.Builder
	value := map[string]any{"tags": []string{"a", "b"}, "folder": nil}
	if err := Write(&sb, Lisp, value, Table{}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `:tags ("a" "b")`) {
		t.Errorf("lisp output missing list: %s", out)
	}
	if !strings.Contains(out, ":folder nil") {
		t.Errorf("lisp output missing nil: %s", out)
	}
}

func TestWrite_CSV(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, CSV, nil, sampleTable()); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv output has %d lines, want 3", len(lines))
	}
	if lines[0] != "ID,NAME" {
		t.Errorf("csv header = %q, want %q", lines[0], "ID,NAME")
	}
	if lines[1] != "a1,invoice" {
		t.Errorf("csv row = %q, want %q", lines[1], "a1,invoice")
	}
}

func TestWrite_Tabular(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, Tabular, nil, sampleTable()); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "invoice") {
		t.Errorf("tabular output missing content: %s", out)
	}
	if !strings.Contains(out, "--") {
		t.Errorf("tabular output missing separator row: %s", out)
	}
}
