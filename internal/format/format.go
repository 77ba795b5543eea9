// Package format renders command results in the selected output
// format. json and lisp always present the full value; csv and tabular
// render the per-command table for readability.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// Format selects the output rendering.
type Format string

const (
	JSON    Format = "json"
	Lisp    Format = "lisp"
	CSV     Format = "csv"
	Tabular Format = "tabular"
)

// Parse returns the format named by s, case-insensitively.
func Parse(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case JSON:
		return JSON, nil
	case Lisp:
		return Lisp, nil
	case CSV:
		return CSV, nil
	case Tabular:
		return Tabular, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be one of json, lisp, csv, tabular", s)
	}
}

// Table is the column view of a result, used by csv and tabular output.
type Table struct {
	Header []string
	Rows   [][]string
}

// Write renders value (for json/lisp) or table (for csv/tabular) to w.
func Write(w io.Writer, f Format, value any, table Table) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case Lisp:
		return writeLisp(w, value)
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(table.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Rows); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case Tabular:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(table.Header, "\t"))
		dashes := make([]string, len(table.Header))
		for i, h := range table.Header {
			dashes[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(tw, strings.Join(dashes, "\t"))
		for _, row := range table.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// writeLisp renders value as an s-expression. The value is round
// tripped through its JSON form so the output matches the wire field
// names, like the json format does.
func writeLisp(w io.Writer, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	var sb strings.Builder
	writeSexp(&sb, generic)
	sb.WriteString("\n")
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeSexp(sb *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		if t {
			sb.WriteString("t")
		} else {
			sb.WriteString("nil")
		}
	case string:
		fmt.Fprintf(sb, "%q", t)
	case float64:
		// json numbers decode as float64; print integers without a
		// fractional part.
		if t == float64(int64(t)) {
			fmt.Fprintf(sb, "%d", int64(t))
		} else {
			fmt.Fprintf(sb, "%v", t)
		}
	case []any:
		sb.WriteString("(")
		for i, item := range t {
			if i > 0 {
				sb.WriteString(" ")
			}
			writeSexp(sb, item)
		}
		sb.WriteString(")")
	case map[string]any:
		// Keep the wire order stable by sorting keys.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("(")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(sb, ":%s ", k)
			writeSexp(sb, t[k])
		}
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "%v", t)
	}
}
