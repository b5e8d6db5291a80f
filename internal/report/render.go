package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Render writes one result table in a plain console layout.
func Render(w io.Writer, t ResultTable) {
	fmt.Fprintf(w, "\n==== %s ====\n", t.Title)
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// RenderAll writes every result table in catalog order.
func RenderAll(w io.Writer, tables []ResultTable) {
	for _, t := range tables {
		Render(w, t)
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return x.Format("2006-01-02")
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", x), "0"), ".")
	default:
		return fmt.Sprintf("%v", x)
	}
}
