package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes tables as aligned text.
func Render(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := renderTable(w, t); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, t Table) error {
	fmt.Fprintf(w, "%s\n%s\n", t.Title, strings.Repeat("=", len(t.Title)))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
