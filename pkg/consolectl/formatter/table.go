package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NoResources is printed instead of an empty resource table
const NoResources = "No resources found."

// Output receives every rendered table
var Output io.Writer = os.Stdout

// Parameter is one key and value row of a parameter table
type Parameter struct {
	Key   string
	Value interface{}
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(Output)
	t.Style().Format.Header = text.FormatDefault
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// PrintParameters renders the parameters as a key and value table, one
// parameter per row. Empty values are shown as "-".
func PrintParameters(title string, parameters []Parameter) {
	t := newTable(title)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignLeft}, {Number: 2, Align: text.AlignRight}})
	for _, parameter := range parameters {
		t.AppendRow(table.Row{parameter.Key, valueOf(parameter.Value)})
	}
	t.Render()
}

// PrintTable renders the resource rows under the header
func PrintTable(title string, header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		if title != "" {
			fmt.Fprintf(Output, "%s: %s\n", title, NoResources)
			return
		}
		fmt.Fprintln(Output, NoResources)
		return
	}

	t := newTable(title)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

func valueOf(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
	}
	return value
}
