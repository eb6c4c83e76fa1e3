package formatter

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	var out bytes.Buffer
	output := Output
	Output = &out
	t.Cleanup(func() { Output = output })
	return &out
}

func TestPrintParameters(t *testing.T) {
	out := capture(t)

	PrintParameters("Capacity", []Parameter{
		{Key: "Total", Value: "4.0 TiB"},
		{Key: "Chart Disks", Value: 2},
		{Key: "Chart Nodes", Value: ""},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "Capacity")
	assert.Contains(t, rendered, "4.0 TiB")
	assert.Contains(t, rendered, "Chart Disks")
	assert.Regexp(t, `Chart Nodes\s*\|\s*-\s*\|`, rendered)
}

func TestPrintTable(t *testing.T) {
	out := capture(t)

	PrintTable("Zones", table.Row{"#", "Zone"}, []table.Row{{1, "a"}, {2, "b"}})
	assert.Regexp(t, `\|\s*#\s*\|\s*Zone\s*\|`, out.String())
	assert.Regexp(t, `\|\s*2\s*\|\s*b\s*\|`, out.String())

	out.Reset()
	PrintTable("Storage Systems", table.Row{"Name"}, nil)
	assert.Equal(t, "Storage Systems: "+NoResources+"\n", out.String())

	out.Reset()
	PrintTable("", table.Row{"Name"}, nil)
	assert.Equal(t, NoResources+"\n", out.String())
}
