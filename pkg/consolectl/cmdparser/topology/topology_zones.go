package topology

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/consolectl/formatter"
	"github.com/hwameistor/storage-console/pkg/consolectl/manager"
)

var topologyZones = &cobra.Command{
	Use:     "zones",
	Args:    cobra.ExactArgs(0),
	Short:   "List the zones of the cluster.",
	Long:    "You can use 'consolectl topology zones' to list the zones and their node count.",
	Example: "consolectl topology zones",
	RunE:    topologyZonesRunE,
}

func topologyZonesRunE(cmd *cobra.Command, _ []string) error {
	source, err := manager.BuildSource(cmd.Context())
	if err != nil {
		return err
	}
	nodes := source.Nodes()
	if err := nodes.Err(); err != nil {
		return err
	}

	zones := consolectr.NewTopologyController(source, nil).ZoneList()
	all := consolectr.AnalyzeTopology(nodeStates(nodes.OrEmpty(), nil), zones.Zones, nil)

	var rows []table.Row
	for i, zone := range zones.Zones {
		rows = append(rows, table.Row{i + 1, zone, all.NodesPerZone[zone]})
	}
	formatter.PrintTable("Zones", table.Row{"#", "Zone", "Nodes"}, rows)
	return nil
}
