package disk

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/capacity/units"
	"github.com/hwameistor/storage-console/pkg/consolectl/formatter"
	"github.com/hwameistor/storage-console/pkg/consolectl/manager"
	"github.com/hwameistor/storage-console/pkg/consolectl/utils"
)

var diskList = &cobra.Command{
	Use:   "list",
	Args:  cobra.ExactArgs(0),
	Short: "List the available discovered disks.",
	Long: "You can use 'consolectl disk list' to list every available discovered disk.\n" +
		"Use '--node' with glob patterns to show the disks of some nodes only.",
	Example: "consolectl disk list\n" +
		"consolectl disk list --node 'worker-*'",
	RunE: diskListRunE,
}

func init() {
	// Disk list flags
	diskList.Flags().StringSliceVar(&nodePatterns, "node", nil, "Filter disks by node name glob patterns")
}

func diskListRunE(cmd *cobra.Command, _ []string) error {
	source, err := manager.BuildSource(cmd.Context())
	if err != nil {
		return err
	}
	results := source.DiscoveryResults()
	if err := results.Err(); err != nil {
		return err
	}

	disks := capacity.Aggregate(results.OrEmpty())
	nodes, err := utils.MatchNodes(nodePatterns, capacity.ChartNodes(disks).List())
	if err != nil {
		return err
	}
	disks = capacity.ChartDisks(disks, setOf(nodes))

	disksHeader := table.Row{"#", "Node", "DeviceID", "Path", "Type", "Property", "Capacity", "State"}
	var disksRows []table.Row
	for i, disk := range disks {
		disksRows = append(disksRows, table.Row{i + 1, disk.Node, disk.DeviceID, disk.Path, disk.Type,
			disk.Property, units.HumanizeBinaryBytes(disk.Size), disk.Status.State})
	}

	formatter.PrintTable("Discovered Disks", disksHeader, disksRows)
	return nil
}
