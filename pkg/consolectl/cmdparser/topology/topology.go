package topology

import (
	"github.com/spf13/cobra"
)

var Topology = &cobra.Command{
	Use:   "topology",
	Args:  cobra.ExactArgs(0),
	Short: "Inspect the zone topology of the nodes.",
	Long:  "Inspect the zones of the cluster and the zone distribution of selected nodes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

func init() {
	// Topology sub commands
	Topology.AddCommand(topologyZones, topologyAnalyze)
}
