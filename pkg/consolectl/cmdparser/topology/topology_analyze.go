package topology

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/consolectl/formatter"
	"github.com/hwameistor/storage-console/pkg/consolectl/manager"
	"github.com/hwameistor/storage-console/pkg/consolectl/utils"
	"github.com/hwameistor/storage-console/pkg/topology"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

var (
	nodePatterns []string
	arbiter      bool
)

var topologyAnalyze = &cobra.Command{
	Use:   "analyze",
	Args:  cobra.ExactArgs(0),
	Short: "Analyze the zone distribution of the selected nodes.",
	Long: "You can use 'consolectl topology analyze' to check whether the selected nodes\n" +
		"form a stretch cluster and which zones can host an arbiter. Only nodes\n" +
		"owning an available disk are counted.",
	Example: "consolectl topology analyze --node 'worker-*'\n" +
		"consolectl topology analyze --node 'worker-*' --arbiter",
	RunE: topologyAnalyzeRunE,
}

func init() {
	// Topology analyze flags
	topologyAnalyze.Flags().StringSliceVar(&nodePatterns, "node", nil, "Select nodes by name glob patterns, all nodes when empty")
	topologyAnalyze.Flags().BoolVar(&arbiter, "arbiter", false, "Check the arbiter layout")
}

func topologyAnalyzeRunE(cmd *cobra.Command, _ []string) error {
	source, err := manager.BuildSource(cmd.Context())
	if err != nil {
		return err
	}
	nodes, results := source.Nodes(), source.DiscoveryResults()
	if err := nodes.Err(); err != nil {
		return err
	}
	if err := results.Err(); err != nil {
		return err
	}

	var names []string
	for _, node := range nodes.OrEmpty() {
		names = append(names, node.Name)
	}
	selected, err := utils.MatchNodes(nodePatterns, names)
	if err != nil {
		return err
	}

	policy := topology.DefaultStretchPolicy
	if arbiter {
		policy = topology.ArbiterStretchPolicy
	}
	criteria, sizeValid := consolectr.Criteria(&hwameistorapi.CapacityReqBody{})
	eligible := capacity.EligibleNodes(nodeStates(nodes.OrEmpty(), selected), results, criteria, sizeValid)
	rsp := consolectr.AnalyzeTopology(eligible, topology.ZonesOf(nodes.OrEmpty()), policy)

	var rows []table.Row
	for i, zone := range rsp.Zones {
		rows = append(rows, table.Row{i + 1, zone, rsp.NodesPerZone[zone], strings.Join(rsp.Distribution[zone], ",")})
	}
	formatter.PrintTable("Distribution", table.Row{"#", "Zone", "Count", "Nodes"}, rows)
	formatter.PrintParameters("", []formatter.Parameter{
		{Key: "Stretch Cluster", Value: rsp.IsStretchCluster},
		{Key: "Replicas", Value: rsp.Replicas},
		{Key: "Arbiter Zones", Value: strings.Join(rsp.ArbiterZones, ",")},
	})
	return nil
}

// nodeStates keeps the named nodes, every node when names is nil
func nodeStates(nodes []corev1.Node, names []string) []wizard.NodeState {
	if names != nil {
		nodes = consolectr.SelectNodes(nodes, names)
	}
	return wizard.CreateNodeState(nodes)
}
