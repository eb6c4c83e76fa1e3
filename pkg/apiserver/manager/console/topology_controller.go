package console

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/topology"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

// PolicySource hands out the current stretch policy
type PolicySource interface {
	Policy() topology.StretchPolicy
}

type TopologyController struct {
	cluster.Source

	policies PolicySource
}

func NewTopologyController(source cluster.Source, policies PolicySource) *TopologyController {
	return &TopologyController{Source: source, policies: policies}
}

// ZoneList returns every zone of the cluster
func (tController *TopologyController) ZoneList() *hwameistorapi.ZoneList {
	nodes := tController.Nodes()
	return &hwameistorapi.ZoneList{
		ResourceState: hwameistorapi.ResourceStateOf(nodes),
		Zones:         topology.ZonesOf(nodes.OrEmpty()),
	}
}

// Topology analyzes the zone distribution of the selected nodes owning
// eligible disks
func (tController *TopologyController) Topology(req *hwameistorapi.TopologyReqBody) *hwameistorapi.TopologyRsp {
	nodes := tController.Nodes()
	results := tController.DiscoveryResults()
	criteria, sizeValid := Criteria(&req.CapacityReqBody)

	selected := wizard.CreateNodeState(SelectNodes(nodes.OrEmpty(), req.Nodes))
	eligible := capacity.EligibleNodes(selected, results, criteria, sizeValid)
	rsp := AnalyzeTopology(eligible, topology.ZonesOf(nodes.OrEmpty()), tController.policy(req.Arbiter))
	rsp.ResourceState = hwameistorapi.Worst(hwameistorapi.ResourceStateOf(nodes), hwameistorapi.ResourceStateOf(results))
	return rsp
}

func (tController *TopologyController) policy(arbiter bool) topology.StretchPolicy {
	if arbiter {
		return topology.ArbiterStretchPolicy
	}
	if tController.policies == nil {
		return topology.DefaultStretchPolicy
	}
	return tController.policies.Policy()
}

// AnalyzeTopology evaluates the distribution of the nodes against the policy
func AnalyzeTopology(nodes []wizard.NodeState, allZones []string, policy topology.StretchPolicy) *hwameistorapi.TopologyRsp {
	dist := topology.DistributionOf(wizard.Placements(nodes))
	distribution := make(map[string][]string, len(dist))
	for zone, names := range dist {
		distribution[zone] = names.List()
	}
	return &hwameistorapi.TopologyRsp{
		Distribution:     distribution,
		NodesPerZone:     topology.NodesPerZone(dist),
		Zones:            dist.Zones(),
		ArbiterZones:     topology.ArbiterZones(allZones, dist),
		IsStretchCluster: topology.IsValidStretchTopology(dist, allZones, policy),
		Replicas:         wizard.Replicas(nodes),
	}
}

// SelectNodes keeps the nodes with the given names, in cluster order
func SelectNodes(nodes []corev1.Node, names []string) []corev1.Node {
	wanted := sets.NewString(names...)
	selected := []corev1.Node{}
	for _, node := range nodes {
		if wanted.Has(node.Name) {
			selected = append(selected, node)
		}
	}
	return selected
}
