package topology

import (
	"sort"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	// ZoneLabel is the well-known zone label of a node
	ZoneLabel = corev1.LabelTopologyZone
	// LegacyZoneLabel is read when ZoneLabel is absent
	LegacyZoneLabel = corev1.LabelFailureDomainBetaZone
)

// Node is the zone placement of one cluster node
type Node struct {
	Name string `json:"name"`
	Zone string `json:"zone,omitempty"`
}

// Distribution maps a zone to the names of the nodes placed in it.
// Only zones with at least one node are present.
type Distribution map[string]sets.String

// ZoneOf returns the zone label of a node, empty when unlabelled
func ZoneOf(node *corev1.Node) string {
	if zone := node.Labels[ZoneLabel]; zone != "" {
		return zone
	}
	return node.Labels[LegacyZoneLabel]
}

// ZonesOf returns the distinct zones of the given nodes in sorted order.
// Nodes without a zone label are ignored.
func ZonesOf(nodes []corev1.Node) []string {
	zones := sets.NewString()
	for i := range nodes {
		if zone := ZoneOf(&nodes[i]); zone != "" {
			zones.Insert(zone)
		}
	}
	return zones.List()
}

// DistributionOf groups nodes by zone. Nodes without a zone are left out.
func DistributionOf(nodes []Node) Distribution {
	dist := Distribution{}
	for _, node := range nodes {
		if node.Zone == "" || node.Name == "" {
			continue
		}
		if _, exists := dist[node.Zone]; !exists {
			dist[node.Zone] = sets.NewString()
		}
		dist[node.Zone].Insert(node.Name)
	}
	return dist
}

// Zones returns the zones of the distribution in sorted order
func (d Distribution) Zones() []string {
	zones := make([]string, 0, len(d))
	for zone := range d {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}

// NodeCount is the number of distinct nodes over all zones
func (d Distribution) NodeCount() int {
	all := sets.NewString()
	for _, nodes := range d {
		all = all.Union(nodes)
	}
	return all.Len()
}

// NodesPerZone returns the number of nodes in each zone
func NodesPerZone(d Distribution) map[string]int {
	counts := make(map[string]int, len(d))
	for zone, nodes := range d {
		counts[zone] = nodes.Len()
	}
	return counts
}

// ArbiterZones returns the known zones that hold none of the distributed nodes,
// these are the zones that can host an arbiter.
func ArbiterZones(allZones []string, d Distribution) []string {
	var zones []string
	for _, zone := range sets.NewString(allZones...).List() {
		if _, used := d[zone]; !used {
			zones = append(zones, zone)
		}
	}
	return zones
}
