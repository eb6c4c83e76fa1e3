package wizard

import (
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hwameistor/storage-console/pkg/topology"
)

const (
	nodeRoleLabelPrefix = "node-role.kubernetes.io/"
	rackLabel           = "topology.rook.io/rack"
	hostNameLabel       = corev1.LabelHostname
)

// CreateNodeState builds the wizard rows of the given cluster nodes
func CreateNodeState(nodes []corev1.Node) []NodeState {
	states := make([]NodeState, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		state := NodeState{
			Name:     node.Name,
			HostName: node.Labels[hostNameLabel],
			UID:      string(node.UID),
			Zone:     topology.ZoneOf(node),
			Rack:     node.Labels[rackLabel],
			Roles:    nodeRoles(node),
		}
		if cpu, exists := node.Status.Capacity[corev1.ResourceCPU]; exists {
			state.CPU = cpu.String()
		}
		if memory, exists := node.Status.Capacity[corev1.ResourceMemory]; exists {
			state.Memory = memory.String()
		}
		if len(node.Labels) > 0 {
			state.Labels = make(map[string]string, len(node.Labels))
			for k, v := range node.Labels {
				state.Labels[k] = v
			}
		}
		if len(node.Spec.Taints) > 0 {
			state.Taints = append([]corev1.Taint{}, node.Spec.Taints...)
		}
		states = append(states, state)
	}
	return states
}

func nodeRoles(node *corev1.Node) []string {
	var roles []string
	for label := range node.Labels {
		if strings.HasPrefix(label, nodeRoleLabelPrefix) {
			if role := strings.TrimPrefix(label, nodeRoleLabelPrefix); role != "" {
				roles = append(roles, role)
			}
		}
	}
	sort.Strings(roles)
	return roles
}

// OwningNodes keeps the nodes named in owners, in the given order
func OwningNodes(nodes []NodeState, owners sets.String) []NodeState {
	owning := []NodeState{}
	for _, node := range nodes {
		if owners.Has(node.Name) {
			owning = append(owning, node)
		}
	}
	return owning
}

// Placements returns the zone placement of the nodes
func Placements(nodes []NodeState) []topology.Node {
	placements := make([]topology.Node, 0, len(nodes))
	for _, node := range nodes {
		placements = append(placements, topology.Node{Name: node.Name, Zone: node.Zone})
	}
	return placements
}

// Replicas returns the replica count for the selected nodes. Nodes spread over
// exactly two zones form an arbiter layout and keep two replicas per zone.
func Replicas(nodes []NodeState) int {
	if len(topology.DistributionOf(Placements(nodes))) == 2 {
		return 4
	}
	return 3
}
