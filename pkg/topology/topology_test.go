package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

func newNode(name string, labels map[string]string) corev1.Node {
	return corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: name, Labels: labels}}
}

func TestZonesOf(t *testing.T) {
	nodes := []corev1.Node{
		newNode("n1", map[string]string{ZoneLabel: "zone-b"}),
		newNode("n2", map[string]string{ZoneLabel: "zone-a"}),
		newNode("n3", map[string]string{ZoneLabel: "zone-b"}),
		newNode("n4", map[string]string{LegacyZoneLabel: "zone-c"}),
		newNode("n5", nil),
	}

	assert.Equal(t, []string{"zone-a", "zone-b", "zone-c"}, ZonesOf(nodes))
	assert.Empty(t, ZonesOf(nil))
}

func TestDistributionOf(t *testing.T) {
	dist := DistributionOf([]Node{
		{Name: "n1", Zone: "A"},
		{Name: "n2", Zone: "B"},
		{Name: "n3", Zone: "A"},
		{Name: "n4"},
	})

	assert.Equal(t, []string{"A", "B"}, dist.Zones())
	assert.True(t, dist["A"].Equal(sets.NewString("n1", "n3")))
	assert.True(t, dist["B"].Equal(sets.NewString("n2")))
	assert.Equal(t, 3, dist.NodeCount())
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, NodesPerZone(dist))
	assert.Equal(t, []string{"C"}, ArbiterZones([]string{"A", "B", "C"}, dist))
}

func TestIsValidStretchTopology(t *testing.T) {
	allZones := []string{"A", "B", "C"}

	testCases := []struct {
		name     string
		nodes    []Node
		allZones []string
		policy   StretchPolicy
		expected bool
	}{
		{
			name:     "two zones represented",
			nodes:    []Node{{"n1", "A"}, {"n2", "B"}},
			allZones: allZones,
			expected: false,
		},
		{
			name:     "one node per zone",
			nodes:    []Node{{"n1", "A"}, {"n2", "B"}, {"n3", "C"}},
			allZones: allZones,
			expected: true,
		},
		{
			name:     "known zone without a selected node",
			nodes:    []Node{{"n1", "A"}, {"n2", "B"}, {"n3", "C"}},
			allZones: []string{"A", "B", "C", "D"},
			expected: false,
		},
		{
			name:     "all nodes in one zone",
			nodes:    []Node{{"n1", "A"}, {"n2", "A"}, {"n3", "A"}},
			allZones: allZones,
			expected: false,
		},
		{
			name:     "stricter rule requires two nodes per zone",
			nodes:    []Node{{"n1", "A"}, {"n2", "B"}, {"n3", "C"}, {"n4", "A"}},
			allZones: allZones,
			policy:   StretchRule{MinZones: 3, MinNodesPerZone: 2}.Policy(),
			expected: false,
		},
		{
			name:     "rule below three zones is raised",
			nodes:    []Node{{"n1", "A"}, {"n2", "B"}},
			allZones: []string{"A", "B"},
			policy:   StretchRule{MinZones: 2, MinNodesPerZone: 1}.Policy(),
			expected: false,
		},
		{
			name:     "arbiter layout",
			nodes:    []Node{{"n1", "A"}, {"n2", "A"}, {"n3", "B"}, {"n4", "B"}},
			allZones: allZones,
			policy:   ArbiterStretchPolicy,
			expected: true,
		},
		{
			name:     "arbiter layout with too few known zones",
			nodes:    []Node{{"n1", "A"}, {"n2", "A"}, {"n3", "B"}, {"n4", "B"}},
			allZones: []string{"A", "B"},
			policy:   ArbiterStretchPolicy,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dist := DistributionOf(tc.nodes)
			assert.Equal(t, tc.expected, IsValidStretchTopology(dist, tc.allZones, tc.policy))
		})
	}
}

func TestFewerThanThreeZonesNeverValid(t *testing.T) {
	layouts := [][]Node{
		nil,
		{{"n1", "A"}},
		{{"n1", "A"}, {"n2", "A"}, {"n3", "A"}},
		{{"n1", "A"}, {"n2", "B"}, {"n3", "B"}, {"n4", "A"}},
	}
	for _, nodes := range layouts {
		dist := DistributionOf(nodes)
		assert.False(t, IsValidStretchTopology(dist, dist.Zones(), nil))
	}
}
