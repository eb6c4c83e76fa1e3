package topology

// MinimumStretchZones is the least number of zones a stretch cluster spans
const MinimumStretchZones = 3

// StretchPolicy decides whether a node distribution is a valid stretch topology
// given every zone known to the cluster
type StretchPolicy func(dist Distribution, allZones []string) bool

// StretchRule holds the thresholds of the default stretch policy
type StretchRule struct {
	// MinZones is the minimum number of zones holding selected nodes
	MinZones int `json:"minZones"`
	// MinNodesPerZone is the minimum number of selected nodes in every known zone
	MinNodesPerZone int `json:"minNodesPerZone"`
}

// DefaultStretchRule requires three zones with one node each
var DefaultStretchRule = StretchRule{MinZones: MinimumStretchZones, MinNodesPerZone: 1}

// Policy returns the policy enforcing the rule. Zone counts below
// MinimumStretchZones are raised to it.
func (r StretchRule) Policy() StretchPolicy {
	minZones := r.MinZones
	if minZones < MinimumStretchZones {
		minZones = MinimumStretchZones
	}
	minNodes := r.MinNodesPerZone
	if minNodes < 1 {
		minNodes = 1
	}

	return func(dist Distribution, allZones []string) bool {
		if len(dist) < minZones {
			return false
		}
		for _, zone := range allZones {
			if dist[zone].Len() < minNodes {
				return false
			}
		}
		total := dist.NodeCount()
		for _, nodes := range dist {
			if nodes.Len() == total {
				return false
			}
		}
		return true
	}
}

// DefaultStretchPolicy enforces DefaultStretchRule
var DefaultStretchPolicy = DefaultStretchRule.Policy()

// ArbiterStretchPolicy accepts the arbiter layout: at least three known zones,
// and two data zones with at least two selected nodes each. The arbiter zone
// itself needs no selected node.
func ArbiterStretchPolicy(dist Distribution, allZones []string) bool {
	if len(allZones) < MinimumStretchZones {
		return false
	}
	dataZones := 0
	for _, count := range NodesPerZone(dist) {
		if count >= 2 {
			dataZones++
		}
	}
	return dataZones >= 2
}

// IsValidStretchTopology evaluates the policy, DefaultStretchPolicy when nil.
// Fewer than three represented zones is never a stretch topology for the default policy.
func IsValidStretchTopology(dist Distribution, allZones []string, policy StretchPolicy) bool {
	if policy == nil {
		policy = DefaultStretchPolicy
	}
	return policy(dist, allZones)
}
