package wizard

import (
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/hwameistor/storage-console/pkg/topology"
)

// ValidationType identifies a failed capacity and nodes check
type ValidationType string

const (
	ValidationMinimumNodes    ValidationType = "MinimumNodes"
	ValidationArbiterZones    ValidationType = "ArbiterZones"
	ValidationResourceProfile ValidationType = "ResourceProfile"
)

// MinimumNodes is the least number of selected nodes outside the arbiter layout
const MinimumNodes = 3

// ProfileRequirement is the aggregated CPU and memory a resource profile needs
type ProfileRequirement struct {
	CPU    resource.Quantity
	Memory resource.Quantity
}

// ProfileRequirements is the requirement of every resource profile
var ProfileRequirements = map[ResourceProfile]ProfileRequirement{
	ResourceProfileLean:        {CPU: resource.MustParse("24"), Memory: resource.MustParse("72Gi")},
	ResourceProfileBalanced:    {CPU: resource.MustParse("30"), Memory: resource.MustParse("72Gi")},
	ResourceProfilePerformance: {CPU: resource.MustParse("45"), Memory: resource.MustParse("96Gi")},
}

// ValidateCapacityAndNodes returns the failed checks of the selected nodes.
// allZones are the zones known to the cluster.
func ValidateCapacityAndNodes(nodes []NodeState, allZones []string, enableArbiter, isNoProvisioner bool, profile ResourceProfile) []ValidationType {
	var validations []ValidationType

	if enableArbiter && isNoProvisioner {
		dist := topology.DistributionOf(Placements(nodes))
		if !topology.IsValidStretchTopology(dist, allZones, topology.ArbiterStretchPolicy) {
			validations = append(validations, ValidationArbiterZones)
		}
	} else if len(nodes) < MinimumNodes {
		validations = append(validations, ValidationMinimumNodes)
	}

	if !meetsProfile(nodes, profile) {
		validations = append(validations, ValidationResourceProfile)
	}
	return validations
}

func meetsProfile(nodes []NodeState, profile ResourceProfile) bool {
	requirement, exists := ProfileRequirements[profile]
	if !exists {
		return true
	}

	cpu, memory := resource.Quantity{}, resource.Quantity{}
	for _, node := range nodes {
		if q, err := resource.ParseQuantity(node.CPU); err == nil {
			cpu.Add(q)
		}
		if q, err := resource.ParseQuantity(node.Memory); err == nil {
			memory.Add(q)
		}
	}
	return cpu.Cmp(requirement.CPU) >= 0 && memory.Cmp(requirement.Memory) >= 0
}
