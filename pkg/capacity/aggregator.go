package capacity

import (
	"k8s.io/apimachinery/pkg/util/sets"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
	"github.com/hwameistor/storage-console/pkg/result"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

// Aggregation is the outcome of the three filtering stages
type Aggregation struct {
	// All are the disks passing the basic availability check
	All []filter.DiscoveredDisk `json:"all"`
	// Filtered are the disks matching the user criteria
	Filtered []filter.DiscoveredDisk `json:"filtered"`
	// Chart are the filtered disks on selected nodes
	Chart []filter.DiscoveredDisk `json:"chart"`

	TotalCapacity    int64       `json:"totalCapacity"`
	SelectedCapacity int64       `json:"selectedCapacity"`
	ChartNodes       sets.String `json:"-"`
}

// Aggregate flattens the discovery results into node tagged disks, keeping
// only available disks of a usable type. Results without a node are skipped.
// Order is stable: result order, then disk order.
func Aggregate(results []v1alpha1.LocalVolumeDiscoveryResult) []filter.DiscoveredDisk {
	disks := []filter.DiscoveredDisk{}
	for i := range results {
		node := results[i].Spec.NodeName
		if node == "" {
			continue
		}
		for _, device := range results[i].Status.DiscoveredDevices {
			disk := filter.DiscoveredDisk{DiscoveredDevice: device, Node: node}
			if filter.IsAvailable(&disk) {
				disks = append(disks, disk)
			}
		}
	}
	return disks
}

// FilterDisks applies the user criteria. An invalid size range selects nothing.
func FilterDisks(disks []filter.DiscoveredDisk, criteria filter.Criteria, sizeValid bool) []filter.DiscoveredDisk {
	filtered := []filter.DiscoveredDisk{}
	if !sizeValid {
		return filtered
	}
	for i := range disks {
		if filter.IsEligible(&disks[i], criteria) {
			filtered = append(filtered, disks[i])
		}
	}
	return filtered
}

// ChartDisks keeps the disks owned by a selected node
func ChartDisks(disks []filter.DiscoveredDisk, selectedNodes sets.String) []filter.DiscoveredDisk {
	chart := []filter.DiscoveredDisk{}
	for _, disk := range disks {
		if selectedNodes.Has(disk.Node) {
			chart = append(chart, disk)
		}
	}
	return chart
}

// TotalCapacity sums the disk sizes
func TotalCapacity(disks []filter.DiscoveredDisk) int64 {
	var total int64
	for _, disk := range disks {
		total += disk.Size
	}
	return total
}

// ChartNodes returns the distinct nodes owning the disks
func ChartNodes(disks []filter.DiscoveredDisk) sets.String {
	nodes := sets.NewString()
	for _, disk := range disks {
		nodes.Insert(disk.Node)
	}
	return nodes
}

// Compute runs the three stages over the discovery results. Results that are
// still pending or failed produce an empty aggregation.
func Compute(results result.Result[[]v1alpha1.LocalVolumeDiscoveryResult], criteria filter.Criteria, sizeValid bool, selectedNodes sets.String) Aggregation {
	all := Aggregate(results.OrEmpty())
	filtered := FilterDisks(all, criteria, sizeValid)
	chart := ChartDisks(filtered, selectedNodes)

	return Aggregation{
		All:              all,
		Filtered:         filtered,
		Chart:            chart,
		TotalCapacity:    TotalCapacity(all),
		SelectedCapacity: TotalCapacity(chart),
		ChartNodes:       ChartNodes(chart),
	}
}

// ComputeForState runs Compute with the criteria and node selection of the
// wizard. Sizes that cannot be converted count as an invalid size range.
func ComputeForState(state wizard.State, results result.Result[[]v1alpha1.LocalVolumeDiscoveryResult]) Aggregation {
	lvs := state.CreateLocalVolumeSet
	criteria, err := lvs.Criteria()
	sizeValid := lvs.IsValidDiskSize && err == nil
	return Compute(results, criteria, sizeValid, sets.NewString(wizard.NodeNames(state.Nodes)...))
}

// EligibleNodes keeps the nodes owning at least one disk that matches the
// criteria. Zone distributions are built from these nodes only.
func EligibleNodes(nodes []wizard.NodeState, results result.Result[[]v1alpha1.LocalVolumeDiscoveryResult], criteria filter.Criteria, sizeValid bool) []wizard.NodeState {
	agg := Compute(results, criteria, sizeValid, sets.NewString(wizard.NodeNames(nodes)...))
	return wizard.OwningNodes(nodes, agg.ChartNodes)
}
