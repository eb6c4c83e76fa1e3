package wizard

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// ResourceProfile is the performance profile chosen for the storage system
type ResourceProfile string

const (
	ResourceProfileLean        ResourceProfile = "lean"
	ResourceProfileBalanced    ResourceProfile = "balanced"
	ResourceProfilePerformance ResourceProfile = "performance"
)

// NodeState is one node row of the wizard
type NodeState struct {
	Name     string            `json:"name"`
	HostName string            `json:"hostName,omitempty"`
	UID      string            `json:"uid,omitempty"`
	CPU      string            `json:"cpu,omitempty"`
	Memory   string            `json:"memory,omitempty"`
	Zone     string            `json:"zone,omitempty"`
	Rack     string            `json:"rack,omitempty"`
	Roles    []string          `json:"roles,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Taints   []corev1.Taint    `json:"taints,omitempty"`
}

// StorageClassState is the storage class the system is backed by
type StorageClassState struct {
	Name        string `json:"name,omitempty"`
	Provisioner string `json:"provisioner,omitempty"`
}

// CapacityAndNodesState is the state of the capacity and nodes step
type CapacityAndNodesState struct {
	// Capacity is the requested capacity, e.g. "2Ti", or the PV capacity in bytes
	Capacity        string          `json:"capacity,omitempty"`
	PVCount         int             `json:"pvCount,omitempty"`
	EnableArbiter   bool            `json:"enableArbiter,omitempty"`
	ArbiterLocation string          `json:"arbiterLocation,omitempty"`
	EnableTaint     bool            `json:"enableTaint,omitempty"`
	ResourceProfile ResourceProfile `json:"resourceProfile,omitempty"`
}

// CreateLocalVolumeSetState is the state of the local volume set step
type CreateLocalVolumeSetState struct {
	VolumeSetName   string                    `json:"volumeSetName,omitempty"`
	MinDiskSize     float64                   `json:"minDiskSize,omitempty"`
	MaxDiskSize     float64                   `json:"maxDiskSize,omitempty"`
	DiskSizeUnit    string                    `json:"diskSizeUnit,omitempty"`
	DiskType        filter.DiskTypeSelection  `json:"diskType,omitempty"`
	DeviceType      []filter.DeviceTypeFilter `json:"deviceType,omitempty"`
	IsValidDiskSize bool                      `json:"isValidDiskSize"`
	// ChartNodes are the nodes owning chart-relevant disks
	ChartNodes sets.String `json:"-"`
}

// State is the whole wizard state
type State struct {
	StorageClass         StorageClassState         `json:"storageClass"`
	Nodes                []NodeState               `json:"nodes"`
	CapacityAndNodes     CapacityAndNodesState     `json:"capacityAndNodes"`
	CreateLocalVolumeSet CreateLocalVolumeSetState `json:"createLocalVolumeSet"`
}

// InitialState is the state a new wizard starts with
func InitialState() State {
	return State{
		Nodes: []NodeState{},
		CapacityAndNodes: CapacityAndNodesState{
			ResourceProfile: ResourceProfileBalanced,
		},
		CreateLocalVolumeSet: CreateLocalVolumeSetState{
			DiskSizeUnit:    "GiB",
			DiskType:        filter.DiskTypeAll,
			DeviceType:      append([]filter.DeviceTypeFilter{}, filter.AllDeviceTypes...),
			IsValidDiskSize: true,
			ChartNodes:      sets.NewString(),
		},
	}
}

// DeepCopy returns a copy sharing no slices, maps or sets with s
func (s State) DeepCopy() State {
	out := s
	if s.Nodes != nil {
		out.Nodes = make([]NodeState, len(s.Nodes))
		for i := range s.Nodes {
			out.Nodes[i] = s.Nodes[i].deepCopy()
		}
	}
	if s.CreateLocalVolumeSet.DeviceType != nil {
		out.CreateLocalVolumeSet.DeviceType = append([]filter.DeviceTypeFilter{}, s.CreateLocalVolumeSet.DeviceType...)
	}
	if s.CreateLocalVolumeSet.ChartNodes != nil {
		out.CreateLocalVolumeSet.ChartNodes = sets.NewString(s.CreateLocalVolumeSet.ChartNodes.UnsortedList()...)
	}
	return out
}

func (n NodeState) deepCopy() NodeState {
	out := n
	if n.Roles != nil {
		out.Roles = append([]string{}, n.Roles...)
	}
	if n.Labels != nil {
		out.Labels = make(map[string]string, len(n.Labels))
		for k, v := range n.Labels {
			out.Labels[k] = v
		}
	}
	if n.Taints != nil {
		out.Taints = make([]corev1.Taint, len(n.Taints))
		for i := range n.Taints {
			n.Taints[i].DeepCopyInto(&out.Taints[i])
		}
	}
	return out
}

// NodeNames returns the names of the nodes in order
func NodeNames(nodes []NodeState) []string {
	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		names = append(names, node.Name)
	}
	return names
}
