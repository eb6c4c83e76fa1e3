package api

import (
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// CapacityReqBody selects the disks counted as selected capacity
type CapacityReqBody struct {
	// MinSize and MaxSize are numbers in SizeUnit, e.g. 1.5 and "TiB"
	MinSize     float64                   `json:"minSize,omitempty"`
	MaxSize     float64                   `json:"maxSize,omitempty"`
	SizeUnit    string                    `json:"sizeUnit,omitempty"`
	DiskType    filter.DiskTypeSelection  `json:"diskType,omitempty"`
	DeviceTypes []filter.DeviceTypeFilter `json:"deviceTypes,omitempty"`
	// IsValidSize false selects nothing
	IsValidSize *bool    `json:"isValidSize,omitempty"`
	Nodes       []string `json:"nodes"`
}

// CapacityRsp is the capacity of the selected disks
type CapacityRsp struct {
	ResourceState `json:",inline"`

	TotalCapacity     int64            `json:"totalCapacity"`
	SelectedCapacity  int64            `json:"selectedCapacity"`
	AvailableCapacity int64            `json:"availableCapacity"`
	Total             string           `json:"total"`
	Selected          string           `json:"selected"`
	Available         string           `json:"available"`
	Donut             []capacity.Slice `json:"donut"`
	ChartNodes        []string         `json:"chartNodes"`
	ChartDisks        int              `json:"chartDisks"`
	FilteredDisks     int              `json:"filteredDisks"`
}

// PVCapacityRsp is the capacity of the available PVs of a storage class
type PVCapacityRsp struct {
	ResourceState `json:",inline"`

	StorageClass    string   `json:"storageClass"`
	PVCount         int      `json:"pvCount"`
	Capacity        int64    `json:"capacity"`
	CapacityHuman   string   `json:"capacityHuman"`
	AssociatedNodes []string `json:"associatedNodes"`
}
