package filter

import (
	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
)

// DiscoveredDisk is a discovered device tagged with the node that reported it
type DiscoveredDisk struct {
	v1alpha1.DiscoveredDevice `json:",inline"`

	// Node is the owning node, assigned during aggregation
	Node string `json:"node"`
}

// DeviceTypeFilter is a device type the user can select in the wizard
type DeviceTypeFilter string

const (
	DeviceTypeDisk  DeviceTypeFilter = "Disk"
	DeviceTypePart  DeviceTypeFilter = "Part"
	DeviceTypeMpath DeviceTypeFilter = "Mpath"
)

// AllDeviceTypes are the device types selected by default
var AllDeviceTypes = []DeviceTypeFilter{DeviceTypeDisk, DeviceTypePart, DeviceTypeMpath}

// DeviceTypeFilterOf maps a discovered device type to the filter entry that selects it.
// ok is false for device types that can never be selected.
func DeviceTypeFilterOf(t v1alpha1.DeviceType) (f DeviceTypeFilter, ok bool) {
	switch t {
	case v1alpha1.RawDisk:
		return DeviceTypeDisk, true
	case v1alpha1.Partition:
		return DeviceTypePart, true
	case v1alpha1.Multipath:
		return DeviceTypeMpath, true
	case v1alpha1.LVM, v1alpha1.ROM, v1alpha1.Loop:
		return "", false
	}
	return "", false
}

// DiskTypeSelection is the disk kind chosen in the wizard
type DiskTypeSelection string

const (
	DiskTypeAll DiskTypeSelection = "All"
	DiskTypeSSD DiskTypeSelection = "SSD / NVMe"
	DiskTypeHDD DiskTypeSelection = "HDD"
)

// DiskTypeProperty returns the mechanical property required by a disk type selection,
// empty when any property matches
func DiskTypeProperty(selection DiskTypeSelection) v1alpha1.DeviceMechanicalProperty {
	switch selection {
	case DiskTypeSSD:
		return v1alpha1.NonRotational
	case DiskTypeHDD:
		return v1alpha1.Rotational
	}
	return ""
}

// Criteria are the user adjustable parameters of the second stage filter
type Criteria struct {
	// MinSize in bytes
	MinSize int64 `json:"minSize,omitempty"`

	// MaxSize in bytes, 0 means no upper bound
	MaxSize int64 `json:"maxSize,omitempty"`

	// Property is the required mechanical property, empty matches any
	Property v1alpha1.DeviceMechanicalProperty `json:"property,omitempty"`

	// DeviceTypes is the allow-list of device types
	DeviceTypes []DeviceTypeFilter `json:"deviceTypes,omitempty"`
}
