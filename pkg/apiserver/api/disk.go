package api

import (
	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// DiscoveredDiskList is the list of available discovered disks
type DiscoveredDiskList struct {
	ResourceState `json:",inline"`

	Disks []filter.DiscoveredDisk `json:"items"`
	Page  *Pagination             `json:"pagination,omitempty"`
}
