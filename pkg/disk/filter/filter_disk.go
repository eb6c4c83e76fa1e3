package filter

import (
	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
)

type Bool int

const (
	FALSE Bool = 0
	TRUE  Bool = 1
)

// DiscoveredDiskFilter evaluates a chain of predicates against one disk.
// Any failing predicate makes the total result false.
type DiscoveredDiskFilter struct {
	disk   *DiscoveredDisk
	Result Bool
}

func NewDiscoveredDiskFilter(disk *DiscoveredDisk) DiscoveredDiskFilter {
	return DiscoveredDiskFilter{
		disk:   disk,
		Result: TRUE,
	}
}

func (f *DiscoveredDiskFilter) Init() *DiscoveredDiskFilter {
	f.Result = TRUE
	return f
}

// Available checks the availability state
func (f *DiscoveredDiskFilter) Available() *DiscoveredDiskFilter {
	if f.disk.Status.State == v1alpha1.Available {
		f.setResult(TRUE)
	} else {
		f.setResult(FALSE)
	}
	return f
}

// UsableType checks the disk is a raw disk, a partition or a multipath device
func (f *DiscoveredDiskFilter) UsableType() *DiscoveredDiskFilter {
	switch f.disk.Type {
	case v1alpha1.RawDisk, v1alpha1.Partition, v1alpha1.Multipath:
		f.setResult(TRUE)
	default:
		f.setResult(FALSE)
	}
	return f
}

// Size checks min <= size and, when max is not zero, size <= max
func (f *DiscoveredDiskFilter) Size(min, max int64) *DiscoveredDiskFilter {
	if f.disk.Size >= min && (max == 0 || f.disk.Size <= max) {
		f.setResult(TRUE)
	} else {
		f.setResult(FALSE)
	}
	return f
}

// Property checks the mechanical property, an empty property matches any disk
func (f *DiscoveredDiskFilter) Property(property v1alpha1.DeviceMechanicalProperty) *DiscoveredDiskFilter {
	if property == "" || property == f.disk.Property {
		f.setResult(TRUE)
	} else {
		f.setResult(FALSE)
	}
	return f
}

// DeviceType checks the disk's device type is in the allow-list
func (f *DiscoveredDiskFilter) DeviceType(allowed []DeviceTypeFilter) *DiscoveredDiskFilter {
	want, ok := DeviceTypeFilterOf(f.disk.Type)
	if !ok {
		f.setResult(FALSE)
		return f
	}
	for _, t := range allowed {
		if t == want {
			f.setResult(TRUE)
			return f
		}
	}
	f.setResult(FALSE)
	return f
}

func (f *DiscoveredDiskFilter) GetTotalResult() bool {
	return f.Result == TRUE
}

func (f *DiscoveredDiskFilter) setResult(result Bool) {
	f.Result &= result
}

// IsAvailable is the basic availability check applied during aggregation
func IsAvailable(disk *DiscoveredDisk) bool {
	f := NewDiscoveredDiskFilter(disk)
	return f.Available().UsableType().GetTotalResult()
}

// IsEligible reports whether the disk can be selected under the given criteria
func IsEligible(disk *DiscoveredDisk, criteria Criteria) bool {
	f := NewDiscoveredDiskFilter(disk)
	return f.Available().
		UsableType().
		Size(criteria.MinSize, criteria.MaxSize).
		Property(criteria.Property).
		DeviceType(criteria.DeviceTypes).
		GetTotalResult()
}
