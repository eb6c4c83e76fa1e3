package wizard

import (
	"github.com/hwameistor/storage-console/pkg/capacity/units"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// Criteria converts the local volume set filters to classifier criteria.
// A size that cannot be converted is reported as an error and the caller
// treats the size range as invalid.
func (s CreateLocalVolumeSetState) Criteria() (filter.Criteria, error) {
	minSize, err := units.SizeWithUnit(s.MinDiskSize, s.DiskSizeUnit)
	if err != nil {
		return filter.Criteria{}, err
	}
	maxSize, err := units.SizeWithUnit(s.MaxDiskSize, s.DiskSizeUnit)
	if err != nil {
		return filter.Criteria{}, err
	}
	return filter.Criteria{
		MinSize:     minSize,
		MaxSize:     maxSize,
		Property:    filter.DiskTypeProperty(s.DiskType),
		DeviceTypes: s.DeviceType,
	}, nil
}
