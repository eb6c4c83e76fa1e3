package console

import (
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/utils/pointer"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	utils "github.com/hwameistor/storage-console/pkg/apiserver/util"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/capacity/units"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

type CapacityController struct {
	cluster.Source
}

func NewCapacityController(source cluster.Source) *CapacityController {
	return &CapacityController{Source: source}
}

// DiscoveredDiskList returns one page of the available discovered disks
func (cController *CapacityController) DiscoveredDiskList(page, pageSize int32) *hwameistorapi.DiscoveredDiskList {
	results := cController.DiscoveryResults()
	disks := capacity.Aggregate(results.OrEmpty())

	list := &hwameistorapi.DiscoveredDiskList{ResourceState: hwameistorapi.ResourceStateOf(results)}
	list.Disks = utils.DataPatination(disks, page, pageSize)
	list.Page = utils.Paginate(len(disks), page, pageSize)
	return list
}

// Criteria converts the request to classifier criteria. A size that cannot
// be converted marks the size range invalid.
func Criteria(req *hwameistorapi.CapacityReqBody) (filter.Criteria, bool) {
	sizeValid := pointer.BoolDeref(req.IsValidSize, true)
	unit := req.SizeUnit
	if unit == "" {
		unit = "GiB"
	}
	deviceTypes := req.DeviceTypes
	if len(deviceTypes) == 0 {
		deviceTypes = filter.AllDeviceTypes
	}

	minSize, err := units.SizeWithUnit(req.MinSize, unit)
	if err != nil {
		log.WithError(err).Debug("Invalid min size")
		sizeValid = false
	}
	maxSize, err := units.SizeWithUnit(req.MaxSize, unit)
	if err != nil {
		log.WithError(err).Debug("Invalid max size")
		sizeValid = false
	}
	return filter.Criteria{
		MinSize:     minSize,
		MaxSize:     maxSize,
		Property:    filter.DiskTypeProperty(req.DiskType),
		DeviceTypes: deviceTypes,
	}, sizeValid
}

// Capacity computes the capacity of the disks matching the request
func (cController *CapacityController) Capacity(req *hwameistorapi.CapacityReqBody) *hwameistorapi.CapacityRsp {
	results := cController.DiscoveryResults()
	criteria, sizeValid := Criteria(req)
	agg := capacity.Compute(results, criteria, sizeValid, sets.NewString(req.Nodes...))

	rsp := CapacityRspOf(agg)
	rsp.ResourceState = hwameistorapi.ResourceStateOf(results)
	return rsp
}

// CapacityRspOf renders the aggregation
func CapacityRspOf(agg capacity.Aggregation) *hwameistorapi.CapacityRsp {
	summary := agg.Summary()
	return &hwameistorapi.CapacityRsp{
		TotalCapacity:     agg.TotalCapacity,
		SelectedCapacity:  summary.Selected,
		AvailableCapacity: summary.Available,
		Total:             units.HumanizeBinaryBytes(agg.TotalCapacity),
		Selected:          units.HumanizeBinaryBytes(summary.Selected),
		Available:         units.HumanizeBinaryBytes(summary.Available),
		Donut:             capacity.Donut(summary),
		ChartNodes:        agg.ChartNodes.List(),
		ChartDisks:        len(agg.Chart),
		FilteredDisks:     len(agg.Filtered),
	}
}
