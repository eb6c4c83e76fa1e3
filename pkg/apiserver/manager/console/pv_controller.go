package console

import (
	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/capacity/units"
	"github.com/hwameistor/storage-console/pkg/cluster"
)

type PersistentVolumeController struct {
	cluster.Source
}

func NewPersistentVolumeController(source cluster.Source) *PersistentVolumeController {
	return &PersistentVolumeController{Source: source}
}

// PVCapacity returns the capacity of the available PVs of the storage class
func (pvController *PersistentVolumeController) PVCapacity(storageClass string) *hwameistorapi.PVCapacityRsp {
	pvs := pvController.PersistentVolumes()
	available := capacity.SCAvailablePVs(pvs.OrEmpty(), storageClass)
	total := capacity.PVsCapacity(available)

	return &hwameistorapi.PVCapacityRsp{
		ResourceState:   hwameistorapi.ResourceStateOf(pvs),
		StorageClass:    storageClass,
		PVCount:         len(available),
		Capacity:        total,
		CapacityHuman:   units.HumanizeBinaryBytes(total),
		AssociatedNodes: capacity.AssociatedNodes(available),
	}
}
