package console

import (
	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/status"
)

type StatusController struct {
	cluster.Source

	operatorPrefix string
}

func NewStatusController(source cluster.Source, operatorPrefix string) *StatusController {
	return &StatusController{Source: source, operatorPrefix: operatorPrefix}
}

// StatusCard returns the operator and storage system health
func (sController *StatusController) StatusCard() *hwameistorapi.StatusCard {
	systems := sController.StorageSystems()
	return &hwameistorapi.StatusCard{
		Card:         status.BuildCard(systems, sController.OperatorCSVs(), sController.operatorPrefix),
		SystemsState: hwameistorapi.ResourceStateOf(systems),
	}
}
