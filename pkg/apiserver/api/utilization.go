package api

import (
	"github.com/hwameistor/storage-console/pkg/utilization"
)

// UtilizationRsp holds the series of the requested queries
type UtilizationRsp struct {
	utilization.Stats `json:",inline"`

	Queries []utilization.Query `json:"queries"`
}
