package api

import (
	"github.com/hwameistor/storage-console/pkg/status"
)

// StatusCard is the dashboard status
type StatusCard struct {
	status.Card `json:",inline"`

	SystemsState ResourceState `json:"systemsState"`
}
