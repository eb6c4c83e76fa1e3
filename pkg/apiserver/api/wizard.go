package api

import (
	"github.com/hwameistor/storage-console/pkg/wizard"
)

// WizardSessionReqBody creates a wizard session
type WizardSessionReqBody struct {
	StorageClass wizard.StorageClassState `json:"storageClass"`
	// Nodes preselects nodes by name, all nodes when empty
	Nodes []string `json:"nodes,omitempty"`
}

// WizardSession is a wizard session and its state
type WizardSession struct {
	ID          string                  `json:"id"`
	State       wizard.State            `json:"state"`
	ChartNodes  []string                `json:"chartNodes"`
	Version     uint64                  `json:"version"`
	Validations []wizard.ValidationType `json:"validations"`
}

// WizardCapacityRsp is the capacity of a wizard session
type WizardCapacityRsp struct {
	CapacityRsp `json:",inline"`

	SessionVersion uint64 `json:"sessionVersion"`
}
