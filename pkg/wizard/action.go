package wizard

import (
	"encoding/json"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// ActionType names a wizard state update
type ActionType string

const (
	ActionSetNodes                ActionType = "wizard/setNodes"
	ActionSetStorageClass         ActionType = "wizard/setStorageClass"
	ActionSetCreateLocalVolumeSet ActionType = "wizard/setCreateLocalVolumeSet"
	ActionSetResourceProfile      ActionType = "wizard/setResourceProfile"
	ActionCapacity                ActionType = "capacityAndNodes/capacity"
	ActionPVCount                 ActionType = "capacityAndNodes/pvCount"
	ActionEnableArbiter           ActionType = "capacityAndNodes/enableArbiter"
	ActionArbiterLocation         ActionType = "capacityAndNodes/arbiterLocation"
	ActionEnableTaint             ActionType = "capacityAndNodes/enableTaint"
)

// Fields of the local volume set step
const (
	FieldVolumeSetName   = "volumeSetName"
	FieldMinDiskSize     = "minDiskSize"
	FieldMaxDiskSize     = "maxDiskSize"
	FieldDiskSizeUnit    = "diskSizeUnit"
	FieldDiskType        = "diskType"
	FieldDeviceType      = "deviceType"
	FieldIsValidDiskSize = "isValidDiskSize"
	FieldChartNodes      = "chartNodes"
)

// Action is one update dispatched to the wizard state
type Action struct {
	Type    ActionType  `json:"type"`
	Payload interface{} `json:"payload"`
}

// FieldUpdate is the payload of ActionSetCreateLocalVolumeSet
type FieldUpdate struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// SetChartNodes is the update emitted when the nodes owning chart-relevant disks change
func SetChartNodes(nodes sets.String) Action {
	return Action{
		Type:    ActionSetCreateLocalVolumeSet,
		Payload: FieldUpdate{Field: FieldChartNodes, Value: sets.NewString(nodes.UnsortedList()...)},
	}
}

// RawAction is the wire form of an Action
type RawAction struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type rawFieldUpdate struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// Decode converts the wire form to a typed Action
func (r RawAction) Decode() (Action, error) {
	var err error
	action := Action{Type: r.Type}
	switch r.Type {
	case ActionSetNodes:
		var nodes []NodeState
		err = json.Unmarshal(r.Payload, &nodes)
		action.Payload = nodes
	case ActionSetStorageClass:
		var sc StorageClassState
		err = json.Unmarshal(r.Payload, &sc)
		action.Payload = sc
	case ActionSetResourceProfile:
		var profile ResourceProfile
		err = json.Unmarshal(r.Payload, &profile)
		action.Payload = profile
	case ActionCapacity, ActionArbiterLocation:
		var value string
		err = json.Unmarshal(r.Payload, &value)
		action.Payload = value
	case ActionPVCount:
		var value int
		err = json.Unmarshal(r.Payload, &value)
		action.Payload = value
	case ActionEnableArbiter, ActionEnableTaint:
		var value bool
		err = json.Unmarshal(r.Payload, &value)
		action.Payload = value
	case ActionSetCreateLocalVolumeSet:
		var update FieldUpdate
		update, err = decodeFieldUpdate(r.Payload)
		action.Payload = update
	default:
		return Action{}, fmt.Errorf("unknown action type %q", r.Type)
	}
	if err != nil {
		return Action{}, fmt.Errorf("invalid payload for %s: %v", r.Type, err)
	}
	return action, nil
}

func decodeFieldUpdate(payload json.RawMessage) (FieldUpdate, error) {
	var raw rawFieldUpdate
	if err := json.Unmarshal(payload, &raw); err != nil {
		return FieldUpdate{}, err
	}

	var value interface{}
	var err error
	switch raw.Field {
	case FieldVolumeSetName, FieldDiskSizeUnit:
		var v string
		err = json.Unmarshal(raw.Value, &v)
		value = v
	case FieldDiskType:
		var v filter.DiskTypeSelection
		err = json.Unmarshal(raw.Value, &v)
		value = v
	case FieldMinDiskSize, FieldMaxDiskSize:
		var v float64
		err = json.Unmarshal(raw.Value, &v)
		value = v
	case FieldIsValidDiskSize:
		var v bool
		err = json.Unmarshal(raw.Value, &v)
		value = v
	case FieldDeviceType:
		var v []filter.DeviceTypeFilter
		err = json.Unmarshal(raw.Value, &v)
		value = v
	case FieldChartNodes:
		var v []string
		err = json.Unmarshal(raw.Value, &v)
		value = sets.NewString(v...)
	default:
		return FieldUpdate{}, fmt.Errorf("unknown field %q", raw.Field)
	}
	if err != nil {
		return FieldUpdate{}, err
	}
	return FieldUpdate{Field: raw.Field, Value: value}, nil
}
