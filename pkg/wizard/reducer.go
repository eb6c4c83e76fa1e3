package wizard

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

// ErrUnchanged is returned for a chart nodes update equal to the recorded set
var ErrUnchanged = errors.New("wizard state unchanged")

// Reduce applies the action to a copy of the state. The given state is not modified.
func Reduce(state State, action Action) (State, error) {
	if sameChartNodes(state, action) {
		return state, ErrUnchanged
	}
	next := state.DeepCopy()

	switch action.Type {
	case ActionSetNodes:
		nodes, ok := action.Payload.([]NodeState)
		if !ok {
			return state, payloadError(action)
		}
		next.Nodes = State{Nodes: nodes}.DeepCopy().Nodes
		if next.Nodes == nil {
			next.Nodes = []NodeState{}
		}
	case ActionSetStorageClass:
		sc, ok := action.Payload.(StorageClassState)
		if !ok {
			return state, payloadError(action)
		}
		next.StorageClass = sc
	case ActionSetResourceProfile:
		profile, ok := action.Payload.(ResourceProfile)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.ResourceProfile = profile
	case ActionCapacity:
		capacity, ok := action.Payload.(string)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.Capacity = capacity
	case ActionPVCount:
		count, ok := action.Payload.(int)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.PVCount = count
	case ActionEnableArbiter:
		enable, ok := action.Payload.(bool)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.EnableArbiter = enable
	case ActionArbiterLocation:
		location, ok := action.Payload.(string)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.ArbiterLocation = location
	case ActionEnableTaint:
		enable, ok := action.Payload.(bool)
		if !ok {
			return state, payloadError(action)
		}
		next.CapacityAndNodes.EnableTaint = enable
	case ActionSetCreateLocalVolumeSet:
		update, ok := action.Payload.(FieldUpdate)
		if !ok {
			return state, payloadError(action)
		}
		if err := setLocalVolumeSetField(&next.CreateLocalVolumeSet, update); err != nil {
			return state, err
		}
	default:
		return state, fmt.Errorf("unknown action type %q", action.Type)
	}

	return next, nil
}

func setLocalVolumeSetField(s *CreateLocalVolumeSetState, update FieldUpdate) error {
	ok := false
	switch update.Field {
	case FieldVolumeSetName:
		s.VolumeSetName, ok = update.Value.(string)
	case FieldDiskSizeUnit:
		s.DiskSizeUnit, ok = update.Value.(string)
	case FieldDiskType:
		s.DiskType, ok = update.Value.(filter.DiskTypeSelection)
	case FieldMinDiskSize:
		s.MinDiskSize, ok = update.Value.(float64)
	case FieldMaxDiskSize:
		s.MaxDiskSize, ok = update.Value.(float64)
	case FieldIsValidDiskSize:
		s.IsValidDiskSize, ok = update.Value.(bool)
	case FieldDeviceType:
		var types []filter.DeviceTypeFilter
		if types, ok = update.Value.([]filter.DeviceTypeFilter); ok {
			s.DeviceType = append([]filter.DeviceTypeFilter{}, types...)
		}
	case FieldChartNodes:
		var nodes sets.String
		if nodes, ok = update.Value.(sets.String); ok {
			s.ChartNodes = sets.NewString(nodes.UnsortedList()...)
		}
	default:
		return fmt.Errorf("unknown field %q", update.Field)
	}
	if !ok {
		return fmt.Errorf("invalid value %T for field %q", update.Value, update.Field)
	}
	return nil
}

func sameChartNodes(state State, action Action) bool {
	if action.Type != ActionSetCreateLocalVolumeSet {
		return false
	}
	update, ok := action.Payload.(FieldUpdate)
	if !ok || update.Field != FieldChartNodes {
		return false
	}
	nodes, ok := update.Value.(sets.String)
	return ok && nodes.Equal(state.CreateLocalVolumeSet.ChartNodes)
}

func payloadError(action Action) error {
	return fmt.Errorf("invalid payload %T for %s", action.Payload, action.Type)
}
