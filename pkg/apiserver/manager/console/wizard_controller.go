package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/capacity/units"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/topology"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

// NoProvisioner is the provisioner of statically provisioned local PVs
const NoProvisioner = "kubernetes.io/no-provisioner"

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrInvalidAction   = errors.New("invalid wizard action")
)

type WizardController struct {
	cluster.Source

	lock     sync.RWMutex
	sessions map[string]*wizard.Store
	logger   *log.Entry
}

func NewWizardController(source cluster.Source) *WizardController {
	return &WizardController{
		Source:   source,
		sessions: map[string]*wizard.Store{},
		logger:   log.WithField("Module", "WizardController"),
	}
}

// CreateSession starts a wizard with the requested nodes, or every node
func (wController *WizardController) CreateSession(req *hwameistorapi.WizardSessionReqBody) *hwameistorapi.WizardSession {
	nodes := wController.Nodes().OrEmpty()
	if len(req.Nodes) > 0 {
		nodes = SelectNodes(nodes, req.Nodes)
	}

	state := wizard.InitialState()
	state.StorageClass = req.StorageClass
	state.Nodes = wizard.CreateNodeState(nodes)
	if req.StorageClass.Provisioner == NoProvisioner {
		state = wController.seedFromPVs(state, nodes)
	}

	id := uuid.New().String()
	store := wizard.NewStore(state)

	wController.lock.Lock()
	wController.sessions[id] = store
	wController.lock.Unlock()

	wController.logger.WithFields(log.Fields{"session": id, "nodes": len(state.Nodes)}).Info("Created wizard session")
	return wController.sessionOf(id, store)
}

// GetSession returns the session state
func (wController *WizardController) GetSession(id string) (*hwameistorapi.WizardSession, error) {
	store, err := wController.store(id)
	if err != nil {
		return nil, err
	}
	return wController.sessionOf(id, store), nil
}

// Dispatch applies an action to the session
func (wController *WizardController) Dispatch(ctx context.Context, id string, raw wizard.RawAction) (*hwameistorapi.WizardSession, error) {
	store, err := wController.store(id)
	if err != nil {
		return nil, err
	}
	action, err := raw.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	if err := store.Dispatch(ctx, action); err != nil && !errors.Is(err, wizard.ErrUnchanged) {
		if errors.Is(err, wizard.ErrStoreClosed) {
			return nil, ErrSessionNotFound
		}
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return wController.sessionOf(id, store), nil
}

// Capacity computes the capacity of the session and records its chart nodes
// in the session when they changed
func (wController *WizardController) Capacity(ctx context.Context, id string) (*hwameistorapi.WizardCapacityRsp, error) {
	store, err := wController.store(id)
	if err != nil {
		return nil, err
	}
	results := wController.DiscoveryResults()
	agg, err := capacity.SyncChartNodes(ctx, store, results)
	if err != nil {
		return nil, err
	}

	rsp := &hwameistorapi.WizardCapacityRsp{CapacityRsp: *CapacityRspOf(agg), SessionVersion: store.Version()}
	rsp.ResourceState = hwameistorapi.ResourceStateOf(results)
	return rsp, nil
}

// DeleteSession stops the session
func (wController *WizardController) DeleteSession(id string) error {
	wController.lock.Lock()
	store, exists := wController.sessions[id]
	delete(wController.sessions, id)
	wController.lock.Unlock()

	if !exists {
		return ErrSessionNotFound
	}
	store.Close()
	wController.logger.WithField("session", id).Info("Deleted wizard session")
	return nil
}

// Close stops every session
func (wController *WizardController) Close() {
	wController.lock.Lock()
	sessions := wController.sessions
	wController.sessions = map[string]*wizard.Store{}
	wController.lock.Unlock()

	for _, store := range sessions {
		store.Close()
	}
}

func (wController *WizardController) store(id string) (*wizard.Store, error) {
	wController.lock.RLock()
	defer wController.lock.RUnlock()
	store, exists := wController.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return store, nil
}

// seedFromPVs applies the capacity, PV count and nodes of the available PVs of
// a statically provisioned storage class
func (wController *WizardController) seedFromPVs(state wizard.State, nodes []corev1.Node) wizard.State {
	pvs, ok := wController.PersistentVolumes().Data()
	if !ok {
		wController.logger.WithField("storageClass", state.StorageClass.Name).Debug("PVs not loaded, skip seeding")
		return state
	}
	available := capacity.SCAvailablePVs(pvs, state.StorageClass.Name)

	actions := []wizard.Action{
		{Type: wizard.ActionCapacity, Payload: units.HumanizeBinaryBytes(capacity.PVsCapacity(available))},
		{Type: wizard.ActionPVCount, Payload: len(available)},
	}
	if len(nodes) > 0 && len(available) > 0 {
		owners := SelectNodes(nodes, capacity.AssociatedNodes(available))
		actions = append(actions, wizard.Action{Type: wizard.ActionSetNodes, Payload: wizard.CreateNodeState(owners)})
	}
	for _, action := range actions {
		next, err := wizard.Reduce(state, action)
		if err != nil {
			wController.logger.WithError(err).WithField("action", action.Type).Error("Failed to seed wizard from PVs")
			continue
		}
		state = next
	}
	return state
}

// eligibleNodes keeps the session nodes backing the storage: the nodes of the
// available PVs for a static provisioner, the chart nodes otherwise
func (wController *WizardController) eligibleNodes(state wizard.State) []wizard.NodeState {
	if state.StorageClass.Provisioner == NoProvisioner {
		available := capacity.SCAvailablePVs(wController.PersistentVolumes().OrEmpty(), state.StorageClass.Name)
		return wizard.OwningNodes(state.Nodes, sets.NewString(capacity.AssociatedNodes(available)...))
	}
	return wizard.OwningNodes(state.Nodes, capacity.ComputeForState(state, wController.DiscoveryResults()).ChartNodes)
}

func (wController *WizardController) sessionOf(id string, store *wizard.Store) *hwameistorapi.WizardSession {
	state := store.Snapshot()
	allZones := topology.ZonesOf(wController.Nodes().OrEmpty())
	validations := wizard.ValidateCapacityAndNodes(
		wController.eligibleNodes(state),
		allZones,
		state.CapacityAndNodes.EnableArbiter,
		state.StorageClass.Provisioner == NoProvisioner,
		state.CapacityAndNodes.ResourceProfile,
	)
	if validations == nil {
		validations = []wizard.ValidationType{}
	}

	return &hwameistorapi.WizardSession{
		ID:          id,
		State:       state,
		ChartNodes:  state.CreateLocalVolumeSet.ChartNodes.List(),
		Version:     store.Version(),
		Validations: validations,
	}
}
