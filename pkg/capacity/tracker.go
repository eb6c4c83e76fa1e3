package capacity

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/result"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

//go:generate mockgen -source=tracker.go -destination=tracker_mock.go -package=capacity

// Dispatcher applies wizard actions, e.g. a *wizard.Store
type Dispatcher interface {
	Dispatch(ctx context.Context, action wizard.Action) error
}

// ChartNodesTracker publishes the chart nodes to the wizard whenever the set
// changes. Equal sets are never published twice.
type ChartNodesTracker struct {
	lock       sync.Mutex
	recorded   sets.String
	dispatcher Dispatcher
}

// NewChartNodesTracker starts from the chart nodes the wizard already records
func NewChartNodesTracker(recorded sets.String, dispatcher Dispatcher) *ChartNodesTracker {
	return &ChartNodesTracker{
		recorded:   sets.NewString(recorded.UnsortedList()...),
		dispatcher: dispatcher,
	}
}

// Observe dispatches the chart nodes update when nodes differ from the
// recorded set, and reports whether an update was dispatched.
func (t *ChartNodesTracker) Observe(ctx context.Context, nodes sets.String) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.recorded.Equal(nodes) {
		return false, nil
	}
	err := t.dispatcher.Dispatch(ctx, wizard.SetChartNodes(nodes))
	if errors.Is(err, wizard.ErrUnchanged) {
		t.recorded = sets.NewString(nodes.UnsortedList()...)
		return false, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to update chart nodes")
		return false, err
	}
	log.WithField("nodes", nodes.List()).Debug("Chart nodes changed")
	t.recorded = sets.NewString(nodes.UnsortedList()...)
	return true, nil
}

// Recorded returns a copy of the last published set
func (t *ChartNodesTracker) Recorded() sets.String {
	t.lock.Lock()
	defer t.lock.Unlock()
	return sets.NewString(t.recorded.UnsortedList()...)
}

// SyncChartNodes computes the aggregation for the wizard held by store and
// publishes its chart nodes when they changed. The store compares the sets
// again when applying, so concurrent syncs of one value dispatch it once.
func SyncChartNodes(ctx context.Context, store *wizard.Store, results result.Result[[]v1alpha1.LocalVolumeDiscoveryResult]) (Aggregation, error) {
	state := store.Snapshot()
	agg := ComputeForState(state, results)
	tracker := NewChartNodesTracker(state.CreateLocalVolumeSet.ChartNodes, store)
	_, err := tracker.Observe(ctx, agg.ChartNodes)
	return agg, err
}
