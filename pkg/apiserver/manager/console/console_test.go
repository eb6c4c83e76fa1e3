package console

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
	"github.com/hwameistor/storage-console/pkg/result"
	"github.com/hwameistor/storage-console/pkg/topology"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

func zonedNode(name, zone string) corev1.Node {
	return corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: name, Labels: map[string]string{corev1.LabelTopologyZone: zone}}}
}

const tib = int64(1) << 40

func discovery(node string, id string, t v1alpha1.DeviceType, size int64, state v1alpha1.DeviceState) v1alpha1.LocalVolumeDiscoveryResult {
	r := v1alpha1.LocalVolumeDiscoveryResult{}
	r.Spec.NodeName = node
	r.Status.DiscoveredDevices = []v1alpha1.DiscoveredDevice{{DeviceID: id, Type: t, Size: size, Status: v1alpha1.DeviceStatus{State: state}}}
	return r
}

// n1 in A and n2 in B own available disks, the disk of n3 in C is in use
func scenarioResults() []v1alpha1.LocalVolumeDiscoveryResult {
	return []v1alpha1.LocalVolumeDiscoveryResult{
		discovery("n1", "sdb", v1alpha1.RawDisk, tib, v1alpha1.Available),
		discovery("n2", "sdc1", v1alpha1.Partition, 2*tib, v1alpha1.Available),
		discovery("n3", "sdd", v1alpha1.RawDisk, tib, v1alpha1.NotAvailable),
	}
}

func localPV(name, storageClass, size, node string, phase corev1.PersistentVolumePhase) corev1.PersistentVolume {
	return corev1.PersistentVolume{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: corev1.PersistentVolumeSpec{
			StorageClassName: storageClass,
			Capacity:         corev1.ResourceList{corev1.ResourceStorage: resource.MustParse(size)},
			NodeAffinity: &corev1.VolumeNodeAffinity{Required: &corev1.NodeSelector{NodeSelectorTerms: []corev1.NodeSelectorTerm{{
				MatchExpressions: []corev1.NodeSelectorRequirement{{Key: corev1.LabelHostname, Operator: corev1.NodeSelectorOpIn, Values: []string{node}}},
			}}}},
		},
		Status: corev1.PersistentVolumeStatus{Phase: phase},
	}
}

func TestCriteria(t *testing.T) {
	criteria, sizeValid := Criteria(&hwameistorapi.CapacityReqBody{MinSize: 1, MaxSize: 2, SizeUnit: "TiB", DiskType: filter.DiskTypeSSD})
	assert.True(t, sizeValid)
	assert.Equal(t, int64(1)<<40, criteria.MinSize)
	assert.Equal(t, int64(2)<<40, criteria.MaxSize)
	assert.Equal(t, filter.AllDeviceTypes, criteria.DeviceTypes)
	assert.NotEmpty(t, criteria.Property)

	criteria, sizeValid = Criteria(&hwameistorapi.CapacityReqBody{MinSize: 10})
	assert.True(t, sizeValid)
	assert.Equal(t, int64(10)<<30, criteria.MinSize)

	_, sizeValid = Criteria(&hwameistorapi.CapacityReqBody{MinSize: -1})
	assert.False(t, sizeValid)

	_, sizeValid = Criteria(&hwameistorapi.CapacityReqBody{IsValidSize: pointer.Bool(false)})
	assert.False(t, sizeValid)

	_, sizeValid = Criteria(&hwameistorapi.CapacityReqBody{IsValidSize: pointer.Bool(true), MinSize: 1})
	assert.True(t, sizeValid)
}

func TestAnalyzeTopology(t *testing.T) {
	allZones := []string{"a", "b", "c"}
	nodes := wizard.CreateNodeState([]corev1.Node{zonedNode("n1", "a"), zonedNode("n2", "a"), zonedNode("n3", "b"), zonedNode("n4", "b")})

	rsp := AnalyzeTopology(nodes, allZones, topology.DefaultStretchPolicy)
	assert.False(t, rsp.IsStretchCluster)
	assert.Equal(t, []string{"c"}, rsp.ArbiterZones)
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, rsp.NodesPerZone)
	assert.Equal(t, 4, rsp.Replicas)

	rsp = AnalyzeTopology(nodes, allZones, topology.ArbiterStretchPolicy)
	assert.True(t, rsp.IsStretchCluster)
}

func TestSelectNodes(t *testing.T) {
	nodes := []corev1.Node{zonedNode("n1", "a"), zonedNode("n2", "b"), zonedNode("n3", "c")}
	selected := SelectNodes(nodes, []string{"n3", "n1", "missing"})
	require.Len(t, selected, 2)
	assert.Equal(t, "n1", selected[0].Name)
	assert.Equal(t, "n3", selected[1].Name)
	assert.Empty(t, SelectNodes(nodes, nil))
}

type fixedPolicy struct{ policy topology.StretchPolicy }

func (f fixedPolicy) Policy() topology.StretchPolicy { return f.policy }

func TestTopologyUsesPolicySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "a"), zonedNode("n2", "b")})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready(scenarioResults())).AnyTimes()

	always := fixedPolicy{func(topology.Distribution, []string) bool { return true }}
	rsp := NewTopologyController(source, always).Topology(&hwameistorapi.TopologyReqBody{CapacityReqBody: hwameistorapi.CapacityReqBody{Nodes: []string{"n1", "n2"}}})
	assert.True(t, rsp.IsStretchCluster)

	rsp = NewTopologyController(source, nil).Topology(&hwameistorapi.TopologyReqBody{CapacityReqBody: hwameistorapi.CapacityReqBody{Nodes: []string{"n1", "n2"}}})
	assert.False(t, rsp.IsStretchCluster)
	assert.Equal(t, result.PhaseReady, rsp.Phase)
}

func TestTopologyCountsNodesOwningEligibleDisks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "A"), zonedNode("n2", "B"), zonedNode("n3", "C")})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready(scenarioResults())).AnyTimes()
	tController := NewTopologyController(source, nil)

	rsp := tController.Topology(&hwameistorapi.TopologyReqBody{CapacityReqBody: hwameistorapi.CapacityReqBody{Nodes: []string{"n1", "n2", "n3"}}})
	assert.Equal(t, map[string][]string{"A": {"n1"}, "B": {"n2"}}, rsp.Distribution)
	assert.False(t, rsp.IsStretchCluster)
	assert.Equal(t, []string{"C"}, rsp.ArbiterZones)
	assert.Equal(t, result.PhaseReady, rsp.Phase)

	rsp = tController.Topology(&hwameistorapi.TopologyReqBody{CapacityReqBody: hwameistorapi.CapacityReqBody{
		Nodes: []string{"n1", "n2", "n3"}, MinSize: 1.5, SizeUnit: "TiB",
	}})
	assert.Equal(t, map[string][]string{"B": {"n2"}}, rsp.Distribution)
}

func TestTopologyPendingDiscovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "A")})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Pending[[]v1alpha1.LocalVolumeDiscoveryResult]()).AnyTimes()

	rsp := NewTopologyController(source, nil).Topology(&hwameistorapi.TopologyReqBody{CapacityReqBody: hwameistorapi.CapacityReqBody{Nodes: []string{"n1"}}})
	assert.Equal(t, result.PhasePending, rsp.Phase)
	assert.Empty(t, rsp.Distribution)
}

func TestWizardSessionValidatesNodesOwningDisks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{
		zonedNode("n1", "A"), zonedNode("n2", "B"), zonedNode("n3", "C"), zonedNode("n4", "C"),
	})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready(scenarioResults())).AnyTimes()

	wController := NewWizardController(source)
	defer wController.Close()

	// four nodes are selected, only n1 and n2 own available disks
	session := wController.CreateSession(&hwameistorapi.WizardSessionReqBody{})
	assert.Len(t, session.State.Nodes, 4)
	assert.Contains(t, session.Validations, wizard.ValidationMinimumNodes)
	assert.Equal(t, []string{"n1", "n2"}, wizard.NodeNames(wController.eligibleNodes(session.State)))
}

func TestWizardSessionSeedsFromPVs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{
		zonedNode("n1", "A"), zonedNode("n2", "A"), zonedNode("n3", "B"), zonedNode("n4", "B"), zonedNode("n5", "C"),
	})).AnyTimes()
	source.EXPECT().PersistentVolumes().Return(result.Ready([]corev1.PersistentVolume{
		localPV("pv1", "localblock", "1Ti", "n1", corev1.VolumeAvailable),
		localPV("pv2", "localblock", "1Ti", "n2", corev1.VolumeAvailable),
		localPV("pv3", "localblock", "1Ti", "n3", corev1.VolumeAvailable),
		localPV("pv4", "localblock", "1Ti", "n4", corev1.VolumeAvailable),
		localPV("pv5", "localblock", "1Ti", "n5", corev1.VolumeBound),
		localPV("pv6", "other", "1Ti", "n5", corev1.VolumeAvailable),
	})).AnyTimes()

	wController := NewWizardController(source)
	defer wController.Close()

	session := wController.CreateSession(&hwameistorapi.WizardSessionReqBody{
		StorageClass: wizard.StorageClassState{Name: "localblock", Provisioner: NoProvisioner},
	})
	assert.Equal(t, []string{"n1", "n2", "n3", "n4"}, wizard.NodeNames(session.State.Nodes))
	assert.Equal(t, 4, session.State.CapacityAndNodes.PVCount)
	assert.Equal(t, "4.0 TiB", session.State.CapacityAndNodes.Capacity)
	assert.Equal(t, uint64(0), session.Version)
	assert.NotContains(t, session.Validations, wizard.ValidationMinimumNodes)

	updated, err := wController.Dispatch(context.Background(), session.ID, wizard.RawAction{Type: wizard.ActionEnableArbiter, Payload: json.RawMessage(`true`)})
	require.NoError(t, err)
	assert.NotContains(t, updated.Validations, wizard.ValidationArbiterZones)
}

func TestWizardSessionWithoutPVs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "A")})).AnyTimes()
	source.EXPECT().PersistentVolumes().Return(result.Pending[[]corev1.PersistentVolume]()).AnyTimes()

	wController := NewWizardController(source)
	defer wController.Close()

	session := wController.CreateSession(&hwameistorapi.WizardSessionReqBody{
		StorageClass: wizard.StorageClassState{Name: "localblock", Provisioner: NoProvisioner},
	})
	assert.Equal(t, []string{"n1"}, wizard.NodeNames(session.State.Nodes))
	assert.Equal(t, 0, session.State.CapacityAndNodes.PVCount)
	assert.Contains(t, session.Validations, wizard.ValidationMinimumNodes)
}

func TestWizardController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "a"), zonedNode("n2", "b")})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready(scenarioResults())).AnyTimes()

	wController := NewWizardController(source)
	defer wController.Close()

	session := wController.CreateSession(&hwameistorapi.WizardSessionReqBody{})
	assert.Len(t, session.State.Nodes, 2)
	assert.Contains(t, session.Validations, wizard.ValidationMinimumNodes)

	_, err := wController.GetSession("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = wController.Dispatch(context.Background(), session.ID, wizard.RawAction{Type: "unknown", Payload: json.RawMessage(`1`)})
	assert.ErrorIs(t, err, ErrInvalidAction)

	updated, err := wController.Dispatch(context.Background(), session.ID, wizard.RawAction{Type: wizard.ActionPVCount, Payload: json.RawMessage(`6`)})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.State.CapacityAndNodes.PVCount)
	assert.Equal(t, uint64(1), updated.Version)

	require.NoError(t, wController.DeleteSession(session.ID))
	assert.ErrorIs(t, wController.DeleteSession(session.ID), ErrSessionNotFound)
	_, err = wController.Dispatch(context.Background(), session.ID, wizard.RawAction{Type: wizard.ActionPVCount, Payload: json.RawMessage(`6`)})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
