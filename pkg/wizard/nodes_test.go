package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

func fakeNode(name, zone, cpu, memory string) corev1.Node {
	return corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
			UID:  types.UID("uid-" + name),
			Labels: map[string]string{
				corev1.LabelTopologyZone:         zone,
				corev1.LabelHostname:             name + ".local",
				"node-role.kubernetes.io/worker": "",
				"node-role.kubernetes.io/infra":  "",
			},
		},
		Spec: corev1.NodeSpec{
			Taints: []corev1.Taint{{Key: "node.ocs.openshift.io/storage", Value: "true", Effect: corev1.TaintEffectNoSchedule}},
		},
		Status: corev1.NodeStatus{
			Capacity: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse(cpu),
				corev1.ResourceMemory: resource.MustParse(memory),
			},
		},
	}
}

func TestCreateNodeState(t *testing.T) {
	states := CreateNodeState([]corev1.Node{fakeNode("n1", "A", "16", "64Gi")})

	assert.Len(t, states, 1)
	state := states[0]
	assert.Equal(t, "n1", state.Name)
	assert.Equal(t, "n1.local", state.HostName)
	assert.Equal(t, "A", state.Zone)
	assert.Equal(t, "16", state.CPU)
	assert.Equal(t, "64Gi", state.Memory)
	assert.Equal(t, []string{"infra", "worker"}, state.Roles)
	assert.Len(t, state.Taints, 1)
}

func TestReplicas(t *testing.T) {
	assert.Equal(t, 3, Replicas(nil))
	assert.Equal(t, 4, Replicas([]NodeState{{Name: "n1", Zone: "A"}, {Name: "n2", Zone: "B"}}))
	assert.Equal(t, 3, Replicas([]NodeState{{Name: "n1", Zone: "A"}, {Name: "n2", Zone: "B"}, {Name: "n3", Zone: "C"}}))
}

func TestValidateCapacityAndNodes(t *testing.T) {
	allZones := []string{"A", "B", "C"}
	small := []NodeState{{Name: "n1", Zone: "A", CPU: "4", Memory: "8Gi"}}
	large := []NodeState{
		{Name: "n1", Zone: "A", CPU: "16", Memory: "64Gi"},
		{Name: "n2", Zone: "A", CPU: "16", Memory: "64Gi"},
		{Name: "n3", Zone: "B", CPU: "16", Memory: "64Gi"},
		{Name: "n4", Zone: "B", CPU: "16", Memory: "64Gi"},
	}

	assert.Equal(t, []ValidationType{ValidationMinimumNodes, ValidationResourceProfile},
		ValidateCapacityAndNodes(small, allZones, false, false, ResourceProfileBalanced))
	assert.Empty(t, ValidateCapacityAndNodes(large, allZones, false, false, ResourceProfilePerformance))
	assert.Empty(t, ValidateCapacityAndNodes(large, allZones, true, true, ResourceProfileLean))
	assert.Equal(t, []ValidationType{ValidationArbiterZones},
		ValidateCapacityAndNodes(large, []string{"A", "B"}, true, true, ResourceProfileLean))
}

func TestCriteria(t *testing.T) {
	s := InitialState().CreateLocalVolumeSet
	s.MinDiskSize = 1.5
	s.DiskSizeUnit = "TiB"
	s.DiskType = filter.DiskTypeHDD

	criteria, err := s.Criteria()
	assert.NoError(t, err)
	assert.Equal(t, int64(1649267441664), criteria.MinSize)
	assert.Equal(t, int64(0), criteria.MaxSize)
	assert.Equal(t, filter.DiskTypeProperty(filter.DiskTypeHDD), criteria.Property)

	s.MinDiskSize = -1
	_, err = s.Criteria()
	assert.Error(t, err)
}

func TestOwningNodes(t *testing.T) {
	states := CreateNodeState([]corev1.Node{fakeNode("n1", "A", "4", "8Gi"), fakeNode("n2", "B", "4", "8Gi"), fakeNode("n3", "C", "4", "8Gi")})

	owning := OwningNodes(states, sets.NewString("n3", "n1", "missing"))
	assert.Equal(t, []string{"n1", "n3"}, NodeNames(owning))
	assert.Empty(t, OwningNodes(states, sets.NewString()))
	assert.Empty(t, OwningNodes(nil, sets.NewString("n1")))
}
