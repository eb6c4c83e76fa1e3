package exporter

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/result"
)

func discoveryResult(node string, devices ...v1alpha1.DiscoveredDevice) v1alpha1.LocalVolumeDiscoveryResult {
	r := v1alpha1.LocalVolumeDiscoveryResult{}
	r.Spec.NodeName = node
	r.Status.DiscoveredDevices = devices
	return r
}

func device(id string, t v1alpha1.DeviceType, size int64, state v1alpha1.DeviceState) v1alpha1.DiscoveredDevice {
	return v1alpha1.DiscoveredDevice{DeviceID: id, Type: t, Size: size, Status: v1alpha1.DeviceStatus{State: state}}
}

func zonedNode(name, zone string) corev1.Node {
	return corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: name, Labels: map[string]string{corev1.LabelTopologyZone: zone}}}
}

func TestDiscoveredDiskCollector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().DiscoveryResults().Return(result.Ready([]v1alpha1.LocalVolumeDiscoveryResult{
		discoveryResult("n1", device("sdb", v1alpha1.RawDisk, 100, v1alpha1.Available), device("sdc", v1alpha1.RawDisk, 50, v1alpha1.Available)),
		discoveryResult("n2", device("sdd", v1alpha1.Partition, 30, v1alpha1.Available), device("sr0", v1alpha1.ROM, 10, v1alpha1.Available)),
		discoveryResult("n3", device("sde", v1alpha1.RawDisk, 70, v1alpha1.NotAvailable)),
	})).AnyTimes()

	expected := `
# HELP storage_console_discovered_disk_capacity_bytes The capacity of the available discovered disk.
# TYPE storage_console_discovered_disk_capacity_bytes gauge
storage_console_discovered_disk_capacity_bytes{deviceID="sdb",node="n1",type="disk"} 100
storage_console_discovered_disk_capacity_bytes{deviceID="sdc",node="n1",type="disk"} 50
storage_console_discovered_disk_capacity_bytes{deviceID="sdd",node="n2",type="part"} 30
# HELP storage_console_node_disk_capacity_bytes The capacity of the available discovered disks of the node.
# TYPE storage_console_node_disk_capacity_bytes gauge
storage_console_node_disk_capacity_bytes{node="n1"} 150
storage_console_node_disk_capacity_bytes{node="n2"} 30
`
	assert.NoError(t, testutil.CollectAndCompare(newCollectorForDiscoveredDisk(source), strings.NewReader(expected)))
}

func TestCollectorsSkipPendingResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().DiscoveryResults().Return(result.Pending[[]v1alpha1.LocalVolumeDiscoveryResult]()).AnyTimes()
	source.EXPECT().Nodes().Return(result.Failed[[]corev1.Node](errors.New("forbidden"))).AnyTimes()

	assert.Equal(t, 0, testutil.CollectAndCount(newCollectorForDiscoveredDisk(source)))
	assert.Equal(t, 0, testutil.CollectAndCount(newCollectorForTopology(source, nil)))
}

func TestTopologyCollector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{
		zonedNode("n1", "a"), zonedNode("n2", "b"), zonedNode("n3", "c"), zonedNode("n4", "c"),
	})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready([]v1alpha1.LocalVolumeDiscoveryResult{
		discoveryResult("n1", device("sdb", v1alpha1.RawDisk, 100, v1alpha1.Available)),
		discoveryResult("n2", device("sdc", v1alpha1.RawDisk, 100, v1alpha1.Available)),
		discoveryResult("n3", device("sdd", v1alpha1.RawDisk, 100, v1alpha1.Available)),
		discoveryResult("n4", device("sde", v1alpha1.RawDisk, 100, v1alpha1.Available)),
	})).AnyTimes()

	expected := `
# HELP storage_console_stretch_cluster Whether the nodes owning available disks form a stretch topology.
# TYPE storage_console_stretch_cluster gauge
storage_console_stretch_cluster 1
# HELP storage_console_zone_nodes The number of nodes owning available disks in the zone.
# TYPE storage_console_zone_nodes gauge
storage_console_zone_nodes{zone="a"} 1
storage_console_zone_nodes{zone="b"} 1
storage_console_zone_nodes{zone="c"} 2
`
	assert.NoError(t, testutil.CollectAndCompare(newCollectorForTopology(source, nil), strings.NewReader(expected)))
}

func TestTopologyCollectorCountsDiskOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{
		zonedNode("n1", "A"), zonedNode("n2", "B"), zonedNode("n3", "C"),
	})).AnyTimes()
	source.EXPECT().DiscoveryResults().Return(result.Ready([]v1alpha1.LocalVolumeDiscoveryResult{
		discoveryResult("n1", device("sdb", v1alpha1.RawDisk, 100, v1alpha1.Available)),
		discoveryResult("n2", device("sdc1", v1alpha1.Partition, 200, v1alpha1.Available)),
		discoveryResult("n3", device("sdd", v1alpha1.RawDisk, 100, v1alpha1.NotAvailable)),
	})).AnyTimes()

	expected := `
# HELP storage_console_stretch_cluster Whether the nodes owning available disks form a stretch topology.
# TYPE storage_console_stretch_cluster gauge
storage_console_stretch_cluster 0
# HELP storage_console_zone_nodes The number of nodes owning available disks in the zone.
# TYPE storage_console_zone_nodes gauge
storage_console_zone_nodes{zone="A"} 1
storage_console_zone_nodes{zone="B"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(newCollectorForTopology(source, nil), strings.NewReader(expected)))
}

func TestStorageSystemCollector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := v1alpha1.StorageSystem{ObjectMeta: metav1.ObjectMeta{Name: "ocs"}}
	healthy.Spec.Kind = "storagecluster.ocs.openshift.io/v1"
	healthy.Spec.Name = "ocs-storagecluster"
	healthy.Status.Phase = v1alpha1.StorageSystemPhaseSucceeded
	failed := v1alpha1.StorageSystem{ObjectMeta: metav1.ObjectMeta{Name: "ibm"}}
	failed.Spec.Kind = "flashsystemcluster.odf.ibm.com/v1alpha1"
	failed.Spec.Name = "ibm-flash"
	failed.Status.Phase = v1alpha1.StorageSystemPhaseFailed

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().StorageSystems().Return(result.Ready([]v1alpha1.StorageSystem{healthy, failed})).AnyTimes()
	source.EXPECT().OperatorCSVs().Return(result.Pending[*unstructured.UnstructuredList]()).AnyTimes()

	expected := `
# HELP storage_console_operator_health The health state of the storage operator.
# TYPE storage_console_operator_health gauge
storage_console_operator_health{state="LOADING"} 1
# HELP storage_console_storage_system_healthy Whether the storage system is healthy.
# TYPE storage_console_storage_system_healthy gauge
storage_console_storage_system_healthy{link="/odf/system/ocs.openshift.io~v1~storagecluster/ocs-storagecluster/overview",name="ocs"} 1
storage_console_storage_system_healthy{link="/odf/system/odf.ibm.com~v1alpha1~flashsystemcluster/ibm-flash/overview",name="ibm"} 0
`
	assert.NoError(t, testutil.CollectAndCompare(newCollectorForStorageSystem(source, "odf-operator"), strings.NewReader(expected)))
}

func TestCollectorManagerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := cluster.NewMockSource(ctrl)
	source.EXPECT().DiscoveryResults().Return(result.Ready([]v1alpha1.LocalVolumeDiscoveryResult{
		discoveryResult("n1", device("sdb", v1alpha1.RawDisk, 100, v1alpha1.Available)),
	})).AnyTimes()
	source.EXPECT().Nodes().Return(result.Ready([]corev1.Node{zonedNode("n1", "a")})).AnyTimes()
	source.EXPECT().StorageSystems().Return(result.Ready([]v1alpha1.StorageSystem{})).AnyTimes()
	source.EXPECT().OperatorCSVs().Return(result.Ready(&unstructured.UnstructuredList{Object: map[string]interface{}{"kind": "ClusterServiceVersionList", "apiVersion": "operators.coreos.com/v1alpha1"}})).AnyTimes()

	srv := httptest.NewServer(NewCollectorManager(source, Options{OperatorPrefix: "odf-operator"}).Handler())
	defer srv.Close()

	rsp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer rsp.Body.Close()
	body, err := io.ReadAll(rsp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rsp.StatusCode)
	assert.Contains(t, string(body), `storage_console_node_disk_capacity_bytes{node="n1"} 100`)
	assert.Contains(t, string(body), `storage_console_zone_nodes{zone="a"} 1`)
	assert.Contains(t, string(body), `storage_console_stretch_cluster 0`)
	assert.Contains(t, string(body), `storage_console_operator_health{state="UNKNOWN"} 1`)
}
