package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/cluster"
)

type DiscoveredDiskMetricsCollector struct {
	source cluster.Source

	capacityMetricsDesc     *prometheus.Desc
	nodeCapacityMetricsDesc *prometheus.Desc
}

func newCollectorForDiscoveredDisk(source cluster.Source) prometheus.Collector {
	return &DiscoveredDiskMetricsCollector{
		source: source,
		capacityMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "discovered_disk", "capacity_bytes"),
			"The capacity of the available discovered disk.",
			[]string{"node", "deviceID", "type"},
			nil,
		),
		nodeCapacityMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "node", "disk_capacity_bytes"),
			"The capacity of the available discovered disks of the node.",
			[]string{"node"},
			nil,
		),
	}
}

func (mc *DiscoveredDiskMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *DiscoveredDiskMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for discovered disks ...")
	results, ok := mc.source.DiscoveryResults().Data()
	if !ok {
		log.Debug("Discovery results not loaded")
		return
	}

	disks := capacity.Aggregate(results)
	perNode := map[string]int64{}
	for _, disk := range disks {
		perNode[disk.Node] += disk.Size
		ch <- prometheus.MustNewConstMetric(mc.capacityMetricsDesc, prometheus.GaugeValue,
			float64(disk.Size), disk.Node, disk.DeviceID, string(disk.Type))
	}
	for node, size := range perNode {
		ch <- prometheus.MustNewConstMetric(mc.nodeCapacityMetricsDesc, prometheus.GaugeValue, float64(size), node)
	}
}
