package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
	"github.com/hwameistor/storage-console/pkg/topology"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

// PolicySource hands out the current stretch policy
type PolicySource interface {
	Policy() topology.StretchPolicy
}

type TopologyMetricsCollector struct {
	source   cluster.Source
	policies PolicySource

	zoneNodesMetricsDesc *prometheus.Desc
	stretchMetricsDesc   *prometheus.Desc
}

func newCollectorForTopology(source cluster.Source, policies PolicySource) prometheus.Collector {
	return &TopologyMetricsCollector{
		source:   source,
		policies: policies,
		zoneNodesMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "zone", "nodes"),
			"The number of nodes owning available disks in the zone.",
			[]string{"zone"},
			nil,
		),
		stretchMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "stretch_cluster"),
			"Whether the nodes owning available disks form a stretch topology.",
			nil,
			nil,
		),
	}
}

func (mc *TopologyMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *TopologyMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for topology ...")
	nodes, ok := mc.source.Nodes().Data()
	if !ok {
		log.Debug("Nodes not loaded")
		return
	}

	results := mc.source.DiscoveryResults()
	if !results.IsReady() {
		log.Debug("Discovery results not loaded")
		return
	}

	eligible := capacity.EligibleNodes(wizard.CreateNodeState(nodes), results, filter.Criteria{DeviceTypes: filter.AllDeviceTypes}, true)
	dist := topology.DistributionOf(wizard.Placements(eligible))
	for zone, count := range topology.NodesPerZone(dist) {
		ch <- prometheus.MustNewConstMetric(mc.zoneNodesMetricsDesc, prometheus.GaugeValue, float64(count), zone)
	}
	var policy topology.StretchPolicy
	if mc.policies != nil {
		policy = mc.policies.Policy()
	}
	stretch := topology.IsValidStretchTopology(dist, topology.ZonesOf(nodes), policy)
	ch <- prometheus.MustNewConstMetric(mc.stretchMetricsDesc, prometheus.GaugeValue, boolValue(stretch))
}
