package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/status"
)

type StorageSystemMetricsCollector struct {
	source         cluster.Source
	operatorPrefix string

	systemMetricsDesc   *prometheus.Desc
	operatorMetricsDesc *prometheus.Desc
}

func newCollectorForStorageSystem(source cluster.Source, operatorPrefix string) prometheus.Collector {
	return &StorageSystemMetricsCollector{
		source:         source,
		operatorPrefix: operatorPrefix,
		systemMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "storage_system", "healthy"),
			"Whether the storage system is healthy.",
			[]string{"name", "link"},
			nil,
		),
		operatorMetricsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "operator", "health"),
			"The health state of the storage operator.",
			[]string{"state"},
			nil,
		),
	}
}

func (mc *StorageSystemMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *StorageSystemMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	log.Debug("Collecting metrics for storage systems ...")
	card := status.BuildCard(mc.source.StorageSystems(), mc.source.OperatorCSVs(), mc.operatorPrefix)

	ch <- prometheus.MustNewConstMetric(mc.operatorMetricsDesc, prometheus.GaugeValue, 1, string(card.Operator))
	for _, system := range card.HealthySystems {
		ch <- prometheus.MustNewConstMetric(mc.systemMetricsDesc, prometheus.GaugeValue, 1, system.SystemName, system.Link)
	}
	for _, system := range card.UnhealthySystems {
		ch <- prometheus.MustNewConstMetric(mc.systemMetricsDesc, prometheus.GaugeValue, 0, system.SystemName, system.Link)
	}
}
