package exporter

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/cluster"
)

// Options of the collector manager
type Options struct {
	Address        string
	OperatorPrefix string
	// Policies hands out the stretch policy, the default policy when nil
	Policies PolicySource
}

type CollectorManager struct {
	source   cluster.Source
	options  Options
	registry *prometheus.Registry
}

func NewCollectorManager(source cluster.Source, options Options) *CollectorManager {
	newRegister := prometheus.NewRegistry()
	newRegister.MustRegister(newCollectorForDiscoveredDisk(source))
	newRegister.MustRegister(newCollectorForTopology(source, options.Policies))
	newRegister.MustRegister(newCollectorForStorageSystem(source, options.OperatorPrefix))

	return &CollectorManager{source: source, options: options, registry: newRegister}
}

// Handler serves the registered collectors
func (mc *CollectorManager) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}

// Run serves /metrics until ctx is done
func (mc *CollectorManager) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", mc.Handler())
	srv := &http.Server{Addr: mc.options.Address, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Failed to shutdown exporter")
		}
	}()

	log.WithField("address", mc.options.Address).Info("Start serving metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
