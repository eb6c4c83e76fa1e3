package api

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/apiserver/controller"
	"github.com/hwameistor/storage-console/pkg/apiserver/manager"
	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/config"
)

const APIGroupPath = "/apis/console.hwameistor.io/v1alpha1"

func CollectRoute(r *gin.Engine, sm *manager.ServerManager) *gin.Engine {
	log.Info("CollectRoute start ...")

	v1 := r.Group(APIGroupPath)

	diskController := controller.NewDiskController(sm)
	v1.GET("/cluster/discoveredisks", diskController.DiscoveredDiskList)
	v1.POST("/cluster/capacity", diskController.Capacity)
	v1.GET("/cluster/pvs/capacity", diskController.PVCapacity)

	topologyController := controller.NewTopologyController(sm)
	v1.GET("/cluster/zones", topologyController.ZoneList)
	v1.POST("/cluster/topology", topologyController.Topology)

	metricsController := controller.NewMetricsController(sm)
	v1.GET("/cluster/status", metricsController.StatusCard)
	v1.GET("/cluster/utilization", metricsController.Utilization)

	wizardController := controller.NewWizardController(sm)
	v1.POST("/wizard/sessions", wizardController.SessionCreate)
	v1.GET("/wizard/sessions/:sessionID", wizardController.SessionGet)
	v1.POST("/wizard/sessions/:sessionID/actions", wizardController.SessionDispatch)
	v1.GET("/wizard/sessions/:sessionID/capacity", wizardController.SessionCapacity)
	v1.DELETE("/wizard/sessions/:sessionID", wizardController.SessionDelete)

	log.Info("CollectRoute end ...")

	return r
}

// BuildServerMgr starts the cluster watcher and the stretch rule reload, both
// stopping with ctx
func BuildServerMgr(ctx context.Context, c *config.Config) (*manager.ServerManager, error) {
	log.Info("buildServerMgr start ...")

	cli, err := cluster.NewClient()
	if err != nil {
		return nil, err
	}

	watcher := cluster.NewWatcher(cli, c.Namespace, c.PollInterval)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.WithError(err).Error("Cluster watcher stopped")
		}
	}()

	rules := config.NewStretchRuleSource(c)
	go func() {
		if err := rules.Watch(ctx); err != nil {
			log.WithError(err).Error("Failed to watch config file")
		}
	}()

	return manager.NewServerManager(watcher, manager.Options{
		PrometheusURL:  c.PrometheusURL,
		OperatorPrefix: c.OperatorPrefix,
		Policies:       rules,
	})
}
