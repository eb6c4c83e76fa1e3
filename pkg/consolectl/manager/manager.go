package manager

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser/definitions"
)

// BuildSource is replaced in tests
var BuildSource = buildSource

func buildSource(ctx context.Context) (cluster.Source, error) {
	kClient, _, err := BuildKubeClient(definitions.KubeConfigPath)
	if err != nil {
		return nil, err
	}
	return SyncSource(ctx, kClient, definitions.Namespace, definitions.Timeout), nil
}

// SyncSource lists every resource once. Resources that fail to list stay
// Failed in the source, the other commands still work.
func SyncSource(ctx context.Context, kClient client.Client, namespace string, timeout time.Duration) cluster.Source {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	watcher := cluster.NewWatcher(kClient, namespace, timeout)
	if err := watcher.Sync(ctx); err != nil {
		log.WithError(err).Debug("Failed to list some resources")
	}
	return watcher
}
