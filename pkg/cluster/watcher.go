package cluster

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/result"
)

type syncer interface {
	sync(ctx context.Context) error
	name() string
}

// polled keeps the latest result of one resource list
type polled[T any] struct {
	resource string
	fetch    func(ctx context.Context) (T, error)

	lock    sync.RWMutex
	current result.Result[T]
}

func newPolled[T any](resource string, fetch func(ctx context.Context) (T, error)) *polled[T] {
	return &polled[T]{resource: resource, fetch: fetch, current: result.Pending[T]()}
}

func (p *polled[T]) name() string { return p.resource }

func (p *polled[T]) sync(ctx context.Context) error {
	data, err := p.fetch(ctx)

	p.lock.Lock()
	defer p.lock.Unlock()
	if err != nil {
		p.current = result.Failed[T](err)
		return err
	}
	p.current = result.Ready(data)
	return nil
}

func (p *polled[T]) get() result.Result[T] {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.current
}

// Watcher polls the cluster resources used by the console. Every resource
// stays Pending until its first list completes.
type Watcher struct {
	client    client.Client
	namespace string
	interval  time.Duration
	logger    *log.Entry

	discoveryResults  *polled[[]v1alpha1.LocalVolumeDiscoveryResult]
	nodes             *polled[[]corev1.Node]
	persistentVolumes *polled[[]corev1.PersistentVolume]
	storageSystems    *polled[[]v1alpha1.StorageSystem]
	operatorCSVs      *polled[*unstructured.UnstructuredList]
}

func NewWatcher(c client.Client, namespace string, interval time.Duration) *Watcher {
	w := &Watcher{
		client:    c,
		namespace: namespace,
		interval:  interval,
		logger:    log.WithField("Module", "ClusterWatcher"),
	}
	w.discoveryResults = newPolled("LocalVolumeDiscoveryResult", w.listDiscoveryResults)
	w.nodes = newPolled("Node", w.listNodes)
	w.persistentVolumes = newPolled("PersistentVolume", w.listPersistentVolumes)
	w.storageSystems = newPolled("StorageSystem", w.listStorageSystems)
	w.operatorCSVs = newPolled("ClusterServiceVersion", w.listOperatorCSVs)
	return w
}

func (w *Watcher) syncers() []syncer {
	return []syncer{w.discoveryResults, w.nodes, w.persistentVolumes, w.storageSystems, w.operatorCSVs}
}

// Run polls every resource until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.WithField("namespace", w.namespace).Info("Start cluster watcher")
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range w.syncers() {
		s := s
		g.Go(func() error {
			wait.UntilWithContext(ctx, func(ctx context.Context) {
				if err := s.sync(ctx); err != nil {
					w.logger.WithError(err).WithField("resource", s.name()).Error("Failed to sync resource")
				}
			}, w.interval)
			return nil
		})
	}
	err := g.Wait()
	w.logger.Info("Stop cluster watcher")
	return err
}

// Sync lists every resource once and returns the first error
func (w *Watcher) Sync(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range w.syncers() {
		s := s
		g.Go(func() error { return s.sync(ctx) })
	}
	return g.Wait()
}

func (w *Watcher) DiscoveryResults() result.Result[[]v1alpha1.LocalVolumeDiscoveryResult] {
	return w.discoveryResults.get()
}

func (w *Watcher) Nodes() result.Result[[]corev1.Node] {
	return w.nodes.get()
}

func (w *Watcher) PersistentVolumes() result.Result[[]corev1.PersistentVolume] {
	return w.persistentVolumes.get()
}

func (w *Watcher) StorageSystems() result.Result[[]v1alpha1.StorageSystem] {
	return w.storageSystems.get()
}

func (w *Watcher) OperatorCSVs() result.Result[*unstructured.UnstructuredList] {
	return w.operatorCSVs.get()
}

func (w *Watcher) listDiscoveryResults(ctx context.Context) ([]v1alpha1.LocalVolumeDiscoveryResult, error) {
	list := &v1alpha1.LocalVolumeDiscoveryResultList{}
	if err := w.client.List(ctx, list, client.InNamespace(w.namespace)); err != nil {
		return nil, errors.Wrap(err, "failed to list LocalVolumeDiscoveryResults")
	}
	return list.Items, nil
}

func (w *Watcher) listNodes(ctx context.Context) ([]corev1.Node, error) {
	list := &corev1.NodeList{}
	if err := w.client.List(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to list Nodes")
	}
	return list.Items, nil
}

func (w *Watcher) listPersistentVolumes(ctx context.Context) ([]corev1.PersistentVolume, error) {
	list := &corev1.PersistentVolumeList{}
	if err := w.client.List(ctx, list); err != nil {
		return nil, errors.Wrap(err, "failed to list PersistentVolumes")
	}
	return list.Items, nil
}

func (w *Watcher) listStorageSystems(ctx context.Context) ([]v1alpha1.StorageSystem, error) {
	list := &v1alpha1.StorageSystemList{}
	if err := w.client.List(ctx, list, client.InNamespace(w.namespace)); err != nil {
		return nil, errors.Wrap(err, "failed to list StorageSystems")
	}
	return list.Items, nil
}

func (w *Watcher) listOperatorCSVs(ctx context.Context) (*unstructured.UnstructuredList, error) {
	list := &unstructured.UnstructuredList{}
	list.SetGroupVersionKind(ClusterServiceVersionListGVK)
	if err := w.client.List(ctx, list, client.InNamespace(w.namespace)); err != nil {
		return nil, errors.Wrap(err, "failed to list ClusterServiceVersions")
	}
	return list, nil
}
