package cluster

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrlconfig "sigs.k8s.io/controller-runtime/pkg/client/config"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/result"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=cluster

// Source hands out the latest state of the watched cluster resources
type Source interface {
	DiscoveryResults() result.Result[[]v1alpha1.LocalVolumeDiscoveryResult]
	Nodes() result.Result[[]corev1.Node]
	PersistentVolumes() result.Result[[]corev1.PersistentVolume]
	StorageSystems() result.Result[[]v1alpha1.StorageSystem]
	OperatorCSVs() result.Result[*unstructured.UnstructuredList]
}

// ClusterServiceVersionListGVK is the operator install list read for the status card
var ClusterServiceVersionListGVK = schema.GroupVersionKind{
	Group:   "operators.coreos.com",
	Version: "v1alpha1",
	Kind:    "ClusterServiceVersionList",
}

// NewScheme registers the kubernetes and console types
func NewScheme() (*runtime.Scheme, error) {
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return nil, err
	}
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

// NewClient returns a client of the in-cluster or kubeconfig cluster knowing
// the console types
func NewClient() (client.Client, error) {
	// Get a config to talk to the apiserver
	cfg, err := ctrlconfig.GetConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get kubernetes config")
	}

	scheme, err := NewScheme()
	if err != nil {
		return nil, errors.Wrap(err, "failed to setup scheme")
	}

	cli, err := client.New(cfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	return cli, nil
}
