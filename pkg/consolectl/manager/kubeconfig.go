package manager

import (
	"errors"
	"os"

	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/hwameistor/storage-console/pkg/cluster"
)

// BuildKubeClient loads the kubeconfig file and returns a client knowing the
// console resources
func BuildKubeClient(kubeconfigPath string) (client.Client, *rest.Config, error) {
	if !Exists(kubeconfigPath) {
		return nil, nil, errors.New("kubeconfig file is not exists")
	}

	loadingRules := clientcmd.NewDefaultPathOptions().LoadingRules
	loadingRules.ExplicitPath = kubeconfigPath
	overrides := &clientcmd.ConfigOverrides{}

	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)

	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, nil, err
	}

	scheme, err := cluster.NewScheme()
	if err != nil {
		return nil, nil, err
	}
	kClient, err := client.New(restConfig, client.Options{Scheme: scheme})
	if err != nil {
		return nil, nil, err
	}

	return kClient, restConfig, nil
}

func Exists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return os.IsExist(err)
	}
	return true
}
