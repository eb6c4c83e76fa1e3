package definitions

import (
	"os"
	"path/filepath"
	"time"
)

// Global settings, Read from consolectl flags
var (
	Debug          bool
	KubeConfigPath string
	Namespace      string
	Timeout        time.Duration
)

// DefaultKubeConfigPath is ~/.kube/config
var DefaultKubeConfigPath = filepath.Join(homeDir(), ".kube", "config")

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return ""
}
