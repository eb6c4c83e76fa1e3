package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/hwameistor/storage-console/pkg/topology"
)

const (
	namespaceEnv = "NAMESPACE"

	DefaultNamespace      = "openshift-storage"
	DefaultBindAddress    = ":80"
	DefaultMetricsAddress = ":8080"
	DefaultPollInterval   = 30 * time.Second
	DefaultOperatorPrefix = "odf-operator"
)

// Config of the console servers
type Config struct {
	BindAddress    string `json:"bindAddress"`
	MetricsAddress string `json:"metricsAddress"`
	Namespace      string `json:"namespace"`
	PrometheusURL  string `json:"prometheusURL"`
	// OperatorPrefix selects the operator CSV reported on the status card
	OperatorPrefix string        `json:"operatorPrefix"`
	PollInterval   time.Duration `json:"pollInterval"`

	Stretch topology.StretchRule `json:"stretch"`

	// File is the optional YAML file the config is read from
	File string `json:"-"`
}

// NewDefaultConfig returns the defaults, with the namespace taken from the
// NAMESPACE env when it is set
func NewDefaultConfig() *Config {
	c := &Config{
		BindAddress:    DefaultBindAddress,
		MetricsAddress: DefaultMetricsAddress,
		Namespace:      DefaultNamespace,
		OperatorPrefix: DefaultOperatorPrefix,
		PollInterval:   DefaultPollInterval,
		Stretch:        topology.DefaultStretchRule,
	}
	if ns := os.Getenv(namespaceEnv); ns != "" {
		c.Namespace = ns
	}
	return c
}

func (c *Config) AddFlags(fs *pflag.FlagSet) *pflag.FlagSet {
	fs.StringVar(&c.File, "config", c.File, "Path of the YAML config file, watched for stretch rule changes.")
	fs.StringVar(&c.BindAddress, "bind-address", c.BindAddress, "The address the REST server binds to.")
	fs.StringVar(&c.MetricsAddress, "metrics-address", c.MetricsAddress, "The address the metrics exporter binds to.")
	fs.StringVar(&c.Namespace, "namespace", c.Namespace, "The namespace of the storage systems and operators.")
	fs.StringVar(&c.PrometheusURL, "prometheus-url", c.PrometheusURL, "The address of the prometheus server for utilization queries.")
	fs.StringVar(&c.OperatorPrefix, "operator-prefix", c.OperatorPrefix, "Name prefix of the operator CSV shown on the status card.")
	fs.DurationVar(&c.PollInterval, "poll-interval", c.PollInterval, "Interval between two polls of the cluster resources.")
	fs.IntVar(&c.Stretch.MinZones, "stretch-min-zones", c.Stretch.MinZones, "Minimum number of zones of a stretch topology, never below 3.")
	fs.IntVar(&c.Stretch.MinNodesPerZone, "stretch-min-nodes-per-zone", c.Stretch.MinNodesPerZone, "Minimum number of selected nodes in every zone of a stretch topology.")
	return fs
}

// fileConfig holds the fields a config file may set
type fileConfig struct {
	BindAddress    *string               `json:"bindAddress,omitempty"`
	MetricsAddress *string               `json:"metricsAddress,omitempty"`
	Namespace      *string               `json:"namespace,omitempty"`
	PrometheusURL  *string               `json:"prometheusURL,omitempty"`
	OperatorPrefix *string               `json:"operatorPrefix,omitempty"`
	PollInterval   *string               `json:"pollInterval,omitempty"`
	Stretch        *topology.StretchRule `json:"stretch,omitempty"`
}

// LoadFile merges the YAML file into the config. Fields missing from the
// file keep their value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	return c.merge(data)
}

func (c *Config) merge(data []byte) error {
	f := fileConfig{}
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}

	if f.PollInterval != nil {
		interval, err := time.ParseDuration(*f.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid pollInterval: %v", err)
		}
		c.PollInterval = interval
	}
	setString(&c.BindAddress, f.BindAddress)
	setString(&c.MetricsAddress, f.MetricsAddress)
	setString(&c.Namespace, f.Namespace)
	setString(&c.PrometheusURL, f.PrometheusURL)
	setString(&c.OperatorPrefix, f.OperatorPrefix)
	if f.Stretch != nil {
		c.Stretch = *f.Stretch
	}
	return nil
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.Stretch.MinNodesPerZone < 0 {
		return fmt.Errorf("stretch.minNodesPerZone must not be negative")
	}
	return nil
}
