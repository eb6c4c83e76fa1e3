package main

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/hwameistor/storage-console/pkg/cluster"
	"github.com/hwameistor/storage-console/pkg/config"
	"github.com/hwameistor/storage-console/pkg/exporter"
)

var (
	logLevel = pflag.Int("v", 4 /*Log Info*/, "number for the log level verbosity")
)

func setupLogging() {
	// parse log level(default level: info)
	var level log.Level
	if *logLevel >= int(log.TraceLevel) {
		level = log.TraceLevel
	} else if *logLevel <= int(log.PanicLevel) {
		level = log.PanicLevel
	} else {
		level = log.Level(*logLevel)
	}

	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			fileName := path.Base(f.File)
			return funcName, fmt.Sprintf("%s:%d", fileName, f.Line)
		}})
	log.SetReportCaller(true)
}

func main() {
	c := config.NewDefaultConfig()
	c.AddFlags(pflag.CommandLine)
	pflag.Parse()
	setupLogging()

	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			log.WithError(err).Fatal("Failed to load config file")
		}
	}
	if err := c.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}

	cli, err := cluster.NewClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to create cluster client")
	}

	ctx := signals.SetupSignalHandler()
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

	err = exporter.NewCollectorManager(watcher, exporter.Options{
		Address:        c.MetricsAddress,
		OperatorPrefix: c.OperatorPrefix,
		Policies:       rules,
	}).Run(ctx)
	if err != nil {
		log.WithError(err).Error("Exporter stopped")
		os.Exit(1)
	}
}
