package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/hwameistor/storage-console/pkg/topology"
)

// StretchRuleSource hands out the current stretch rule. The rule is reloaded
// from the config file when the file changes.
type StretchRuleSource struct {
	lock sync.RWMutex
	rule topology.StretchRule
	file string

	logger *log.Entry
}

func NewStretchRuleSource(c *Config) *StretchRuleSource {
	return &StretchRuleSource{
		rule:   c.Stretch,
		file:   c.File,
		logger: log.WithField("Module", "StretchRuleSource"),
	}
}

// Rule returns the current rule
func (s *StretchRuleSource) Rule() topology.StretchRule {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.rule
}

// Policy returns the policy of the current rule
func (s *StretchRuleSource) Policy() topology.StretchPolicy {
	return s.Rule().Policy()
}

// Reload reads the rule from the config file. A file that fails to load
// keeps the current rule.
func (s *StretchRuleSource) Reload() error {
	c := &Config{Stretch: s.Rule()}
	if err := c.LoadFile(s.file); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.rule != c.Stretch {
		s.logger.WithFields(log.Fields{"old": s.rule, "new": c.Stretch}).Info("Stretch rule changed")
	}
	s.rule = c.Stretch
	return nil
}

// Watch reloads the rule on file changes until ctx is done. The directory is
// watched so that configmap symlink swaps are seen.
func (s *StretchRuleSource) Watch(ctx context.Context) error {
	if s.file == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(s.file)
	if err := watcher.Add(dir); err != nil {
		s.logger.WithError(err).WithField("dir", dir).Error("Failed to watch config directory")
		return err
	}
	s.logger.WithField("file", s.file).Info("Start watching config file")

	wait.Until(func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.logger.WithField("event", event).Debug("Config directory changed")
				if err := s.Reload(); err != nil {
					s.logger.WithError(err).Error("Failed to reload stretch rule")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.WithError(err).Error("Error happened when watching config file")
			}
		}
	}, time.Second, ctx.Done())

	s.logger.Info("Stop watching config file")
	return nil
}
