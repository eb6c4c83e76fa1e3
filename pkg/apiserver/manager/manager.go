package manager

import (
	log "github.com/sirupsen/logrus"

	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/cluster"
)

// Options of the server manager
type Options struct {
	PrometheusURL  string
	OperatorPrefix string
	// Policies hands out the stretch policy, the default policy when nil
	Policies consolectr.PolicySource
}

type ServerManager struct {
	source  cluster.Source
	options Options
	logger  *log.Entry

	cController  *consolectr.CapacityController
	tController  *consolectr.TopologyController
	pvController *consolectr.PersistentVolumeController
	sController  *consolectr.StatusController
	uController  *consolectr.UtilizationController
	wController  *consolectr.WizardController
}

func NewServerManager(source cluster.Source, options Options) (*ServerManager, error) {
	m := &ServerManager{
		source:  source,
		options: options,
		logger:  log.WithField("Module", "ServerManager"),
	}
	// holds the wizard sessions
	m.wController = consolectr.NewWizardController(source)
	return m, nil
}

// Close stops the wizard sessions
func (m *ServerManager) Close() {
	m.logger.Info("Closing wizard sessions")
	m.wController.Close()
}

func (m *ServerManager) CapacityController() *consolectr.CapacityController {
	if m.cController == nil {
		m.cController = consolectr.NewCapacityController(m.source)
	}
	return m.cController
}

func (m *ServerManager) TopologyController() *consolectr.TopologyController {
	if m.tController == nil {
		m.tController = consolectr.NewTopologyController(m.source, m.options.Policies)
	}
	return m.tController
}

func (m *ServerManager) PersistentVolumeController() *consolectr.PersistentVolumeController {
	if m.pvController == nil {
		m.pvController = consolectr.NewPersistentVolumeController(m.source)
	}
	return m.pvController
}

func (m *ServerManager) StatusController() *consolectr.StatusController {
	if m.sController == nil {
		m.sController = consolectr.NewStatusController(m.source, m.options.OperatorPrefix)
	}
	return m.sController
}

func (m *ServerManager) UtilizationController() *consolectr.UtilizationController {
	if m.uController == nil {
		m.uController = consolectr.NewUtilizationController(m.options.PrometheusURL)
	}
	return m.uController
}

func (m *ServerManager) WizardController() *consolectr.WizardController {
	return m.wController
}
