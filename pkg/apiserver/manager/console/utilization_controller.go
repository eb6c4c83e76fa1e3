package console

import (
	"context"
	"fmt"
	"time"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/utilization"
)

type UtilizationController struct {
	prometheusURL string
}

func NewUtilizationController(prometheusURL string) *UtilizationController {
	return &UtilizationController{prometheusURL: prometheusURL}
}

// Utilization queries the series of up to two queries over the duration
func (uController *UtilizationController) Utilization(ctx context.Context, queries []utilization.Query, duration time.Duration) (*hwameistorapi.UtilizationRsp, error) {
	if uController.prometheusURL == "" {
		return nil, fmt.Errorf("prometheus url is not configured")
	}
	if len(queries) == 0 || len(queries) > 2 {
		return nil, fmt.Errorf("expect one or two queries, got %d", len(queries))
	}

	poller, err := utilization.NewPoller(uController.prometheusURL, queries, utilization.PollerOptions{Duration: duration})
	if err != nil {
		return nil, err
	}
	poller.Poll(ctx)
	stats, _ := poller.Latest()
	return &hwameistorapi.UtilizationRsp{Stats: stats, Queries: queries}, nil
}
