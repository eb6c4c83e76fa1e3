package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hwameistor/storage-console/pkg/apiserver/manager"
	"github.com/hwameistor/storage-console/pkg/utilization"
)

const defaultUtilizationDuration = time.Hour

type IMetricsController interface {
	StatusCard(ctx *gin.Context)
	Utilization(ctx *gin.Context)
}

// MetricsController
type MetricsController struct {
	m *manager.ServerManager
}

func NewMetricsController(m *manager.ServerManager) IMetricsController {
	return &MetricsController{m}
}

// StatusCard godoc
// @Summary     摘要 获取存储系统状态
// @Description health of the storage operator and the storage systems
// @Tags        Metric
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.StatusCard
// @Router      /cluster/status [get]
func (mc *MetricsController) StatusCard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mc.m.StatusController().StatusCard())
}

// Utilization godoc
// @Summary     摘要 获取利用率曲线
// @Description range query series of one or two prometheus queries, sample times truncated to the minute
// @Tags        Metric
// @Param       query query []string true "query" collectionFormat(multi)
// @Param       desc query []string false "desc" collectionFormat(multi)
// @Param       duration query string false "duration, e.g. 1h"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.UtilizationRsp
// @Failure     400 {object} api.RspFailBody
// @Failure     500 {object} api.RspFailBody
// @Router      /cluster/utilization [get]
func (mc *MetricsController) Utilization(ctx *gin.Context) {
	expressions := ctx.QueryArray("query")
	descriptions := ctx.QueryArray("desc")
	if len(expressions) == 0 || len(expressions) > 2 {
		failWith(ctx, http.StatusBadRequest, "expect one or two queries")
		return
	}

	duration := defaultUtilizationDuration
	if d := ctx.Query("duration"); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil || parsed <= 0 {
			failWith(ctx, http.StatusBadRequest, "invalid duration "+d)
			return
		}
		duration = parsed
	}

	queries := make([]utilization.Query, 0, len(expressions))
	for i, expression := range expressions {
		query := utilization.Query{Query: expression}
		if i < len(descriptions) {
			query.Description = descriptions[i]
		}
		queries = append(queries, query)
	}

	rsp, err := mc.m.UtilizationController().Utilization(ctx.Request.Context(), queries, duration)
	if err != nil {
		log.WithError(err).Error("Failed to query utilization")
		failWith(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, rsp)
}
