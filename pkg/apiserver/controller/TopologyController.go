package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/apiserver/manager"
)

type ITopologyController interface {
	ZoneList(ctx *gin.Context)
	Topology(ctx *gin.Context)
}

type TopologyController struct {
	m *manager.ServerManager
}

func NewTopologyController(m *manager.ServerManager) ITopologyController {
	return &TopologyController{m}
}

// ZoneList godoc
// @Summary     摘要 获取集群可用区列表
// @Description list the zones of the cluster nodes, sorted
// @Tags        Topology
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.ZoneList
// @Router      /cluster/zones [get]
func (t *TopologyController) ZoneList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, t.m.TopologyController().ZoneList())
}

// Topology godoc
// @Summary     摘要 分析所选节点的可用区分布
// @Description zone distribution of the selected nodes owning disks that match the criteria, and whether it forms a stretch cluster
// @Tags        Topology
// @Param       body body api.TopologyReqBody true "reqBody"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.TopologyRsp
// @Failure     400 {object} api.RspFailBody
// @Router      /cluster/topology [post]
func (t *TopologyController) Topology(ctx *gin.Context) {
	var req hwameistorapi.TopologyReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, t.m.TopologyController().Topology(&req))
}
