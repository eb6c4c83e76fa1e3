package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/apiserver/manager"
	utils "github.com/hwameistor/storage-console/pkg/apiserver/util"
)

type IDiskController interface {
	// DiscoveredDiskList
	DiscoveredDiskList(ctx *gin.Context)
	// Capacity
	Capacity(ctx *gin.Context)
	// PVCapacity
	PVCapacity(ctx *gin.Context)
}

// DiskController
type DiskController struct {
	m *manager.ServerManager
}

func NewDiskController(m *manager.ServerManager) IDiskController {
	return &DiskController{m}
}

// DiscoveredDiskList godoc
// @Summary     摘要 获取可用的发现磁盘列表
// @Description list the available discovered disks of every node. phase is Pending until the discovery results are loaded
// @Tags        Disk
// @Param       page query int32 false "page"
// @Param       pageSize query int32 false "pageSize"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.DiscoveredDiskList
// @Router      /cluster/discoveredisks [get]
func (d *DiskController) DiscoveredDiskList(ctx *gin.Context) {
	page, pageSize := utils.ParsePage(ctx.Query("page"), ctx.Query("pageSize"))
	ctx.JSON(http.StatusOK, d.m.CapacityController().DiscoveredDiskList(page, pageSize))
}

// Capacity godoc
// @Summary     摘要 计算所选磁盘容量
// @Description compute total, selected and available capacity of the disks matching the filters on the selected nodes
// @Tags        Disk
// @Param       body body api.CapacityReqBody true "reqBody"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.CapacityRsp
// @Failure     400 {object} api.RspFailBody
// @Router      /cluster/capacity [post]
func (d *DiskController) Capacity(ctx *gin.Context) {
	var req hwameistorapi.CapacityReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, d.m.CapacityController().Capacity(&req))
}

// PVCapacity godoc
// @Summary     摘要 获取存储类可用 PV 容量
// @Description capacity and nodes of the available PVs of a storage class
// @Tags        Disk
// @Param       storageClass query string true "storageClass"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.PVCapacityRsp
// @Failure     400 {object} api.RspFailBody
// @Router      /cluster/pvs/capacity [get]
func (d *DiskController) PVCapacity(ctx *gin.Context) {
	storageClass := ctx.Query("storageClass")
	if storageClass == "" {
		failWith(ctx, http.StatusBadRequest, "storageClass cannot be empty")
		return
	}
	ctx.JSON(http.StatusOK, d.m.PersistentVolumeController().PVCapacity(storageClass))
}
