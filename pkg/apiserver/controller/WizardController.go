package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	"github.com/hwameistor/storage-console/pkg/apiserver/manager"
	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/wizard"
)

type IWizardController interface {
	SessionCreate(ctx *gin.Context)
	SessionGet(ctx *gin.Context)
	SessionDispatch(ctx *gin.Context)
	SessionCapacity(ctx *gin.Context)
	SessionDelete(ctx *gin.Context)
}

type WizardController struct {
	m *manager.ServerManager
}

func NewWizardController(m *manager.ServerManager) IWizardController {
	return &WizardController{m}
}

// SessionCreate godoc
// @Summary     摘要 创建存储系统向导会话
// @Description start a wizard session with the given storage class and nodes, all nodes when none given
// @Tags        Wizard
// @Param       body body api.WizardSessionReqBody true "reqBody"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.WizardSession
// @Failure     400 {object} api.RspFailBody
// @Router      /wizard/sessions [post]
func (w *WizardController) SessionCreate(ctx *gin.Context) {
	var req hwameistorapi.WizardSessionReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, w.m.WizardController().CreateSession(&req))
}

// SessionGet godoc
// @Summary     摘要 获取向导会话
// @Tags        Wizard
// @Param       sessionID path string true "sessionID"
// @Produce     application/json
// @Success     200 {object} api.WizardSession
// @Failure     404 {object} api.RspFailBody
// @Router      /wizard/sessions/{sessionID} [get]
func (w *WizardController) SessionGet(ctx *gin.Context) {
	session, err := w.m.WizardController().GetSession(ctx.Param("sessionID"))
	if err != nil {
		sessionFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SessionDispatch godoc
// @Summary     摘要 更新向导会话状态
// @Description apply one action, e.g. {"type":"capacityAndNodes/enableArbiter","payload":true}
// @Tags        Wizard
// @Param       sessionID path string true "sessionID"
// @Param       body body wizard.RawAction true "action"
// @Accept      application/json
// @Produce     application/json
// @Success     200 {object} api.WizardSession
// @Failure     400 {object} api.RspFailBody
// @Failure     404 {object} api.RspFailBody
// @Router      /wizard/sessions/{sessionID}/actions [post]
func (w *WizardController) SessionDispatch(ctx *gin.Context) {
	var action wizard.RawAction
	if err := ctx.ShouldBindJSON(&action); err != nil {
		badRequest(ctx, err)
		return
	}
	session, err := w.m.WizardController().Dispatch(ctx.Request.Context(), ctx.Param("sessionID"), action)
	if err != nil {
		sessionFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SessionCapacity godoc
// @Summary     摘要 计算向导会话所选容量
// @Description capacity of the session disk filters and nodes, the chart nodes are stored in the session when they change
// @Tags        Wizard
// @Param       sessionID path string true "sessionID"
// @Produce     application/json
// @Success     200 {object} api.WizardCapacityRsp
// @Failure     404 {object} api.RspFailBody
// @Router      /wizard/sessions/{sessionID}/capacity [get]
func (w *WizardController) SessionCapacity(ctx *gin.Context) {
	rsp, err := w.m.WizardController().Capacity(ctx.Request.Context(), ctx.Param("sessionID"))
	if err != nil {
		sessionFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rsp)
}

// SessionDelete godoc
// @Summary     摘要 删除向导会话
// @Tags        Wizard
// @Param       sessionID path string true "sessionID"
// @Success     204
// @Failure     404 {object} api.RspFailBody
// @Router      /wizard/sessions/{sessionID} [delete]
func (w *WizardController) SessionDelete(ctx *gin.Context) {
	if err := w.m.WizardController().DeleteSession(ctx.Param("sessionID")); err != nil {
		sessionFailure(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func sessionFailure(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, consolectr.ErrSessionNotFound):
		failWith(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, consolectr.ErrInvalidAction):
		badRequest(ctx, err)
	default:
		log.WithError(err).Error("Wizard session request failed")
		failWith(ctx, http.StatusInternalServerError, err.Error())
	}
}
