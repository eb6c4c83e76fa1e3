package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
)

type RestController interface {
	Get(ctx *gin.Context)
	List(ctx *gin.Context)
}

func failWith(ctx *gin.Context, code int, desc string) {
	ctx.JSON(code, hwameistorapi.RspFailBody{ErrCode: code, Desc: desc})
}

func badRequest(ctx *gin.Context, err error) {
	failWith(ctx, http.StatusBadRequest, err.Error())
}
