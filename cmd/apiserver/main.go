package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/hwameistor/storage-console/pkg/apiserver/docs"
	routers "github.com/hwameistor/storage-console/pkg/apiserver/router"
	"github.com/hwameistor/storage-console/pkg/config"
)

func main() {
	c := config.NewDefaultConfig()
	c.AddFlags(pflag.CommandLine)
	pflag.Parse()

	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			log.WithError(err).Error("Failed to load config file")
			os.Exit(1)
		}
	}
	if err := c.Validate(); err != nil {
		log.WithError(err).Error("Invalid config")
		os.Exit(1)
	}

	ctx := signals.SetupSignalHandler()
	sm, err := routers.BuildServerMgr(ctx, c)
	if err != nil {
		log.WithError(err).Error("Failed to build server manager")
		os.Exit(1)
	}
	defer sm.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r = routers.CollectRoute(r, sm)

	docs.SwaggerInfo.Title = "Storage Console API"
	docs.SwaggerInfo.Description = "Disk capacity, zone topology and storage system wizard of the storage console."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = routers.APIGroupPath
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	srv := &http.Server{Addr: c.BindAddress, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Failed to shutdown apiserver")
		}
	}()

	log.WithField("address", c.BindAddress).Info("Start storage console apiserver")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Error("Apiserver stopped")
	}
	log.Info("Apiserver exited")
}
