package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/masomo-lms/portal/apps/api/echo"
	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/portal"
	logsvc "github.com/masomo-lms/portal/services/logger"
	mockds "github.com/masomo-lms/portal/storage/datasource/mock"
	restds "github.com/masomo-lms/portal/storage/datasource/rest"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := core.Conf

	// =========================================================================
	// Set up Dependencies

	zapLogger, err := logsvc.NewZapLogger(conf.LogMode)
	if err != nil {
		log.Fatalf("setting up logger: %v", err)
	}
	defer zapLogger.Sync()

	logger := logsvc.NewRollbarLogger(zapLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	ds, err := newDataSource(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up %s data source: %v", conf.DataSource.Mode, err), err)
	}
	svc := portal.NewService(ds, logger)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build),
		map[string]interface{}{"env": conf.Env, "dataSource": conf.DataSource.Mode})
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Address:        conf.Server.Address,
		Debug:          conf.Debug,
		TestMode:       conf.TestMode,
		DisableReqLogs: conf.Server.DisableReqLogs,
		Portal:         svc,
		Logger:         logger,
	})
	go server.Start()

	// =========================================================================
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown
	logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = server.Stop(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}

func newDataSource(conf *core.Config) (portal.DataSource, error) {
	if conf.DataSource.Mode == core.DataSourceREST {
		return restds.NewDataSource(conf.DataSource)
	}
	db, err := mockds.OpenFixtures()
	if err != nil {
		return nil, err
	}
	return mockds.NewDataSource(db), nil
}
