package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	echoapi "github.com/trezcool/scolarite/apps/api/echo"
	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
	logsvc "github.com/trezcool/scolarite/services/logger"
	dummydb "github.com/trezcool/scolarite/storage/database/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db, err := setUpDB(conf, dbLogger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// set up services
	parcoursSvc := parcours.NewService(dummydb.NewParcoursRepository(db))
	etudiantSvc := etudiant.NewService(dummydb.NewEtudiantRepository(db), parcoursSvc)
	ueSvc := ue.NewService(dummydb.NewUERepository(db), parcoursSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate, translator := core.NewValidator()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			ParcoursSvc: parcoursSvc,
			EtudiantSvc: etudiantSvc,
			UESvc:       ueSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config, logger core.Logger) (*dummydb.DB, error) {
	db, err := dummydb.Open()
	if err != nil {
		return nil, err
	}
	if conf.SeedFile == "" {
		return db, nil
	}

	f, err := os.Open(conf.SeedFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := dummydb.Seed(db, f)
	if err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("seeded from %s", conf.SeedFile), map[string]interface{}{
		"parcours":  res.Parcours,
		"ue":        res.UE,
		"etudiants": res.Etudiants,
	})
	return db, nil
}
