package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/autotrack-server/internal/config"
	"github.com/carson-networks/autotrack-server/internal/storage"
	"github.com/carson-networks/autotrack-server/internal/storage/migrations"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	preMigrationVersion, postMigrationVersion, err := migrations.Up(dbStorage.DB)
	if err != nil {
		logrus.WithError(err).Fatal("migrations.Up")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
