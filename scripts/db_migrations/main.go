package main

import (
	"database/sql"
	"errors"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/logging"
)

func main() {
	source := flag.String("source", "file://migrations", "migration source URL")
	steps := flag.Int("steps", 0, "apply n migrations (negative rolls back); 0 migrates all the way up")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	log := logging.SetupLogging(env.LogLevel)

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		log.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.WithError(err).Fatal("postgres.WithInstance")
		return
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.WithError(err).Fatal("migrate.NewWithDatabaseInstance")
		return
	}

	preMigrationVersion, dirty, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		log.WithError(err).Fatal("m.Version.preMigrationVersion")
		return
	}
	if dirty {
		log.WithField("version", preMigrationVersion).Fatal("m.Version.dirty")
		return
	}

	if *steps != 0 {
		err = m.Steps(*steps)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.WithError(err).Fatal("m.Migrate")
		return
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.WithError(err).Fatal("m.Version.postMigrationVersion")
		return
	}

	log.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
		"host":                 env.PostgresAddress,
		"database":             env.PostgresDB,
	}).Info("Migration status")
}
