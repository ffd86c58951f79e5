package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Up applies every pending migration and reports the schema version before
// and after. A database with no migrations reports version 0.
func Up(db *sql.DB) (preMigrationVersion uint, postMigrationVersion uint, err error) {
	source, err := iofs.New(files, ".")
	if err != nil {
		return 0, 0, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, 0, err
	}

	preMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, 0, err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preMigrationVersion, 0, err
	}

	postMigrationVersion, _, err = m.Version()
	if err != nil {
		return preMigrationVersion, 0, err
	}

	return preMigrationVersion, postMigrationVersion, nil
}
