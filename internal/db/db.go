package db

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the database drivers and file
	// source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/biryaniking52/catering-app/internal/models"
)

// ConnectAndMigrate opens the database named by DATABASE_DSN and brings the
// schema up to date. MIGRATIONS=1 runs SQL migrations via golang-migrate;
// otherwise AutoMigrate is used (dev convenience). DB_SEED=1 loads the
// default catering data afterwards.
func ConnectAndMigrate() (*gorm.DB, error) {
	dsn := NormalizeDSN(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		dsn = "file:catering.db"
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	dialect := DetectDialect(dsn)
	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(openDialector(dialect, dsn), cfg)
		if err == nil {
			break
		}
		fmt.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	fmt.Printf("[DB] dialect=%s dsn=%s\n", dialect, maskDSN(dsn))

	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		modelsToMigrate := []interface{}{
			&models.Category{}, &models.Vendor{}, &models.Customer{}, &models.FoodItem{}, &models.Quote{}, &models.QuoteItem{},
		}
		for _, m := range modelsToMigrate {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"categories", "vendors", "food_items", "quotes", "quote_items"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	if v := strings.ToLower(os.Getenv("DB_SEED")); v == "1" || v == "true" || v == "yes" {
		Seed(db)
	}
	return db, nil
}

func openDialector(dialect, dsn string) gorm.Dialector {
	switch dialect {
	case DialectPostgres:
		return postgres.Open(dsn)
	case DialectMySQL:
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://"))
	default:
		return sqlite.Open(dsn)
	}
}

func maskDSN(dsn string) string {
	masked := dsn
	if strings.Contains(masked, "password=") {
		re := regexp.MustCompile(`(password=)([^\s]+)`)
		masked = re.ReplaceAllString(masked, `${1}***`)
	}
	return masked
}

// runSQLMigrations executes migrations in ./migrations using golang-migrate
// file source. Only the postgres/mysql dialects are expected here; sqlite
// deployments use the AutoMigrate path.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
