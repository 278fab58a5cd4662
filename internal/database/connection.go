package database

import (
	"database/sql"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger, used for connection messages and SQL logs
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// retryBaseDelay doubles after every failed attempt
var retryBaseDelay = time.Second

// InitDatabase initializes the database connection based on the provided configuration
// It supports SQLite, PostgreSQL and MySQL with retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := normalizeDriver(cfg.Driver)
	maxRetries := max(cfg.MaxRetries, 1)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	gormCfg := &gorm.Config{
		Logger: NewGormLogger(log, GormLogLevel(log.GetLevel()), GormLoggerConfig{
			IgnoreRecordNotFoundError: true,
		}),
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		var dialector gorm.Dialector
		switch driver {
		case "postgres":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			dialector = postgres.Open(cfg.DSN())
		case "mysql":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to MySQL")
			dialector = mysql.Open(cfg.DSN())
		case "sqlite":
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			dialector = SQLiteDialector(cfg.DSN())
		default:
			return nil, errors.Errorf("unsupported database driver: %s (supported: sqlite, postgres, mysql)", cfg.Driver)
		}

		var db *gorm.DB
		if db, err = connect(dialector, gormCfg); err == nil {
			log.Info("Database connection successful, configuring connection pool")
			sqlDB, _ := db.DB()
			configureConnectionPool(sqlDB, cfg.InMemory())

			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryBaseDelay << (attempt - 1)
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, errors.Wrapf(err, "failed to connect to database after %d attempts", maxRetries)
}

func connect(dialector gorm.Dialector, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get database instance")
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping")
	}
	return db, nil
}

// configureConnectionPool sets up connection pool parameters. An in-memory
// sqlite database exists once per connection, so it is pinned to one.
func configureConnectionPool(sqlDB *sql.DB, inMemory bool) {
	maxOpen, maxIdle, lifetime := 25, 5, 5*time.Minute
	if inMemory {
		maxOpen, maxIdle, lifetime = 1, 1, 0
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    maxIdle,
		"conn_max_lifetime": lifetime.String(),
	}).Debug("Connection pool configured")
}
