// Package bootstrap opens the store and picks the notification channel from
// configuration. It is shared by the server and seed commands.
package bootstrap

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"pasteleria/internal/config"
	"pasteleria/internal/infrastructure/mailer"
	"pasteleria/internal/infrastructure/migrations"
	"pasteleria/internal/infrastructure/mysql"
	"pasteleria/internal/infrastructure/rabbitmq"
	"pasteleria/internal/infrastructure/sqlite"
	"pasteleria/internal/notification"
)

// OpenDatabase connects to the configured store and, when enabled, applies
// pending migrations before returning.
func OpenDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		if cfg.AutoMigrate {
			if err := migrateMySQL(cfg); err != nil {
				return nil, err
			}
			logger.Info("migrations applied", zap.String("driver", cfg.Driver))
		}
		return mysql.NewConnection(cfg)

	case config.DriverSQLite:
		db, err := sqlite.NewConnection(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := migrations.Up(db, config.DriverSQLite); err != nil {
				db.Close()
				return nil, err
			}
			logger.Info("migrations applied", zap.String("driver", cfg.Driver), zap.String("path", cfg.SQLitePath))
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// migrateMySQL runs on its own handle since the migrator closes it.
func migrateMySQL(cfg config.DatabaseConfig) error {
	db, err := sql.Open("mysql", mysql.DSN(cfg))
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	if err := migrations.Up(db, config.DriverMySQL); err != nil {
		db.Close()
		return err
	}
	return nil
}

// NewNotifier builds the configured inquiry notifier. The returned close
// function releases any broker connection and is never nil.
func NewNotifier(cfg config.NotifyConfig, logger *zap.Logger) (notification.Notifier, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.NotifySMTP:
		logger.Info("inquiry notifications by email",
			zap.String("host", cfg.SMTP.Host),
			zap.Int("port", cfg.SMTP.Port),
		)
		return mailer.NewSMTPNotifier(cfg.SMTP, cfg.Timeout, logger), noop, nil

	case config.NotifyAMQP:
		client, err := rabbitmq.Dial(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("inquiry notifications by queue", zap.String("queue", cfg.AMQP.Queue))
		return rabbitmq.NewQueueNotifier(client.Channel(), cfg.AMQP.Queue, logger), client.Close, nil

	case config.NotifyLog:
		logger.Warn("no notification channel configured, inquiries will only be logged")
		return notification.NewLogNotifier(logger), noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported notify driver %q", cfg.Driver)
	}
}
