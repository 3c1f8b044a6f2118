package sqlite

import (
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path           string `envconfig:"PATH" default:"weather_bot.db"`
	BusyTimeoutMs  int    `envconfig:"BUSY_TIMEOUT" default:"5000"`
	ForeignKeys    bool   `envconfig:"FOREIGN_KEYS" default:"true"`
	JournalModeWAL bool   `envconfig:"JOURNAL_WAL" default:"true"`
}

// dsn собирает строку подключения с прагмами драйвера
func (c *Config) dsn() string {
	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprintf("%d", c.BusyTimeoutMs))
	if c.ForeignKeys {
		q.Set("_foreign_keys", "on")
	}
	if c.JournalModeWAL {
		q.Set("_journal_mode", "WAL")
	}
	return fmt.Sprintf("file:%s?%s", c.Path, q.Encode())
}

// NewConnection открывает файл базы и проверяет доступность
func (c *Config) NewConnection() (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", c.dsn())
	if err != nil {
		return nil, fmt.Errorf("connect db error: %w", err)
	}

	// SQLite сериализует записи, лишние соединения дают только busy ошибки
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
