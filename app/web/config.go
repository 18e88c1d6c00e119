package web

import (
	"time"

	"github.com/dmitrymomot/innkeeper/core/page"
	"github.com/dmitrymomot/innkeeper/core/server"
)

// Config is the application configuration, loaded from the environment.
type Config struct {
	Server server.Config
	Page   page.Config

	AppName  string `env:"APP_NAME" envDefault:"innkeeper"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StaticDir is served under /static/.
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`

	WriteInterval time.Duration `env:"WRITE_INTERVAL" envDefault:"3s"`
	WriteBurst    int           `env:"WRITE_BURST" envDefault:"1"`
	MaxBodySize   int64         `env:"MAX_BODY_SIZE" envDefault:"8388608"` // 8MB
}

// IsProduction reports whether the app runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
