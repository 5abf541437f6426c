package config

import (
	"path/filepath"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mobileshop/pos/pkg/logger"
	"github.com/pkg/errors"
)

var config *Config

// Config holds every tunable of the POS process. Only this struct may be
// consulted for configuration; no direct env access elsewhere.
type Config struct {
	AppEnv   string `env:"APP_ENV,default=dev"`
	AppName  string `env:"APP_NAME,default=shop_pos"`
	AppDebug bool   `env:"APP_DEBUG,default=1"`

	DataDir      string `env:"POS_DATA_DIR,default=./data"`
	DatabaseFile string `env:"POS_DATABASE_FILE,default=pos_database.db"`
	SessionFile  string `env:"POS_SESSION_FILE,default=session.json"`

	PersistInterval   time.Duration `env:"POS_PERSIST_INTERVAL,default=30s"`
	LowStockThreshold int           `env:"POS_LOW_STOCK_THRESHOLD,default=10"`

	ScanDebounce  time.Duration `env:"POS_SCAN_DEBOUNCE,default=100ms"`
	ScanQuiescent time.Duration `env:"POS_SCAN_QUIESCENT,default=150ms"`

	PromNamespace    string `env:"PROM_NAMESPACE,default=pos"`
	DebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	DebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`
}

func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, c.SessionFile)
}

func Load(path string) error {
	c := &Config{}
	if path != "" {
		logger.Info("loading env file", "path", path)
		if err := godotenv.Load(path); err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
