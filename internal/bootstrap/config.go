package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	errs "hypermap/internal/errors"
)

const (
	SinkFile  = "file"
	SinkRedis = "redis"
	SinkMongo = "mongo"
)

type Config struct {
	OutputSink      string `mapstructure:"OUTPUT_SINK"`
	OutputPath      string `mapstructure:"OUTPUT_PATH"`
	RedisUrl        string `mapstructure:"REDIS_URL"`
	RedisKey        string `mapstructure:"REDIS_KEY"`
	MongoUri        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`
	MapId           string `mapstructure:"MAP_ID"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]string{
	"OUTPUT_SINK":      SinkFile,
	"OUTPUT_PATH":      "map.json",
	"REDIS_URL":        "localhost:6379",
	"REDIS_KEY":        "hypermap:5square",
	"MONGO_URI":        "mongodb://localhost:27017",
	"MONGO_DATABASE":   "hypermap",
	"MONGO_COLLECTION": "maps",
	"MAP_ID":           "5square",
	"LOG_LEVEL":        "info",
}

// Setup reads cfgPath if it exists and overlays the process environment.
// A missing file is not an error: every key has a default.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: read %s: %w", errs.ErrConfig, cfgPath, err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfig, err)
	}

	switch cfg.OutputSink {
	case SinkFile, SinkRedis, SinkMongo:
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSink, cfg.OutputSink)
	}
	if cfg.OutputSink == SinkFile && cfg.OutputPath == "" {
		return nil, fmt.Errorf("%w: OUTPUT_PATH is empty", errs.ErrConfig)
	}

	return &cfg, nil
}
