package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	S3             S3Config             `mapstructure:"s3"`
	JWT            JWTConfig            `mapstructure:"jwt"`
	Log            LogConfig            `mapstructure:"log"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Catalog        CatalogConfig        `mapstructure:"catalog"`
	Cache          CacheConfig          `mapstructure:"cache"`
	Auth           AuthConfig           `mapstructure:"auth"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release or test
	// CORSOrigins lists allowed browser origins; "*" allows any.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"` // Duration string in YAML, e.g. "1h"
}

// AuthConfig lists the emails that register as admins.
type AuthConfig struct {
	AdminEmails []string `mapstructure:"admin_emails"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // dev or prod
}

// RecommendationConfig tunes the daily recommendation endpoint.
type RecommendationConfig struct {
	DefaultCount  int `mapstructure:"default_count"`
	MaxCount      int `mapstructure:"max_count"`
	LogWindowDays int `mapstructure:"log_window_days"`
}

type CatalogConfig struct {
	Seed bool `mapstructure:"seed"`
}

// CacheConfig sizes the in-memory exercise catalog cache.
type CacheConfig struct {
	SizeMB     int           `mapstructure:"size_mb"`
	CatalogTTL time.Duration `mapstructure:"catalog_ttl"`
}

// LoadConfig reads config.yaml from path, overridden by environment
// variables such as SERVER_ADDRESS or JWT_EXPIRATION. A missing file is fine.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	// server.address -> SERVER_ADDRESS
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_recommender")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket_name", "exercise-media")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("auth.admin_emails", []string{})
	v.SetDefault("log.mode", "dev")
	v.SetDefault("recommendation.default_count", 6)
	v.SetDefault("recommendation.max_count", 20)
	v.SetDefault("recommendation.log_window_days", 7)
	v.SetDefault("catalog.seed", true)
	v.SetDefault("cache.size_mb", 8)
	v.SetDefault("cache.catalog_ttl", "5m")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, config.validate()
}

func (c Config) validate() error {
	if c.Recommendation.DefaultCount <= 0 || c.Recommendation.MaxCount < c.Recommendation.DefaultCount {
		return errors.New("recommendation.default_count must be positive and not above max_count")
	}
	if c.Recommendation.LogWindowDays <= 0 {
		return errors.New("recommendation.log_window_days must be positive")
	}
	if c.Cache.SizeMB <= 0 {
		return errors.New("cache.size_mb must be positive")
	}
	return nil
}
