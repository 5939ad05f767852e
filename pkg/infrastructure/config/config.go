// Package config loads wallcalc settings from an optional file and WALLCALC_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// EnvPrefix is prepended to every environment variable, e.g. WALLCALC_LOG_LEVEL
const EnvPrefix = "WALLCALC"

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig enables shared usage statistics when Addr is set
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// ClimateConfig is the default boundary climate for new assemblies
type ClimateConfig struct {
	InteriorTemperature float64 `mapstructure:"interior_temperature"`
	ExteriorTemperature float64 `mapstructure:"exterior_temperature"`
	InteriorHumidity    float64 `mapstructure:"interior_humidity"`
	ExteriorHumidity    float64 `mapstructure:"exterior_humidity"`
}

// SurfaceConfig holds the default surface resistances in m²K/W
type SurfaceConfig struct {
	Rsi float64 `mapstructure:"rsi"`
	Rse float64 `mapstructure:"rse"`
}

type Config struct {
	Log       LogConfig     `mapstructure:"log"`
	Storage   StorageConfig `mapstructure:"storage"`
	Redis     RedisConfig   `mapstructure:"redis"`
	HTTP      HTTPConfig    `mapstructure:"http"`
	Climate   ClimateConfig `mapstructure:"climate"`
	Surface   SurfaceConfig `mapstructure:"surface"`
	Materials string        `mapstructure:"materials"` // optional CSV of custom materials
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "wallcalc")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("climate.interior_temperature", entities.DefaultInteriorTemperature)
	v.SetDefault("climate.exterior_temperature", entities.DefaultExteriorTemperature)
	v.SetDefault("climate.interior_humidity", entities.DefaultInteriorHumidity)
	v.SetDefault("climate.exterior_humidity", entities.DefaultExteriorHumidity)
	v.SetDefault("surface.rsi", entities.DefaultInteriorSurfaceResistance)
	v.SetDefault("surface.rse", entities.DefaultExteriorSurfaceResistance)
	v.SetDefault("materials", "")
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Surface.Rsi < 0 || c.Surface.Rse < 0 {
		return fmt.Errorf("surface resistances cannot be negative, got rsi=%g rse=%g", c.Surface.Rsi, c.Surface.Rse)
	}
	return c.DefaultClimate().Validate()
}

// DefaultClimate converts the climate section into entity form
func (c *Config) DefaultClimate() entities.Climate {
	return entities.Climate{
		InteriorTemperature: c.Climate.InteriorTemperature,
		ExteriorTemperature: c.Climate.ExteriorTemperature,
		InteriorHumidity:    c.Climate.InteriorHumidity,
		ExteriorHumidity:    c.Climate.ExteriorHumidity,
	}
}
