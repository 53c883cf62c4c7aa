package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"time"
	"yenboard/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("rates.endpoint", structures.DefaultRatesEndpoint)
	v.SetDefault("rates.timeout", "10s")
	v.SetDefault("rates.refreshInterval", "30m")
	v.SetDefault("rates.displayInterval", "1m")
	v.SetDefault("rates.defaultAmount", 10000)

	_ = v.BindEnv("logger.level", "YEN_LOG_LEVEL")
	_ = v.BindEnv("rates.endpoint", "YEN_RATES_ENDPOINT")
	_ = v.BindEnv("rates.refreshInterval", "YEN_REFRESH_INTERVAL")
	_ = v.BindEnv("rates.displayInterval", "YEN_DISPLAY_INTERVAL")
	_ = v.BindEnv("rates.timeZone", "YEN_TIME_ZONE")
	_ = v.BindEnv("cache.enabled", "YEN_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "YEN_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "YEN_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	loc, err := loadLocation(conf.Rates.TimeZone)
	if err != nil {
		return nil, err
	}

	conf.AppName = "YenBoard"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Location = loc

	return &conf, nil
}

// loadLocation resolves the display zone; an empty name means the host zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}
