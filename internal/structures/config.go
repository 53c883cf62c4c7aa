package structures

import "time"

const DefaultRatesEndpoint = "https://open.er-api.com/v6/latest/JPY"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RatesConfig struct {
	Endpoint        string        `yaml:"endpoint" validate:"required|url"`
	Timeout         time.Duration `yaml:"timeout" validate:"required|min:1"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
	DisplayInterval time.Duration `yaml:"displayInterval" validate:"required|min:1"`
	DefaultAmount   int64         `yaml:"defaultAmount" validate:"required|min:1"`
	TimeZone        string        `yaml:"timeZone"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Location  *time.Location `mapstructure:"-"`
	Rates     RatesConfig    `yaml:"rates"`
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

// DisplayLocation is the zone used for every rendered clock and date.
func (c *Config) DisplayLocation() *time.Location {
	if c == nil || c.Location == nil {
		return time.Local
	}
	return c.Location
}
