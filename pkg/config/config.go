package config

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/util"
	"gopkg.in/yaml.v3"
)

// Config holds the optional credential bundle for each capability. A missing
// bundle is not an error, it selects the mock tier for that capability.
type Config struct {
	Destination DestinationConfig `yaml:"destination"`
	Weather     WeatherConfig     `yaml:"weather"`
	Flights     FlightsConfig     `yaml:"flights"`
	Places      PlacesConfig      `yaml:"places"`

	Redis RedisConfig `yaml:"redis"`
}

type DestinationConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type WeatherConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type FlightsConfig struct {
	Endpoint      string `yaml:"endpoint"`
	TokenEndpoint string `yaml:"token_endpoint"`
	APIKey        string `yaml:"api_key"`
	APISecret     string `yaml:"api_secret"`
}

type PlacesConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

func (c DestinationConfig) Configured() bool {
	return c.Endpoint != ""
}

func (c WeatherConfig) Configured() bool {
	return c.Endpoint != ""
}

func (c FlightsConfig) Configured() bool {
	return c.Endpoint != "" && c.TokenEndpoint != "" && c.APIKey != "" && c.APISecret != ""
}

func (c PlacesConfig) Configured() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

// Load reads the optional YAML file pointed at by VOYAGO_CONFIG and then
// applies any VOYAGO_* environment variables over it. Every field is optional.
func Load() Config {
	var cfg Config

	env := util.GetEnvironmentVariables()

	if configPath := env["VOYAGO_CONFIG"]; configPath != "" {
		fileBytes, err := os.ReadFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("Failed to read config file")
		} else if err := yaml.Unmarshal(fileBytes, &cfg); err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("Failed to parse config file")
		}
	}

	applyEnvOverrides(&cfg, env)

	return cfg
}

func applyEnvOverrides(cfg *Config, env map[string]string) {
	overrideString(&cfg.Destination.Endpoint, env, "VOYAGO_GEOCODING_ENDPOINT")
	overrideString(&cfg.Weather.Endpoint, env, "VOYAGO_WEATHER_ENDPOINT")

	overrideString(&cfg.Flights.Endpoint, env, "VOYAGO_FLIGHTS_ENDPOINT")
	overrideString(&cfg.Flights.TokenEndpoint, env, "VOYAGO_FLIGHTS_TOKEN_ENDPOINT")
	overrideString(&cfg.Flights.APIKey, env, "VOYAGO_FLIGHTS_API_KEY")
	overrideString(&cfg.Flights.APISecret, env, "VOYAGO_FLIGHTS_API_SECRET")

	overrideString(&cfg.Places.Endpoint, env, "VOYAGO_PLACES_ENDPOINT")
	overrideString(&cfg.Places.APIKey, env, "VOYAGO_PLACES_API_KEY")

	overrideString(&cfg.Redis.Address, env, "VOYAGO_REDIS_ADDRESS")
	overrideString(&cfg.Redis.Password, env, "VOYAGO_REDIS_PASSWORD")
}

func overrideString(target *string, env map[string]string, key string) {
	if env[key] != "" {
		*target = env[key]
	}
}
