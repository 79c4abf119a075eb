package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"local"`
	Log   LogConfig   `yaml:"log"`
	Stolo StoloConfig `yaml:"stolo"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// StoloConfig describes the BMW stock-locator data service endpoint.
type StoloConfig struct {
	NewCarURL  string        `yaml:"new_car_url" env:"STOLO_NEW_CAR_URL" env-default:"https://stolo-data-service.prod.stolo.eu-central-1.aws.bmw.cloud/vehiclesearch/search/fr-fr/stocklocator"`
	UsedCarURL string        `yaml:"used_car_url" env:"STOLO_USED_CAR_URL" env-default:"https://stolo-data-service.prod.stolo.eu-central-1.aws.bmw.cloud/vehiclesearch/search/fr-fr/stocklocator_uc"`
	Brand      string        `yaml:"brand" env:"STOLO_BRAND" env-default:"BMW"`
	// PageSize is the hard maxResults cap enforced by the endpoint.
	PageSize int           `yaml:"page_size" env:"STOLO_PAGE_SIZE" env-default:"50"`
	Timeout  time.Duration `yaml:"timeout" env:"STOLO_TIMEOUT" env-default:"10s"`
	// DetailsURL is the public stock-locator base used to build listing links.
	DetailsURL string `yaml:"details_url" env:"STOLO_DETAILS_URL" env-default:"https://www.bmw.fr/fr-fr/sl"`
}

// MustLoad reads the optional yaml config named by CONFIG_PATH, falling back
// to environment variables and defaults when no file is configured.
func MustLoad() *Config {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("cannot read the config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}
