package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	ProjectID      string `envconfig:"PROJECT_ID"`
	DryRun         bool   `envconfig:"DRY_RUN" default:"false"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	Port           string `envconfig:"PORT" default:"8080"`
}

const APP_CONF_PREFIX = "BILLING_GUARD"

func LoadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process(APP_CONF_PREFIX, &conf)

	return conf, err
}
