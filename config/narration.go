package config

import (
	"github.com/kelseyhightower/envconfig"
	"time"
)

type NarrationConfig struct {
	ApiUrl      string        `envconfig:"NARRATION_API_URL" default:"https://api.openai.com/v1"`
	ApiKey      string        `envconfig:"NARRATION_API_KEY" required:"true"`
	Model       string        `envconfig:"NARRATION_MODEL" default:"gpt-4o-mini"`
	Temperature float32       `envconfig:"NARRATION_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"NARRATION_TIMEOUT" default:"60s"`
}

func GetNarrationConfig() (*NarrationConfig, error) {
	var cfg NarrationConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
