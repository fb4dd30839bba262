package config

import (
	"github.com/kelseyhightower/envconfig"
	"time"
)

type IllustrationConfig struct {
	ApiUrl            string        `envconfig:"ILLUSTRATION_API_URL" default:"https://api.openai.com/v1"`
	ApiKey            string        `envconfig:"ILLUSTRATION_API_KEY" required:"true"`
	Model             string        `envconfig:"ILLUSTRATION_MODEL" default:"dall-e-3"`
	Size              string        `envconfig:"ILLUSTRATION_SIZE" default:"1024x1024"`
	Timeout           time.Duration `envconfig:"ILLUSTRATION_TIMEOUT" default:"120s"`
	RequestsPerMinute int           `envconfig:"ILLUSTRATION_REQUESTS_PER_MINUTE" default:"0"`
}

func GetIllustrationConfig() (*IllustrationConfig, error) {
	var cfg IllustrationConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
