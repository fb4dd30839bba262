package config

import "github.com/kelseyhightower/envconfig"

type GatewayConfig struct {
	Port    string `envconfig:"GATEWAY_PORT" default:"8080"`
	JwksUrl string `envconfig:"GATEWAY_JWKS_URL"`
}

func GetGatewayConfig() (*GatewayConfig, error) {
	var cfg GatewayConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
