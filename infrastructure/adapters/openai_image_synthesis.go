package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sashabaranov/go-openai"
	"net/http"
	"time"
)

var (
	illustrationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "illustration_requests_total",
		Help: "Illustration requests by model and status.",
	}, []string{"model", "status"})
	illustrationRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "illustration_request_duration_seconds",
		Help:    "Duration of illustration requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})
)

type imageSynthesizer struct {
	logger             outbound.LoggerPort
	client             *openai.Client
	illustrationConfig *config.IllustrationConfig
}

func NewImageSynthesizer(illustrationConfig *config.IllustrationConfig, logger outbound.LoggerPort) outbound.ImageSynthesisPort {
	clientConfig := openai.DefaultConfig(illustrationConfig.ApiKey)
	clientConfig.BaseURL = illustrationConfig.ApiUrl
	clientConfig.HTTPClient = &http.Client{Timeout: illustrationConfig.Timeout}

	return &imageSynthesizer{
		logger:             logger,
		client:             openai.NewClientWithConfig(clientConfig),
		illustrationConfig: illustrationConfig,
	}
}

func (i *imageSynthesizer) Generate(ctx context.Context, prompt string) ([]byte, error) {
	start := time.Now()

	res, err := i.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          i.illustrationConfig.Model,
		N:              1,
		Size:           i.illustrationConfig.Size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	illustrationRequestDuration.WithLabelValues(i.illustrationConfig.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		illustrationRequestsTotal.WithLabelValues(i.illustrationConfig.Model, "error").Inc()
		i.logger.Error(err, "Failed to fetch the illustration")
		return nil, err
	}

	if len(res.Data) == 0 {
		illustrationRequestsTotal.WithLabelValues(i.illustrationConfig.Model, "empty").Inc()
		return nil, fmt.Errorf("illustration response contained no images")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(res.Data[0].B64JSON)
	if err != nil {
		illustrationRequestsTotal.WithLabelValues(i.illustrationConfig.Model, "decode_error").Inc()
		i.logger.Error(err, "Failed to decode the illustration")
		return nil, err
	}
	if len(decodedImage) == 0 {
		illustrationRequestsTotal.WithLabelValues(i.illustrationConfig.Model, "empty").Inc()
		return nil, fmt.Errorf("illustration response contained an empty image")
	}

	illustrationRequestsTotal.WithLabelValues(i.illustrationConfig.Model, "success").Inc()

	return decodedImage, nil
}
