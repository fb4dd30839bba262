package adapters

import (
	"context"
	"fmt"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/config"
	"generate-storyboard-api/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"net/http"
	"time"
)

const sceneScriptSchemaName = "storyboard_scene_script"

var (
	narrationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "narration_requests_total",
		Help: "Narration script requests by model and status.",
	}, []string{"model", "status"})
	narrationRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "narration_request_duration_seconds",
		Help:    "Duration of narration script requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})
)

type sceneScriptGenerator struct {
	logger          outbound.LoggerPort
	client          *openai.Client
	narrationConfig *config.NarrationConfig
}

func NewSceneScriptGenerator(narrationConfig *config.NarrationConfig, logger outbound.LoggerPort) outbound.SceneScriptPort {
	clientConfig := openai.DefaultConfig(narrationConfig.ApiKey)
	clientConfig.BaseURL = narrationConfig.ApiUrl
	clientConfig.HTTPClient = &http.Client{Timeout: narrationConfig.Timeout}

	return &sceneScriptGenerator{
		logger:          logger,
		client:          openai.NewClientWithConfig(clientConfig),
		narrationConfig: narrationConfig,
	}
}

func (s *sceneScriptGenerator) Generate(ctx context.Context, concept string) (string, error) {
	start := time.Now()

	res, err := s.client.CreateChatCompletion(ctx, s.createRequest(concept))
	narrationRequestDuration.WithLabelValues(s.narrationConfig.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		narrationRequestsTotal.WithLabelValues(s.narrationConfig.Model, "error").Inc()
		s.logger.Error(err, "Failed to fetch the scene script")
		return "", err
	}

	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		narrationRequestsTotal.WithLabelValues(s.narrationConfig.Model, "empty").Inc()
		return "", fmt.Errorf("scene script response contained no choices")
	}

	narrationRequestsTotal.WithLabelValues(s.narrationConfig.Model, "success").Inc()
	s.logger.InfoWithFields("Fetched scene script", map[string]interface{}{
		"prompt_tokens":     res.Usage.PromptTokens,
		"completion_tokens": res.Usage.CompletionTokens,
	})

	return res.Choices[0].Message.Content, nil
}

func (s *sceneScriptGenerator) createRequest(concept string) openai.ChatCompletionRequest {
	systemPrompt := fmt.Sprintf("You are a storyteller for six year old children.\n"+
		"Split a story about the given concept into exactly %d scenes.\n"+
		"Each scene narration:\n"+
		"- Should be 2-3 short sentences\n"+
		"- Should use simple, warm words a six year old understands\n"+
		"- Should continue from the previous scene so the story flows\n"+
		"- Should star the same friendly Einstein character in every scene", domain.SceneCount)

	schema := sceneScriptSchema()

	return openai.ChatCompletionRequest{
		Model:       s.narrationConfig.Model,
		Temperature: s.narrationConfig.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: concept},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   sceneScriptSchemaName,
				Schema: &schema,
				Strict: true,
			},
		},
	}
}

func sceneScriptSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"scenes": {
				Type:        jsonschema.Array,
				Description: fmt.Sprintf("Exactly %d scenes in story order.", domain.SceneCount),
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"scene": {
							Type:        jsonschema.Integer,
							Description: "Position of the scene in the story, starting at 1.",
						},
						"narration": {
							Type:        jsonschema.String,
							Description: "2-3 short sentences for a six year old.",
						},
					},
					Required:             []string{"scene", "narration"},
					AdditionalProperties: false,
				},
			},
		},
		Required:             []string{"scenes"},
		AdditionalProperties: false,
	}
}
