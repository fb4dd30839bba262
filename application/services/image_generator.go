package services

import (
	"context"
	"encoding/base64"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"golang.org/x/time/rate"
)

const (
	characterDescriptor = "A friendly cartoon Albert Einstein with fluffy white hair, a bushy mustache, kind eyes and a cozy brown cardigan"
	styleDescriptor     = "soft watercolor children's book illustration, warm gentle colors, simple rounded shapes"
	imageDataURIPrefix  = "data:image/png;base64,"
)

type sceneIllustrator struct {
	logger         outbound.LoggerPort
	imageSynthesis outbound.ImageSynthesisPort
	limiter        *rate.Limiter
}

func NewSceneIllustrator(logger outbound.LoggerPort, imageSynthesis outbound.ImageSynthesisPort,
	limiter *rate.Limiter) inbound.SceneIllustratorPort {
	return &sceneIllustrator{
		logger:         logger,
		imageSynthesis: imageSynthesis,
		limiter:        limiter,
	}
}

func (s *sceneIllustrator) Illustrate(ctx context.Context, narration string) string {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.ErrorWithFields(err, "Skipping scene illustration, rate limiter wait aborted", map[string]interface{}{
				"narration": narration,
			})
			return ""
		}
	}

	prompt := characterDescriptor + ", " + styleDescriptor + ". Scene: " + narration

	payload, err := s.imageSynthesis.Generate(ctx, prompt)
	if err != nil {
		s.logger.ErrorWithFields(err, "Skipping scene illustration, image synthesis failed", map[string]interface{}{
			"narration": narration,
		})
		return ""
	}

	return imageDataURIPrefix + base64.StdEncoding.EncodeToString(payload)
}
