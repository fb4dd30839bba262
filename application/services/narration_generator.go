package services

import (
	"context"
	"encoding/json"
	"fmt"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/domain"
	"github.com/rs/zerolog/log"
	"strings"
)

type sceneScript struct {
	Scenes []sceneDraft `json:"scenes"`
}

type sceneDraft struct {
	Scene     int    `json:"scene"`
	Narration string `json:"narration"`
}

type narrationGenerator struct {
	logger          outbound.LoggerPort
	scriptGenerator outbound.SceneScriptPort
}

func NewNarrationGenerator(logger outbound.LoggerPort, scriptGenerator outbound.SceneScriptPort) inbound.SceneNarratorPort {
	return &narrationGenerator{
		logger:          logger,
		scriptGenerator: scriptGenerator,
	}
}

func (n *narrationGenerator) Narrate(ctx context.Context, concept string) (domain.Storyboard, error) {
	log.Debug().Msg("Requesting scene script")

	raw, err := n.scriptGenerator.Generate(ctx, concept)
	if err != nil {
		n.logger.ErrorWithFields(err, "Scene script request failed", map[string]interface{}{
			"concept": concept,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrNarrationFailed, err)
	}

	script, err := parseSceneScript(raw)
	if err != nil {
		n.logger.ErrorWithFields(err, "Discarding malformed scene script", map[string]interface{}{
			"concept": concept,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrNarrationFailed, err)
	}

	storyboard := make(domain.Storyboard, 0, len(script.Scenes))
	for _, draft := range script.Scenes {
		storyboard = append(storyboard, domain.NewScene(draft.Narration))
	}

	return storyboard, nil
}

func parseSceneScript(raw string) (*sceneScript, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.DisallowUnknownFields()

	var script sceneScript
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse scene script: %v", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("scene script contains trailing content")
	}
	if len(script.Scenes) != domain.SceneCount {
		return nil, fmt.Errorf("scene script contains %d scenes, expected %d", len(script.Scenes), domain.SceneCount)
	}
	for i, draft := range script.Scenes {
		if strings.TrimSpace(draft.Narration) == "" {
			return nil, fmt.Errorf("scene %d narration is blank", i)
		}
	}

	return &script, nil
}
