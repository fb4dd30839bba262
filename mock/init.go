package mock_generator

import (
	"fmt"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/application/services"
	"generate-storyboard-api/domain"
	"github.com/gin-gonic/gin"
)

const storyboardFile = "mock/storyboard.json"

func Init(g *gin.Engine, workerPool outbound.TaskDispatcher, publisher outbound.SnapshotPublisherPort,
	navigation *services.NavigationController, logger outbound.LoggerPort) error {
	reader := NewFileStoryboardReader(logger)
	script, err := reader.Read(storyboardFile)
	if err != nil {
		return err
	}
	if len(script.Scenes) != domain.SceneCount {
		return fmt.Errorf("scripted storyboard has %d scenes, want %d", len(script.Scenes), domain.SceneCount)
	}

	images := newScriptedImageSynthesis(script.Scenes)
	narrator := services.NewNarrationGenerator(logger, newScriptedSceneScript(script.Scenes, images))
	illustrator := services.NewSceneIllustrator(logger, images, nil)
	orchestrator := services.NewStoryboardOrchestrator(logger, narrator, illustrator, publisher, navigation)

	mockController := NewMockStoryboardController(logger, workerPool, orchestrator, script.Concept)
	mockController.RegisterRoutes(g)

	return nil
}
