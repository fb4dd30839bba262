package mock_generator

import (
	"context"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/domain"
	"generate-storyboard-api/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type MockStoryboardController interface {
	GenerateStoryboard(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type mockStoryboardController struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	orchestrator inbound.StoryboardOrchestrator
	concept      string
}

func NewMockStoryboardController(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	orchestrator inbound.StoryboardOrchestrator, concept string) MockStoryboardController {
	return &mockStoryboardController{
		logger:       logger,
		workerPool:   workerPool,
		orchestrator: orchestrator,
		concept:      concept,
	}
}

func (m *mockStoryboardController) GenerateStoryboard(c *gin.Context) {
	if m.orchestrator.Busy() {
		c.JSON(409, dto.ErrorResponse{Error: domain.ErrGenerationInProgress.Error()})
		return
	}

	err := m.workerPool.Submit(func() {
		if err := m.orchestrator.GenerateStoryboard(context.Background(), m.concept); err != nil {
			m.logger.Error(err, "Scripted storyboard run failed")
		}
	})
	if err != nil {
		err = c.AbortWithError(500, err)
		if err != nil {
			m.logger.Error(err, "failed to abort with error")
		}
		return
	}

	c.JSON(202, dto.GenerateStoryboardResponse{Status: "accepted"})
}

func (m *mockStoryboardController) RegisterRoutes(g *gin.Engine) {
	g.POST("/mock/storyboards", m.GenerateStoryboard)
}
