package controllers

import (
	"context"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/application/services"
	"generate-storyboard-api/domain"
	"generate-storyboard-api/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
)

type StoryboardController interface {
	GenerateStoryboard(c *gin.Context)
	CurrentStoryboard(c *gin.Context)
	CurrentScene(c *gin.Context)
	NextScene(c *gin.Context)
	PrevScene(c *gin.Context)
	StreamSnapshots(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyboardController struct {
	logger        outbound.LoggerPort
	workerPool    outbound.TaskDispatcher
	orchestrator  inbound.StoryboardOrchestrator
	navigation    *services.NavigationController
	streamHandler http.HandlerFunc
}

func NewStoryboardController(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	orchestrator inbound.StoryboardOrchestrator,
	navigation *services.NavigationController,
	streamHandler http.HandlerFunc,
) StoryboardController {
	return &storyboardController{
		logger:        logger,
		workerPool:    workerPool,
		orchestrator:  orchestrator,
		navigation:    navigation,
		streamHandler: streamHandler,
	}
}

func (s *storyboardController) GenerateStoryboard(c *gin.Context) {
	var generateRequest dto.GenerateStoryboardRequest
	if err := c.ShouldBindJSON(&generateRequest); err != nil {
		err = c.AbortWithError(400, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	if err := domain.ValidateConcept(generateRequest.Concept); err != nil {
		c.JSON(422, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if s.orchestrator.Busy() {
		s.logger.WarnWithFields("Rejecting generation request, a run is in progress", map[string]interface{}{
			"concept": generateRequest.Concept,
		})
		c.JSON(409, dto.ErrorResponse{Error: domain.ErrGenerationInProgress.Error()})
		return
	}

	concept := generateRequest.Concept
	err := s.workerPool.Submit(func() {
		if err := s.orchestrator.GenerateStoryboard(context.Background(), concept); err != nil {
			s.logger.Error(err, "Storyboard generation run failed")
		}
	})
	if err != nil {
		err = c.AbortWithError(500, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	c.JSON(202, dto.GenerateStoryboardResponse{Status: "accepted"})
}

func (s *storyboardController) CurrentStoryboard(c *gin.Context) {
	c.JSON(200, s.orchestrator.Snapshot())
}

func (s *storyboardController) CurrentScene(c *gin.Context) {
	snapshot := s.orchestrator.Snapshot()
	if len(snapshot.Scenes) == 0 {
		c.JSON(404, dto.ErrorResponse{Error: "no storyboard scenes available"})
		return
	}

	cursor := s.navigation.Current()
	c.JSON(200, dto.CurrentSceneResponse{
		Cursor: cursor,
		Scene:  snapshot.Scenes[cursor],
	})
}

func (s *storyboardController) NextScene(c *gin.Context) {
	c.JSON(200, dto.CursorResponse{Cursor: s.navigation.Next()})
}

func (s *storyboardController) PrevScene(c *gin.Context) {
	c.JSON(200, dto.CursorResponse{Cursor: s.navigation.Prev()})
}

func (s *storyboardController) StreamSnapshots(c *gin.Context) {
	s.streamHandler(c.Writer, c.Request)
}

func (s *storyboardController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (s *storyboardController) RegisterRoutes(g *gin.Engine) {
	g.POST("/storyboards", s.GenerateStoryboard)
	g.GET("/storyboards/current", s.CurrentStoryboard)
	g.GET("/storyboards/current/scene", s.CurrentScene)
	g.POST("/storyboards/navigation/next", s.NextScene)
	g.POST("/storyboards/navigation/prev", s.PrevScene)
	g.GET("/storyboards/events", s.StreamSnapshots)
	g.GET("/health", s.Health)
}
