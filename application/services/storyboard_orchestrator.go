package services

import (
	"context"
	"errors"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/domain"
	"github.com/google/uuid"
	"sync"
)

type storyboardOrchestrator struct {
	mu           sync.Mutex
	phase        domain.Phase
	storyboard   domain.Storyboard
	storyboardID string
	concept      string
	lastErr      error

	logger      outbound.LoggerPort
	narrator    inbound.SceneNarratorPort
	illustrator inbound.SceneIllustratorPort
	publisher   outbound.SnapshotPublisherPort
	navigation  *NavigationController
}

func NewStoryboardOrchestrator(logger outbound.LoggerPort, narrator inbound.SceneNarratorPort,
	illustrator inbound.SceneIllustratorPort, publisher outbound.SnapshotPublisherPort,
	navigation *NavigationController) inbound.StoryboardOrchestrator {
	return &storyboardOrchestrator{
		phase:       domain.PhaseIdle,
		logger:      logger,
		narrator:    narrator,
		illustrator: illustrator,
		publisher:   publisher,
		navigation:  navigation,
	}
}

func (o *storyboardOrchestrator) GenerateStoryboard(ctx context.Context, concept string) error {
	if err := domain.ValidateConcept(concept); err != nil {
		return err
	}

	storyboardID, err := o.begin(concept)
	if err != nil {
		return err
	}

	o.logger.InfoWithFields("Starting storyboard narration", map[string]interface{}{
		"storyboard_id": storyboardID,
		"concept":       concept,
	})

	storyboard, err := o.narrator.Narrate(ctx, concept)
	if err != nil {
		o.fail(err)
		o.logger.ErrorWithFields(err, "Storyboard narration failed", map[string]interface{}{
			"storyboard_id": storyboardID,
		})
		return err
	}

	o.install(storyboard)
	o.publishSnapshot()

	for i, scene := range storyboard {
		imageURL := o.illustrator.Illustrate(ctx, scene.Narration)
		o.mergeImage(i, imageURL)
		o.publishSnapshot()
	}

	o.complete()
	o.logger.InfoWithFields("Storyboard generation completed", map[string]interface{}{
		"storyboard_id": storyboardID,
	})

	return nil
}

func (o *storyboardOrchestrator) Snapshot() domain.StoryboardSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return domain.StoryboardSnapshot{
		StoryboardID: o.storyboardID,
		Concept:      o.concept,
		Phase:        o.phase,
		Busy:         o.phase.Busy(),
		Error:        userFacingError(o.lastErr),
		Scenes:       o.storyboard.Views(),
	}
}

func (o *storyboardOrchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase.Busy()
}

func (o *storyboardOrchestrator) Phase() domain.Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *storyboardOrchestrator) LastError() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return userFacingError(o.lastErr)
}

func (o *storyboardOrchestrator) begin(concept string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase.Busy() {
		return "", domain.ErrGenerationInProgress
	}
	o.storyboard = nil
	o.storyboardID = uuid.NewString()
	o.concept = concept
	o.lastErr = nil
	o.phase = domain.PhaseNarrating
	o.navigation.Reset(0)
	return o.storyboardID, nil
}

func (o *storyboardOrchestrator) fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.storyboard = nil
	o.lastErr = err
	o.phase = domain.PhaseFailed
}

func (o *storyboardOrchestrator) install(storyboard domain.Storyboard) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.storyboard = storyboard
	o.phase = domain.PhaseImaging
	o.navigation.Reset(len(storyboard))
}

func (o *storyboardOrchestrator) mergeImage(index int, imageURL string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if index < 0 || index >= len(o.storyboard) {
		return
	}
	o.storyboard[index].ImageURL = imageURL
	o.storyboard[index].ImageLoading = false
}

func (o *storyboardOrchestrator) complete() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = domain.PhaseCompleted
}

func (o *storyboardOrchestrator) publishSnapshot() {
	o.publisher.Publish(o.Snapshot())
}

func userFacingError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrNarrationFailed):
		return domain.ErrNarrationFailed.Error()
	default:
		return err.Error()
	}
}
