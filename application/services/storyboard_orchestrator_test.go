package services

import (
	"context"
	"fmt"
	"generate-storyboard-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func sceneImageURL(index int) string {
	return fmt.Sprintf("data:image/png;base64,aW1hZ2Ul%d", index)
}

func TestGenerateStoryboardPublishesSnapshotsInOrder(t *testing.T) {
	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, "a trip to the moon").
		Return(fiveSceneStoryboard(), nil).Once()

	illustrator := &mockIllustrator{}
	for i, narration := range fiveNarrations() {
		illustrator.On("Illustrate", mock.Anything, narration).Return(sceneImageURL(i)).Once()
	}

	publisher := &recordingPublisher{}
	navigation := NewNavigationController()
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, navigation)

	err := orchestrator.GenerateStoryboard(context.Background(), "a trip to the moon")
	require.NoError(t, err)

	snapshots := publisher.Snapshots()
	require.Len(t, snapshots, domain.SceneCount+1)

	textOnly := snapshots[0]
	assert.Equal(t, domain.PhaseImaging, textOnly.Phase)
	assert.True(t, textOnly.Busy)
	require.Len(t, textOnly.Scenes, domain.SceneCount)
	for _, scene := range textOnly.Scenes {
		assert.True(t, scene.ImageLoading)
		assert.Empty(t, scene.ImageURL)
	}

	for i := 1; i < len(snapshots); i++ {
		for j, scene := range snapshots[i].Scenes {
			if j < i {
				assert.False(t, scene.ImageLoading, "snapshot %d scene %d should be resolved", i, j)
				assert.Equal(t, sceneImageURL(j), scene.ImageURL)
			} else {
				assert.True(t, scene.ImageLoading, "snapshot %d scene %d should still be loading", i, j)
				assert.Empty(t, scene.ImageURL)
			}
		}
	}

	assert.Equal(t, domain.PhaseCompleted, orchestrator.Phase())
	assert.False(t, orchestrator.Busy())
	assert.Empty(t, orchestrator.LastError())
	narrator.AssertExpectations(t)
	illustrator.AssertExpectations(t)
}

func TestGenerateStoryboardRejectsBlankConcept(t *testing.T) {
	narrator := &mockNarrator{}
	illustrator := &mockIllustrator{}
	publisher := &recordingPublisher{}
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, NewNavigationController())

	err := orchestrator.GenerateStoryboard(context.Background(), "   \t ")

	assert.ErrorIs(t, err, domain.ErrConceptBlank)
	assert.Equal(t, domain.PhaseIdle, orchestrator.Phase())
	assert.False(t, orchestrator.Busy())
	assert.Empty(t, publisher.Snapshots())
	narrator.AssertNotCalled(t, "Narrate")
}

func TestGenerateStoryboardNarrationFailureIsFatal(t *testing.T) {
	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: upstream returned 500", domain.ErrNarrationFailed)).Once()

	illustrator := &mockIllustrator{}
	publisher := &recordingPublisher{}
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, NewNavigationController())

	err := orchestrator.GenerateStoryboard(context.Background(), "a trip to the moon")

	assert.ErrorIs(t, err, domain.ErrNarrationFailed)
	assert.Equal(t, domain.PhaseFailed, orchestrator.Phase())
	assert.False(t, orchestrator.Busy())
	assert.Empty(t, publisher.Snapshots())

	snapshot := orchestrator.Snapshot()
	assert.Empty(t, snapshot.Scenes)
	assert.Equal(t, domain.ErrNarrationFailed.Error(), snapshot.Error)
	illustrator.AssertNotCalled(t, "Illustrate")
}

func TestGenerateStoryboardIsolatesSceneImageFailure(t *testing.T) {
	const failing = 2

	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, mock.Anything).Return(fiveSceneStoryboard(), nil).Once()

	illustrator := &mockIllustrator{}
	for i, narration := range fiveNarrations() {
		url := sceneImageURL(i)
		if i == failing {
			url = ""
		}
		illustrator.On("Illustrate", mock.Anything, narration).Return(url).Once()
	}

	publisher := &recordingPublisher{}
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, NewNavigationController())

	err := orchestrator.GenerateStoryboard(context.Background(), "a rainy day")
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseCompleted, orchestrator.Phase())

	final := orchestrator.Snapshot()
	require.Len(t, final.Scenes, domain.SceneCount)
	for i, scene := range final.Scenes {
		assert.False(t, scene.ImageLoading, "scene %d", i)
		if i == failing {
			assert.Empty(t, scene.ImageURL)
		} else {
			assert.Equal(t, sceneImageURL(i), scene.ImageURL)
		}
	}
	illustrator.AssertExpectations(t)
}

func TestGenerateStoryboardRejectsOverlappingRuns(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, "first concept").Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(fiveSceneStoryboard(), nil).Once()

	illustrator := &mockIllustrator{}
	illustrator.On("Illustrate", mock.Anything, mock.Anything).Return("").Times(domain.SceneCount)

	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, &recordingPublisher{}, NewNavigationController())

	done := make(chan error, 1)
	go func() {
		done <- orchestrator.GenerateStoryboard(context.Background(), "first concept")
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("narration never started")
	}

	assert.True(t, orchestrator.Busy())
	err := orchestrator.GenerateStoryboard(context.Background(), "second concept")
	assert.ErrorIs(t, err, domain.ErrGenerationInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, orchestrator.Busy())
}

func TestGenerateStoryboardResetsStateBetweenRuns(t *testing.T) {
	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, "doomed concept").
		Return(nil, fmt.Errorf("%w: malformed script", domain.ErrNarrationFailed)).Once()
	narrator.On("Narrate", mock.Anything, "second concept").
		Return(fiveSceneStoryboard(), nil).Once()

	illustrator := &mockIllustrator{}
	illustrator.On("Illustrate", mock.Anything, mock.Anything).Return("").Times(domain.SceneCount)

	publisher := &recordingPublisher{}
	navigation := NewNavigationController()
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, navigation)

	require.Error(t, orchestrator.GenerateStoryboard(context.Background(), "doomed concept"))
	assert.NotEmpty(t, orchestrator.LastError())

	require.NoError(t, orchestrator.GenerateStoryboard(context.Background(), "second concept"))

	assert.Empty(t, orchestrator.LastError())
	assert.Equal(t, 0, navigation.Current())
	assert.Equal(t, domain.PhaseCompleted, orchestrator.Phase())

	snapshot := orchestrator.Snapshot()
	assert.Equal(t, "second concept", snapshot.Concept)
	assert.NotEmpty(t, snapshot.StoryboardID)
	require.Len(t, snapshot.Scenes, domain.SceneCount)

	navigation.Next()
	navigation.Next()
	require.Error(t, orchestrator.GenerateStoryboard(context.Background(), "   "))
	assert.Equal(t, 2, navigation.Current(), "rejected input must not move the cursor")
}

func TestSnapshotIsDecoupledFromLiveState(t *testing.T) {
	narrator := &mockNarrator{}
	narrator.On("Narrate", mock.Anything, mock.Anything).Return(fiveSceneStoryboard(), nil).Once()

	illustrator := &mockIllustrator{}
	for i, narration := range fiveNarrations() {
		illustrator.On("Illustrate", mock.Anything, narration).Return(sceneImageURL(i)).Once()
	}

	publisher := &recordingPublisher{}
	orchestrator := NewStoryboardOrchestrator(noopLogger{}, narrator, illustrator, publisher, NewNavigationController())

	require.NoError(t, orchestrator.GenerateStoryboard(context.Background(), "gardens"))

	snapshots := publisher.Snapshots()
	require.Len(t, snapshots, domain.SceneCount+1)
	for _, scene := range snapshots[0].Scenes {
		assert.True(t, scene.ImageLoading, "early snapshots must not see later merges")
		assert.Empty(t, scene.ImageURL)
	}
}
