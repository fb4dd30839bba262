package services

import (
	"context"
	"generate-storyboard-api/application/ports/inbound"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/domain"
	"github.com/stretchr/testify/mock"
	"sync"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

var _ outbound.LoggerPort = noopLogger{}

type mockSceneScript struct {
	mock.Mock
}

func (m *mockSceneScript) Generate(ctx context.Context, concept string) (string, error) {
	ret := m.Called(ctx, concept)
	return ret.String(0), ret.Error(1)
}

var _ outbound.SceneScriptPort = (*mockSceneScript)(nil)

type mockImageSynthesis struct {
	mock.Mock
}

func (m *mockImageSynthesis) Generate(ctx context.Context, prompt string) ([]byte, error) {
	ret := m.Called(ctx, prompt)
	var payload []byte
	if ret.Get(0) != nil {
		payload = ret.Get(0).([]byte)
	}
	return payload, ret.Error(1)
}

var _ outbound.ImageSynthesisPort = (*mockImageSynthesis)(nil)

type mockNarrator struct {
	mock.Mock
}

func (m *mockNarrator) Narrate(ctx context.Context, concept string) (domain.Storyboard, error) {
	ret := m.Called(ctx, concept)
	var storyboard domain.Storyboard
	if ret.Get(0) != nil {
		storyboard = ret.Get(0).(domain.Storyboard)
	}
	return storyboard, ret.Error(1)
}

var _ inbound.SceneNarratorPort = (*mockNarrator)(nil)

type mockIllustrator struct {
	mock.Mock
}

func (m *mockIllustrator) Illustrate(ctx context.Context, narration string) string {
	ret := m.Called(ctx, narration)
	return ret.String(0)
}

var _ inbound.SceneIllustratorPort = (*mockIllustrator)(nil)

type recordingPublisher struct {
	mu        sync.Mutex
	snapshots []domain.StoryboardSnapshot
}

func (p *recordingPublisher) Publish(snapshot domain.StoryboardSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, snapshot)
}

func (p *recordingPublisher) Snapshots() []domain.StoryboardSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.StoryboardSnapshot, len(p.snapshots))
	copy(out, p.snapshots)
	return out
}

var _ outbound.SnapshotPublisherPort = (*recordingPublisher)(nil)

func fiveNarrations() []string {
	return []string{
		"Einstein finds a shiny red kite tangled in the old oak tree.",
		"He climbs a wobbly ladder while the wind tickles his fluffy hair.",
		"A curious squirrel hands him the string with a tiny bow.",
		"Together they untangle the kite, one gentle knot at a time.",
		"The kite soars over the meadow and everyone cheers loudly.",
	}
}

func fiveSceneStoryboard() domain.Storyboard {
	storyboard := make(domain.Storyboard, 0, domain.SceneCount)
	for _, narration := range fiveNarrations() {
		storyboard = append(storyboard, domain.NewScene(narration))
	}
	return storyboard
}
