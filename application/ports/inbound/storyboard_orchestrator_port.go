package inbound

import (
	"context"
	"generate-storyboard-api/domain"
)

type StoryboardOrchestrator interface {
	GenerateStoryboard(ctx context.Context, concept string) error
	Snapshot() domain.StoryboardSnapshot
	Busy() bool
	Phase() domain.Phase
	LastError() string
}
