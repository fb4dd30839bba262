package inbound

import (
	"context"
	"generate-storyboard-api/domain"
)

type SceneNarratorPort interface {
	Narrate(ctx context.Context, concept string) (domain.Storyboard, error)
}
