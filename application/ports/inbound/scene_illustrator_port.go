package inbound

import "context"

type SceneIllustratorPort interface {
	Illustrate(ctx context.Context, narration string) string
}
