package outbound

import "context"

type SceneScriptPort interface {
	Generate(ctx context.Context, concept string) (string, error)
}
