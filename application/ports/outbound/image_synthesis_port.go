package outbound

import "context"

type ImageSynthesisPort interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
