package mock_generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"generate-storyboard-api/application/ports/outbound"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
	"time"
)

var errScriptedImageFailure = errors.New("scripted image failure")

var scenePalette = []color.RGBA{
	{R: 0xF4, G: 0xD3, B: 0x5E, A: 0xFF},
	{R: 0xA8, G: 0xD8, B: 0xB9, A: 0xFF},
	{R: 0x9E, G: 0xC9, B: 0xE2, A: 0xFF},
	{R: 0xE8, G: 0xA8, B: 0x98, A: 0xFF},
	{R: 0xC9, G: 0xB1, B: 0xD6, A: 0xFF},
}

type scriptedScene struct {
	Scene     int    `json:"scene"`
	Narration string `json:"narration"`
}

type scriptedSceneScript struct {
	scenes []MockScene
	images *scriptedImageSynthesis
}

var _ outbound.SceneScriptPort = (*scriptedSceneScript)(nil)

func newScriptedSceneScript(scenes []MockScene, images *scriptedImageSynthesis) *scriptedSceneScript {
	return &scriptedSceneScript{
		scenes: scenes,
		images: images,
	}
}

func (s *scriptedSceneScript) Generate(_ context.Context, _ string) (string, error) {
	s.images.rewind()

	drafts := make([]scriptedScene, 0, len(s.scenes))
	for i, scene := range s.scenes {
		drafts = append(drafts, scriptedScene{Scene: i + 1, Narration: scene.Narration})
	}

	payload, err := json.Marshal(struct {
		Scenes []scriptedScene `json:"scenes"`
	}{Scenes: drafts})
	if err != nil {
		return "", err
	}

	return string(payload), nil
}

type scriptedImageSynthesis struct {
	mu     sync.Mutex
	cursor int
	scenes []MockScene
}

var _ outbound.ImageSynthesisPort = (*scriptedImageSynthesis)(nil)

func newScriptedImageSynthesis(scenes []MockScene) *scriptedImageSynthesis {
	return &scriptedImageSynthesis{
		scenes: scenes,
	}
}

func (s *scriptedImageSynthesis) rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = 0
}

func (s *scriptedImageSynthesis) Generate(ctx context.Context, _ string) ([]byte, error) {
	s.mu.Lock()
	index := s.cursor
	s.cursor++
	s.mu.Unlock()

	var scene MockScene
	if index < len(s.scenes) {
		scene = s.scenes[index]
	}

	if scene.ImageDelayMs > 0 {
		select {
		case <-time.After(time.Duration(scene.ImageDelayMs) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if scene.FailImage {
		return nil, errScriptedImageFailure
	}

	return placeholderImage(index)
}

func placeholderImage(index int) ([]byte, error) {
	shade := scenePalette[index%len(scenePalette)]
	canvas := image.NewRGBA(image.Rect(0, 0, 256, 256))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: shade}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
