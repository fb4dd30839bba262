package domain

import "strings"

const SceneCount = 5

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseNarrating Phase = "narrating"
	PhaseImaging   Phase = "imaging"
	PhaseCompleted Phase = "completed"
	PhaseFailed    Phase = "failed"
)

func (p Phase) Busy() bool {
	return p == PhaseNarrating || p == PhaseImaging
}

type Scene struct {
	Narration    string
	ImageURL     string
	ImageLoading bool
}

func NewScene(narration string) Scene {
	return Scene{
		Narration:    narration,
		ImageLoading: true,
	}
}

type Storyboard []Scene

func (s Storyboard) Clone() Storyboard {
	if s == nil {
		return nil
	}
	clone := make(Storyboard, len(s))
	copy(clone, s)
	return clone
}

func (s Storyboard) Views() []SceneView {
	views := make([]SceneView, 0, len(s))
	for i, scene := range s {
		views = append(views, SceneView{
			Index:        i,
			Narration:    scene.Narration,
			ImageURL:     scene.ImageURL,
			ImageLoading: scene.ImageLoading,
		})
	}
	return views
}

type SceneView struct {
	Index        int    `json:"index"`
	Narration    string `json:"narration"`
	ImageURL     string `json:"image_url,omitempty"`
	ImageLoading bool   `json:"image_loading"`
}

type StoryboardSnapshot struct {
	StoryboardID string      `json:"storyboard_id"`
	Concept      string      `json:"concept"`
	Phase        Phase       `json:"phase"`
	Busy         bool        `json:"busy"`
	Error        string      `json:"error,omitempty"`
	Scenes       []SceneView `json:"scenes"`
}

func ValidateConcept(concept string) error {
	if strings.TrimSpace(concept) == "" {
		return ErrConceptBlank
	}
	return nil
}
