package mock_generator

type MockScene struct {
	Narration    string `json:"narration"`
	ImageDelayMs int    `json:"image_delay_ms"`
	FailImage    bool   `json:"fail_image"`
}

type MockStoryboard struct {
	Concept string      `json:"concept"`
	Scenes  []MockScene `json:"scenes"`
}
