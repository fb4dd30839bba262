package dto

import "generate-storyboard-api/domain"

type GenerateStoryboardResponse struct {
	Status string `json:"status"`
}

type CursorResponse struct {
	Cursor int `json:"cursor"`
}

type CurrentSceneResponse struct {
	Cursor int              `json:"cursor"`
	Scene  domain.SceneView `json:"scene"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
