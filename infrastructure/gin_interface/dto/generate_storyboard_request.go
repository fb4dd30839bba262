package dto

type GenerateStoryboardRequest struct {
	Concept string `json:"concept" binding:"required"`
}
