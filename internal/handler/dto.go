package handler

import "github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"

type ResultResponse struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Region   string `json:"region"`
}

func toClassifyResponse(results []model.ArticleResult) []ResultResponse {
	res := make([]ResultResponse, len(results))
	for i, r := range results {
		res[i] = ResultResponse{
			ID:       r.ID,
			Summary:  r.Summary,
			Category: r.Category,
			Region:   r.Region,
		}
	}
	return res
}
