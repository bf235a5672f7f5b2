package review

import "tattooparlor/internal/domain"

type CreateReviewRequest struct {
	StarRating int    `json:"star_rating" binding:"required"`
	ReviewText string `json:"review_text" binding:"required,max=2000"`
	PhotoURL   string `json:"photo_url" binding:"omitempty,url"`
}

type AddPhotoRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
	Caption  string `json:"caption" binding:"max=500"`
}

// ReviewSummary is the list plus the average the artist page shows.
type ReviewSummary struct {
	Reviews       []domain.Review `json:"reviews"`
	Count         int             `json:"count"`
	AverageRating float64         `json:"average_rating"`
}
