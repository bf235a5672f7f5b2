package domain

const (
	MinStarRating = 1
	MaxStarRating = 5
)

type Review struct {
	ID         int64  `json:"id"`
	ArtistID   int64  `json:"artist_id"`
	StarRating int    `json:"star_rating"`
	ReviewText string `json:"review_text"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// GalleryPhoto is a portfolio image. ArtistName is only set on the public feed.
type GalleryPhoto struct {
	ID         int64  `json:"id"`
	ArtistID   int64  `json:"artist_id"`
	ImageURL   string `json:"image_url"`
	Caption    string `json:"caption,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
}
