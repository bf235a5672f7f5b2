package domain

import "tattooparlor/internal/schedule"

type Artist struct {
	ID                   int64                   `json:"id"`
	Name                 string                  `json:"name"`
	Bio                  string                  `json:"bio"`
	Specialties          string                  `json:"specialties"`
	Styles               []string                `json:"styles"`
	SocialMedia          map[string]string       `json:"social_media"`
	YearsOfExperience    int                     `json:"years_of_experience"`
	Location             string                  `json:"location,omitempty"`
	ProfilePicture       string                  `json:"profile_picture,omitempty"`
	AvailabilitySchedule schedule.WeeklySchedule `json:"availability_schedule"`
	Certifications       string                  `json:"certifications,omitempty"`
	Awards               string                  `json:"awards,omitempty"`
	AverageRating        *float64                `json:"average_rating,omitempty"`
	IsActive             bool                    `json:"is_active"`
	CreatedBy            *int64                  `json:"created_by,omitempty"`
}

// ArtistDashboard is the artist's landing payload.
type ArtistDashboard struct {
	ArtistDetails      *Artist        `json:"artist_details"`
	UpcomingBookings   []Booking      `json:"upcoming_bookings"`
	RecentReviews      []Review       `json:"recent_reviews"`
	PortfolioPreview   []GalleryPhoto `json:"portfolio_preview"`
	PerformanceMetrics map[string]any `json:"performance_metrics"`
}
