package domain

type UserType string

const (
	UserTypeUser   UserType = "user"
	UserTypeArtist UserType = "artist"
	UserTypeAdmin  UserType = "admin"
)

func IsValidUserType(t UserType) bool {
	switch t {
	case UserTypeUser, UserTypeArtist, UserTypeAdmin:
		return true
	}
	return false
}

// UserDescriptor is what the backend returns on sign-in.
// It only drives visibility in the web tier.
type UserDescriptor struct {
	ID       int64    `json:"id"`
	UserType UserType `json:"user_type"`
}

type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	UserType UserType `json:"user_type"`
}

// Page is a paginated backend listing.
type Page[T any] struct {
	Items       []T `json:"items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}
