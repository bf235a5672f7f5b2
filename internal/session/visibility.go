package session

import "tattooparlor/internal/domain"

// Visibility holds UI flags derived from the user descriptor. It decides what
// to show; the backend still enforces every permission.
type Visibility struct {
	SignedIn         bool `json:"signed_in"`
	IsAdmin          bool `json:"is_admin"`
	IsArtist         bool `json:"is_artist"`
	CanSeeBookings   bool `json:"can_see_bookings"`
	CanManageArtists bool `json:"can_manage_artists"`
	CanManageGallery bool `json:"can_manage_gallery"`
	ShowCreateArtist bool `json:"show_create_artist"`
}

// VisibilityFor derives flags for sess, which may be nil for anonymous visitors.
func VisibilityFor(sess *Session) Visibility {
	if sess == nil {
		return Visibility{}
	}
	t := sess.User.UserType
	staff := t == domain.UserTypeArtist || t == domain.UserTypeAdmin
	return Visibility{
		SignedIn:         true,
		IsAdmin:          t == domain.UserTypeAdmin,
		IsArtist:         t == domain.UserTypeArtist,
		CanSeeBookings:   staff,
		CanManageArtists: staff,
		CanManageGallery: staff,
		ShowCreateArtist: sess.ShowCreateArtist,
	}
}

// CanEditArtist reports whether the edit controls for artist should show.
// Admins see them everywhere, artists only on records they created.
func CanEditArtist(sess *Session, artist domain.Artist) bool {
	if sess == nil {
		return false
	}
	switch sess.User.UserType {
	case domain.UserTypeAdmin:
		return true
	case domain.UserTypeArtist:
		return artist.CreatedBy != nil && *artist.CreatedBy == sess.User.ID
	}
	return false
}
