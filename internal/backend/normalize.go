package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"tattooparlor/internal/domain"
	"tattooparlor/internal/pkg/utils"
	"tattooparlor/internal/schedule"
)

// artistPayload is an artist as the backend sends it, before normalisation.
type artistPayload struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Bio                  string          `json:"bio"`
	Specialties          json.RawMessage `json:"specialties"`
	Styles               json.RawMessage `json:"styles"`
	SocialMedia          json.RawMessage `json:"social_media"`
	YearsOfExperience    json.RawMessage `json:"years_of_experience"`
	Location             string          `json:"location"`
	ProfilePicture       string          `json:"profile_picture"`
	AvailabilitySchedule json.RawMessage `json:"availability_schedule"`
	Certifications       string          `json:"certifications"`
	Awards               string          `json:"awards"`
	AverageRating        *float64        `json:"average_rating"`
	IsActive             *bool           `json:"is_active"`
	CreatedBy            *int64          `json:"created_by"`
}

func normalizeArtist(p artistPayload) domain.Artist {
	// A malformed schedule comes back fully closed; the artist is still usable.
	sched, _ := schedule.ParseWeeklySchedule(p.AvailabilitySchedule)

	a := domain.Artist{
		ID:                   p.ID,
		Name:                 p.Name,
		Bio:                  p.Bio,
		Specialties:          textOrList(p.Specialties),
		Styles:               ParseStyles(p.Styles),
		SocialMedia:          ParseSocialMedia(p.SocialMedia),
		YearsOfExperience:    looseInt(p.YearsOfExperience),
		Location:             p.Location,
		ProfilePicture:       p.ProfilePicture,
		AvailabilitySchedule: sched,
		Certifications:       p.Certifications,
		Awards:               p.Awards,
		AverageRating:        p.AverageRating,
		IsActive:             true,
		CreatedBy:            p.CreatedBy,
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	return a
}

func decodeArtist(raw json.RawMessage) (*domain.Artist, error) {
	p, err := decodeOne[artistPayload](raw, "artist")
	if err != nil {
		return nil, err
	}
	a := normalizeArtist(*p)
	return &a, nil
}

func decodeArtists(raw json.RawMessage) ([]domain.Artist, error) {
	ps, err := decodeList[artistPayload](raw, "artists")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Artist, 0, len(ps))
	for _, p := range ps {
		out = append(out, normalizeArtist(p))
	}
	return out, nil
}

// ParseSocialMedia accepts a platform->URL object, a JSON string holding one,
// or the single-quoted pseudo-JSON older records carry. Keys are lower-cased
// and empty URLs dropped. Anything else yields an empty map.
func ParseSocialMedia(raw json.RawMessage) map[string]string {
	out := map[string]string{}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return out
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return out
		}
		trimmed = []byte(inner)
		if !json.Valid(trimmed) {
			trimmed = []byte(strings.ReplaceAll(inner, "'", `"`))
		}
	}

	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return out
	}
	for k, v := range obj {
		url, ok := v.(string)
		if !ok {
			continue
		}
		url = strings.TrimSpace(url)
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" || url == "" {
			continue
		}
		out[key] = url
	}
	return out
}

// ParseStyles accepts a JSON array of strings or a comma-separated string.
func ParseStyles(raw json.RawMessage) []string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return utils.CleanList(list)
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return utils.SplitList(s)
	}
	return []string{}
}

func textOrList(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return strings.Join(utils.CleanList(list), ", ")
	}
	return ""
}

func looseInt(raw json.RawMessage) int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}
