package dto

import (
	"time"

	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/entity"
)

// AdminRequest is the action-dispatched body of the /admin endpoint.
// All fields are flat scalars; which ones matter depends on the action.
type AdminRequest struct {
	Action string `json:"action"`

	// User moderation
	UserID  uint64 `json:"user_id"`
	IsAdmin *bool  `json:"is_admin"` // defaults to true when absent
	Points  int64  `json:"points"`

	// Music catalog
	Title    string `json:"title"`
	Game     string `json:"game"`
	URL      string `json:"url"`
	Duration int64  `json:"duration"`
	TrackID  uint64 `json:"track_id"`

	// Partner listings
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
	PartnerID   uint64 `json:"partner_id"`
}

// AdminFlag returns the requested admin flag value, defaulting to true
func (r *AdminRequest) AdminFlag() bool {
	if r.IsAdmin == nil {
		return true
	}
	return *r.IsAdmin
}

// UserRow is the moderation view of an account
type UserRow struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	BloodPoints int64      `json:"blood_points"`
	IsAdmin     bool       `json:"is_admin"`
	IsBanned    bool       `json:"is_banned"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// TrackRow is the catalog view of a music track
type TrackRow struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Game      string    `json:"game"`
	URL       string    `json:"url"`
	Duration  int64     `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

// PartnerRow is the listing view of a partner
type PartnerRow struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	LogoURL     string    `json:"logo_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminLogRow is one audit record joined with the actor's username
type AdminLogRow struct {
	ID         uint64    `json:"id"`
	AdminID    uint64    `json:"admin_id"`
	ActionType string    `json:"action_type"`
	TargetID   *uint64   `json:"target_id"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
	AdminName  string    `json:"admin_name"`
}

// NewUserRow converts a user entity to its moderation view
func NewUserRow(user *entity.User) UserRow {
	return UserRow{
		ID:          user.ID,
		Username:    user.Username,
		BloodPoints: user.BloodPoints,
		IsAdmin:     user.IsAdmin,
		IsBanned:    user.IsBanned,
		CreatedAt:   user.CreatedAt,
		LastLogin:   user.LastLogin,
	}
}

// NewTrackRow converts a track entity to its catalog view
func NewTrackRow(track *entity.MusicTrack) TrackRow {
	return TrackRow{
		ID:        track.ID,
		Title:     track.Title,
		Game:      track.Game,
		URL:       track.URL,
		Duration:  track.Duration,
		CreatedAt: track.CreatedAt,
	}
}

// NewPartnerRow converts a partner entity to its listing view
func NewPartnerRow(partner *entity.Partner) PartnerRow {
	return PartnerRow{
		ID:          partner.ID,
		Name:        partner.Name,
		URL:         partner.URL,
		LogoURL:     partner.LogoURL,
		Description: partner.Description,
		CreatedAt:   partner.CreatedAt,
	}
}

// NewAdminLogRow converts an audit entity to its log view
func NewAdminLogRow(action *entity.AdminAction) AdminLogRow {
	return AdminLogRow{
		ID:         action.ID,
		AdminID:    action.AdminID,
		ActionType: action.ActionType,
		TargetID:   action.TargetID,
		Details:    action.Details,
		CreatedAt:  action.CreatedAt,
		AdminName:  action.AdminName,
	}
}
