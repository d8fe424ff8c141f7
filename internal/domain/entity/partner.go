package entity

import (
	"time"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// Partner represents a partner listing shown on the portal
type Partner struct {
	ID          uint64
	Name        string
	URL         string
	LogoURL     string
	Description string
	CreatedAt   time.Time
}

// NewPartner creates a new partner listing
func NewPartner(name, url, logoURL, description string, timeProvider coreport.TimeProvider) (*Partner, error) {
	if name == "" {
		return nil, errs.ErrMissingFields
	}

	return &Partner{
		Name:        name,
		URL:         url,
		LogoURL:     logoURL,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}
