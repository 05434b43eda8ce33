// Package services – ProfileService
//
// The profile-edit view may change full name and department, nothing
// else; role flags and the email are owned by the backend.
package services

import (
	"context"
	"strings"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// ProfileUpdateInput carries the editable profile fields. A nil
// Department clears nothing; an empty non-nil one clears the column.
type ProfileUpdateInput struct {
	FullName   string
	Department *string
}

// ProfileService applies profile edits.
type ProfileService struct {
	GW gateway.Gateway
}

// NewProfileService builds a ProfileService over the given backend handle.
func NewProfileService(gw gateway.Gateway) *ProfileService {
	return &ProfileService{GW: gw}
}

// Update writes the editable fields of the signed-in user's profile and
// replaces the cached profile with the backend's fresh row.
func (s *ProfileService) Update(ctx context.Context, st *store.Store, user *domain.Profile, in ProfileUpdateInput) (*domain.Profile, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, ErrEmptyFullName
	}

	updated, err := s.GW.UpdateProfile(ctx, user.ID, gateway.ProfileUpdate{
		FullName:   &name,
		Department: in.Department,
	})
	if err != nil {
		return nil, err
	}
	st.SetUser(updated)
	return updated, nil
}
