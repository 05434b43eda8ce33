package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

func TestProfileUpdate_EmptyName(t *testing.T) {
	s := NewProfileService(&stubGateway{})
	if _, err := s.Update(context.Background(), store.New(), testUser(), ProfileUpdateInput{FullName: "   "}); !errors.Is(err, ErrEmptyFullName) {
		t.Fatalf("expected ErrEmptyFullName, got %v", err)
	}
}

func TestProfileUpdate_WritesAndRefreshesCache(t *testing.T) {
	dept := "Design"
	var gotID string
	var gotUpd gateway.ProfileUpdate
	gw := &stubGateway{
		updateProfileFn: func(ctx context.Context, id string, upd gateway.ProfileUpdate) (*domain.Profile, error) {
			gotID, gotUpd = id, upd
			return &domain.Profile{ID: id, FullName: *upd.FullName, Department: upd.Department}, nil
		},
	}
	s := NewProfileService(gw)
	st := store.New()
	st.SetUser(testUser())

	updated, err := s.Update(context.Background(), st, testUser(), ProfileUpdateInput{
		FullName:   "  Dana R. ",
		Department: &dept,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotID != "u1" || gotUpd.FullName == nil || *gotUpd.FullName != "Dana R." {
		t.Fatalf("backend write wrong: %s %+v", gotID, gotUpd)
	}
	if updated.FullName != "Dana R." {
		t.Fatalf("fresh row not returned: %+v", updated)
	}
	if u := st.User(); u == nil || u.FullName != "Dana R." || u.Department == nil || *u.Department != "Design" {
		t.Fatalf("cache not refreshed: %+v", u)
	}
}

func TestProfileUpdate_FailureLeavesCache(t *testing.T) {
	gw := &stubGateway{
		updateProfileFn: func(ctx context.Context, id string, upd gateway.ProfileUpdate) (*domain.Profile, error) {
			return nil, errors.New("backend down")
		},
	}
	s := NewProfileService(gw)
	st := store.New()
	st.SetUser(testUser())

	if _, err := s.Update(context.Background(), st, testUser(), ProfileUpdateInput{FullName: "New"}); err == nil {
		t.Fatalf("expected error")
	}
	if u := st.User(); u == nil || u.FullName != "U One" {
		t.Fatalf("cache must keep the old profile: %+v", u)
	}
}
