package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// ProfileHandler reads and writes the caller's public profile.
type ProfileHandler struct {
	store store.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(s store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// GetProfileInput identifies the caller.
type GetProfileInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
}

// PutProfileInput replaces the caller's profile fields.
type PutProfileInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
	Body   struct {
		Username    string `json:"username,omitempty" maxLength:"64" doc:"Public handle shown in search results" example:"planeswalker"`
		DisplayName string `json:"display_name,omitempty" maxLength:"128" doc:"Display name"`
	}
}

// ProfileOutput is the stored profile.
type ProfileOutput struct {
	Body domain.Profile
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	p, err := h.store.GetProfile(ctx, input.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("profile not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("getting profile failed: " + err.Error())
	}
	return &ProfileOutput{Body: *p}, nil
}

// PutProfile creates or updates the caller's profile.
func (h *ProfileHandler) PutProfile(ctx context.Context, input *PutProfileInput) (*ProfileOutput, error) {
	p := &domain.Profile{
		UserID:      input.UserID,
		Username:    strings.TrimSpace(input.Body.Username),
		DisplayName: strings.TrimSpace(input.Body.DisplayName),
	}
	if err := h.store.UpsertProfile(ctx, p); err != nil {
		return nil, huma.Error500InternalServerError("saving profile failed: " + err.Error())
	}
	return &ProfileOutput{Body: *p}, nil
}

// RegisterProfileRoutes registers profile endpoints with the Huma API.
func RegisterProfileRoutes(api huma.API, h *ProfileHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get the caller's profile",
		Tags:        []string{"profile"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProfile)

	huma.Register(api, huma.Operation{
		OperationID: "put-profile",
		Method:      http.MethodPut,
		Path:        "/api/v1/profile",
		Summary:     "Create or update the caller's profile",
		Tags:        []string{"profile"},
	}, h.PutProfile)
}
