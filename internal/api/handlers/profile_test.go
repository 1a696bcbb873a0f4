package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tcg-collection-tracker/internal/api/handlers"
	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	storeMocks "github.com/donaldgifford/tcg-collection-tracker/internal/store/mocks"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

func TestProfileHandler_Put(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "upserts trimmed fields",
			body: map[string]any{"username": "  jace  ", "display_name": "Jace Beleren"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertProfile(mock.Anything, &domain.Profile{
						UserID:      testUser,
						Username:    "jace",
						DisplayName: "Jace Beleren",
					}).
					Run(func(_ context.Context, p *domain.Profile) {
						p.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
					}).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"username":"jace"`,
		},
		{
			name: "store error",
			body: map[string]any{"username": "jace"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().UpsertProfile(mock.Anything, mock.Anything).Return(errors.New("unique violation")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "saving profile failed",
		},
		{
			name:       "username too long",
			body:       map[string]any{"username": strings.Repeat("a", 65)},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterProfileRoutes(api, handlers.NewProfileHandler(ms))

			resp := api.Put("/api/v1/profile", userHeader, tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestProfileHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		getErr     error
		profile    *domain.Profile
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			profile:    &domain.Profile{UserID: testUser, Username: "jace"},
			wantStatus: http.StatusOK,
			wantBody:   `"user_id":"user-1"`,
		},
		{
			name:       "not found",
			getErr:     store.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "profile not found",
		},
		{
			name:       "store error",
			getErr:     errors.New("conn reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "getting profile failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().GetProfile(mock.Anything, testUser).Return(tt.profile, tt.getErr).Once()

			_, api := humatest.New(t)
			handlers.RegisterProfileRoutes(api, handlers.NewProfileHandler(ms))

			resp := api.Get("/api/v1/profile", userHeader)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
