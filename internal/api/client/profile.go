package client

import (
	"context"
	"net/http"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.get(ctx, "/api/v1/profile", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile sets the caller's username and display name.
func (c *Client) UpdateProfile(ctx context.Context, username, displayName string) (*domain.Profile, error) {
	var p domain.Profile
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/v1/profile",
		body: map[string]string{
			"username":     username,
			"display_name": displayName,
		},
		needsUser: true,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
