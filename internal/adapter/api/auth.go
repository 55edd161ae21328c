package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	var out struct {
		Token       string  `json:"token"`
		AccessToken string  `json:"accessToken"`
		User        userDTO `json:"user"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.send(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	token := firstNonEmpty(out.Token, out.AccessToken)
	if token == "" {
		return nil, fmt.Errorf("login: token missing from response")
	}
	return &domain.AuthSession{Token: token, User: out.User.toDomain()}, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	in := map[string]string{
		"name":     reg.Name,
		"email":    reg.Email,
		"phone":    reg.Phone,
		"password": reg.Password,
	}
	return c.send(ctx, http.MethodPost, "/auth/register", in, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.send(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.send(ctx, http.MethodPost, "/auth/verify-otp", map[string]string{"email": email, "otp": otp}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	in := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	return c.send(ctx, http.MethodPost, "/auth/reset-password", in, nil)
}

func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var out userDTO
	if err := c.getJSON(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	in := map[string]string{
		"name":   user.Name,
		"phone":  user.Phone,
		"avatar": user.Avatar,
	}
	var out userDTO
	if err := c.send(ctx, http.MethodPut, "/auth/profile", in, &out); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	in := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return c.send(ctx, http.MethodPost, "/auth/change-password", in, nil)
}
