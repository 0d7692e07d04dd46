package commands

import (
	"context"
	"log/slog"

	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/pkg/jwt"
	"booking-calendar-sync/internal/pkg/password"
	"booking-calendar-sync/internal/pkg/token"
)

var (
	ErrInvalidCredentials = errs.Class("invalid credentials", errs.ErrForbidden)
	ErrTokenIssue         = errs.New("session token generation failed")
)

type LoginResult struct {
	Username    string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	// the hash is always compared so a wrong username costs the same as a wrong password
	passwordErr := password.Verify(a.admin.PasswordHash, plainPassword)
	if !token.Equal(a.admin.Username, username) || passwordErr != nil {
		slog.WarnContext(ctx, "admin login rejected", "username", username)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateToken(a.admin.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenIssue)
	}
	return &LoginResult{Username: a.admin.Username, AccessToken: accessToken}, nil
}
