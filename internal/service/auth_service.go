package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/config"
	"github.com/tradevault/journal-backend/internal/model"
	"github.com/tradevault/journal-backend/internal/repository"
)

const bcryptCost = 12

// TokenPair is the credential set issued on login and refresh. The access
// token is a short-lived JWT; the refresh token is a fernet-encrypted session
// ID that can be revoked server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthService issues and validates credentials. It owns password hashing,
// access-token signing, and the refresh-session lifecycle.
type AuthService struct {
	userRepo      *repository.UserRepository
	sessionRepo   *repository.SessionRepository
	jwtSecret     []byte
	fernetKey     *fernet.Key
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService creates a new AuthService from the auth configuration.
// An empty FernetKey yields an ephemeral key: refresh tokens then do not
// survive a restart.
func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, cfg config.AuthConfig) (*AuthService, error) {
	var key *fernet.Key
	if cfg.FernetKey == "" {
		key = &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate fernet key: %w", err)
		}
	} else {
		var err error
		key, err = fernet.DecodeKey(cfg.FernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FERNET_KEY: %w", err)
		}
	}

	return &AuthService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		jwtSecret:     []byte(cfg.JWTSecret),
		fernetKey:     key,
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
	}, nil
}

// Register creates a new user account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.InsertUser(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Login verifies a username/password pair and issues a token pair backed by
// a fresh refresh session. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return TokenPair{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, apperrors.ErrInvalidCredentials
	}

	session := model.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.refreshExpiry),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessionRepo.InsertSession(ctx, &session); err != nil {
		return TokenPair{}, err
	}

	return s.issueTokenPair(user.ID, session.ID)
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is reused until it expires or the session is revoked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	session, err := s.resolveSession(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	accessToken, err := s.issueAccessToken(session.UserID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpiry.Seconds()),
	}, nil
}

// Logout revokes the session behind a refresh token. Unknown or already
// revoked tokens are treated as authentication failures.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.resolveSession(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.sessionRepo.DeleteSession(ctx, session.ID)
}

// ValidateAccessToken verifies an access token and returns the user ID it
// was issued for. Returns apperrors.ErrAuthenticationInvalid on any failure.
func (s *AuthService) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrAuthenticationInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrAuthenticationInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", apperrors.ErrAuthenticationInvalid
	}

	return sub, nil
}

// resolveSession decrypts a refresh token and loads its session row, checking
// both the fernet TTL and the stored expiry.
func (s *AuthService) resolveSession(ctx context.Context, refreshToken string) (model.Session, error) {
	msg := fernet.VerifyAndDecrypt([]byte(refreshToken), s.refreshExpiry, []*fernet.Key{s.fernetKey})
	if msg == nil {
		return model.Session{}, apperrors.ErrAuthenticationInvalid
	}

	session, err := s.sessionRepo.GetSession(ctx, string(msg))
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return model.Session{}, apperrors.ErrAuthenticationInvalid
	}
	if err != nil {
		return model.Session{}, err
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		return model.Session{}, apperrors.ErrAuthenticationInvalid
	}

	return session, nil
}

func (s *AuthService) issueTokenPair(userID, sessionID string) (TokenPair, error) {
	accessToken, err := s.issueAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := fernet.EncryptAndSign([]byte(sessionID), s.fernetKey)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: string(refreshToken),
		ExpiresIn:    int64(s.accessExpiry.Seconds()),
	}, nil
}

func (s *AuthService) issueAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(s.accessExpiry).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
