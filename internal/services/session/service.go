package sessionservice

import (
	"context"
	"doccatalog/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

const pkg = "sessionService/"

// SessionService resolves session tokens issued by the auth service into
// the requesting user.
type SessionService struct {
	log           *slog.Logger
	sessionStorer SessionStorer
}

func New(log *slog.Logger, sessionStorer SessionStorer) *SessionService {
	return &SessionService{
		log:           log,
		sessionStorer: sessionStorer,
	}
}

func (s *SessionService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	op := pkg + "UserByToken"

	log := s.log.With(slog.String("op", op))

	log.Debug("attempting to resolve session")

	if token == "" {
		return nil, models.ErrInvalidCredentials
	}

	userJSON, err := s.sessionStorer.UserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session not found", slog.String("error", err.Error()))
			return nil, models.ErrInvalidCredentials
		}
		log.Error("failed to read session", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	var user models.User

	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		log.Error("failed to unmarshal user from json", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if user.ID == "" {
		log.Warn("session carries no user id")
		return nil, models.ErrInvalidCredentials
	}

	log.Debug("session resolved", slog.String("user_id", user.ID))

	return &user, nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	op := pkg + "Logout"

	log := s.log.With(slog.String("op", op))

	log.Debug("attempting to drop session")

	err := s.sessionStorer.DeleteSession(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			log.Warn("session not found")
			return models.ErrSessionNotFound
		}
		log.Error("failed to delete session", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("session dropped")

	return nil
}
