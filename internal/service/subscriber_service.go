package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"
	"homelandmeals/backend/pkg/logger"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SignupInput carries the raw email-signup fields.
type SignupInput struct {
	Email         string
	Name          string
	HealthUpdates bool
	Source        string
}

// SubscriberService handles the email signup list.
type SubscriberService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.EmailSubscriber, error)
}

type subscriberService struct {
	subscribers repository.SubscriberRepository
	log         *logger.Logger
}

func NewSubscriberService(subscribers repository.SubscriberRepository, log *logger.Logger) SubscriberService {
	if log == nil {
		log = logger.Nop()
	}
	return &subscriberService{subscribers: subscribers, log: log}
}

// Signup validates and lowercases the email, then upserts so a repeat
// signup reactivates the existing subscriber instead of duplicating it.
func (s *subscriberService) Signup(ctx context.Context, input SignupInput) (*domain.EmailSubscriber, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, newValidationError(map[string]string{
			"email": "invalid email address",
		})
	}

	source := input.Source
	if source == "" {
		source = "website"
	}

	subscriber := &domain.EmailSubscriber{
		ID:            uuid.NewString(),
		Email:         email,
		Name:          input.Name,
		HealthUpdates: input.HealthUpdates,
		Source:        source,
		SubscribedAt:  time.Now().UTC(),
	}

	stored, err := s.subscribers.Upsert(ctx, subscriber)
	if err != nil {
		s.log.Errorw("failed to upsert subscriber", "collection", "email_subscribers", "error", err)
		return nil, err
	}

	s.log.Infow("subscriber signed up", "email", stored.Email, "source", stored.Source)
	return stored, nil
}
