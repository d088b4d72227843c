package service

import (
	"context"
	"testing"

	"homelandmeals/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberRepo struct {
	byEmail map[string]*domain.EmailSubscriber
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{byEmail: map[string]*domain.EmailSubscriber{}}
}

func (f *fakeSubscriberRepo) Upsert(_ context.Context, sub *domain.EmailSubscriber) (*domain.EmailSubscriber, error) {
	existing, ok := f.byEmail[sub.Email]
	if ok {
		existing.Name = sub.Name
		existing.HealthUpdates = sub.HealthUpdates
		existing.Source = sub.Source
		existing.Active = true
		return existing, nil
	}
	copied := *sub
	copied.Active = true
	f.byEmail[sub.Email] = &copied
	return &copied, nil
}

func TestSignup(t *testing.T) {
	t.Run("lowercases the email", func(t *testing.T) {
		repo := newFakeSubscriberRepo()
		svc := NewSubscriberService(repo, nil)

		sub, err := svc.Signup(context.Background(), SignupInput{Email: "Priya@Example.COM", Name: "Priya"})
		require.NoError(t, err)
		assert.Equal(t, "priya@example.com", sub.Email)
		assert.True(t, sub.Active)
	})

	t.Run("re-signup updates in place", func(t *testing.T) {
		repo := newFakeSubscriberRepo()
		svc := NewSubscriberService(repo, nil)

		first, err := svc.Signup(context.Background(), SignupInput{Email: "priya@example.com", Name: "Priya"})
		require.NoError(t, err)

		second, err := svc.Signup(context.Background(), SignupInput{Email: "PRIYA@example.com", Name: "Priya S", HealthUpdates: true})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Priya S", second.Name)
		assert.True(t, second.HealthUpdates)
		assert.Len(t, repo.byEmail, 1)
	})

	t.Run("empty source defaults to website", func(t *testing.T) {
		svc := NewSubscriberService(newFakeSubscriberRepo(), nil)

		sub, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.co"})
		require.NoError(t, err)
		assert.Equal(t, "website", sub.Source)
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		svc := NewSubscriberService(newFakeSubscriberRepo(), nil)

		for _, bad := range []string{"", "plain", "no@tld", "@example.com", "spaces in@example.com"} {
			_, err := svc.Signup(context.Background(), SignupInput{Email: bad})
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, "email %q should be rejected", bad)
		}
	})
}
