package service

import (
	"context"
	"errors"
	"testing"

	"duebot-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinWaitlist(t *testing.T) {
	ctx := context.Background()

	t.Run("records a new signup", func(t *testing.T) {
		store := &fakeWaitlistStore{}
		svc := NewWaitlistService(store)

		result, err := svc.JoinWaitlist(ctx, " Jane@Studio.Example ")
		require.NoError(t, err)
		assert.Contains(t, result.Message, "on the list")

		require.Len(t, store.created, 1)
		assert.Equal(t, "jane@studio.example", store.created[0].Email)
	})

	t.Run("duplicate signup reads as success", func(t *testing.T) {
		store := &fakeWaitlistStore{createErr: repository.ErrDuplicateEmail}
		svc := NewWaitlistService(store)

		result, err := svc.JoinWaitlist(ctx, "jane@studio.example")
		require.NoError(t, err)
		assert.Contains(t, result.Message, "already")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := NewWaitlistService(&fakeWaitlistStore{})
		_, err := svc.JoinWaitlist(ctx, "not-an-email")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("storage errors surface", func(t *testing.T) {
		svc := NewWaitlistService(&fakeWaitlistStore{createErr: errors.New("connection reset")})
		_, err := svc.JoinWaitlist(ctx, "jane@studio.example")
		assert.Error(t, err)
	})
}
