package service

import (
	"context"
	"errors"
	"strings"

	"duebot-backend/models"
	"duebot-backend/repository"
)

// WaitlistService records pre-launch signups.
type WaitlistService struct {
	waitlist WaitlistStore
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(store WaitlistStore) *WaitlistService {
	return &WaitlistService{waitlist: store}
}

// JoinWaitlistResult represents the outcome of a signup
type JoinWaitlistResult struct {
	Message string
}

// JoinWaitlist validates and records an email address. A duplicate
// signup is treated as success so the form never scolds a returning
// visitor.
func (s *WaitlistService) JoinWaitlist(ctx context.Context, email string) (*JoinWaitlistResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	entry := &models.WaitlistEntry{Email: email}
	if err := s.waitlist.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &JoinWaitlistResult{
				Message: "You're already on the waitlist! We'll be in touch soon.",
			}, nil
		}
		return nil, err
	}

	return &JoinWaitlistResult{
		Message: "You're on the list! We'll email you when we launch.",
	}, nil
}
