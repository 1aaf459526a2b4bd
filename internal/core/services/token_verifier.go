package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator validates a Google ID token for audience.
type IDTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleIDTokenVerifier accepts ID tokens issued by Google for the configured
// client and resolves them to the token subject.
type GoogleIDTokenVerifier struct {
	clientID string
	validate IDTokenValidator
}

// NewGoogleIDTokenVerifier creates a verifier backed by idtoken.Validate.
func NewGoogleIDTokenVerifier(clientID string) *GoogleIDTokenVerifier {
	return NewGoogleIDTokenVerifierWith(clientID, idtoken.Validate)
}

// NewGoogleIDTokenVerifierWith creates a verifier with a custom validator.
func NewGoogleIDTokenVerifierWith(clientID string, validate IDTokenValidator) *GoogleIDTokenVerifier {
	return &GoogleIDTokenVerifier{clientID: clientID, validate: validate}
}

// VerifyToken validates token and returns its subject as the user ID.
func (v *GoogleIDTokenVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if v.clientID == "" {
		return "", errors.New("google client ID is not configured in the application")
	}
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return "", fmt.Errorf("%w: google ID token validation failed: %w", apperrors.ErrUnauthorized, err)
	}
	if payload.Subject == "" {
		return "", fmt.Errorf("%w: google ID token has no subject", apperrors.ErrUnauthorized)
	}
	return payload.Subject, nil
}
