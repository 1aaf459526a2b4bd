package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier resolves a bearer token to the user ID it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// JWTVerifier accepts HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	Secret string
	Issuer string // optional; checked when set
}

// VerifyToken parses token and returns its subject.
func (v JWTVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(v.Secret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: invalid token claims", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// ChainVerifiers tries each verifier in order and returns the first accepted
// subject. Nil verifiers are skipped.
func ChainVerifiers(verifiers ...TokenVerifier) TokenVerifier {
	return verifierChain(verifiers)
}

type verifierChain []TokenVerifier

func (c verifierChain) VerifyToken(ctx context.Context, token string) (string, error) {
	errs := make([]error, 0, len(c))
	for _, v := range c {
		if v == nil {
			continue
		}
		userID, err := v.VerifyToken(ctx, token)
		if err == nil {
			return userID, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: no token verifier configured", apperrors.ErrUnauthorized)
	}
	return "", errors.Join(errs...)
}

// AuthMiddleware creates a Gin middleware handler that validates bearer tokens
// and stores the authenticated user ID in the request context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx := WithLogger(WithUserID(c.Request.Context(), userID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSelf rejects requests whose path parameter param names a different
// user than the authenticated one. It must run after AuthMiddleware.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if requested := c.Param(param); requested != userID {
			GetLoggerFromCtx(c.Request.Context()).Warn("User attempted to access another user's data", slog.String("requested_user_id", requested))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
