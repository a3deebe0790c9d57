package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read-only after start-up.
	ttl    time.Duration // Time-to-live for issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It fails when no signing secret is configured so a misconfigured process never starts.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Hour
	if cfg.Token != nil && cfg.Token.TTL > 0 {
		ttl = cfg.Token.TTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue stamps the claims with iat/exp and signs them.
func (s *jwtService) Issue(claims service.Claims) (string, error) {
	if claims == nil {
		return "", errors.WithStack(domainerrors.ErrTokenIssuanceFailed.WithDetails("nil claims"))
	}

	issuedAt := s.now()
	claims.Stamp(issuedAt, issuedAt.Add(s.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssuanceFailed.WithDetails(err.Error()), "sign token")
	}

	return signed, nil
}

// Parse checks the signature and expiry of a token and decodes it into claims.
func (s *jwtService) Parse(tokenString string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return errors.Wrap(err, "failed to parse token")
	}

	return nil
}
