// Package auth verifies the bearer tokens the API accepts
//
// Tokens are HS256 JWTs whose subject is the owner uuid. Issuer and audience are
// checked only when configured.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
)

// MinSecretLen is the shortest HS256 secret accepted
const MinSecretLen = 32

// Config for Verifier
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	Leeway   time.Duration
	TTL      time.Duration
}

// ConfigFrom reads JWT_SECRET, ISSUER, AUDIENCE, LEEWAY and TTL under cfg
func ConfigFrom(cfg config.Conf) Config {
	return Config{
		Secret:   []byte(cfg.MustSecret("JWT_SECRET", MinSecretLen)),
		Issuer:   cfg.MayString("ISSUER", ""),
		Audience: cfg.MayString("AUDIENCE", ""),
		Leeway:   cfg.MayDuration("LEEWAY", 30*time.Second),
		TTL:      cfg.MayDuration("TTL", time.Hour),
	}
}

// Verifier checks tokens and resolves their owner
type Verifier struct {
	cfg    Config
	parser *jwt.Parser
	now    func() time.Time
}

// NewVerifier builds a Verifier; a short secret is a configuration error
func NewVerifier(cfg Config) (*Verifier, error) {
	return newVerifier(cfg, time.Now)
}

func newVerifier(cfg Config, now func() time.Time) (*Verifier, error) {
	if len(cfg.Secret) < MinSecretLen {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "auth: secret must be at least %d bytes", MinSecretLen)
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &Verifier{cfg: cfg, parser: jwt.NewParser(opts...), now: now}, nil
}

// Owner verifies token and returns its subject
// it has the shape of httpkit.TokenFunc
func (v *Verifier) Owner(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.cfg.Secret, nil
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid token")
	}
	owner, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", perr.Unauthorizedf("token subject is not an owner id")
	}
	return owner.String(), nil
}

// Issue signs a token for owner valid for the configured TTL
// the API does not hand tokens out; this serves local tooling and tests
func (v *Verifier) Issue(owner string) (string, error) {
	now := v.now()
	ttl := v.cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	claims := jwt.RegisteredClaims{
		Subject:   owner,
		Issuer:    v.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if v.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{v.cfg.Audience}
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.cfg.Secret)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "sign token")
	}
	return s, nil
}
