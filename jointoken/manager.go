package jointoken

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inklet/canvasacl/message"
)

// SigningMethod selects the token signature algorithm.
type SigningMethod string

const (
	// MethodEd25519 is the default signature algorithm.
	MethodEd25519 SigningMethod = "ed25519"
	// MethodHS256 uses a shared secret instead of a key pair.
	MethodHS256 SigningMethod = "hs256"
)

var (
	// ErrTokenInvalid covers expired, malformed, and badly signed
	// tokens.
	ErrTokenInvalid = errors.New("join token invalid")
	// ErrNoSigningKey is returned by Issue when the manager was built
	// for verification only.
	ErrNoSigningKey = errors.New("no signing key configured")
)

// Config carries the verification and issuing keys.
type Config struct {
	// TTL bounds issued token lifetimes. Required for issuing.
	TTL time.Duration

	// SigningMethod defaults to Ed25519.
	SigningMethod SigningMethod

	// PrivateKey is the HS256 secret, or an Ed25519 seed (32 bytes) or
	// full private key (64 bytes). Optional for verify-only managers.
	PrivateKey []byte

	// PublicKey is the Ed25519 verification key. Derived from
	// PrivateKey when omitted.
	PublicKey []byte

	Issuer   string
	Audience string

	// Leeway tolerates clock skew during validation. Capped at two
	// minutes.
	Leeway time.Duration
}

// Claims is the join token payload.
type Claims struct {
	User          uint8  `json:"uid"`
	Name          string `json:"name"`
	Authenticated bool   `json:"auth,omitempty"`
	Mod           bool   `json:"mod,omitempty"`
	jwt.RegisteredClaims
}

// JoinMessage converts verified claims into the join message the engine
// evaluates. Moderator status is not granted here; the host decides
// whether a mod claim translates into a SessionOwner entry.
func (c Claims) JoinMessage() message.Join {
	return message.Join{
		User:          message.UserID(c.User),
		Name:          c.Name,
		Authenticated: c.Authenticated,
		Mod:           c.Mod,
	}
}

// Manager issues and verifies join tokens.
type Manager struct {
	cfg       Config
	edPrivate ed25519.PrivateKey
	edPublic  ed25519.PublicKey
}

// NewManager validates the configuration and prepares the keys.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.SigningMethod == "" {
		cfg.SigningMethod = MethodEd25519
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}

	m := &Manager{cfg: cfg}

	switch cfg.SigningMethod {
	case MethodHS256:
		if len(cfg.PrivateKey) == 0 {
			return nil, errors.New("hs256 requires a shared secret")
		}
	case MethodEd25519:
		if len(cfg.PrivateKey) > 0 {
			priv, err := parseEdPrivateKey(cfg.PrivateKey)
			if err != nil {
				return nil, err
			}
			m.edPrivate = priv
		}
		if len(cfg.PublicKey) > 0 {
			if len(cfg.PublicKey) != ed25519.PublicKeySize {
				return nil, errors.New("invalid ed25519 public key size")
			}
			m.edPublic = ed25519.PublicKey(cfg.PublicKey)
		} else if m.edPrivate != nil {
			m.edPublic = m.edPrivate.Public().(ed25519.PublicKey)
		}
		if m.edPublic == nil {
			return nil, errors.New("ed25519 requires a public or private key")
		}
	default:
		return nil, fmt.Errorf("unsupported signing method %q", cfg.SigningMethod)
	}

	return m, nil
}

// Issue signs a join token for the given user.
func (m *Manager) Issue(user message.UserID, name string, authenticated, mod bool) (string, error) {
	if m.cfg.TTL <= 0 {
		return "", errors.New("issuing requires a positive TTL")
	}

	now := time.Now()
	claims := Claims{
		User:          uint8(user),
		Name:          name,
		Authenticated: authenticated,
		Mod:           mod,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
		},
	}
	if m.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{m.cfg.Audience}
	}

	switch m.cfg.SigningMethod {
	case MethodHS256:
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.cfg.PrivateKey)
	default:
		if m.edPrivate == nil {
			return "", ErrNoSigningKey
		}
		return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(m.edPrivate)
	}
}

// Verify parses and validates a join token, returning its claims.
func (m *Manager) Verify(token string) (Claims, error) {
	var methods []string
	var key any
	switch m.cfg.SigningMethod {
	case MethodHS256:
		methods = []string{jwt.SigningMethodHS256.Alg()}
		key = m.cfg.PrivateKey
	default:
		methods = []string{jwt.SigningMethodEdDSA.Alg()}
		key = m.edPublic
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(m.cfg.Leeway),
	}
	if m.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.cfg.Issuer))
	}
	if m.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(m.cfg.Audience))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	return claims, nil
}

func parseEdPrivateKey(b []byte) (ed25519.PrivateKey, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(b), nil
	default:
		return nil, errors.New("invalid ed25519 private key size")
	}
}
