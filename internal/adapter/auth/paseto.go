package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	now    func() time.Time
}

// New builds the token service. Without a configured key a random one is generated, so tokens do
// not survive a restart.
func New(conf *config.Auth) (*PasetoToken, error) {
	var key paseto.V4SymmetricKey
	if conf != nil && conf.Key != "" {
		k, err := paseto.V4SymmetricKeyFromHex(conf.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid token key: %w", err)
		}
		key = k
	} else {
		key = paseto.NewV4SymmetricKey()
	}

	parser := paseto.NewParserWithoutExpiryCheck()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
		now:    time.Now,
	}

	return &s, nil
}

// KeyHex exports the key so it can be configured on other instances.
func (p *PasetoToken) KeyHex() string {
	return p.key.ExportHex()
}

func (p *PasetoToken) CreateToken(payload port.TokenPayload, ttl time.Duration) (string, error) {
	token := paseto.NewToken()
	now := p.now()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(ttl))

	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	expiration, err := parsedToken.GetExpiration()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !p.now().Before(expiration) {
		return nil, domain.ErrExpiredToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if payload.Role != domain.RoleAdmin && payload.Role != domain.RoleClient {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
