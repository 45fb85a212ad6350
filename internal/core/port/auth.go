package port

import (
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
)

type TokenPayload struct {
	ClientID uint64
	Role     domain.Role
}

func (p TokenPayload) Actor() domain.Actor {
	return domain.Actor{ClientID: p.ClientID, Role: p.Role}
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload TokenPayload, ttl time.Duration) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
