// Command tokengen issues access tokens for the smartshop API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/auth"
	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
)

func main() {
	var (
		key      string
		role     string
		clientID uint64
		ttl      time.Duration
	)
	flag.StringVar(&key, "k", os.Getenv("AUTH_KEY"), "Token key, hex encoded")
	flag.StringVar(&role, "role", string(domain.RoleClient), "ADMIN / CLIENT")
	flag.Uint64Var(&clientID, "client", 0, "Client id, required for CLIENT tokens")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if err := run(key, role, clientID, ttl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(key, role string, clientID uint64, ttl time.Duration) error {
	if key == "" {
		return fmt.Errorf("a token key is required (-k or AUTH_KEY)")
	}

	payload := port.TokenPayload{Role: domain.Role(strings.ToUpper(role)), ClientID: clientID}
	switch payload.Role {
	case domain.RoleAdmin:
		payload.ClientID = 0
	case domain.RoleClient:
		if clientID == 0 {
			return fmt.Errorf("-client is required for CLIENT tokens")
		}
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	tokens, err := auth.New(&config.Auth{Key: key})
	if err != nil {
		return err
	}
	token, err := tokens.CreateToken(payload, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
