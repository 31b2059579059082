package apns

import (
	"context"

	"huddle/config"

	"github.com/pkg/errors"
	"github.com/sideshow/apns2/token"
)

// Credentials holds the ES256 provider token shared by every APNs
// client in the process. Apple rejects bearers older than one hour and
// throttles providers that re-sign too often, so one token instance is
// created at startup and re-signed lazily.
type Credentials struct {
	token *token.Token
}

// NewCredentials loads the .p8 signing key and prepares the provider token.
// It fails fast on a missing or malformed key so a bad deploy is caught
// at startup instead of on the first push.
func NewCredentials(cfg *config.APNsConfig) (*Credentials, error) {
	if cfg == nil {
		return nil, errors.New("apns config is required")
	}
	if cfg.KeyID == "" || cfg.TeamID == "" {
		return nil, errors.New("apns keyId and teamId are required")
	}

	authKey, err := token.AuthKeyFromFile(cfg.KeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load apns signing key from %s", cfg.KeyPath)
	}

	return &Credentials{
		token: &token.Token{
			AuthKey: authKey,
			KeyID:   cfg.KeyID,
			TeamID:  cfg.TeamID,
		},
	}, nil
}

// Refresh re-signs the bearer if it is near expiry. The dispatcher
// calls this once per fan-out batch so all concurrent sends in the
// batch share a single fresh credential. A signing failure fails the
// whole batch before any network call is made.
func (c *Credentials) Refresh(ctx context.Context) error {
	c.token.Lock()
	defer c.token.Unlock()

	if !c.token.Expired() {
		return nil
	}

	if _, err := c.token.Generate(); err != nil {
		return errors.Wrap(err, "failed to refresh apns provider token")
	}

	return nil
}

// Token exposes the shared provider token for client construction.
func (c *Credentials) Token() *token.Token {
	return c.token
}
