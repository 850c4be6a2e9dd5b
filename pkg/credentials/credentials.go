package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/config"
)

// Credentials is the persisted session: tokens plus a cached copy of the
// signed-in user so startup can decide whether to open a realtime channel
// without a round trip.
type Credentials struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
	UserID       string          `json:"user_id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	IsAdmin      bool            `json:"is_admin"`
	CachedUser   json.RawMessage `json:"cached_user,omitempty"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Not signed in yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	return os.Remove(path)
}

// IsExpired checks if the access token is expired
func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are valid
func (c *Credentials) IsValid() bool {
	return c.AccessToken != "" && !c.IsExpired()
}

// CanConnect reports whether the credentials carry everything the realtime
// channel needs. A missing user id or token means connect is a silent no-op.
func (c *Credentials) CanConnect() bool {
	return c != nil && c.AccessToken != "" && c.UserID != ""
}
