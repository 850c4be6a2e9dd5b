package service

import (
	"fmt"
	"time"

	json "github.com/json-iterator/go"
	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/credentials"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles user login
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Authenticating...")
	loginResp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	if err := s.saveSession(loginResp); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Login successful!")
	if loginResp.User.IsAdmin {
		formatter.PrintInfo("Logged in as %s (ADMIN)", formatter.Bold.Sprint(loginResp.User.Username))
	} else {
		formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(loginResp.User.Username))
	}
	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Username":       loginResp.User.Username,
		"Email":          loginResp.User.Email,
		"Display Name":   loginResp.User.DisplayName,
		"Followers":      loginResp.User.FollowerCount,
		"Following":      loginResp.User.FollowingCount,
		"Posts":          loginResp.User.PostCount,
		"Email Verified": loginResp.User.EmailVerified,
	})

	return nil
}

// Register handles account creation
func (s *AuthService) Register() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	displayName, err := prompter.PromptString("Display name: ")
	if err != nil {
		return err
	}
	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	if email == "" || username == "" || password == "" {
		return fmt.Errorf("email, username and password are required")
	}

	client.Init()

	formatter.PrintInfo("Creating account...")
	loginResp, err := api.Register(api.RegisterRequest{
		Email:       email,
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	if err := s.saveSession(loginResp); err != nil {
		return err
	}

	formatter.PrintSuccess("Account created! Check your email to verify your address.")
	return nil
}

// VerifyEmail confirms an email address with a verification token
func (s *AuthService) VerifyEmail(token string) error {
	if err := api.VerifyEmail(token); err != nil {
		return err
	}

	formatter.PrintSuccess("Email verified")
	return nil
}

// RequestPasswordReset asks the server to email a reset link
func (s *AuthService) RequestPasswordReset(email string) error {
	if err := api.RequestPasswordReset(email); err != nil {
		return err
	}

	formatter.PrintSuccess("Password reset email sent to %s", email)
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}

	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return err
	}

	client.ClearAuthToken()

	formatter.PrintSuccess("Logged out %s", creds.Username)
	return nil
}

// WhoAmI displays the current session
func (s *AuthService) WhoAmI() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}

	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	client.SetAuthToken(creds.AccessToken)

	user, err := api.GetCurrentUser()
	if err != nil {
		// Fall back to the cached user when the API is unreachable
		if len(creds.CachedUser) > 0 {
			var cached api.User
			if jsonErr := json.Unmarshal(creds.CachedUser, &cached); jsonErr == nil {
				formatter.PrintWarning("Showing cached profile (API unreachable)")
				user = &cached
			}
		}
		if user == nil {
			return err
		}
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Username":     user.Username,
		"Email":        user.Email,
		"Display Name": user.DisplayName,
		"Followers":    user.FollowerCount,
		"Following":    user.FollowingCount,
		"Admin":        user.IsAdmin,
	})
	return nil
}

func (s *AuthService) saveSession(loginResp *api.LoginResponse) error {
	client.SetAuthToken(loginResp.AccessToken)

	expiresAt := time.Now().Add(time.Duration(loginResp.ExpiresIn) * time.Second)

	cached, err := json.Marshal(loginResp.User)
	if err != nil {
		cached = nil
	}

	return credentials.Save(&credentials.Credentials{
		AccessToken:  loginResp.AccessToken,
		RefreshToken: loginResp.RefreshToken,
		ExpiresAt:    expiresAt,
		UserID:       loginResp.User.ID,
		Username:     loginResp.User.Username,
		Email:        loginResp.User.Email,
		IsAdmin:      loginResp.User.IsAdmin,
		CachedUser:   cached,
	})
}
