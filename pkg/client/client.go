package client

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lumen-hq/lumen-cli/pkg/config"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

var httpClient *resty.Client
var authToken string

// publicPaths are the endpoints that must never carry an Authorization
// header, even when a token is set: account creation and recovery flows.
var publicPaths = []string{
	"/api/v1/auth/register",
	"/api/v1/auth/login",
	"/api/v1/auth/verify-email",
	"/api/v1/auth/password-reset",
}

// IsPublicPath reports whether the given request path is on the
// unauthenticated allow-list.
func IsPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Lumen-CLI/0.1.0")

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)

		// Attach the bearer token per request so the public endpoints
		// stay anonymous regardless of session state.
		if authToken != "" && !IsPublicPath(requestPath(req.URL)) {
			req.Header.Set("Authorization", "Bearer "+authToken)
		}

		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// requestPath extracts the path component from a request URL, which may be
// relative to the client base URL.
func requestPath(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		return u.Path
	}
	return raw
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the authorization token
func SetAuthToken(token string) {
	if httpClient == nil {
		Init()
	}
	authToken = token
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	authToken = ""
}

// GetAuthToken returns the current authorization token
func GetAuthToken() string {
	return authToken
}
