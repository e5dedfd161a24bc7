package auth

import (
	"fmt"
	"net/url"

	"github.com/Raimguhinov/morrow-go/internal/config"
)

func NewFromURL(cfg *config.Config, authURL string) (AuthProvider, error) {
	u, err := url.Parse(authURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth URL: %s", err.Error())
	}

	switch u.Scheme {
	case "basic":
		return NewBasicAuth(cfg.App.Name, cfg.HTTP.User, cfg.HTTP.Password)
	case "http", "https":
		return nil, fmt.Errorf("http OAuth2 auth is not supported")
	default:
		return nil, fmt.Errorf("no auth provider found for %s:// URL", u.Scheme)
	}
}
