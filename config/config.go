package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation"
	"gopkg.in/yaml.v3"
)

const (
	// AuthorityLocal verifies credentials in process
	AuthorityLocal = "local"
	// AuthorityRemote exchanges credentials against the upstream authority
	AuthorityRemote = "remote"
)

// LocalUser is a credential entry for the local authority mode
type LocalUser struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

// App is the application configuration, loaded from YAML with BLOG_
// prefixed environment overrides
type App struct {
	Server struct {
		Listen     string `yaml:"listen"`
		Production bool   `yaml:"production"`
	} `yaml:"server"`

	Auth struct {
		SigningKey      string      `yaml:"signing_key"`
		Issuer          string      `yaml:"issuer"`
		TokenExpiration int         `yaml:"token_expiration_hours"`
		CookieName      string      `yaml:"cookie_name"`
		ProtectedPrefix string      `yaml:"protected_prefix"`
		PublicPaths     []string    `yaml:"public_paths"`
		LoginPath       string      `yaml:"login_path"`
		Authority       string      `yaml:"authority"`
		AuthorityURL    string      `yaml:"authority_url"`
		Users           []LocalUser `yaml:"users"`
	} `yaml:"auth"`

	Upstream struct {
		ContentURL string `yaml:"content_url"`
	} `yaml:"upstream"`
}

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. An empty path loads defaults and
// environment only.
func Load(path string) (*App, error) {
	app := &App{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, app); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	app.applyDefaults()
	app.applyEnv()

	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return app, nil
}

func (a *App) applyDefaults() {
	if a.Server.Listen == "" {
		a.Server.Listen = ":3000"
	}
	if a.Auth.Issuer == "" {
		a.Auth.Issuer = "go-blog"
	}
	if a.Auth.TokenExpiration == 0 {
		a.Auth.TokenExpiration = 24
	}
	if a.Auth.CookieName == "" {
		a.Auth.CookieName = "jwt"
	}
	if a.Auth.ProtectedPrefix == "" {
		a.Auth.ProtectedPrefix = "/admin"
	}
	if len(a.Auth.PublicPaths) == 0 {
		a.Auth.PublicPaths = []string{"/admin/login"}
	}
	if a.Auth.LoginPath == "" {
		a.Auth.LoginPath = "/login"
	}
	if a.Auth.Authority == "" {
		a.Auth.Authority = AuthorityRemote
	}
}

func (a *App) applyEnv() {
	if v, ok := os.LookupEnv("BLOG_LISTEN"); ok {
		a.Server.Listen = v
	}
	if v, ok := os.LookupEnv("BLOG_PRODUCTION"); ok {
		a.Server.Production = v == "1" || v == "true"
	}
	if v, ok := os.LookupEnv("BLOG_SIGNING_KEY"); ok {
		a.Auth.SigningKey = v
	}
	if v, ok := os.LookupEnv("BLOG_AUTHORITY_URL"); ok {
		a.Auth.AuthorityURL = v
	}
	if v, ok := os.LookupEnv("BLOG_CONTENT_URL"); ok {
		a.Upstream.ContentURL = v
	}
}

// Validate will run validation rules
func (a *App) Validate() error {
	if err := validation.Validate(a.Auth.SigningKey, validation.Required); err != nil {
		return fmt.Errorf("auth.signing_key: %w", err)
	}

	if err := validation.Validate(a.Auth.Authority,
		validation.Required, validation.In(AuthorityLocal, AuthorityRemote)); err != nil {
		return fmt.Errorf("auth.authority: %w", err)
	}

	if a.Auth.Authority == AuthorityRemote {
		if err := validation.Validate(a.Auth.AuthorityURL, validation.Required); err != nil {
			return fmt.Errorf("auth.authority_url: %w", err)
		}
	}

	if err := validation.Validate(a.Upstream.ContentURL, validation.Required); err != nil {
		return fmt.Errorf("upstream.content_url: %w", err)
	}

	return nil
}

// Getter interface consumed by the auth package

func (a *App) GetSigningKey() string      { return a.Auth.SigningKey }
func (a *App) GetIssuer() string          { return a.Auth.Issuer }
func (a *App) GetTokenExpiration() int    { return a.Auth.TokenExpiration }
func (a *App) GetCookieName() string      { return a.Auth.CookieName }
func (a *App) GetProtectedPrefix() string { return a.Auth.ProtectedPrefix }
func (a *App) GetPublicPaths() []string   { return a.Auth.PublicPaths }
func (a *App) GetLoginPath() string       { return a.Auth.LoginPath }
func (a *App) IsProduction() bool         { return a.Server.Production }
