package auth_test

type testConfig struct {
	signingKey      string
	issuer          string
	tokenExpiration int
	cookieName      string
	protectedPrefix string
	publicPaths     []string
	loginPath       string
	production      bool
}

func newTestConfig() *testConfig {
	return &testConfig{
		signingKey:      "test-signing-key",
		issuer:          "test-issuer",
		tokenExpiration: 24,
		cookieName:      "jwt",
		protectedPrefix: "/admin",
		publicPaths:     []string{"/admin/login"},
		loginPath:       "/login",
	}
}

func (c *testConfig) GetSigningKey() string      { return c.signingKey }
func (c *testConfig) GetIssuer() string          { return c.issuer }
func (c *testConfig) GetTokenExpiration() int    { return c.tokenExpiration }
func (c *testConfig) GetCookieName() string      { return c.cookieName }
func (c *testConfig) GetProtectedPrefix() string { return c.protectedPrefix }
func (c *testConfig) GetPublicPaths() []string   { return c.publicPaths }
func (c *testConfig) GetLoginPath() string       { return c.loginPath }
func (c *testConfig) IsProduction() bool         { return c.production }
