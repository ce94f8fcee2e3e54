package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Guard is the authentication boundary the checkout and admin surfaces depend
// on. It answers two questions: who is signed in, and what credential goes on
// outbound API calls. Token acquisition and refresh live elsewhere.
type Guard interface {
	CurrentIdentity() (Identity, bool)
	AuthHeader() string
}

type Identity struct {
	Subject string
	Email   string
	Role    string
}

func (id Identity) IsAdmin() bool {
	return id.Role == "admin"
}

const sessionFile = "session.json"

// TokenGuard reads the bearer token the login flow persisted in the session
// data directory. The token's claims are parsed without signature
// verification: the client holds no key material, the server is the one that
// validates. An expired token counts as signed out.
type TokenGuard struct {
	path string
	now  func() time.Time
}

func NewTokenGuard(dir string) *TokenGuard {
	return &TokenGuard{path: filepath.Join(dir, sessionFile), now: time.Now}
}

type sessionState struct {
	Token string `json:"token"`
}

func (g *TokenGuard) token() string {
	raw, err := os.ReadFile(g.path)
	if err != nil {
		return ""
	}
	var st sessionState
	if err := json.Unmarshal(raw, &st); err != nil {
		return ""
	}
	return strings.TrimSpace(st.Token)
}

func (g *TokenGuard) CurrentIdentity() (Identity, bool) {
	tok := g.token()
	if tok == "" {
		return Identity{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return Identity{}, false
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if !g.now().Before(exp.Time) {
			return Identity{}, false
		}
	}

	id := Identity{
		Subject: stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		Role:    stringClaim(claims, "role"),
	}
	if id.Subject == "" && id.Email == "" {
		return Identity{}, false
	}
	return id, true
}

func (g *TokenGuard) AuthHeader() string {
	tok := g.token()
	if tok == "" {
		return ""
	}
	return "Bearer " + tok
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
