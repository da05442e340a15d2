package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	username, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if username != "admin" {
		t.Fatalf("unexpected username: %q", username)
	}
}

func TestParseTokenRejections(t *testing.T) {
	token, err := GenerateToken("secret", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("token signed with a different secret should fail")
	}
	if _, err := ParseToken("secret", "definitely.not.a.token"); err == nil {
		t.Fatal("garbage token should fail")
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware("secret"))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})

	// No header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header should 401, got %d", w.Code)
	}

	// Bad token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token should 401, got %d", w.Code)
	}

	// Valid token.
	token, err := GenerateToken("secret", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token should pass, got %d: %s", w.Code, w.Body.String())
	}
}
