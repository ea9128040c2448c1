package endpoints_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/OpenHoursHQ/openhours/internal/db"
	"github.com/OpenHoursHQ/openhours/internal/http/api"
	"github.com/OpenHoursHQ/openhours/internal/http/api/auth/endpoints"
	"github.com/OpenHoursHQ/openhours/internal/http/api/auth/packets"
)

const jwtSecret = "supersecret"

func setupRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		endpoints.AuthPublicModule(jwtSecret, store),
	)
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: jwtSecret,
		Store:     store,
	},
		endpoints.AuthSessionModule(jwtSecret, store),
	)
	return r
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupLoginAndProfile(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	w := doJSON(router, "POST", "/api/auth/signup", "", packets.SignupRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/api/auth/login", "", packets.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.Token == "" {
		t.Fatal("login returned an empty token")
	}

	w = doJSON(router, "GET", "/api/auth/current_profile", login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: %d %s", w.Code, w.Body.String())
	}
	var profile struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("profile email = %q", profile.Email)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	request := packets.SignupRequest{Email: "bob@example.com", Password: "hunter2hunter2"}
	if w := doJSON(router, "POST", "/api/auth/signup", "", request); w.Code != http.StatusOK {
		t.Fatalf("first signup: %d %s", w.Code, w.Body.String())
	}
	if w := doJSON(router, "POST", "/api/auth/signup", "", request); w.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: %d, want 409", w.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	doJSON(router, "POST", "/api/auth/signup", "", packets.SignupRequest{
		Email:    "carol@example.com",
		Password: "hunter2hunter2",
	})
	w := doJSON(router, "POST", "/api/auth/login", "", packets.LoginRequest{
		Email:    "carol@example.com",
		Password: "not-the-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: %d, want 401", w.Code)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	store := db.NewMemStore()
	router := setupRouter(store)

	if w := doJSON(router, "GET", "/api/auth/current_profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: %d, want 401", w.Code)
	}
	if w := doJSON(router, "GET", "/api/auth/current_profile", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d, want 401", w.Code)
	}
}
