package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-cal/daybook/libs/auth"
)

// UserSource resolves a username to its bcrypt hash and role.
type UserSource interface {
	Lookup(ctx context.Context, username string) (hash string, role string, err error)
}

// StaticUser is the single-owner UserSource for deployments without a
// user table, seeded from the environment.
type StaticUser struct {
	Username string
	Hash     string
}

func (s StaticUser) Lookup(_ context.Context, username string) (string, string, error) {
	if username != s.Username || s.Hash == "" {
		return "", "", nil
	}
	return s.Hash, "owner", nil
}

type AuthHandler struct {
	users  UserSource
	secret string
	ttl    time.Duration
	logger *slog.Logger
}

func NewAuthHandler(users UserSource, secret string, ttl time.Duration, logger *slog.Logger) *AuthHandler {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthHandler{users: users, secret: secret, ttl: ttl, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	hash, role, err := h.users.Lookup(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("user lookup failed", "err", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	token, err := auth.SignHS256(auth.Claims{
		Sub:  req.Username,
		Role: role,
		Iat:  now.Unix(),
		Exp:  now.Add(h.ttl).Unix(),
	}, h.secret)
	if err != nil {
		http.Error(w, "failed to sign token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "Bearer"})
}

// RequireAuth rejects requests without a valid bearer token. An empty
// secret disables authentication, for local development.
func RequireAuth(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}
		if _, err := auth.ParseAndVerifyHS256(token, secret); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
