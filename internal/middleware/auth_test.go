package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/journalmind/journalmind-go/internal/crypto"
	"github.com/journalmind/journalmind-go/internal/model"
	"github.com/journalmind/journalmind-go/internal/repository"
)

type fakeResolver struct {
	users map[int64]*model.User
}

func (f *fakeResolver) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func newAuthedHandler(secret string, resolver UserResolver) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = id
	})
	return JWTAuth(secret, resolver)(next)
}

func TestJWTAuthValidToken(t *testing.T) {
	secret := "test-secret"
	resolver := &fakeResolver{users: map[int64]*model.User{7: {ID: 7, Username: "daria"}}}

	token, err := crypto.GenerateToken(7, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthedHandler(secret, resolver).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	resolver := &fakeResolver{}

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	rec := httptest.NewRecorder()

	newAuthedHandler("test-secret", resolver).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthTamperedToken(t *testing.T) {
	resolver := &fakeResolver{users: map[int64]*model.User{7: {ID: 7}}}

	token, err := crypto.GenerateToken(7, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()

	newAuthedHandler("test-secret", resolver).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	resolver := &fakeResolver{users: map[int64]*model.User{7: {ID: 7}}}

	token, err := crypto.GenerateToken(7, "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthedHandler("test-secret", resolver).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthUserNoLongerExists(t *testing.T) {
	resolver := &fakeResolver{} // no users

	token, err := crypto.GenerateToken(7, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthedHandler("test-secret", resolver).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
