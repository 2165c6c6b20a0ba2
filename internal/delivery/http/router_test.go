package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devportal/internal/delivery/http/controllers"
	"devportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*domain.Claims, error) {
	if token != "admin-token" {
		return nil, domain.E(domain.KindInvalidArgument, "bad token")
	}
	return &domain.Claims{UserID: "admin-1", Email: "admin@example.com", Roles: []string{domain.RoleAdmin}}, nil
}

type stubAccounts struct{ deleted string }

func (s *stubAccounts) ListPendingInvites(context.Context) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (s *stubAccounts) CreateInviteByEmail(_ context.Context, email, _ string) (*domain.Account, error) {
	return &domain.Account{EmailAddress: email}, nil
}

func (s *stubAccounts) DeleteInviteByIdentityPoolID(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

type stubCustomers struct{ denied string }

func (s *stubCustomers) ListPendingRequests(context.Context) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (s *stubCustomers) DenyAccountPendingRequest(_ context.Context, userID string) error {
	s.denied = userID
	return nil
}

func TestNewRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts, customers := &stubAccounts{}, &stubCustomers{}
	ctrl := controllers.NewAccountController(logger, accounts, customers)
	router := NewRouter(ctrl, stubVerifier{}, []string{"https://portal.example.com"}, logger)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"list invites", http.MethodGet, "/admin/accounts/pending-invites", "", "admin-token", http.StatusOK},
		{"list invites without token", http.MethodGet, "/admin/accounts/pending-invites", "", "", http.StatusUnauthorized},
		{"create invite", http.MethodPost, "/admin/accounts/pending-invites", `{"emailAddress":"u@example.com"}`, "admin-token", http.StatusCreated},
		{"delete invite", http.MethodDelete, "/admin/accounts/pending-invites/us-east-1:x", "", "admin-token", http.StatusOK},
		{"list requests", http.MethodGet, "/admin/accounts/pending-requests", "", "admin-token", http.StatusOK},
		{"deny request", http.MethodPut, "/admin/accounts/abc/denyRequest", "", "admin-token", http.StatusOK},
		{"deny request wrong method", http.MethodPost, "/admin/accounts/abc/denyRequest", "", "admin-token", http.StatusMethodNotAllowed},
		{"health", http.MethodGet, "/healthz", "", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	assert.Equal(t, "us-east-1:x", accounts.deleted)
	assert.Equal(t, "abc", customers.denied)
}
