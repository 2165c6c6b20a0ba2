// Package accounts is an HTTP client for the admin account API.
package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"devportal/internal/domain"
)

const pendingInvitesPath = "/admin/accounts/pending-invites"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient returns an AccountServiceClient for the API at baseURL. When token is
// non-empty it is sent as a bearer token.
func NewClient(baseURL, token string, client *http.Client) domain.AccountServiceClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{baseURL: strings.TrimRight(baseURL, "/"), token: token, client: client}
}

func (c *httpClient) FetchPendingInviteAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, pendingInvitesPath, nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (c *httpClient) CreateInviteByEmail(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, pendingInvitesPath, map[string]string{"emailAddress": email}, nil)
}

func (c *httpClient) DeleteInviteByIdentityPoolID(ctx context.Context, identityPoolID string) error {
	return c.do(ctx, http.MethodDelete, pendingInvitesPath+"/"+url.PathEscape(identityPoolID), nil, nil)
}

func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Wrap(domain.KindUnavailable, "could not reach the account service", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && env.Error != nil {
			return domain.E(kindForCode(env.Error.Code), env.Error.Message)
		}
		return domain.E(kindForStatus(resp.StatusCode), fmt.Sprintf("account service returned status %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode account service response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode account service response: %w", err)
		}
	}
	return nil
}

func kindForCode(code string) domain.ErrorKind {
	switch code {
	case "bad_request":
		return domain.KindInvalidArgument
	case "not_found":
		return domain.KindNotFound
	case "conflict":
		return domain.KindConflict
	case "unavailable", "unauthorized", "forbidden":
		return domain.KindUnavailable
	default:
		return domain.KindInternal
	}
}

func kindForStatus(status int) domain.ErrorKind {
	switch {
	case status == http.StatusBadRequest:
		return domain.KindInvalidArgument
	case status == http.StatusNotFound:
		return domain.KindNotFound
	case status == http.StatusConflict:
		return domain.KindConflict
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusServiceUnavailable:
		return domain.KindUnavailable
	default:
		return domain.KindInternal
	}
}
