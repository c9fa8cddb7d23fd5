package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/client/models"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewGateKeeperClientService(endpointURL string) (*HTTPClient, error) {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(endpointURL, "/"),
		httpClient: &http.Client{Timeout: 12 * time.Second},
	}
	return c, nil
}

// SetAccessToken installs the bearer token attached to subsequent requests.
// An empty token removes the header.
func (s *HTTPClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *HTTPClient) setAuthHeader(req *http.Request) {
	if s.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerSchema+" "+s.accessToken)
	}
}

func (s *HTTPClient) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	s.setAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func (s *HTTPClient) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	s.setAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps HTTP statuses to sentinel errors. The response body is
// only consumed on the unrecognized-status path.
func (s *HTTPClient) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return ErrRegistrationRejected
	case resp.StatusCode >= 500:
		return ErrUnavailable
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error: %d: %s", resp.StatusCode, string(body))
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type pingResponse struct {
	Status string `json:"status"`
}

func (s *HTTPClient) Register(ctx context.Context, email string, name string, password []byte) error {

	body, err := json.Marshal(registerRequest{Email: email, Name: name, Password: string(password)})
	if err != nil {
		return err
	}

	resp, err := s.post(ctx, "/api/user/register", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return s.checkStatus(resp)
}

func (s *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {

	body, err := json.Marshal(loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return "", err
	}

	resp, err := s.post(ctx, "/api/user/login", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := s.checkStatus(resp); err != nil {
		return "", err
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("login response decode: %w", err)
	}

	s.accessToken = lr.AccessToken

	return lr.AccessToken, nil
}

func (s *HTTPClient) Info(ctx context.Context) (*models.Account, error) {

	resp, err := s.get(ctx, "/api/user/info")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := s.checkStatus(resp); err != nil {
		return nil, err
	}

	var ar accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("info response decode: %w", err)
	}

	return &models.Account{ID: ar.ID, Email: ar.Email, Name: ar.Name}, nil
}

func (s *HTTPClient) Ping(ctx context.Context) error {

	resp, err := s.get(ctx, "/api/ping")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := s.checkStatus(resp); err != nil {
		return err
	}

	var pr pingResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return fmt.Errorf("ping response decode: %w", err)
	}

	if pr.Status != "ok" {
		return ErrUnavailable
	}

	return nil
}

func (s *HTTPClient) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}
