// Package client is a typed HTTP client for the open-form API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/monosijkayal/open-form/internal/model"
)

var (
	// ErrNotFound is returned when the requested form does not exist.
	ErrNotFound = errors.New("form not found")
	// ErrForbidden is returned when the server rejects the edit key.
	ErrForbidden = errors.New("invalid edit key")
)

// Client talks to an open-form server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given server base URL, e.g.
// "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateFormPayload is the body for creating a form
type CreateFormPayload struct {
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	HeaderImageURL string           `json:"headerImageUrl,omitempty"`
	Questions      []model.Question `json:"questions"`
}

// CreatedForm holds the identifiers returned for a new form
type CreatedForm struct {
	FormID   string `json:"formId"`
	EditKey  string `json:"editKey"`
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
}

// CreateForm creates a form and returns its identifiers.
func (c *Client) CreateForm(ctx context.Context, payload CreateFormPayload) (*CreatedForm, error) {
	var created CreatedForm
	if err := c.do(ctx, http.MethodPost, "/api/forms", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetForm fetches a form by its internal identifier.
func (c *Client) GetForm(ctx context.Context, formID string) (*model.Form, error) {
	var form model.Form
	if err := c.do(ctx, http.MethodGet, "/api/forms/"+formID, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// GetSharedForm fetches a form by its public share identifier.
func (c *Client) GetSharedForm(ctx context.Context, shareID string) (*model.Form, error) {
	var form model.Form
	if err := c.do(ctx, http.MethodGet, "/api/forms/respond/"+shareID, nil, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// UpdateForm applies a partial update using the edit key.
func (c *Client) UpdateForm(ctx context.Context, formID, editKey string, patch *model.FormPatch) error {
	path := fmt.Sprintf("/api/forms/%s?key=%s", formID, editKey)
	return c.do(ctx, http.MethodPut, path, patch, nil)
}

type submitPayload struct {
	Answers []model.Answer `json:"answers"`
}

// SubmitResponse submits answers for a form by its internal identifier.
func (c *Client) SubmitResponse(ctx context.Context, formID string, answers []model.Answer) error {
	return c.do(ctx, http.MethodPost, "/api/responses/"+formID, submitPayload{Answers: answers}, nil)
}

// SubmitResponseByShare submits answers through the public share identifier.
func (c *Client) SubmitResponseByShare(ctx context.Context, shareID string, answers []model.Answer) error {
	return c.do(ctx, http.MethodPost, "/api/responses/share/"+shareID, submitPayload{Answers: answers}, nil)
}

// ListResponses returns all responses submitted for a form.
func (c *Client) ListResponses(ctx context.Context, formID string) ([]*model.Response, error) {
	var responses []*model.Response
	if err := c.do(ctx, http.MethodGet, "/api/responses/"+formID, nil, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// AddBankQuestion stores a question in the standalone question bank.
func (c *Client) AddBankQuestion(ctx context.Context, q *model.BankQuestion) (*model.BankQuestion, error) {
	var stored model.BankQuestion
	if err := c.do(ctx, http.MethodPost, "/api/questions", q, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListBankQuestions returns every question in the bank.
func (c *Client) ListBankQuestions(ctx context.Context) ([]*model.BankQuestion, error) {
	var questions []*model.BankQuestion
	if err := c.do(ctx, http.MethodGet, "/api/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) asError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("server error (%d)", resp.StatusCode)
}
