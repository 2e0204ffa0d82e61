// Package client provides an HTTP client for the PropScan REST API. It is
// the data-access facade UI consumers call: the deployment mode is passed in
// at construction, and in a read-only deployment every write method fails
// with a READ_ONLY_MODE error before any network call.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

const (
	maxReadAttempts  = 3
	initialRetryWait = 200 * time.Millisecond
)

// Client is an HTTP client for the PropScan API.
type Client struct {
	baseURL    string
	token      string
	readOnly   bool
	httpClient *http.Client
}

// New creates a new API client. readOnly marks the deployment as read-only.
func New(baseURL string, readOnly bool) *Client {
	return &Client{
		baseURL:    baseURL,
		readOnly:   readOnly,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the bearer token used for admin endpoints.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates the admin and stores the returned token.
func (c *Client) Login(username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.post("/api/v1/auth/login", body, &result); err != nil {
		return err
	}
	c.token = result.AccessToken
	return nil
}

// ListProperties returns all catalog properties.
func (c *Client) ListProperties() ([]*domain.Property, error) {
	var props []*domain.Property
	if err := c.get("/api/v1/properties", &props); err != nil {
		return nil, err
	}
	return props, nil
}

// ListPropertiesByCity returns one city partition of the catalog.
func (c *Client) ListPropertiesByCity(slug string) ([]*domain.Property, error) {
	var props []*domain.Property
	if err := c.get("/api/v1/properties/city/"+slug, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SubmitLead submits a prospect inquiry.
func (c *Client) SubmitLead(lead *domain.Lead) (*domain.Lead, error) {
	var created domain.Lead
	if err := c.post("/api/v1/leads", lead, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListLeads returns all leads (admin).
func (c *Client) ListLeads() ([]*domain.Lead, error) {
	var leads []*domain.Lead
	if err := c.get("/api/v1/leads", &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// DeleteLead removes a lead (admin), reporting whether anything was removed.
func (c *Client) DeleteLead(id string) (bool, error) {
	return c.doDelete("/api/v1/leads/" + id)
}

// ListTestimonials returns all testimonials.
func (c *Client) ListTestimonials() ([]*domain.Testimonial, error) {
	var testimonials []*domain.Testimonial
	if err := c.get("/api/v1/testimonials", &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// SubmitResale submits a resale listing for approval.
func (c *Client) SubmitResale(p *domain.ResaleProperty) (*domain.ResaleProperty, error) {
	var created domain.ResaleProperty
	if err := c.post("/api/v1/resale", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PublicResaleListings returns listings visible on the public site.
func (c *Client) PublicResaleListings() ([]*domain.ResaleProperty, error) {
	var listings []*domain.ResaleProperty
	if err := c.get("/api/v1/resale/public", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ApproveResale approves a pending listing (admin).
func (c *Client) ApproveResale(id, adminNotes string) (*domain.ResaleProperty, error) {
	body := map[string]string{"admin_notes": adminNotes}
	var updated domain.ResaleProperty
	if err := c.post("/api/v1/resale/"+id+"/approve", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RejectResale rejects a pending listing with a reason (admin).
func (c *Client) RejectResale(id, reason, adminNotes string) (*domain.ResaleProperty, error) {
	body := map[string]string{"reason": reason, "admin_notes": adminNotes}
	var updated domain.ResaleProperty
	if err := c.post("/api/v1/resale/"+id+"/reject", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListCities returns the city lookup table.
func (c *Client) ListCities() ([]*domain.City, error) {
	var cities []*domain.City
	if err := c.get("/api/v1/cities", &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// get performs a GET with bounded retry and decodes the response. Retries
// apply only to reads; writes are single-shot.
func (c *Client) get(path string, result interface{}) error {
	var lastErr error
	wait := initialRetryWait
	for attempt := 0; attempt < maxReadAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(wait)
			wait *= 2
		}
		req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		lastErr = c.do(req, result)
		if lastErr == nil {
			return nil
		}
		// Client-side errors are not transient; do not retry them.
		if errors.CodeOf(lastErr) != errors.ErrCodeInternalError {
			return lastErr
		}
	}
	return lastErr
}

// post performs a POST with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	if c.readOnly && path != "/api/v1/auth/login" {
		return errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

// doDelete performs a DELETE and returns the reported deletion flag.
func (c *Client) doDelete(path string) (bool, error) {
	if c.readOnly {
		return false, errors.New(errors.ErrCodeReadOnly, "deployment is read-only")
	}

	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	var result struct {
		Deleted bool `json:"deleted"`
	}
	if err := c.do(req, &result); err != nil {
		return false, err
	}
	return result.Deleted, nil
}

// do executes the request and decodes either the result or the API error.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternalError, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternalError, "reading response", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error  string            `json:"error"`
			Code   errors.ErrorCode  `json:"code"`
			Fields map[string]string `json:"fields"`
		}
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Code != "" {
			return &errors.AppError{Code: apiErr.Code, Message: apiErr.Error, Fields: apiErr.Fields}
		}
		return errors.New(errors.ErrCodeInternalError, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return errors.Wrap(errors.ErrCodeInternalError, "decoding response", err)
	}
	return nil
}
