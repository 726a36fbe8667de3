package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

const defaultRequestTimeout = 5 * time.Second

// APIClient talks to the order service's REST surface on behalf of a
// terminal. Every call is bounded by the configured request timeout.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a REST client for the service at baseURL.
// A non-positive timeout falls back to the default.
func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type orderPayload struct {
	Pieza         string `json:"pieza"`
	Guarda        string `json:"guarda"`
	Estado        string `json:"estado"`
	PosteRestante bool   `json:"poste_restante"`
}

// ListOrders fetches the rows currently in any of the given statuses.
// An empty filter fetches everything.
func (c *APIClient) ListOrders(ctx context.Context, statuses []order.Status) ([]Entry, error) {
	endpoint := c.baseURL + "/pedidos"
	if len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = s.String()
		}
		endpoint += "?estado=" + url.QueryEscape(strings.Join(names, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list orders: unexpected status %d", resp.StatusCode)
	}

	var payload []orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(payload))
	for _, p := range payload {
		status, err := order.ParseStatus(p.Estado)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Pieza:         p.Pieza,
			Guarda:        p.Guarda,
			Status:        status,
			PosteRestante: p.PosteRestante,
		})
	}
	return entries, nil
}

// CreateOrder registers a new parcel. The server assigns the initial
// status itself.
func (c *APIClient) CreateOrder(ctx context.Context, pieza, guarda string, posteRestante bool) error {
	body, err := json.Marshal(map[string]any{
		"pieza":          pieza,
		"guarda":         guarda,
		"poste_restante": posteRestante,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/pedido", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkMutationStatus(resp, pieza)
}

// UpdateOrder moves the order identified by pieza to a new status.
func (c *APIClient) UpdateOrder(ctx context.Context, pieza string, status order.Status) error {
	body, err := json.Marshal(map[string]string{"estado": status.String()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut, c.baseURL+"/pedido/"+url.PathEscape(pieza), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkMutationStatus(resp, pieza)
}

// checkMutationStatus maps mutation response codes back onto the error
// taxonomy the server used to produce them.
func (c *APIClient) checkMutationStatus(resp *http.Response, pieza string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return errs.NewValueIsInvalidError("request")
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("pieza", pieza)
	default:
		return fmt.Errorf("mutation failed: unexpected status %d", resp.StatusCode)
	}
}
