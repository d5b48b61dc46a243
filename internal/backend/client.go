// Package backend implements the HTTP client for the fraud-detection service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/Veraticus/securebank-console/internal/service"
)

// DefaultBaseURL is the endpoint the console talks to unless configured otherwise.
const DefaultBaseURL = "http://localhost:5001"

// Service paths.
const (
	PathHistory          = "/history"
	PathDatasets         = "/datasets"
	PathModels           = "/models"
	PathPredict          = "/predict/"
	PathGenerateDataset  = "/generate_dataset/"
	PathTrainModel       = "/train_model/"
	PathSelectModel      = "/select_model/"
	PathAuditPerformance = "/audit_performance/"
)

// HeaderRequestID carries the console's per-call request id.
const HeaderRequestID = "X-Request-ID"

// Options parameterise the client.
type Options struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Timeout of zero leaves requests unbounded.
	Timeout time.Duration
}

// Client talks JSON to the fraud-detection service. It performs no retries and no
// response-schema validation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

var _ service.Backend = (*Client)(nil)

// NewClient constructs a client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "securebank-console"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// History fetches the backend's prediction log.
func (c *Client) History(ctx context.Context) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	if err := c.get(ctx, PathHistory, &entries); err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return entries, nil
}

// Datasets fetches the known dataset listing.
func (c *Client) Datasets(ctx context.Context) ([]model.DatasetSummary, error) {
	var datasets []model.DatasetSummary
	if err := c.get(ctx, PathDatasets, &datasets); err != nil {
		return nil, fmt.Errorf("fetch datasets: %w", err)
	}
	return datasets, nil
}

// Models fetches the model identifiers the backend supports.
func (c *Client) Models(ctx context.Context) ([]model.ModelName, error) {
	var names []string
	if err := c.get(ctx, PathModels, &names); err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	return model.ModelNames(names), nil
}

// Predict submits a transaction for scoring.
func (c *Client) Predict(ctx context.Context, txn model.TransactionInput) (model.PredictResponse, error) {
	var resp model.PredictResponse
	if err := c.post(ctx, PathPredict, txn, &resp); err != nil {
		return model.PredictResponse{}, fmt.Errorf("predict: %w", err)
	}
	return resp, nil
}

// GenerateDataset requests a new synthetic dataset.
func (c *Client) GenerateDataset(ctx context.Context, params model.DatasetParams) (model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, PathGenerateDataset, params, &resp); err != nil {
		return model.MessageResponse{}, fmt.Errorf("generate dataset: %w", err)
	}
	return resp, nil
}

// TrainModel trains a model on a dataset version.
func (c *Client) TrainModel(ctx context.Context, req model.TrainRequest) (model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, PathTrainModel, req, &resp); err != nil {
		return model.MessageResponse{}, fmt.Errorf("train model: %w", err)
	}
	return resp, nil
}

// SelectModel activates a model for scoring.
func (c *Client) SelectModel(ctx context.Context, req model.SelectRequest) (model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, PathSelectModel, req, &resp); err != nil {
		return model.MessageResponse{}, fmt.Errorf("select model: %w", err)
	}
	return resp, nil
}

// AuditPerformance measures the active model's error rates on a dataset version.
func (c *Client) AuditPerformance(ctx context.Context, req model.AuditRequest) (model.AuditResult, error) {
	var resp model.AuditResult
	if err := c.post(ctx, PathAuditPerformance, req, &resp); err != nil {
		return model.AuditResult{}, fmt.Errorf("audit performance: %w", err)
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	requestID := RequestIDFrom(ctx)
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}

	slog.Debug("Sending backend request",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseHTTPError(path, resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func parseHTTPError(path string, status int, payload []byte) error {
	backendErr := &common.BackendError{Path: path, Status: status}

	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil {
		switch {
		case apiErr.Error != "":
			backendErr.Message = apiErr.Error
		case apiErr.Message != "":
			backendErr.Message = apiErr.Message
		}
	}
	if backendErr.Message == "" {
		backendErr.Message = truncate(strings.TrimSpace(string(payload)), 200)
	}
	return backendErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
