package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/securebank-console/internal/common"
	"github.com/Veraticus/securebank-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	header http.Header
	method string
	path   string
	body   string
}

type recorder struct {
	requests []capturedRequest
	mu       sync.Mutex
}

func (r *recorder) all() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedRequest(nil), r.requests...)
}

func newTestServer(t *testing.T, status int, response string) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.requests = append(rec.requests, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			body:   string(body),
			header: r.Header.Clone(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	return NewClient(Options{BaseURL: srv.URL + "/", Timeout: time.Second, UserAgent: "test-agent"}), rec
}

func TestClient_Predict(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"prediction":"fraud"}`)

	ctx := WithRequestID(context.Background(), "req-1")
	resp, err := client.Predict(ctx, model.TransactionInput{Merchant: "fraud_Kirlin", Amount: "12.5"})
	require.NoError(t, err)
	assert.Equal(t, model.PredictionFraud, resp.Prediction)

	require.Len(t, captured.all(), 1)
	req := captured.all()[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, PathPredict, req.path)
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Equal(t, "req-1", req.header.Get(HeaderRequestID))
	assert.Equal(t, "test-agent", req.header.Get("User-Agent"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(req.body), &sent))
	assert.Len(t, sent, 8)
	assert.Equal(t, "fraud_Kirlin", sent["merchant"])
	assert.Equal(t, "12.5", sent["amt"])
	assert.Equal(t, "", sent["cc_num"])
}

func TestClient_PredictMissingField(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{}`)

	resp, err := client.Predict(context.Background(), model.TransactionInput{})
	require.NoError(t, err)
	assert.Equal(t, model.Prediction(""), resp.Prediction)
}

func TestClient_WriteCalls(t *testing.T) {
	tests := []struct {
		call     func(c *Client) (model.MessageResponse, error)
		name     string
		path     string
		wantBody string
	}{
		{
			name: "generate dataset",
			path: PathGenerateDataset,
			call: func(c *Client) (model.MessageResponse, error) {
				return c.GenerateDataset(context.Background(), model.DatasetParams{
					Version: "v3", NumCustomers: "10", NumTransactions: "100", FraudRatio: "0.5",
				})
			},
			wantBody: `{"version":"v3","num_customers":10,"num_transactions":100,"fraud_ratio":0.5}`,
		},
		{
			name: "train model",
			path: PathTrainModel,
			call: func(c *Client) (model.MessageResponse, error) {
				return c.TrainModel(context.Background(), model.TrainRequest{ModelName: model.ModelRVM, DatasetVersion: "v3"})
			},
			wantBody: `{"model_name":"rvm","dataset_version":"v3"}`,
		},
		{
			name: "select model with empty name",
			path: PathSelectModel,
			call: func(c *Client) (model.MessageResponse, error) {
				return c.SelectModel(context.Background(), model.SelectRequest{})
			},
			wantBody: `{"model_name":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)

			resp, err := tt.call(client)
			require.NoError(t, err)
			assert.Equal(t, "ok", resp.Message)

			require.Len(t, captured.all(), 1)
			assert.Equal(t, tt.path, captured.all()[0].path)
			assert.Equal(t, http.MethodPost, captured.all()[0].method)
			assert.JSONEq(t, tt.wantBody, captured.all()[0].body)
		})
	}
}

func TestClient_AuditPerformance(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"false_positive_rate":0.125,"false_negative_rate":0.5}`)

	result, err := client.AuditPerformance(context.Background(), model.AuditRequest{DatasetVersion: "v1.1"})
	require.NoError(t, err)
	require.NotNil(t, result.FalsePositiveRate)
	require.NotNil(t, result.FalseNegativeRate)
	assert.InDelta(t, 0.125, *result.FalsePositiveRate, 1e-9)
	assert.InDelta(t, 0.5, *result.FalseNegativeRate, 1e-9)
	assert.JSONEq(t, `{"dataset_version":"v1.1"}`, captured.all()[0].body)
}

func TestClient_ReadCalls(t *testing.T) {
	t.Run("history", func(t *testing.T) {
		client, captured := newTestServer(t, http.StatusOK,
			`[{"transaction":"{'amt': 1}","prediction":"legitimate"},{"transaction":"{'amt': 2}","prediction":"fraud"}]`)

		entries, err := client.History(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "{'amt': 1}", entries[0].TransactionText())
		assert.Equal(t, model.PredictionFraud, entries[1].Prediction)
		assert.Equal(t, http.MethodGet, captured.all()[0].method)
		assert.Empty(t, captured.all()[0].header.Get("Content-Type"))
	})

	t.Run("datasets", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, `["v1.0","v1.1","v2.0"]`)

		datasets, err := client.Datasets(context.Background())
		require.NoError(t, err)
		require.Len(t, datasets, 3)
		assert.Equal(t, "v2.0", datasets[2].String())
	})

	t.Run("models", func(t *testing.T) {
		client, captured := newTestServer(t, http.StatusOK, `["logistic_regression","xgboost"]`)

		models, err := client.Models(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []model.ModelName{model.ModelLogisticRegression, "xgboost"}, models)
		assert.Equal(t, PathModels, captured.all()[0].path)
	})
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		wantMessage string
		status      int
	}{
		{name: "error payload", status: http.StatusBadRequest, response: `{"error":"Missing required fields"}`, wantMessage: "Missing required fields"},
		{name: "message payload", status: http.StatusNotFound, response: `{"message":"no such dataset"}`, wantMessage: "no such dataset"},
		{name: "plain body", status: http.StatusInternalServerError, response: "  boom  ", wantMessage: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, tt.status, tt.response)

			_, err := client.AuditPerformance(context.Background(), model.AuditRequest{})
			require.Error(t, err)

			var backendErr *common.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.status, backendErr.Status)
			assert.Equal(t, PathAuditPerformance, backendErr.Path)
			assert.Equal(t, tt.wantMessage, backendErr.Message)
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `<html>not json</html>`)

	_, err := client.History(context.Background())
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: url})
	_, err := client.Datasets(context.Background())
	require.Error(t, err)
	_, isBackend := common.StatusCode(err)
	assert.False(t, isBackend)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Options{})
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, time.Duration(0), client.httpClient.Timeout)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	id := NewRequestID()
	assert.Len(t, id, 36)
	assert.Equal(t, id, RequestIDFrom(WithRequestID(context.Background(), id)))
}
