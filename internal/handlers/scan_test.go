package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardshell/riskscan/internal/adapters/storage"
	"github.com/guardshell/riskscan/internal/application"
	"github.com/guardshell/riskscan/internal/domain"
	"github.com/guardshell/riskscan/internal/domain/analyzers"
)

type stubResolver struct{}

func (stubResolver) Resolve(context.Context, string, string) ([]string, error) {
	return nil, nil
}

type stubBreachDirectory struct{}

func (stubBreachDirectory) LookupBreaches(context.Context, string) ([]domain.Breach, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	urls, err := analyzers.NewURLAnalyzer()
	require.NoError(t, err)
	messages, err := analyzers.NewMessageAnalyzer()
	require.NoError(t, err)
	emails, err := analyzers.NewEmailAnalyzer(stubResolver{}, stubBreachDirectory{}, time.Second, nil)
	require.NoError(t, err)

	service := application.NewScanService(urls, messages, emails, storage.NewMemoryStore(), nil)

	router := gin.New()
	NewScanHandler(service).Register(router)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestScanURLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/scan/url", `{"input":"https://github.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Score int    `json:"score"`
		Tier  string `json:"tier"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, "safe", resp.Tier)
}

func TestScanMessageEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/scan/message", `{"input":"URGENT: verify your password at http://bank.example"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Risk bool `json:"risk"`
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Risk)
	assert.Greater(t, resp.Score, 40)
}

func TestScanEmailEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/scan/email", `{"input":"jane@gmail.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tier   string `json:"tier"`
		Checks struct {
			PublicDomain bool `json:"public_domain"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "safe", resp.Tier)
	assert.True(t, resp.Checks.PublicDomain)
}

func TestScanEndpoint_BadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/scan/url", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/v1/scan/url", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanEndpoint_WhitespaceInputIsNullResult(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/scan/message", `{"input":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	risk, present := resp["risk"]
	assert.True(t, present)
	assert.Nil(t, risk)
}

func TestHistoryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	postJSON(router, "/api/v1/scan/url", `{"input":"http://badsite.cc/login"}`)
	postJSON(router, "/api/v1/scan/message", `{"input":"hello there"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Records []domain.ScanRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, domain.ScanMessage, resp.Records[0].Kind)
	assert.Equal(t, domain.ScanURL, resp.Records[1].Kind)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
}

func TestHistoryEndpoint_BadLimit(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings/chat_provider", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/chat_provider", bytes.NewBufferString(`{"value":"gemini"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings/chat_provider", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gemini", resp.Value)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
