package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	"github.com/lk2023060901/assistant-directory/internal/assistant/data"
	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenConnector struct{}

func (brokenConnector) Acquire(context.Context) (biz.AssistantConn, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
}

func (brokenConnector) Release(biz.AssistantConn) error { return nil }

func newRouter(connector biz.Connector) *gin.Engine {
	log := logger.NewNop()
	svc := NewAssistantService(biz.NewAssistantUseCase(connector, log), log)

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenList(t *testing.T) {
	r := newRouter(data.NewMemoryConnector())

	w := do(r, http.MethodPost, "/api/assistants", `{"name":"Nova"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateAssistantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Assistant)
	assert.NotEmpty(t, created.Assistant.UUID)
	assert.Equal(t, "You are a helpful voice assistant named Nova", created.Assistant.SystemPrompt)
	assert.Contains(t, w.Body.String(), `"voice_id":null`)
	assert.Contains(t, w.Body.String(), `"enabled_tools":[]`)

	w = do(r, http.MethodGet, "/api/assistants", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list ListAssistantsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Assistants, 1)
	assert.Equal(t, created.Assistant.UUID, list.Assistants[0].UUID)
}

func TestListAssistants_Empty(t *testing.T) {
	w := do(newRouter(data.NewMemoryConnector()), http.MethodGet, "/api/assistants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"assistants":[]}`, w.Body.String())
}

func TestListAssistants_NullTools(t *testing.T) {
	store := data.NewMemoryConnector()
	store.Seed(types.Assistant{UUID: "0b6f3c55-7d5e-4d43-9d6c-8d1b7b2f6f01", Name: "Legacy", SystemPrompt: "legacy"})

	w := do(newRouter(store), http.MethodGet, "/api/assistants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"assistants":[{
		"uuid":"0b6f3c55-7d5e-4d43-9d6c-8d1b7b2f6f01",
		"name":"Legacy",
		"system_prompt":"legacy",
		"voice_id":null,
		"enabled_tools":[]
	}]}`, w.Body.String())
}

func TestCreateAssistant_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty name", `{"name":""}`},
		{"no body", ``},
		{"malformed json", `{"name":`},
		{"wrong type", `{"name":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := data.NewMemoryConnector()
			r := newRouter(store)

			w := do(r, http.MethodPost, "/api/assistants", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])

			w = do(r, http.MethodGet, "/api/assistants", "")
			assert.JSONEq(t, `{"assistants":[]}`, w.Body.String())
		})
	}
}

func TestStoreFailure(t *testing.T) {
	r := newRouter(brokenConnector{})

	for _, req := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPost, `{"name":"Nova"}`},
	} {
		w := do(r, req.method, "/api/assistants", req.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"dial tcp 127.0.0.1:5432: connect: connection refused"}`, w.Body.String())
	}
}
