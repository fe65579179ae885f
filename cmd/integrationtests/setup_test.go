package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"construction-marketplace/internal/access"
	"construction-marketplace/internal/auth"
	market "construction-marketplace/internal/marketService"
	"construction-marketplace/internal/repository"
	"construction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSystemOwner = "admin"

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	ctrl := access.NewController(testSystemOwner)
	service := market.NewMarketService(repo, ctrl)
	tokens := auth.NewTokenManager("integration-test-secret", time.Hour)
	return server.SetupRouter(service, tokens)
}

// TokenFor obtains a bearer token for an account through the real endpoint
func TokenFor(t *testing.T, router *gin.Engine, account string) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, "POST", "/auth/token", map[string]any{"account": account}, "")
	require.Equal(t, 200, w.Code)
	data := resp["data"].(map[string]any)
	return data["token"].(string)
}

// ExecuteRequest executes an HTTP request with an optional bearer token and
// parses the JSON response envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Data unwraps the data object of a response envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}
