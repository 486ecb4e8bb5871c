package pool

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"flowledger/pkg/ledger"
	"flowledger/pkg/response"
)

func passThrough(c *gin.Context) { c.Next() }

func setupPoolRouter(l *ledger.Ledger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPoolHandler(NewPoolService(l))
	h.RegisterRoutes(r, passThrough)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPoolHandler_DepositAndStats(t *testing.T) {
	r := setupPoolRouter(ledger.New())

	w := postJSON(r, "/pool/deposits", `{"amount":500}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/pool", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 500, data["balance"])
	require.EqualValues(t, 500, data["deposited"])
	require.EqualValues(t, 0, data["released"])
}

func TestPoolHandler_ReleaseBeyondBalance(t *testing.T) {
	l := ledger.New()
	_, err := l.Deposit(100)
	require.NoError(t, err)
	r := setupPoolRouter(l)

	w := postJSON(r, "/pool/releases", `{"amount":200}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestPoolHandler_InvalidAmount(t *testing.T) {
	r := setupPoolRouter(ledger.New())

	w := postJSON(r, "/pool/deposits", `{"amount":-5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Zero fails binding before it reaches the ledger.
	w = postJSON(r, "/pool/deposits", `{"amount":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
