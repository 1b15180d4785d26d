package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/torislove/gomandap-server/internal/models"
	"github.com/torislove/gomandap-server/internal/search"
)

type stubSource struct {
	vendors []models.Vendor
	err     error
}

func (s *stubSource) Search(ctx context.Context, filter primitive.M) ([]models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vendors, nil
}

func searchRouter(source search.VendorSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(search.NewService(source, nil, 0), nil, nil)

	r := gin.New()
	r.GET("/api/v1/vendors/search", h.SearchVendors)
	return r
}

func TestSearchVendorsEnvelope(t *testing.T) {
	r := searchRouter(&stubSource{vendors: []models.Vendor{
		{BusinessName: "Andhra Swad Caterers", VendorType: "catering", Priority: 2, IsVerified: true},
		{BusinessName: "Royal Caterers", VendorType: "catering", Priority: 5, IsVerified: true},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/search?category=catering&city=Guntur&minPrice=20000&maxPrice=80000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Count   int                   `json:"count"`
		Data    []search.RankedVendor `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Royal Caterers", resp.Data[0].BusinessName)
}

func TestSearchVendorsStoreDownSoftFails(t *testing.T) {
	r := searchRouter(&stubSource{err: errors.New("no reachable servers")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Data)
}

func TestSearchVendorsStripsSensitiveFields(t *testing.T) {
	r := searchRouter(&stubSource{vendors: []models.Vendor{
		{
			BusinessName: "Royal Palace",
			IsVerified:   true,
			Password:     "hashed-secret",
			FCMTokens:    []string{"token-1"},
		},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Even if a projection slips, the JSON encoding never carries these.
	assert.NotContains(t, w.Body.String(), "hashed-secret")
	assert.NotContains(t, w.Body.String(), "token-1")
	assert.NotContains(t, w.Body.String(), "fcmTokens")
}
