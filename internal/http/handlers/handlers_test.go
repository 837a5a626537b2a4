package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	"github.com/evermore-apps/evermore-backend/internal/requestdata"
)

func testContext(t *testing.T, rd *requestdata.RequestData, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if rd != nil {
		req = req.WithContext(requestdata.WithRequestData(req.Context(), rd))
	}
	c.Request = req
	return c, w
}

func TestTenantID_UsesPrincipalScope(t *testing.T) {
	coupleID := uuid.New()
	rd := &requestdata.RequestData{
		Kind:        accounts.PrincipalCouple,
		PrincipalID: coupleID,
		CoupleID:    coupleID,
	}
	c, _ := testContext(t, rd, "/api/guests")

	got, ok := tenantID(c)
	require.True(t, ok)
	require.Equal(t, coupleID, got)
}

func TestTenantID_SuperAdminPicksTenantByQuery(t *testing.T) {
	target := uuid.New()
	rd := &requestdata.RequestData{
		Kind:        accounts.PrincipalSuperAdmin,
		PrincipalID: uuid.New(),
	}
	c, _ := testContext(t, rd, "/api/guests?couple_id="+target.String())

	got, ok := tenantID(c)
	require.True(t, ok)
	require.Equal(t, target, got)
}

func TestTenantID_SuperAdminWithoutTenantFails(t *testing.T) {
	rd := &requestdata.RequestData{
		Kind:        accounts.PrincipalSuperAdmin,
		PrincipalID: uuid.New(),
	}
	c, w := testContext(t, rd, "/api/guests")

	_, ok := tenantID(c)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantID_MissingPrincipalFails(t *testing.T) {
	c, w := testContext(t, nil, "/api/guests")

	_, ok := tenantID(c)
	require.False(t, ok)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestParseIDParam(t *testing.T) {
	id := uuid.New()
	c, _ := testContext(t, nil, "/api/guests/"+id.String())
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	got, ok := parseIDParam(c, "id")
	require.True(t, ok)
	require.Equal(t, id, got)

	c, w := testContext(t, nil, "/api/guests/nope")
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	_, ok = parseIDParam(c, "id")
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	c, w := testContext(t, nil, "/healthcheck")
	NewHealthHandler().HealthCheck(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
