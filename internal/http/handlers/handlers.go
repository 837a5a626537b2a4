package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/requestdata"
)

// tenantID resolves the couple scope of the request. Super admins may select
// a tenant with the couple_id query parameter; everyone else is pinned to
// their own.
func tenantID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusForbidden, "forbidden", fmt.Errorf("no principal in context"))
		return uuid.Nil, false
	}
	if rd.CoupleID != uuid.Nil {
		return rd.CoupleID, true
	}
	if raw := c.Query("couple_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err == nil {
			return id, true
		}
	}
	response.RespondError(c, http.StatusBadRequest, "missing_tenant", fmt.Errorf("no couple scope for request"))
	return uuid.Nil, false
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}
