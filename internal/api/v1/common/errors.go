// Package common holds helpers shared by the v1 handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"
	"gymdesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError maps a service error onto the response envelope. fallback is
// the message used for unexpected errors.
func RespondError(c *gin.Context, err error, fallback string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]utils.ValidationErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, utils.ValidationErrorDetail{Field: f.Field, Message: f.Message, Expected: f.Expected})
		}
		utils.RespondValidationErrors(c, details)
	case errors.Is(err, services.ErrMemberNotFound):
		utils.Fail(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, services.ErrOptimisticLock):
		utils.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotConfigured):
		utils.Fail(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		logger.L().Error("Store unavailable", zap.Error(err))
		utils.Fail(c, http.StatusServiceUnavailable, "Member store is unavailable, please retry later")
	default:
		logger.L().Error(fallback, zap.Error(err), zap.String("path", c.Request.URL.Path))
		utils.Fail(c, http.StatusInternalServerError, fallback)
	}
}

// ParseID reads the :id path parameter. It writes a 400 and returns false when
// the value is not a positive integer.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid member ID")
		return 0, false
	}
	return uint(id), true
}
