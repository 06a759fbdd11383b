package stats

import (
	"net/http"

	"gymdesk-backend/internal/api/v1/common"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @Summary Dashboard statistics
// @Description Member counts by gender and duration, revenue totals and expiry counts. from/to bound the revenue-in-range figure by joining date.
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Joined on or after (YYYY-MM-DD)"
// @Param to query string false "Joined on or before (YYYY-MM-DD)"
// @Success 200 {object} utils.Response{data=services.Stats}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /stats [get]
func GetStats(c *gin.Context) {
	from, err := utils.ParseOptionalDate(c.Query("from"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid from: "+err.Error())
		return
	}
	to, err := utils.ParseOptionalDate(c.Query("to"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid to: "+err.Error())
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		utils.Fail(c, http.StatusBadRequest, "to must not be before from")
		return
	}

	members, err := services.ListMembers(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "Failed to fetch members")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Stats retrieved successfully", services.ComputeStats(members, from, to)))
}
