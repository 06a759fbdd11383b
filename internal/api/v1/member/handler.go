package member

import (
	"net/http"

	"gymdesk-backend/internal/api/v1/common"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func toResponses(members []models.Member) []MemberResponse {
	today := services.Now()
	threshold := services.CurrentSettings().ExpiryThresholdDays
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewMemberResponse(m, today, threshold))
	}
	return out
}

func toResponse(m models.Member) MemberResponse {
	return NewMemberResponse(m, services.Now(), services.CurrentSettings().ExpiryThresholdDays)
}

// bindListQuery parses the list filters, writing a 400 on bad input.
func bindListQuery(c *gin.Context) (services.MemberFilter, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return services.MemberFilter{}, false
	}
	doj, err := utils.ParseOptionalDate(q.DOJ)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid doj: "+err.Error())
		return services.MemberFilter{}, false
	}
	validUpto, err := utils.ParseOptionalDate(q.ValidUpto)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid validUpto: "+err.Error())
		return services.MemberFilter{}, false
	}
	return services.MemberFilter{
		Search:    q.Search,
		Verified:  q.Verified,
		Gender:    models.Gender(q.Gender),
		Duration:  q.Duration,
		DOJ:       doj,
		ValidUpto: validUpto,
		SortBy:    q.SortBy,
		SortDesc:  q.Order == "desc",
	}, true
}

// ListMembers godoc
// @Summary List members
// @Description All members ordered by serial number, with computed validity. Optional filters narrow the list.
// @Tags members
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Name contains (case-insensitive)"
// @Param verified query bool false "Verified flag"
// @Param gender query string false "male, female or other"
// @Param duration query int false "Plan duration in months"
// @Param doj query string false "Date of joining (YYYY-MM-DD)"
// @Param validUpto query string false "Expiry date (YYYY-MM-DD)"
// @Param sortBy query string false "serialNumber or name"
// @Param order query string false "asc or desc"
// @Success 200 {object} utils.Response{data=[]MemberResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /members [get]
func ListMembers(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}

	members, err := services.ListMembers(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "Failed to fetch members")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Members retrieved successfully", toResponses(services.FilterMembers(members, filter))))
}

// GetMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Success 200 {object} utils.Response{data=MemberResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /members/{id} [get]
func GetMember(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	m, err := services.GetMember(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, "Failed to fetch member")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member retrieved successfully", toResponse(m)))
}

// CreateMember godoc
// @Summary Register a member
// @Description Registers a member and assigns the next serial number. DOJ and planStarted default to now.
// @Tags members
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateMemberRequest true "Member draft"
// @Success 201 {object} utils.Response{data=MemberResponse}
// @Failure 400 {object} utils.Response{data=utils.ValidationErrorData}
// @Failure 503 {object} utils.Response
// @Router /members [post]
func CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateMember(c.Request.Context(), req.toModel())
	if err != nil {
		common.RespondError(c, err, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Member created successfully", toResponse(*created)))
}

// UpdateMember godoc
// @Summary Edit a member
// @Description Updates the given fields. Send the version you read to detect concurrent edits.
// @Tags members
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Param body body UpdateMemberRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=MemberResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /members/{id} [put]
func UpdateMember(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	update, changed := req.toUpdate()
	if !changed {
		utils.Fail(c, http.StatusBadRequest, "No fields to update")
		return
	}

	updated, err := services.UpdateMember(c.Request.Context(), id, update)
	if err != nil {
		common.RespondError(c, err, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member updated successfully", toResponse(*updated)))
}

// RenewPlan godoc
// @Summary Renew a member's plan
// @Description Archives the current plan into previousPlan, replaces it with the new one and marks the member verified.
// @Tags members
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Param body body RenewPlanRequest true "New plan"
// @Success 200 {object} utils.Response{data=MemberResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /members/{id}/update [put]
func RenewPlan(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req RenewPlanRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	renewed, err := services.RenewMember(c.Request.Context(), id, req.toInput(), req.Version)
	if err != nil {
		common.RespondError(c, err, "Failed to renew plan")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan updated successfully", toResponse(*renewed)))
}

// DeleteMember godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /members/{id} [delete]
func DeleteMember(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	if err := services.DeleteMember(c.Request.Context(), id); err != nil {
		common.RespondError(c, err, "Failed to delete member")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member deleted successfully", nil))
}
