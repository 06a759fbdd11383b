package member

import (
	"net/http"

	"gymdesk-backend/internal/api/v1/common"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportMembers godoc
// @Summary Export members to Excel
// @Description Same filters as the list endpoint.
// @Tags members
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param search query string false "Name contains (case-insensitive)"
// @Param verified query bool false "Verified flag"
// @Param gender query string false "male, female or other"
// @Param duration query int false "Plan duration in months"
// @Param doj query string false "Date of joining (YYYY-MM-DD)"
// @Param validUpto query string false "Expiry date (YYYY-MM-DD)"
// @Param sortBy query string false "serialNumber or name"
// @Param order query string false "asc or desc"
// @Success 200 {file} file
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /members/export [get]
func ExportMembers(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}

	members, err := services.ListMembers(c.Request.Context())
	if err != nil {
		common.RespondError(c, err, "Failed to fetch members")
		return
	}

	data, err := services.GenerateMembersExcel(services.FilterMembers(members, filter))
	if err != nil {
		common.RespondError(c, err, "Failed to generate spreadsheet")
		return
	}

	utils.SendFile(c, services.MembersExportFilename(services.Now()), xlsxContentType, data)
}

// DownloadInvoice godoc
// @Summary Download a member's invoice
// @Tags members
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.Response
// @Router /members/{id}/invoice [get]
func DownloadInvoice(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	m, err := services.GetMember(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, "Failed to fetch member")
		return
	}

	data, err := services.GenerateInvoicePDF(m, services.Now())
	if err != nil {
		common.RespondError(c, err, "Failed to generate invoice")
		return
	}

	utils.SendFile(c, services.InvoiceFilename(m), "application/pdf", data)
}

type ArchiveResponse struct {
	URL string `json:"url"`
}

// ArchiveInvoice godoc
// @Summary Archive a member's invoice
// @Description Uploads the invoice PDF to object storage and returns its URL.
// @Tags members
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Success 200 {object} utils.Response{data=ArchiveResponse}
// @Failure 404 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /members/{id}/invoice/archive [post]
func ArchiveInvoice(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	url, err := services.ArchiveInvoice(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err, "Failed to archive invoice")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Invoice archived successfully", ArchiveResponse{URL: url}))
}

// SendEmail godoc
// @Summary Email registration details
// @Description Sends the registration PDF to the given address, or to the member's own address when omitted.
// @Tags members
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Param body body SendEmailRequest false "Recipient override"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /members/{id}/email [post]
func SendEmail(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req SendEmailRequest
	if c.Request.ContentLength != 0 && !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.SendRegistrationEmail(c.Request.Context(), id, req.Email); err != nil {
		common.RespondError(c, err, "Failed to send email")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Email sent successfully", nil))
}
