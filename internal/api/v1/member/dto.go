package member

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"

	"github.com/shopspring/decimal"
)

// Amount accepts either a JSON string ("1500") or a JSON number (1500) and
// keeps the decimal text.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(raw))
		return nil
	}
	if _, err := decimal.NewFromString(raw); err != nil {
		return &json.UnmarshalTypeError{Value: "number " + raw, Type: reflect.TypeOf("")}
	}
	*a = Amount(raw)
	return nil
}

// Date accepts YYYY-MM-DD or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(time.Time{})}
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + raw, Type: reflect.TypeOf(time.Time{})}
	}
	d.Time = t
	return nil
}

func (d *Date) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

type CreateMemberRequest struct {
	Name             string             `json:"name" binding:"required,max=100"`
	Email            string             `json:"email" binding:"omitempty,email"`
	Gender           models.Gender      `json:"gender" binding:"required,oneof=male female other"`
	Age              int                `json:"age" binding:"required,min=1,max=120"`
	Phone            string             `json:"phone" binding:"required,max=20"`
	Address          string             `json:"address"`
	EmergencyContact string             `json:"emergencyContact" binding:"max=100"`
	Duration         int                `json:"duration" binding:"required,min=1,max=12"`
	PaymentMode      models.PaymentMode `json:"paymentMode" binding:"required,oneof=upi cash"`
	UTR              string             `json:"utr" binding:"required_if=PaymentMode upi"`
	ReceiverName     string             `json:"receiverName" binding:"required_if=PaymentMode cash"`
	Amount           Amount             `json:"amount" binding:"required" swaggertype:"string" example:"1500"`
	DOJ              *Date              `json:"DOJ" swaggertype:"string" example:"2024-01-15"`
	PlanStarted      *Date              `json:"planStarted" swaggertype:"string" example:"2024-01-15"`
}

func (r CreateMemberRequest) toModel() models.Member {
	m := models.Member{
		Name:             strings.TrimSpace(r.Name),
		Email:            strings.TrimSpace(r.Email),
		Gender:           r.Gender,
		Age:              r.Age,
		Phone:            strings.TrimSpace(r.Phone),
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		Duration:         r.Duration,
		PaymentMode:      r.PaymentMode,
		UTR:              strings.TrimSpace(r.UTR),
		ReceiverName:     strings.TrimSpace(r.ReceiverName),
		Amount:           string(r.Amount),
		PlanStarted:      r.PlanStarted.timePtr(),
	}
	if doj := r.DOJ.timePtr(); doj != nil {
		m.DOJ = *doj
	}
	return m
}

// UpdateMemberRequest edits a member in place. Omitted fields are unchanged;
// DOJ, serialNumber and previousPlan cannot be edited.
type UpdateMemberRequest struct {
	Name             *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Email            *string             `json:"email" binding:"omitempty,email"`
	Gender           *models.Gender      `json:"gender" binding:"omitempty,oneof=male female other"`
	Age              *int                `json:"age" binding:"omitempty,min=1,max=120"`
	Phone            *string             `json:"phone" binding:"omitempty,min=1,max=20"`
	Address          *string             `json:"address"`
	EmergencyContact *string             `json:"emergencyContact" binding:"omitempty,max=100"`
	Duration         *int                `json:"duration" binding:"omitempty,min=1,max=12"`
	PaymentMode      *models.PaymentMode `json:"paymentMode" binding:"omitempty,oneof=upi cash"`
	UTR              *string             `json:"utr"`
	ReceiverName     *string             `json:"receiverName"`
	Amount           *Amount             `json:"amount" swaggertype:"string" example:"1500"`
	PlanStarted      *Date               `json:"planStarted" swaggertype:"string" example:"2024-01-15"`
	Verified         *bool               `json:"verified"`
	Version          *int                `json:"version" binding:"omitempty,min=1"`
}

func (r UpdateMemberRequest) toUpdate() (services.MemberUpdate, bool) {
	u := services.MemberUpdate{
		Name:             r.Name,
		Email:            r.Email,
		Gender:           r.Gender,
		Age:              r.Age,
		Phone:            r.Phone,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		Duration:         r.Duration,
		PaymentMode:      r.PaymentMode,
		UTR:              r.UTR,
		ReceiverName:     r.ReceiverName,
		PlanStarted:      r.PlanStarted.timePtr(),
		Verified:         r.Verified,
		Version:          r.Version,
	}
	if r.Amount != nil {
		amount := string(*r.Amount)
		u.Amount = &amount
	}
	changed := u.Name != nil || u.Email != nil || u.Gender != nil || u.Age != nil ||
		u.Phone != nil || u.Address != nil || u.EmergencyContact != nil || u.Duration != nil ||
		u.PaymentMode != nil || u.UTR != nil || u.ReceiverName != nil || u.Amount != nil ||
		u.PlanStarted != nil || u.Verified != nil
	return u, changed
}

// RenewPlanRequest replaces the current plan; the old one is archived into
// previousPlan.
type RenewPlanRequest struct {
	NewAmount        Amount             `json:"newAmount" binding:"required" swaggertype:"string" example:"4500"`
	NewPlanStartDate *Date              `json:"newPlanStartDate" binding:"required" swaggertype:"string" example:"2024-04-16"`
	NewPaymentMode   models.PaymentMode `json:"newPaymentMode" binding:"required,oneof=upi cash"`
	NewUtr           string             `json:"newUtr" binding:"required_if=NewPaymentMode upi"`
	NewReceiverName  string             `json:"newReceiverName" binding:"required_if=NewPaymentMode cash"`
	NewDuration      int                `json:"newDuration" binding:"required,min=1,max=12"`
	Version          *int               `json:"version" binding:"omitempty,min=1"`
}

func (r RenewPlanRequest) toInput() renewal.Input {
	return renewal.Input{
		Amount:       string(r.NewAmount),
		PlanStarted:  r.NewPlanStartDate.Time,
		PaymentMode:  r.NewPaymentMode,
		UTR:          r.NewUtr,
		ReceiverName: r.NewReceiverName,
		Duration:     r.NewDuration,
	}
}

type SendEmailRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// MemberResponse is a member plus its computed validity.
type MemberResponse struct {
	ID               uint                `json:"id"`
	SerialNumber     int64               `json:"serialNumber"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Gender           models.Gender       `json:"gender"`
	Age              int                 `json:"age"`
	Phone            string              `json:"phone"`
	Address          string              `json:"address"`
	EmergencyContact string              `json:"emergencyContact"`
	Duration         int                 `json:"duration"`
	PaymentMode      models.PaymentMode  `json:"paymentMode"`
	UTR              string              `json:"utr"`
	ReceiverName     string              `json:"receiverName"`
	Amount           string              `json:"amount"`
	DOJ              time.Time           `json:"DOJ"`
	PlanStarted      time.Time           `json:"planStarted"`
	Verified         bool                `json:"verified"`
	PreviousPlan     []models.PlanRecord `json:"previousPlan"`
	Version          int                 `json:"version"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`

	ValidUpto     string `json:"validUpto" example:"2024-04-15"`
	DaysRemaining int    `json:"daysRemaining"`
	ExpiringSoon  bool   `json:"expiringSoon"`
	Expired       bool   `json:"expired"`
}

func NewMemberResponse(m models.Member, today time.Time, thresholdDays int) MemberResponse {
	expiry := renewal.ValidUpto(m)
	history := []models.PlanRecord(m.PreviousPlan)
	if history == nil {
		history = []models.PlanRecord{}
	}
	return MemberResponse{
		ID:               m.ID,
		SerialNumber:     m.SerialNumber,
		Name:             m.Name,
		Email:            m.Email,
		Gender:           m.Gender,
		Age:              m.Age,
		Phone:            m.Phone,
		Address:          m.Address,
		EmergencyContact: m.EmergencyContact,
		Duration:         m.Duration,
		PaymentMode:      m.PaymentMode,
		UTR:              m.UTR,
		ReceiverName:     m.ReceiverName,
		Amount:           m.Amount,
		DOJ:              m.DOJ,
		PlanStarted:      m.PlanStart(),
		Verified:         m.Verified,
		PreviousPlan:     history,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		ValidUpto:        expiry.Format(utils.DateLayout),
		DaysRemaining:    renewal.DaysRemaining(expiry, today),
		ExpiringSoon:     renewal.IsExpiringSoon(expiry, today, thresholdDays),
		Expired:          renewal.IsExpired(expiry, today),
	}
}

// ListQuery holds the optional filters of the list and export endpoints.
type ListQuery struct {
	Search    string `form:"search"`
	Verified  *bool  `form:"verified"`
	Gender    string `form:"gender" binding:"omitempty,oneof=male female other"`
	Duration  int    `form:"duration" binding:"omitempty,min=1,max=12"`
	DOJ       string `form:"doj" example:"2024-01-15"`
	ValidUpto string `form:"validUpto" example:"2024-04-15"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=serialNumber name"`
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
}
