package http

import (
	"errors"
	"net/http"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/domain/catalog"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/usecase/registration"

	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	uc   *registration.Usecase
	prod bool
}

func NewRegistrationHandler(uc *registration.Usecase, production bool) *RegistrationHandler {
	return &RegistrationHandler{uc: uc, prod: production}
}

type donationReq struct {
	Name               string  `json:"name"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Notes              string  `json:"notes"`
	Anonymous          bool    `json:"anonymous"`
	Pack               string  `json:"package"`
	CustomAmount       float64 `json:"custom_amount"`
	Type               string  `json:"type"`
	PaymentMethod      string  `json:"payment_method"`
	ClientUUID         string  `json:"client_uuid"`
	AdditionalDonation bool    `json:"additional_donation"`
}

// SubmitDonation records a pledge or a cash payment from the registrar
// form. Field checks live in the usecase so every problem comes back in
// one response rather than one at a time.
func (h *RegistrationHandler) SubmitDonation(c echo.Context) error {
	var req donationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	// The middleware-level replay uses the header; the body field wins
	// when both are present since it is what the form actually signed.
	if req.ClientUUID == "" {
		req.ClientUUID = c.Request().Header.Get("X-Client-UUID")
	}

	dto, err := h.uc.Submit(c.Request().Context(), registration.SubmitInput{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Notes:              req.Notes,
		Anonymous:          req.Anonymous,
		Pack:               req.Pack,
		CustomAmount:       req.CustomAmount,
		Type:               req.Type,
		PaymentMethod:      req.PaymentMethod,
		ClientUUID:         req.ClientUUID,
		AdditionalDonation: req.AdditionalDonation,
		SubmittedByUserID:  middleware.UserID(c),
	})
	if err != nil {
		var ve *registration.ValidationError
		switch {
		case errors.As(err, &ve):
			details := make([]FieldError, 0, len(ve.Messages))
			for _, m := range ve.Messages {
				details = append(details, FieldError{Field: "form", Message: m})
			}
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
		case errors.Is(err, pledge.ErrDuplicateSubmission):
			return conflict(c, err.Error())
		case errors.Is(err, registration.ErrDuplicateDonor):
			return conflict(c, err.Error())
		default:
			return internalError(c, err, h.prod)
		}
	}
	return c.JSON(http.StatusCreated, dto)
}

// ListPackages serves the fixed grid-square price list the registrar
// form is built from.
func (h *RegistrationHandler) ListPackages(c echo.Context) error {
	all := catalog.All()
	out := make([]map[string]any, 0, len(all))
	for _, p := range all {
		out = append(out, map[string]any{
			"id":    p.ID,
			"label": p.Label,
			"price": p.Price,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"packages": out})
}
