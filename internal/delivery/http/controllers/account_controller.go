package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"devportal/internal/delivery/http/helpers"
	"devportal/internal/delivery/http/middleware"
	"devportal/internal/domain"
)

// CreateInviteRequest is the request body for POST /admin/accounts/pending-invites.
type CreateInviteRequest struct {
	EmailAddress string `json:"emailAddress"`
}

// Validate implements Validator.
func (c CreateInviteRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EmailAddress) == "" {
		errs = append(errs, "emailAddress is required")
	}
	return errs
}

// PendingInvitesSuccessResponse is the success envelope for GET /admin/accounts/pending-invites (200).
type PendingInvitesSuccessResponse struct {
	Data  []*domain.Account  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateInviteSuccessResponse is the success envelope for POST /admin/accounts/pending-invites (201).
type CreateInviteSuccessResponse struct {
	Data  *domain.Account   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// invalidUserIDMessage is the exact 400 message of the deny-request route.
const invalidUserIDMessage = `Invalid value for "userId" URL parameter.`

// AccountController handles the account administration endpoints.
type AccountController struct {
	Logger    *slog.Logger
	Accounts  domain.AccountService
	Customers domain.CustomerController
}

// NewAccountController creates an AccountController.
func NewAccountController(logger *slog.Logger, accounts domain.AccountService, customers domain.CustomerController) *AccountController {
	return &AccountController{
		Logger:    logger,
		Accounts:  accounts,
		Customers: customers,
	}
}

// ListPendingInvites godoc
// @Summary List pending invites
// @Description Returns every account invited by email that has not registered yet, newest first.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.PendingInvitesSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/accounts/pending-invites [get]
func (c *AccountController) ListPendingInvites(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Accounts.ListPendingInvites(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, domain.MessageOf(err))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, accounts)
}

// CreatePendingInvite godoc
// @Summary Create an invite
// @Description Records a pending invite for the email address and sends the invitation email.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateInviteRequest true "Email address to invite"
// @Success 201 {object} controllers.CreateInviteSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/accounts/pending-invites [post]
func (c *AccountController) CreatePendingInvite(w http.ResponseWriter, r *http.Request) {
	var req CreateInviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	inviter := ""
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		inviter = claims.Email
	}
	acc, err := c.Accounts.CreateInviteByEmail(r.Context(), req.EmailAddress, inviter)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, acc)
}

// DeletePendingInvite godoc
// @Summary Delete an invite
// @Description Deletes the pending invite with the given identity-pool id.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param identityPoolId path string true "Identity-pool id"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/accounts/pending-invites/{identityPoolId} [delete]
func (c *AccountController) DeletePendingInvite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("identityPoolId")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing identityPoolId")
		return
	}
	if err := c.Accounts.DeleteInviteByIdentityPoolID(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"identityPoolId": id})
}

// ListPendingRequests godoc
// @Summary List pending account requests
// @Description Returns accounts that requested access and await an admin decision, oldest first.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.PendingInvitesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/accounts/pending-requests [get]
func (c *AccountController) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Customers.ListPendingRequests(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, domain.MessageOf(err))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, accounts)
}

// DenyRequest godoc
// @Summary Deny a pending account request
// @Description Delegates to the customer controller. Bodies are bare JSON: {} on success, {"message"} otherwise.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User id of the requester"
// @Success 200 {object} object
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/accounts/{userId}/denyRequest [put]
func (c *AccountController) DenyRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.ErrorResponse{Message: invalidUserIDMessage})
		return
	}
	if err := c.Customers.DenyAccountPendingRequest(r.Context(), userID); err != nil {
		c.Logger.ErrorContext(r.Context(), "deny account request failed", "user_id", userID, "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, helpers.MakeErrorResponse(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, struct{}{})
}

func (c *AccountController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := helpers.StatusFor(err)
	if status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteJSONError(w, status, helpers.ErrCodeFor(err), domain.MessageOf(err))
}
