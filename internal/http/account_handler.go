package http

import (
	"net/http"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type AccountHandler struct {
	service  domain.AccountService
	verifier middleware.TokenVerifier
	logger   logger.Logger
}

func NewAccountHandler(service domain.AccountService, verifier middleware.TokenVerifier, logger logger.Logger) *AccountHandler {
	return &AccountHandler{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}
}

func (h *AccountHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()

	mux.Handle("/api/accounts.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/accounts.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/accounts.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/accounts.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/accounts.updateStatus", requireAuth(http.HandlerFunc(h.handleUpdateStatus)))
	mux.Handle("/api/accounts.bulkEdit", requireAuth(http.HandlerFunc(h.handleBulkEdit)))
	mux.Handle("/api/accounts.bulkTransfer", requireAuth(http.HandlerFunc(h.handleBulkTransfer)))
	mux.Handle("/api/accounts.bulkStatus", requireAuth(http.HandlerFunc(h.handleBulkStatus)))
	mux.Handle("/api/accounts.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *AccountHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var req domain.ListAccountsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	accounts, err := h.service.ListAccounts(r.Context(), req.ToFilter())
	if err != nil {
		writeServiceError(w, h.logger, err, "list accounts")
		return
	}
	writeList(w, accounts)
}

func (h *AccountHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get account")
		return
	}
	writeData(w, http.StatusOK, account)
}

func (h *AccountHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.CreateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	account, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateAccount(r.Context(), account); err != nil {
		writeServiceError(w, h.logger, err, "create account")
		return
	}
	writeData(w, http.StatusCreated, account)
}

func (h *AccountHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	account, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateAccount(r.Context(), account); err != nil {
		writeServiceError(w, h.logger, err, "update account")
		return
	}
	writeData(w, http.StatusOK, account)
}

func (h *AccountHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.UpdateAccountStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateAccountStatus(r.Context(), req.ID, req.Status); err != nil {
		writeServiceError(w, h.logger, err, "update account status")
		return
	}
	writeMessage(w, "Account status updated")
}

// bulkRequest is implemented by the three bulk account payloads
type bulkRequest interface {
	Validate() (domain.IDList, domain.AccountChanges, error)
}

func (h *AccountHandler) handleBulk(w http.ResponseWriter, r *http.Request, req bulkRequest, message string) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	if err := decodeJSON(w, r, req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, changes, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.BulkUpdateAccounts(r.Context(), ids, changes)
	if err != nil {
		writeServiceError(w, h.logger, err, "bulk update accounts")
		return
	}
	writeCount(w, message, updated)
}

func (h *AccountHandler) handleBulkEdit(w http.ResponseWriter, r *http.Request) {
	h.handleBulk(w, r, &domain.BulkEditAccountsRequest{}, "Accounts updated")
}

func (h *AccountHandler) handleBulkTransfer(w http.ResponseWriter, r *http.Request) {
	h.handleBulk(w, r, &domain.BulkTransferAccountsRequest{}, "Accounts transferred")
}

func (h *AccountHandler) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	h.handleBulk(w, r, &domain.BulkAccountStatusRequest{}, "Account statuses updated")
}

func (h *AccountHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}

	id, err := queryID(r)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete account")
		return
	}
	writeMessage(w, "Account deleted")
}
