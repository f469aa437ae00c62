package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/internal/http/middleware"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// LocationHeader carries the client's self-reported location on sign-in and sign-out
const LocationHeader = "X-Client-Location"

type UserHandler struct {
	userService domain.UserService
	verifier    middleware.TokenVerifier
	logger      logger.Logger
}

func NewUserHandler(userService domain.UserService, verifier middleware.TokenVerifier, logger logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		verifier:    verifier,
		logger:      logger,
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	// Public routes
	mux.HandleFunc("/api/users.login", h.handleLogin)

	// Protected routes
	requireAuth := middleware.NewAuthMiddleware(h.verifier).RequireAuth()
	mux.Handle("/api/users.logout", requireAuth(http.HandlerFunc(h.handleLogout)))
	mux.Handle("/api/users.me", requireAuth(http.HandlerFunc(h.handleMe)))
	mux.Handle("/api/users.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/users.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/users.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/users.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/users.changePassword", requireAuth(http.HandlerFunc(h.handleChangePassword)))
	mux.Handle("/api/users.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

// clientInfo describes the caller; the first X-Forwarded-For hop wins over RemoteAddr
func clientInfo(r *http.Request) domain.ClientInfo {
	ip := ""
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip = host
	}
	return domain.ClientInfo{
		IP:        ip,
		UserAgent: r.UserAgent(),
		Location:  strings.TrimSpace(r.Header.Get(LocationHeader)),
	}
}

// requireUserAdmin writes 403 unless the caller's role may manage users
func requireUserAdmin(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := domain.PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "not authenticated", http.StatusUnauthorized)
		return false
	}
	if !domain.CanManageUsers(principal.Role) {
		WriteJSONError(w, "insufficient role to manage users", http.StatusForbidden)
		return false
	}
	return true
}

func (h *UserHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.userService.Login(r.Context(), req, clientInfo(r))
	if err != nil {
		writeServiceError(w, h.logger, err, "sign in")
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (h *UserHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	principal, _ := domain.PrincipalFromContext(r.Context())
	if err := h.userService.Logout(r.Context(), principal, clientInfo(r)); err != nil {
		writeServiceError(w, h.logger, err, "sign out")
		return
	}
	writeMessage(w, "Signed out")
}

func (h *UserHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	principal, ok := domain.PrincipalFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	id, err := domain.ParseObjectID(principal.UserID, "userId")
	if err != nil {
		WriteJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get current user")
		return
	}
	writeData(w, http.StatusOK, user)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	var filter domain.UserFilter
	if err := filter.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "list users")
		return
	}
	writeList(w, users)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, err := domain.ParseObjectID(r.URL.Query().Get("id"), "id")
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get user")
		return
	}
	writeData(w, http.StatusOK, user)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if !requireUserAdmin(w, r) {
		return
	}

	var req domain.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.CreateUser(r.Context(), user, req.Password); err != nil {
		writeServiceError(w, h.logger, err, "create user")
		return
	}
	writeData(w, http.StatusCreated, user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}
	if !requireUserAdmin(w, r) {
		return
	}

	var req domain.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.UpdateUser(r.Context(), user); err != nil {
		writeServiceError(w, h.logger, err, "update user")
		return
	}
	writeData(w, http.StatusOK, user)
}

func (h *UserHandler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req domain.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), id, req.Current, req.New); err != nil {
		writeServiceError(w, h.logger, err, "change password")
		return
	}
	writeMessage(w, "Password changed")
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodDelete) {
		return
	}
	if !requireUserAdmin(w, r) {
		return
	}

	id, err := domain.ParseObjectID(r.URL.Query().Get("id"), "id")
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err, "delete user")
		return
	}
	writeMessage(w, "User deleted")
}
