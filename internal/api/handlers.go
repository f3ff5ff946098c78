package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/fleetsight/fleetsight/internal/analytics"
	"github.com/fleetsight/fleetsight/internal/auth"
	"github.com/fleetsight/fleetsight/internal/model"
	"github.com/fleetsight/fleetsight/internal/store"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	dataset *analytics.Dataset
	store   store.Store
	auth    *auth.Service
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- health ---

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- auth ---

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.auth.ValidateEmail(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.auth.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := h.store.CreateUser(r.Context(), model.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
	})
	if err != nil {
		if eris.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		zap.L().Error("api: create user", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if eris.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		zap.L().Error("api: get user", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !h.auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		zap.L().Error("api: generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// --- dashboards ---

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d := analytics.BuildDashboard(h.dataset.Trips, q.Get("vehicle"), q.Get("route"))
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) TripStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.BuildTripStats(h.dataset.Trips))
}

func (h *Handlers) FinancialOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.BuildFinancialOverview(h.dataset.Closures))
}

// --- trip listings ---

func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trips := analytics.Filter(h.dataset.Trips, q.Get("vehicle"), q.Get("route"))
	writeJSON(w, http.StatusOK, tripList(trips))
}

func (h *Handlers) ListOngoingTrips(w http.ResponseWriter, r *http.Request) {
	trips := analytics.WithStatus(h.dataset.Trips, model.StatusPendingClosure)
	writeJSON(w, http.StatusOK, tripList(trips))
}

func (h *Handlers) ListClosureTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tripList(h.dataset.Closures))
}

func (h *Handlers) ListAuditTrips(w http.ResponseWriter, r *http.Request) {
	trips := analytics.WithStatus(h.dataset.Trips, model.StatusUnderAudit)
	writeJSON(w, http.StatusOK, tripList(trips))
}

// tripList keeps empty results as [] rather than null in JSON.
func tripList(trips []model.Trip) []model.Trip {
	if trips == nil {
		return []model.Trip{}
	}
	return trips
}

// --- filter options ---

func (h *Handlers) FilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"vehicles": analytics.Vehicles(h.dataset.Trips),
		"routes":   analytics.RouteNames(h.dataset.Trips),
	})
}

// --- report ---

func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trips := analytics.Filter(h.dataset.Trips, q.Get("vehicle"), q.Get("route"))
	writeJSON(w, http.StatusOK, analytics.BuildReport(trips))
}

func (h *Handlers) ReportDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trips := analytics.Filter(h.dataset.Trips, q.Get("vehicle"), q.Get("route"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="AI_Report_Summary.txt"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, analytics.Report(trips))
}
