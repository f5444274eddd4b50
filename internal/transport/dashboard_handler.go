package transport

import (
	"bytes"
	"net/http"

	"github.com/goodnatureofminers/workernode-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
	"github.com/goodnatureofminers/workernode-dashboard/internal/preferences"
	"go.uber.org/zap"
)

type pageData struct {
	View     dashboard.View
	Columns  []string
	Statuses []estimator.VoteStatus
	Error    string
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	data := pageData{
		Columns:  preferences.AllColumns,
		Statuses: []estimator.VoteStatus{estimator.Achieved, estimator.Reachable, estimator.Unreachable},
	}

	query, err := dashboard.ParseQuery(r.URL.Query())
	if err == nil {
		data.View, err = h.dashboard.Build(r.Context(), query)
	}
	code := http.StatusOK
	if err != nil {
		code = statusFor(err)
		data.Error = err.Error()
		h.logger.Warn("dashboard page failed", zap.Int("status", code), zap.Error(err))
	}

	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		h.logger.Error("render dashboard", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) dashboardJSON(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	query, err := dashboard.ParseQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.dashboard.Build(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) rewardPeriod(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	period, err := h.dashboard.RewardPeriod(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, period)
}
