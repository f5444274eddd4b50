package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
)

type historyResponse struct {
	Account   string                     `json:"account"`
	Snapshots []model.SubmissionSnapshot `json:"snapshots"`
}

func (h *Handler) accountHistory(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if h.history == nil {
		h.writeError(w, r, fmt.Errorf("%w: submission history is not recorded", errNotFound))
		return
	}

	account, err := substrate.ParseAccount(params["account"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	limit := h.opts.HistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			h.writeError(w, r, fmt.Errorf("%w: limit %q", errBadRequest, raw))
			return
		}
	}

	snapshots, err := h.history.SubmissionHistory(r.Context(), h.opts.Namespace, account.Hex(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(snapshots) == 0 {
		h.writeError(w, r, fmt.Errorf("%w: no history for %s", errNotFound, params["account"]))
		return
	}

	address, err := substrate.EncodeSS58(account, h.opts.SS58Prefix)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, historyResponse{Account: address, Snapshots: snapshots})
}
