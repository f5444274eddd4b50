package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
)

type preferencesResponse struct {
	Favorites []string        `json:"favorites"`
	Columns   map[string]bool `json:"columns"`
}

type columnRequest struct {
	Visible *bool `json:"visible"`
}

func (h *Handler) preferences(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	favorites, err := h.prefs.Favorites(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	columns, err := h.prefs.Columns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := preferencesResponse{Favorites: make([]string, 0, len(favorites)), Columns: columns}
	for account := range favorites {
		address, err := substrate.EncodeSS58(account, h.opts.SS58Prefix)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.Favorites = append(resp.Favorites, address)
	}
	slices.Sort(resp.Favorites)

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) setFavorite(favorite bool) func(http.ResponseWriter, *http.Request, map[string]string) {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		account, err := substrate.ParseAccount(params["account"])
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := h.prefs.SetFavorite(r.Context(), account, favorite); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) setColumn(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req columnRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if req.Visible == nil {
		h.writeError(w, r, fmt.Errorf("%w: visible is required", errBadRequest))
		return
	}

	if err := h.prefs.SetColumnVisible(r.Context(), params["column"], *req.Visible); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
