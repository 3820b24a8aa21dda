package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rampctl/rampctl/pkg/data"
	"github.com/rampctl/rampctl/pkg/metric"
	"github.com/rampctl/rampctl/pkg/net"
)

// rateRequest is the POST /api/rate body.
type rateRequest struct {
	URL      string   `json:"url"`
	LocalDir string   `json:"local_dir,omitempty"`
	Branches []string `json:"branches,omitempty"`
	SkipSave bool     `json:"skip_save,omitempty"`
}

func scoresAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var name *string
		if v := r.URL.Query().Get("name"); v != "" {
			name = &v
		}

		limit := historyLimitDefault
		if v := r.URL.Query().Get("limit"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				limit = i
			}
		}

		list, err := data.GetScores(cfg.DB, name, limit)
		if err != nil {
			slog.Error("error querying scores", "error", err)
			http.Error(w, "error querying scores", http.StatusInternalServerError)
			return
		}

		writeJSON(w, list)
	}
}

func rateAPIHandler(cfg *appConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		d, err := descriptorFromRequest(&req, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var fetcher metric.Fetcher
		if cfg.Conf.Remote {
			fetcher = net.NewClient()
		}

		score := metric.NetScore(r.Context(), d, fetcher, gitHubClient(r.Context(), cfg))

		if !req.SkipSave {
			if err := data.SaveScore(cfg.DB, score); err != nil {
				slog.Error("error saving score", "name", score.Name, "error", err)
				http.Error(w, "error saving score", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, score)
	}
}

func descriptorFromRequest(req *rateRequest, cfg *appConfig) (*metric.Descriptor, error) {
	branches := req.Branches
	if len(branches) == 0 {
		branches = cfg.Conf.Branches
	}

	if req.URL == "" {
		return metric.NewDescriptor(req.LocalDir, metric.HostNone, "", "", branches)
	}

	d, err := metric.ParseArtifactURL(req.URL)
	if err != nil {
		return nil, err
	}
	d.LocalDir = req.LocalDir
	d.Branches = branches
	return d, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
