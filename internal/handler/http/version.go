package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-keyplace/internal/utils"
)

type buildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// getServerVersion answers with the plain version string, or with the full
// build info when the client asks for JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		info := h.services.AppInfoService.GetBuildInfo(ctx)
		utils.WriteJSON(w, buildInfoResponse{
			Version: info.BuildVersion(),
			Date:    info.BuildDate(),
			Commit:  info.BuildCommit(),
		}, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}
