package http

import (
	"net/http"

	"github.com/MKhiriev/go-scene-outbox/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}
