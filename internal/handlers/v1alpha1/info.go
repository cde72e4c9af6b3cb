package v1alpha1

import (
	"net/http"
	"time"

	api "github.com/robotnik-ag/robotnik/api/v1alpha1"
	"github.com/robotnik-ag/robotnik/pkg/version"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	renderOK(w, r, api.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	})
}

// (GET /api/health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	renderOK(w, r, api.Health{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC(),
	})
}
