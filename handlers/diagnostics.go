package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	documentsRepo "zellige/database/repository/documents"
)

// DiagnosticsHandler reports store connectivity for operational polling.
// Repo is nil when the process started without a reachable store.
type DiagnosticsHandler struct {
	Repo documentsRepo.DocumentRepository
}

// NewDiagnosticsHandler returns a DiagnosticsHandler over the given repo.
func NewDiagnosticsHandler(repo documentsRepo.DocumentRepository) *DiagnosticsHandler {
	return &DiagnosticsHandler{Repo: repo}
}

// Diagnostics handles GET /test. It never fails: every error is rendered
// into the status object so the endpoint stays reachable under any
// misconfiguration. Always responds 200.
func (h *DiagnosticsHandler) Diagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Repo == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	collections, err := h.Repo.ListCollectionNames(ctx, 10)
	if err != nil {
		response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
	} else {
		response["collections"] = collections
		response["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
