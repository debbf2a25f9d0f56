package controller

import (
	"net/http"

	"github.com/bitsbites/backend/store"
)

// HealthController serves the liveness message and the database diagnostic.
type HealthController struct {
	store       store.DocumentStore
	databaseSet bool
}

func NewHealthController(st store.DocumentStore, databaseSet bool) *HealthController {
	return &HealthController{store: st, databaseSet: databaseSet}
}

// Root handles GET /.
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Bits&Bites API is running",
	})
}

// TestDatabase handles GET /test. It reports the storage state descriptively
// and always answers 200, even when the database is down.
func (c *HealthController) TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if c.databaseSet {
		response["database_url"] = "set"
	}

	if lister, ok := c.store.(store.CollectionLister); ok {
		names, err := lister.CollectionNames(r.Context())
		switch {
		case err != nil:
			response["database"] = "error: " + err.Error()
		default:
			if len(names) > 10 {
				names = names[:10]
			}
			response["database"] = "connected"
			response["connection_status"] = "connected"
			response["collections"] = names
		}
	}

	writeJSON(w, http.StatusOK, response)
}
