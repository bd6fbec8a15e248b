package handler

import (
	"net/http"

	"github.com/journalmind/journalmind-go/internal/persona"
)

// HandleListPersonas handles GET /personas requests. Only id and name
// are exposed; the system prompts stay server-side.
func HandleListPersonas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, persona.All())
}
