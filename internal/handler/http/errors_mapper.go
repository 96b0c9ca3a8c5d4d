package http

import (
	"net/http"

	"github.com/jaekyeom/go-bulletin-board/internal/utils"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// writeMessage writes a JSON {"message": ...} error body with the given
// status code. Clients surface the message verbatim, so it must be phrased
// for end users.
func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}
