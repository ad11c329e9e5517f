// Package respond writes the wire envelope shared by every endpoint:
// successful payloads carry success=true, failures carry success=false plus
// the numeric status and a short message.
package respond

import (
	"encoding/json"
	"net/http"
)

// Failure is the standardized error body.
type Failure struct {
	Success bool   `json:"success"`
	Code    int    `json:"error"`
	Message string `json:"message"`
}

// Canned messages matching the original API's error pages.
const (
	MsgBadRequest    = "cannot process this request"
	MsgNotFound      = "page not found"
	MsgUnprocessable = "Unprocessable Entity"
	MsgInternal      = "Internal Server Error"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternal,
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the failure envelope for status using its canned message.
func Error(w http.ResponseWriter, status int) {
	ErrorMessage(w, status, messageFor(status))
}

// ErrorMessage writes the failure envelope with an explicit message.
func ErrorMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Failure{Success: false, Code: status, Message: message})
}

func messageFor(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
