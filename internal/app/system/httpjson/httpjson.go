// internal/app/system/httpjson/httpjson.go

// Package httpjson writes the API's JSON responses. Every error surface
// in the service is a `{"message": string}` body with the appropriate
// status code, so the helpers here are used by all feature handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Response messages shared across features. The client contract uses
// Korean messages; they are reproduced verbatim.
const (
	MsgNotFound         = "존재하지 않습니다"
	MsgWrongPassword    = "비밀번호가 틀렸습니다"
	MsgPasswordVerified = "비밀번호가 확인되었습니다"
	MsgBadRequest       = "잘못된 요청입니다"
	MsgServerError      = "서버 에러가 발생했습니다"
)

type messageBody struct {
	Message string `json:"message"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a `{"message": msg}` body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, messageBody{Message: msg})
}

// NotFound writes the standard 404 envelope.
func NotFound(w http.ResponseWriter) {
	Message(w, http.StatusNotFound, MsgNotFound)
}

// BadRequest writes the standard 400 envelope.
func BadRequest(w http.ResponseWriter) {
	Message(w, http.StatusBadRequest, MsgBadRequest)
}

// Forbidden writes the 403 password-mismatch envelope used by
// password-gated mutations.
func Forbidden(w http.ResponseWriter) {
	Message(w, http.StatusForbidden, MsgWrongPassword)
}

// Unauthorized writes the 401 password-mismatch envelope used by the
// verify-password endpoints.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, MsgWrongPassword)
}

// ServerError writes the standard 500 envelope.
func ServerError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, MsgServerError)
}
