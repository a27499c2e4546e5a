package bankdemo

import (
	"encoding/json"
	"net/http"

	"github.com/apexqa/bankwright/bankdemo/validation"
)

// response wraps http.ResponseWriter with the JSON helpers the API handlers
// use.
type response struct {
	w http.ResponseWriter
}

func respond(w http.ResponseWriter) *response {
	return &response{w: w}
}

type envelope map[string]any

// JSON sends a JSON response.
func (res *response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// NoContent sends 204 with no body.
func (res *response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
func (res *response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *response) NotFound(message string) {
	if message == "" {
		message = "Not found."
	}
	res.Error(http.StatusNotFound, message)
}

// ValidationError sends 422 with the error bag.
func (res *response) ValidationError(errs *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errs)
}
