// internal/app/system/httpjson/httpjson.go
//
// Package httpjson writes the JSON envelope shared by every endpoint:
//
//	{ "success": bool, "message"?, "count"?, "total"?, "pagination"?, "errors"?, "data"? }
//
// Handlers never call json.NewEncoder directly; going through these helpers
// keeps the envelope shape identical across resources.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/causewayhq/causeway/internal/app/system/paging"
)

// maxBodyBytes bounds request bodies read through Decode.
const maxBodyBytes = 1 << 20 // 1 MiB

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the response body shape. Optional sections are pointers or
// omitempty so single-document responses stay compact.
type Envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Count      *int         `json:"count,omitempty"`
	Total      *int64       `json:"total,omitempty"`
	Pagination *paging.Info `json:"pagination,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Data       any          `json:"data,omitempty"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 with data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes a 200 with a message and no data.
func OKMessage(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// Created writes a 201 with the newly created document.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// List writes a 200 with the list envelope: count is the number of
// documents in this page, total the overall match count.
func List(w http.ResponseWriter, data any, count int, total int64, page paging.Info) {
	write(w, http.StatusOK, Envelope{
		Success:    true,
		Count:      &count,
		Total:      &total,
		Pagination: &page,
		Data:       data,
	})
}

// Error writes an error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// NotFound writes a 404 with a resource-specific message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// ValidationFailed writes a 400 with field-level errors.
func ValidationFailed(w http.ResponseWriter, fields []FieldError) {
	write(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation failed",
		Errors:  fields,
	})
}

// ErrBadBody is returned by Decode when the request body is missing,
// malformed, or not the expected shape.
var ErrBadBody = errors.New("invalid request body")

// Decode reads a JSON request body into dst with a size cap and strict
// field checking. Returns ErrBadBody on any decoding problem.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return ErrBadBody
	}
	// A second decode catches trailing garbage after the first document.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrBadBody
	}
	return nil
}
