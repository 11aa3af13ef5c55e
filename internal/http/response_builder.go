// Package http provides the HTTP server and handlers.
//
// This file implements a small builder for HTMX responses: HX-Trigger
// headers plus transient message bodies the client dismisses after a few
// seconds.
package http

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// HTMXResponseBuilder provides a fluent API for building HTMX responses.
type HTMXResponseBuilder struct {
	triggers   map[string]interface{}
	statusCode int
	body       []byte
	headers    map[string]string
}

// NewHTMXResponse creates a new response builder with default 200 status.
func NewHTMXResponse() *HTMXResponseBuilder {
	return &HTMXResponseBuilder{
		triggers:   make(map[string]interface{}),
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *HTMXResponseBuilder) Status(code int) *HTMXResponseBuilder {
	b.statusCode = code
	return b
}

// Trigger adds a named trigger with optional data to the HX-Trigger header.
func (b *HTMXResponseBuilder) Trigger(name string, data interface{}) *HTMXResponseBuilder {
	b.triggers[name] = data
	return b
}

// TriggerExpensesChanged tells the client to refresh the list and summary.
func (b *HTMXResponseBuilder) TriggerExpensesChanged() *HTMXResponseBuilder {
	return b.Trigger("expenses:changed", struct{}{})
}

// TriggerFormReset tells the client to reset the entry form, restoring the
// date field to today.
func (b *HTMXResponseBuilder) TriggerFormReset() *HTMXResponseBuilder {
	return b.Trigger("form:reset", struct{}{})
}

// Header adds a custom header to the response.
func (b *HTMXResponseBuilder) Header(name, value string) *HTMXResponseBuilder {
	b.headers[name] = value
	return b
}

// BodyHTML sets the response body as HTML content.
func (b *HTMXResponseBuilder) BodyHTML(html string) *HTMXResponseBuilder {
	b.headers["Content-Type"] = "text/html; charset=utf-8"
	b.body = []byte(html)
	return b
}

// Message sets the body to a transient message div of the given kind
// (success, warning, error). The text is HTML-escaped.
func (b *HTMXResponseBuilder) Message(kind, text string) *HTMXResponseBuilder {
	return b.BodyHTML(`<div class="message ` + kind + `">` + template.HTMLEscapeString(text) + `</div>`)
}

// Write sends the built response to the http.ResponseWriter.
func (b *HTMXResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}

	if len(b.triggers) > 0 {
		if triggerJSON, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(triggerJSON))
		}
	}

	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// SuccessMessage builds a 200 response with a success message.
func SuccessMessage(text string) *HTMXResponseBuilder {
	return NewHTMXResponse().Message("success", text)
}

// WarningMessage builds a 200 response with a warning message.
func WarningMessage(text string) *HTMXResponseBuilder {
	return NewHTMXResponse().Message("warning", text)
}

// ValidationError builds a 422 response with an error message.
func ValidationError(text string) *HTMXResponseBuilder {
	return NewHTMXResponse().Status(http.StatusUnprocessableEntity).Message("error", text)
}

// BadRequestError builds a 400 response with an error message.
func BadRequestError(text string) *HTMXResponseBuilder {
	return NewHTMXResponse().Status(http.StatusBadRequest).Message("error", text)
}
