package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Redwolfer/satkit/form"
	"github.com/Redwolfer/satkit/validate"
	"github.com/Redwolfer/satkit/validate/ruleset"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validateResponse struct {
	OK     bool         `json:"ok"`
	Error  string       `json:"error,omitempty"`
	Errors []fieldError `json:"errors,omitempty"`
}

// handleValidate runs the configured rule set against the submitted form
// and returns the aggregated result: 200 when every rule passes, 422 with
// the full error list otherwise.
func handleValidate(log *slog.Logger, rules *ruleset.RuleSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := form.FromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, validateResponse{Error: "malformed form data"})
			return
		}

		sess := validate.NewSession(nil)
		err = rules.Run(sess, fields)
		if err == nil {
			writeJSON(w, http.StatusOK, validateResponse{OK: true})
			return
		}

		failure, ok := validate.AsValidationFailure(err)
		if !ok {
			// Compile error: the rule set references fields the form
			// did not submit, or carries unusable parameters.
			log.Warn("rule set does not fit request", "request_id", requestIDFrom(r.Context()), "error", err)
			writeJSON(w, http.StatusBadRequest, validateResponse{Error: err.Error()})
			return
		}

		errors := make([]fieldError, 0, len(failure.Errors))
		for _, fe := range failure.Errors {
			errors = append(errors, fieldError{Field: fe.Field, Message: fe.Message})
		}

		log.Info("validation failed",
			"request_id", requestIDFrom(r.Context()),
			"fields", len(errors),
		)
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{
			Error:  "validation failed",
			Errors: errors,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
