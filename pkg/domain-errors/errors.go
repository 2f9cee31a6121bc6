// Package domainerrors provides coded errors that travel from services to the
// HTTP layer. Stores and clients return sentinel errors; services translate
// them into these so handlers never inspect infrastructure failures directly.
package domainerrors

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"

	// CodeCatalogUnavailable covers both transport failures and malformed
	// bodies on catalog load. An empty catalog is not an error.
	CodeCatalogUnavailable Code = "catalog_unavailable"

	// Checkout validation failures. Surfaced before any network call.
	CodeEmptyCart       Code = "empty_cart"
	CodeMissingIdentity Code = "missing_identity"

	// CodeSubmissionRejected carries the purchase endpoint's response body in
	// the message for diagnostics.
	CodeSubmissionRejected Code = "submission_rejected"

	// CodeSubmissionInFlight rejects a second checkout while one is
	// outstanding instead of racing a double submission.
	CodeSubmissionInFlight Code = "submission_in_flight"

	CodeNetworkUnavailable Code = "network_unavailable"
)

// DomainError pairs a stable machine-readable code with a human message.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to the status the transport layer should emit.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeEmptyCart, CodeMissingIdentity:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSubmissionInFlight:
		return http.StatusConflict
	case CodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	case CodeSubmissionRejected, CodeNetworkUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
