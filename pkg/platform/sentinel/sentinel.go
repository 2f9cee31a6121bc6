package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Clients and stores return these
// (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: entity does not exist (cart line, sheet record)
// - ErrUnavailable: remote endpoint unreachable or response malformed
// - ErrRejected: remote endpoint answered with a non-2xx status
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrRejected    = errors.New("rejected")
)
