package logic

import (
	"errors"
	"fmt"
)

// ErrKind is the shared failure taxonomy every backend classifies into. No
// raw provider error crosses the adapter boundary.
type ErrKind int

const (
	ErrAuthRevoked ErrKind = iota // credential invalid; purge token, try next
	ErrRateLimited                // transient; caller owns backoff
	ErrNetwork                    // transient; short-delay retry appropriate
	ErrPermanent                  // provider rejected the item/request for good
	ErrNotFound                   // not an error when deleting: already gone
)

func (k ErrKind) String() string {
	switch k {
	case ErrAuthRevoked:
		return "auth_revoked"
	case ErrRateLimited:
		return "rate_limited"
	case ErrNetwork:
		return "network"
	case ErrPermanent:
		return "permanent"
	case ErrNotFound:
		return "not_found"
	}
	return "unknown"
}

type BackendError struct {
	Kind    ErrKind
	Service string
	Status  int // HTTP status, 0 for transport-level failures
	Inner   error
}

func (e *BackendError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s backend: %s (status %d): %v", e.Service, e.Kind, e.Status, e.Inner)
	}
	return fmt.Sprintf("%s backend: %s (status %d)", e.Service, e.Kind, e.Status)
}

func (e *BackendError) Unwrap() error {
	return e.Inner
}

// KindOf maps any error to the taxonomy. Errors that did not come through a
// backend count as permanent: nothing in the engine retries them.
func KindOf(err error) ErrKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ErrPermanent
}

func IsRetryable(err error) bool {
	k := KindOf(err)
	return k == ErrRateLimited || k == ErrNetwork
}

// Credential-store sentinels surfaced by the backend pool.
var (
	ErrNoTokens         = errors.New("account has no stored credentials")
	ErrAllTokensRevoked = errors.New("every stored credential has been revoked")
	ErrUnknownService   = errors.New("account id carries an unknown service tag")
)
