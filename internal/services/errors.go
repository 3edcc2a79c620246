package services

import "errors"

// Kind classifies a service failure. Handlers map kinds to HTTP statuses;
// services never recover an error on the caller's behalf.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: missing or malformed input, recoverable by the caller.
	KindValidation
	// KindAuthentication: credentials rejected by the principal store.
	KindAuthentication
	// KindAuthorization: authenticated principal lacks permission.
	KindAuthorization
	// KindPendingApproval: valid credentials, account awaiting admin approval.
	KindPendingApproval
	// KindNotFound: referenced entity absent.
	KindNotFound
	// KindPartialFailure: a multi-step effect completed its first write but
	// failed a later one. Always logged with both sub-operations named.
	KindPartialFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindPendingApproval:
		return "pending_approval"
	case KindNotFound:
		return "not_found"
	case KindPartialFailure:
		return "partial_failure"
	}
	return "unknown"
}

// Error carries a failure kind plus a message fit for display.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func authenticationErr(msg string, err error) *Error {
	return &Error{Kind: KindAuthentication, Message: msg, Err: err}
}

func authorizationErr(msg string) *Error {
	return &Error{Kind: KindAuthorization, Message: msg}
}

func pendingApprovalErr() *Error {
	return &Error{
		Kind:    KindPendingApproval,
		Message: "your registration is pending approval, please contact the administrator",
	}
}

func notFoundErr(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func partialFailureErr(msg string, err error) *Error {
	return &Error{Kind: KindPartialFailure, Message: msg, Err: err}
}

// KindOf extracts the failure kind from any error returned by a service.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindUnknown
}
