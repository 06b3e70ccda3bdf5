package core

import (
	"errors"
	"fmt"
)

// FailureKind classifies one provider attempt that did not yield a rate.
type FailureKind int

const (
	// FailureUnsupported means the provider explicitly rejected the pair
	// or one of its currencies.
	FailureUnsupported FailureKind = iota
	// FailureConnection means the provider could not be reached or
	// answered with a server-side error.
	FailureConnection
	// FailureParse means the provider answered but the response could not
	// be interpreted. Aggregation treats it like Unsupported.
	FailureParse
)

// String returns the kind's name for logs.
func (k FailureKind) String() string {
	switch k {
	case FailureUnsupported:
		return "unsupported"
	case FailureConnection:
		return "connection"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Failure is one classified provider error. Currency is set when the
// provider could name the single currency it does not support.
type Failure struct {
	Provider string
	Kind     FailureKind
	Currency string
	Err      error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", f.Provider, f.Kind, f.Err)
	}
	return fmt.Sprintf("provider %s: %s", f.Provider, f.Kind)
}

func (f *Failure) Unwrap() error { return f.Err }

// ErrNoConnection is returned when the preflight probe fails and no
// provider was attempted.
var ErrNoConnection = errors.New("no internet connection")

// ErrServerNotResponding is the aggregated result when every provider
// failed and at least one failure was a connection error.
var ErrServerNotResponding = errors.New("rate servers are not responding")

// UnsupportedCurrencyError is the aggregated result when all providers
// failed and one of them could name a single unsupported currency.
type UnsupportedCurrencyError struct {
	Currency string
}

func (e *UnsupportedCurrencyError) Error() string {
	return "currency not supported: " + e.Currency
}

// UnsupportedPairError is the aggregated fallback when no provider could
// name which currency it rejected.
type UnsupportedPairError struct {
	From string
	To   string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("one or two currencies not supported: %s/%s", e.From, e.To)
}
