package amongdata

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Label Resolution Errors
//
// Total resolvers (payload types, disconnect reasons) never fail. Closed
// resolvers (RPC flags, game data types, player colors, task types) return an
// error wrapping ErrUnknownVariant when handed a value outside the registry.
// All errors work with errors.Is() and errors.As().

var (
	// ErrUnknownVariant indicates a code outside a closed domain's registry was
	// passed to its resolver. Callers are expected to only construct registry
	// values, so this signals a bug upstream rather than a bad packet.
	ErrUnknownVariant = errors.New("amongdata: unknown variant")

	// ErrUnknownDomain indicates LookupDomain was asked for a name that is not
	// one of the six code domains.
	ErrUnknownDomain = errors.New("amongdata: unknown code domain")
)

// UnknownVariantError reports the domain and raw code of a failed lookup.
type UnknownVariantError struct {
	Domain string // domain name, e.g. "task type"
	Code   uint64 // raw code as received
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("amongdata: unknown %s %d", e.Domain, e.Code)
}

func (e *UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}

// NewUnknownVariantError creates an UnknownVariantError carrying the domain and
// code as oops context, so structured loggers can pick them up.
//
// Example:
//
//	if !t.IsKnown() {
//	    return "", NewUnknownVariantError(DomainTaskType, uint64(t))
//	}
func NewUnknownVariantError(domain string, code uint64) error {
	return oops.
		In("labels").
		Code("unknown_variant").
		With("domain", domain, "code", code).
		Wrap(&UnknownVariantError{Domain: domain, Code: code})
}

// IsUnknownVariant returns true if err reports a code outside a closed domain.
func IsUnknownVariant(err error) bool {
	return err != nil && errors.Is(err, ErrUnknownVariant)
}
