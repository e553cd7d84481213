package amongdata

import (
	"fmt"
	"math"

	"github.com/samber/oops"
)

// Domain names, as used in Domain.Name and UnknownVariantError.Domain.
const (
	DomainPayloadType      = "payload type"
	DomainDisconnectReason = "disconnect reason"
	DomainRPCFlag          = "rpc flag"
	DomainGameDataType     = "game data type"
	DomainPlayerColor      = "player color"
	DomainTaskType         = "task type"
)

// Coverage is the policy a resolver applies to codes outside the registry.
type Coverage uint8

const (
	// CoverageTotal resolvers label every code of the wire type and fall back
	// to "unknown (<code>)".
	CoverageTotal Coverage = iota
	// CoverageClosed resolvers only label registry variants and return
	// ErrUnknownVariant for anything else.
	CoverageClosed
)

func (c Coverage) String() string {
	switch c {
	case CoverageTotal:
		return "total"
	case CoverageClosed:
		return "closed"
	default:
		return fmt.Sprintf("Coverage(%d)", uint8(c))
	}
}

// Variant is one registry entry together with its resolved label.
type Variant struct {
	Code  uint64
	Label string
}

// Domain describes one code domain for tooling that does not want to switch on
// the six Go types, such as packet inspectors reading codes from a capture.
type Domain struct {
	Name     string
	Coverage Coverage
	// MaxCode is the largest code the domain's wire type can hold.
	MaxCode  uint64
	Variants []Variant

	resolve func(code uint64) (string, error)
}

// Resolve labels a raw code. Codes larger than MaxCode cannot belong to the
// domain and always return an UnknownVariantError, even for total domains.
func (d Domain) Resolve(code uint64) (string, error) {
	if code > d.MaxCode {
		return "", NewUnknownVariantError(d.Name, code)
	}
	return d.resolve(code)
}

// catalogue is built once from the registry; callers only ever see copies.
var catalogue = buildDomains()

// Domains returns a description of every code domain, in a fixed order.
// The result is a copy the caller may modify.
func Domains() []Domain {
	out := make([]Domain, len(catalogue))
	for i, d := range catalogue {
		out[i] = d.clone()
	}
	return out
}

func (d Domain) clone() Domain {
	d.Variants = append([]Variant(nil), d.Variants...)
	return d
}

func buildDomains() []Domain {
	return []Domain{
		{
			Name:     DomainPayloadType,
			Coverage: CoverageTotal,
			MaxCode:  math.MaxUint16,
			Variants: variantsOf(payloadTypeVariants[:], func(p PayloadType) (string, error) {
				return PrettyPayloadType(p), nil
			}),
			resolve: func(code uint64) (string, error) {
				return PrettyPayloadType(PayloadType(code)), nil
			},
		},
		{
			Name:     DomainDisconnectReason,
			Coverage: CoverageTotal,
			MaxCode:  math.MaxUint8,
			Variants: variantsOf(disconnectReasonVariants[:], func(r DisconnectReason) (string, error) {
				return PrettyDisconnectReason(r), nil
			}),
			resolve: func(code uint64) (string, error) {
				return PrettyDisconnectReason(DisconnectReason(code)), nil
			},
		},
		{
			Name:     DomainRPCFlag,
			Coverage: CoverageClosed,
			MaxCode:  math.MaxUint8,
			Variants: variantsOf(rpcFlagVariants[:], PrettyRPCFlag),
			resolve: func(code uint64) (string, error) {
				return PrettyRPCFlag(RPCFlag(code))
			},
		},
		{
			Name:     DomainGameDataType,
			Coverage: CoverageClosed,
			MaxCode:  math.MaxUint8,
			Variants: variantsOf(gameDataTypeVariants[:], PrettyGameDataType),
			resolve: func(code uint64) (string, error) {
				return PrettyGameDataType(GameDataType(code))
			},
		},
		{
			Name:     DomainPlayerColor,
			Coverage: CoverageClosed,
			MaxCode:  math.MaxUint8,
			Variants: variantsOf(playerColorVariants[:], PrettyPlayerColor),
			resolve: func(code uint64) (string, error) {
				return PrettyPlayerColor(PlayerColor(code))
			},
		},
		{
			Name:     DomainTaskType,
			Coverage: CoverageClosed,
			MaxCode:  math.MaxUint8,
			Variants: variantsOf(taskTypeVariants[:], PrettyTaskType),
			resolve: func(code uint64) (string, error) {
				return PrettyTaskType(TaskType(code))
			},
		},
	}
}

// LookupDomain returns the domain with the given name.
func LookupDomain(name string) (Domain, error) {
	for _, d := range catalogue {
		if d.Name == name {
			return d.clone(), nil
		}
	}
	return Domain{}, oops.
		In("labels").
		With("domain", name).
		Wrapf(ErrUnknownDomain, "lookup %q", name)
}

// variantsOf pairs each registry code with its label. A registry variant with
// no label is kept with an empty Label so coverage checks can report it.
func variantsOf[T ~uint8 | ~uint16](codes []T, pretty func(T) (string, error)) []Variant {
	out := make([]Variant, 0, len(codes))
	for _, c := range codes {
		label, err := pretty(c)
		if err != nil {
			label = ""
		}
		out = append(out, Variant{Code: uint64(c), Label: label})
	}
	return out
}
