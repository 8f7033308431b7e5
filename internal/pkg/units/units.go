// Package units converts between a chain's smallest indivisible unit (wei,
// lamports, lovelace, planck) and the human-readable decimal amount.
//
// All arithmetic is exact: values go through shopspring/decimal, which is
// backed by math/big, so 18-decimal chains keep every digit at 2^256 scale.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned when a conversion is asked with an unset
// precision or the value falls outside the representable range. It always
// denotes a programming or configuration error and is never retried.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// maxValue is 2^256-1, the largest amount any supported chain can carry.
	maxValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// minNegativeValue is -(2^256-1), the lower bound when negatives are allowed.
	minNegativeValue = new(big.Int).Neg(maxValue)
)

// config holds the conversion options.
type config struct {
	negative bool // widen the accepted range down to -(2^256-1)
}

// Option configures a single conversion.
type Option func(*config)

// WithNegative accepts negative raw values down to -(2^256-1).
func WithNegative() Option {
	return func(c *config) {
		c.negative = true
	}
}

// inRange reports whether v lies in [1, 2^256-1], or in [-(2^256-1), 2^256-1]
// when negative values are allowed.
func inRange(v *big.Int, negative bool) bool {
	if v.Cmp(maxValue) > 0 {
		return false
	}

	if negative {
		return v.Cmp(minNegativeValue) >= 0
	}

	return v.Sign() > 0
}

// FromUnit divides raw by 10^precision.
//
// A negative precision means "unset" and fails with ErrInvalidArgument. A zero
// raw value yields zero. Any other value must lie in [1, 2^256-1] (see
// WithNegative), otherwise ErrInvalidArgument is returned.
func FromUnit(raw *big.Int, precision int32, opts ...Option) (decimal.Decimal, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if precision < 0 {
		return decimal.Zero, fmt.Errorf("%w: precision is not set", ErrInvalidArgument)
	}

	if raw == nil || raw.Sign() == 0 {
		return decimal.Zero, nil
	}

	if !inRange(raw, cfg.negative) {
		return decimal.Zero, fmt.Errorf("%w: value %s out of range", ErrInvalidArgument, raw)
	}

	return decimal.NewFromBigInt(raw, -precision), nil
}

// FromUnitString is FromUnit for integers encoded as base-10 strings or as
// 0x-prefixed hexadecimal strings, as returned by most explorer APIs.
// An empty string is treated as zero.
func FromUnitString(raw string, precision int32, opts ...Option) (decimal.Decimal, error) {
	v, err := ParseInt(raw)
	if err != nil {
		return decimal.Zero, err
	}

	return FromUnit(v, precision, opts...)
}

// ParseInt parses a base-10 or 0x-prefixed hex integer string into a big.Int.
// An empty string parses as zero.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
		if s == "" {
			return new(big.Int), nil
		}
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
	}

	return v, nil
}

// ParseDecimal parses a numeric string into an exact decimal. It never goes
// through float64. An empty string parses as zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
	}

	return d, nil
}

// toDecimal converts the supported input types into an exact decimal.
//
// Floats are rendered with their shortest round-trip representation first, so
// 0.1 becomes exactly 0.1 rather than its binary approximation. The number of
// fractional digits of that textual form is what the scaling works with.
func toDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, nil
		}
		return *val, nil
	case string:
		return ParseDecimal(val)
	case float64:
		return ParseDecimal(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		return ParseDecimal(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case *big.Int:
		if val == nil {
			return decimal.Zero, nil
		}
		return decimal.NewFromBigInt(val, 0), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported amount type %T", ErrInvalidArgument, v)
	}
}

// ToUnit multiplies v by 10^precision and returns the integer amount in the
// chain's smallest unit. Sub-unit remainders are truncated.
//
// v may be a decimal.Decimal, a numeric string, a float, an int or a *big.Int.
// The result must lie in [1, 2^256-1], otherwise ErrInvalidArgument is returned.
func ToUnit(v any, precision int32) (*big.Int, error) {
	if precision < 0 {
		return nil, fmt.Errorf("%w: precision is not set", ErrInvalidArgument)
	}

	d, err := toDecimal(v)
	if err != nil {
		return nil, err
	}

	// Shift keeps the coefficient and only moves the exponent, so the scaling
	// accounts for however many fractional digits the input carried.
	result := d.Shift(precision).BigInt()
	if !inRange(result, false) {
		return nil, fmt.Errorf("%w: value %s out of range", ErrInvalidArgument, result)
	}

	return result, nil
}
