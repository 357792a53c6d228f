package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupported is returned by Resolve when no string conversion is known
// (or allowed) for a type.
var ErrUnsupported = errors.New("no string conversion")

// Codec converts values of a single Go type to and from strings.
type Codec struct {
	Kind     KindEnum
	Category CategoryEnum // representation in use, CategoryNone for strings and TextMarshalers
	Type     reflect.Type
	Format func(v reflect.Value) (string, error)
	Parse  func(s string) (reflect.Value, error)
}

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	validatorType       = reflect.TypeFor[interface{ IsValid() bool }]()
)

// Resolve finds the string codec for rtype within the allowed conversion
// categories. Primitive kinds win over encoding.TextMarshaler so that
// time.Time and time.Duration follow the category rules.
func Resolve(rtype reflect.Type, allowed CategoryEnum) (Codec, error) {
	if rtype == nil {
		return Codec{}, fmt.Errorf("%w: nil type", ErrUnsupported)
	}

	kind := FromReflectType(rtype)
	if kind != 0 && allowed.Allows(kind) {
		rep := allowed.Representation(kind)

		return Codec{
			Kind:     kind,
			Category: rep,
			Type:     rtype,
			Format:   formatter(kind, rep, rtype),
			Parse:    parser(kind, rep, rtype),
		}, nil
	}

	if rtype.Implements(textMarshalerType) && reflect.PointerTo(rtype).Implements(textUnmarshalerType) {
		return textCodec(rtype), nil
	}

	if kind != 0 {
		return Codec{}, fmt.Errorf("%w for %s: kind %s is not allowed by categories %b", ErrUnsupported, rtype, kind, allowed)
	}

	return Codec{}, fmt.Errorf("%w for %s", ErrUnsupported, rtype)
}

func textCodec(rtype reflect.Type) Codec {
	return Codec{
		Type: rtype,
		Format: func(v reflect.Value) (string, error) {
			b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return "", err
			}

			return string(b), nil
		},
		Parse: func(s string) (reflect.Value, error) {
			ptr := reflect.New(rtype)
			if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return reflect.Value{}, err
			}

			return ptr.Elem(), nil
		},
	}
}

func formatter(kind KindEnum, rep CategoryEnum, rtype reflect.Type) func(v reflect.Value) (string, error) {
	switch {
	case kind.IsSigned():
		return func(v reflect.Value) (string, error) { return strconv.FormatInt(v.Int(), 10), nil }
	case kind.IsUnsigned():
		return func(v reflect.Value) (string, error) { return strconv.FormatUint(v.Uint(), 10), nil }
	case kind.IsFloat():
		bits := kind.Bits()
		return func(v reflect.Value) (string, error) { return strconv.FormatFloat(v.Float(), 'f', -1, bits), nil }
	}

	switch kind {
	case KindBool:
		if rep == CategoryNumericBool {
			return func(v reflect.Value) (string, error) { return FormatNumericBool(v.Bool()), nil }
		}

		return func(v reflect.Value) (string, error) { return strconv.FormatBool(v.Bool()), nil }
	case KindString:
		return func(v reflect.Value) (string, error) { return v.String(), nil }
	case KindTime:
		if rep == CategoryTimestamp {
			return func(v reflect.Value) (string, error) {
				return strconv.FormatInt(v.Interface().(time.Time).Unix(), 10), nil
			}
		}

		return func(v reflect.Value) (string, error) {
			return v.Interface().(time.Time).Format(time.RFC3339Nano), nil
		}
	case KindDuration:
		switch rep {
		case CategoryNanoseconds:
			return func(v reflect.Value) (string, error) { return strconv.FormatInt(v.Int(), 10), nil }
		case CategorySeconds:
			return func(v reflect.Value) (string, error) {
				return strconv.FormatFloat(time.Duration(v.Int()).Seconds(), 'f', -1, 64), nil
			}
		}

		return func(v reflect.Value) (string, error) {
			return time.Duration(v.Int()).String(), nil
		}
	case KindPrimitiveEnum:
		return enumFormatter(rtype)
	}

	panic("no formatter for kind: " + kind.String())
}

func enumFormatter(rtype reflect.Type) func(v reflect.Value) (string, error) {
	switch rtype.Kind() {
	case reflect.String:
		return func(v reflect.Value) (string, error) { return v.String(), nil }
	case reflect.Bool:
		return func(v reflect.Value) (string, error) { return strconv.FormatBool(v.Bool()), nil }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(v reflect.Value) (string, error) { return strconv.FormatUint(v.Uint(), 10), nil }
	default:
		return func(v reflect.Value) (string, error) { return strconv.FormatInt(v.Int(), 10), nil }
	}
}

func parser(kind KindEnum, rep CategoryEnum, rtype reflect.Type) func(s string) (reflect.Value, error) {
	switch {
	case kind.IsSigned():
		bits := kind.Bits()
		return func(s string) (reflect.Value, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
			if err != nil {
				return reflect.Value{}, err
			}

			out := reflect.New(rtype).Elem()
			out.SetInt(n)

			return out, nil
		}
	case kind.IsUnsigned():
		bits := kind.Bits()
		return func(s string) (reflect.Value, error) {
			n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
			if err != nil {
				return reflect.Value{}, err
			}

			out := reflect.New(rtype).Elem()
			out.SetUint(n)

			return out, nil
		}
	case kind.IsFloat():
		bits := kind.Bits()
		return func(s string) (reflect.Value, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
			if err != nil {
				return reflect.Value{}, err
			}

			out := reflect.New(rtype).Elem()
			out.SetFloat(f)

			return out, nil
		}
	}

	switch kind {
	case KindBool:
		if rep == CategoryNumericBool {
			return valueParser(ParseNumericBool)
		}

		return valueParser(ParseTextualBool)
	case KindString:
		return func(s string) (reflect.Value, error) { return reflect.ValueOf(s), nil }
	case KindTime:
		if rep == CategoryTimestamp {
			return valueParser(func(s string) (time.Time, error) {
				n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
				if err != nil {
					return time.Time{}, err
				}

				return time.Unix(n, 0).UTC(), nil
			})
		}

		return valueParser(func(s string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
		})
	case KindDuration:
		switch rep {
		case CategoryNanoseconds:
			return valueParser(func(s string) (time.Duration, error) {
				n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
				return time.Duration(n), err
			})
		case CategorySeconds:
			return valueParser(func(s string) (time.Duration, error) {
				f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				return time.Duration(math.Round(f * float64(time.Second))), err
			})
		}

		return valueParser(func(s string) (time.Duration, error) {
			return time.ParseDuration(strings.TrimSpace(s))
		})
	case KindPrimitiveEnum:
		return enumParser(rtype)
	}

	panic("no parser for kind: " + kind.String())
}

func enumParser(rtype reflect.Type) func(s string) (reflect.Value, error) {
	base := reflect.TypeFor[string]()

	switch rtype.Kind() {
	case reflect.String:
	case reflect.Bool:
		base = reflect.TypeFor[bool]()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		base = reflect.TypeFor[uint64]()
	default:
		base = reflect.TypeFor[int64]()
	}

	baseKind := FromReflectType(base)
	parse := parser(baseKind, CategoryText.Representation(baseKind), base)
	checkValid := rtype.Implements(validatorType)

	return func(s string) (reflect.Value, error) {
		v, err := parse(s)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(rtype).Elem()
		switch rtype.Kind() {
		case reflect.String:
			out.SetString(v.String())
		case reflect.Bool:
			out.SetBool(v.Bool())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if out.OverflowUint(v.Uint()) {
				return reflect.Value{}, fmt.Errorf("%s overflows %s", s, rtype)
			}
			out.SetUint(v.Uint())
		default:
			if out.OverflowInt(v.Int()) {
				return reflect.Value{}, fmt.Errorf("%s overflows %s", s, rtype)
			}
			out.SetInt(v.Int())
		}

		if checkValid && !out.Interface().(interface{ IsValid() bool }).IsValid() {
			return reflect.Value{}, fmt.Errorf("%s is not a valid value for %s", s, rtype)
		}

		return out, nil
	}
}

// valueParser adapts a typed parse function.
func valueParser[V any](parse func(s string) (V, error)) func(s string) (reflect.Value, error) {
	return func(s string) (reflect.Value, error) {
		v, err := parse(s)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v), nil
	}
}

// FormatNumericBool renders b as "1" or "0".
func FormatNumericBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// ParseNumericBool accepts "1" and "0".
func ParseNumericBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("only 1/0 are allowed for a numeric bool, got: %s", s)
	}
}

// ParseTextualBool accepts true/false, yes/no and on/off in any case.
// An HTML checkbox posts "on" when checked.
func ParseTextualBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	default:
		return false, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %s", s)
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
}
