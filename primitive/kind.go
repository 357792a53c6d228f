package primitive

import (
	"math/bits"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the Go types that have a default string codec.
type KindEnum int

const (
	_ KindEnum = iota // zero value, no default codec

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named integer, boolean or string type
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsSigned() bool {
	return KindInt <= k && k <= KindInt64
}

func (k KindEnum) IsUnsigned() bool {
	return KindUint <= k && k <= KindUint64
}

// IsTextual reports whether values of the kind have a single canonical
// string form without any conversion category being enabled.
func (k KindEnum) IsTextual() bool {
	return k == KindString
}

// Bits is the bit size handed to strconv for numeric kinds.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a bit size, requested for: " + k.String())
	case KindInt, KindUint:
		return bits.UintSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

var exactKinds = map[reflect.Type]KindEnum{
	reflect.TypeFor[int]():           KindInt,
	reflect.TypeFor[int8]():          KindInt8,
	reflect.TypeFor[int16]():         KindInt16,
	reflect.TypeFor[int32]():         KindInt32,
	reflect.TypeFor[int64]():         KindInt64,
	reflect.TypeFor[uint]():          KindUint,
	reflect.TypeFor[uint8]():         KindUint8,
	reflect.TypeFor[uint16]():        KindUint16,
	reflect.TypeFor[uint32]():        KindUint32,
	reflect.TypeFor[uint64]():        KindUint64,
	reflect.TypeFor[float32]():       KindFloat32,
	reflect.TypeFor[float64]():       KindFloat64,
	reflect.TypeFor[bool]():          KindBool,
	reflect.TypeFor[string]():        KindString,
	reflect.TypeFor[time.Time]():     KindTime,
	reflect.TypeFor[time.Duration](): KindDuration,
}

// FromReflectType classifies rtype, returning the zero KindEnum for types
// without a default codec. Named floats keep their float kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if k, ok := exactKinds[rtype]; ok {
		return k
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
}
