package encodable

import (
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
)

type numberClass int

const (
	classSigned numberClass = iota
	classUnsigned
	classFloat
)

func classOf[T Number]() numberClass {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUnsigned
	case reflect.Float32, reflect.Float64:
		return classFloat
	default:
		return classSigned
	}
}

// toNumber converts a decoded JSON number to T without loss.
func toNumber[T Number](raw any) (T, bool) {
	switch n := raw.(type) {
	case json.Number:
		return numberFromLiteral[T](n)
	case float64:
		return fromFloat[T](n)
	case float32:
		return fromFloat[T](float64(n))
	case int:
		return fromInt[T](int64(n))
	case int64:
		return fromInt[T](n)
	case uint64:
		return fromUint[T](n)
	default:
		var zero T
		return zero, false
	}
}

func numberFromLiteral[T Number](n json.Number) (T, bool) {
	if classOf[T]() != classFloat {
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return fromInt[T](i)
		}

		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return fromUint[T](u)
		}
	}

	f, err := n.Float64()
	if err != nil {
		var zero T
		return zero, false
	}

	return fromFloat[T](f)
}

func fromInt[T Number](i int64) (T, bool) {
	v := T(i)

	switch classOf[T]() {
	case classFloat:
		return v, true
	case classUnsigned:
		return v, i >= 0 && uint64(v) == uint64(i)
	default:
		return v, int64(v) == i
	}
}

func fromUint[T Number](u uint64) (T, bool) {
	v := T(u)

	switch classOf[T]() {
	case classFloat:
		return v, true
	case classUnsigned:
		return v, uint64(v) == u
	default:
		return v, u <= math.MaxInt64 && int64(v) == int64(u)
	}
}

func fromFloat[T Number](f float64) (T, bool) {
	var zero T

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return zero, false
	}

	switch classOf[T]() {
	case classFloat:
		v := T(f)
		return v, !math.IsInf(float64(v), 0)
	case classUnsigned:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return zero, false
		}

		return fromUint[T](uint64(f))
	default:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return zero, false
		}

		return fromInt[T](int64(f))
	}
}
