package collection

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/collection/pkg/arr"
)

// kind is the closed set of value kinds the type guard distinguishes.
type kind uint8

const (
	kindNull kind = iota
	kindBool
	kindInt
	kindFloat
	kindString
	kindMap
	kindObject
)

func kindOf(v any) kind {
	switch t := v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt
	case float32, float64:
		return kindFloat
	case string:
		return kindString
	case *arr.Map:
		if t == nil {
			return kindNull
		}
		return kindMap
	}
	return kindObject
}

func (k kind) numeric() bool {
	return k == kindInt || k == kindFloat
}

// ensureType returns v when it is compatible with the kind of def, and def
// otherwise. A nil def accepts anything.
//
//	int / float      interchangeable
//	number -> string formatted
//	string -> number parsed into the type of def when numeric
func ensureType(v, def any) any {
	if def == nil {
		return v
	}

	vk, dk := kindOf(v), kindOf(def)
	if dk == kindObject {
		dk = kindOf(arr.Normalize(def))
	}

	switch {
	case vk == dk:
		return v
	case vk.numeric() && dk.numeric():
		return v
	case dk == kindString && vk.numeric():
		return cast.ToString(v)
	case vk == kindString && dk.numeric():
		if n, ok := parseLike(v.(string), def); ok {
			return n
		}
	}
	return def
}

// parseLike parses a decimal string into the numeric type of like.
// Fractional values are kept as float64 whatever the type of like.
// Integer strings are parsed as integers so large values keep every digit.
func parseLike(s string, like any) (any, bool) {
	if !isNumeric(s) {
		return nil, false
	}

	var whole any
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		whole = i
	} else if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		whole = u
	}

	switch like.(type) {
	case float64, float32:
		whole = nil
	}
	if whole == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, false
		}
		switch like.(type) {
		case float32:
			return float32(f), true
		case float64:
			return f, true
		}
		if f != math.Trunc(f) {
			return f, true
		}
		whole = f
	}

	var (
		n   any
		err error
	)
	switch like.(type) {
	case int:
		n, err = cast.ToIntE(whole)
	case int8:
		n, err = cast.ToInt8E(whole)
	case int16:
		n, err = cast.ToInt16E(whole)
	case int32:
		n, err = cast.ToInt32E(whole)
	case int64:
		n, err = cast.ToInt64E(whole)
	case uint:
		n, err = cast.ToUintE(whole)
	case uint8:
		n, err = cast.ToUint8E(whole)
	case uint16:
		n, err = cast.ToUint16E(whole)
	case uint32:
		n, err = cast.ToUint32E(whole)
	case uint64:
		n, err = cast.ToUint64E(whole)
	default:
		return nil, false
	}
	return n, err == nil
}

// isNumeric reports whether s is a plain decimal number: an optional sign,
// digits with at most one point, and an optional exponent.
func isNumeric(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits, point := 0, false
	for ; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
			continue
		}
		if s[i] == '.' && !point {
			point = true
			continue
		}
		break
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}

	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exp := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		exp++
	}
	return exp > 0 && i == len(s)
}

// isFalsy reports whether v counts as empty: nil, false, zero numbers,
// "", "0" and empty maps.
func isFalsy(v any) bool {
	switch kindOf(v) {
	case kindNull:
		return true
	case kindBool:
		return !v.(bool)
	case kindInt, kindFloat:
		return cast.ToFloat64(v) == 0
	case kindString:
		s := v.(string)
		return s == "" || s == "0"
	case kindMap:
		return v.(*arr.Map).Len() == 0
	}
	return false
}

// looseEqual compares like-for-like first, then numerically when both sides
// are numbers or numeric strings, then by truthiness when either side is a
// bool. nil equals "" and every other falsy value except "0".
func looseEqual(a, b any) bool {
	if arr.Equal(a, b) {
		return true
	}

	ak, bk := kindOf(a), kindOf(b)
	if ak == kindNull || bk == kindNull {
		if ak == kindString || bk == kindString {
			return a == "" || b == ""
		}
		return isFalsy(a) && isFalsy(b)
	}
	if ak == kindBool || bk == kindBool {
		return isFalsy(a) == isFalsy(b)
	}

	af, aok := number(a, ak)
	bf, bok := number(b, bk)
	if aok && bok {
		return af == bf
	}

	if ak == kindString && bk == kindString {
		return a.(string) == b.(string)
	}
	return false
}

func number(v any, k kind) (float64, bool) {
	switch k {
	case kindInt, kindFloat:
		return cast.ToFloat64(v), true
	case kindString:
		s := v.(string)
		if !isNumeric(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
