package minefield

import (
	"encoding/json"
	"math"
)

// NewGameFromValues is [NewGame] for loosely typed input such as decoded
// JSON. Type checks run first, in order: size, rows, cols.
//
// Any Go integer type or an integral [json.Number] is an integer. Strings,
// floats, bools and nil are not. Lists may be []int, []int64, []json.Number
// or []any of integers.
func NewGameFromValues(size, rows, cols any) (*Grid, error) {
	n, r, c, err := CheckTypes(size, rows, cols)
	if err != nil {
		return nil, err
	}
	return NewGame(n, r, c)
}

// CheckTypes converts loosely typed board parameters or returns a
// [TypeMismatchError] for the first one that is not an integer (list).
func CheckTypes(size, rows, cols any) (n int, r, c []int, err error) {
	n, ok := asInt(size)
	if !ok {
		return 0, nil, nil, TypeMismatchError{Field: FieldSize}
	}
	r, ok = asInts(rows)
	if !ok {
		return 0, nil, nil, TypeMismatchError{Field: FieldRows}
	}
	c, ok = asInts(cols)
	if !ok {
		return 0, nil, nil, TypeMismatchError{Field: FieldCols}
	}
	return n, r, c, nil
}

func asInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return fitInt64(v)
	case uint:
		return fitUint64(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return fitUint64(uint64(v))
	case uint64:
		return fitUint64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return fitInt64(i)
	default:
		return 0, false
	}
}

func fitInt64(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func fitUint64(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func asInts(v any) ([]int, bool) {
	switch v := v.(type) {
	case []int:
		return v, true
	case []int64:
		res := make([]int, 0, len(v))
		for _, x := range v {
			i, ok := fitInt64(x)
			if !ok {
				return nil, false
			}
			res = append(res, i)
		}
		return res, true
	case []json.Number:
		res := make([]int, 0, len(v))
		for _, x := range v {
			i, ok := asInt(x)
			if !ok {
				return nil, false
			}
			res = append(res, i)
		}
		return res, true
	case []any:
		res := make([]int, 0, len(v))
		for _, x := range v {
			i, ok := asInt(x)
			if !ok {
				return nil, false
			}
			res = append(res, i)
		}
		return res, true
	default:
		return nil, false
	}
}
