package jot

import (
	"fmt"
	"sort"
)

// ============================================================
// Go-Native Bridge
// ============================================================
//
// Converts between Value trees and the plain Go shapes that
// encoding/json trades in (nil, bool, float64, string, []any,
// map[string]any), so callers can hand trees to and from code that
// speaks those.

// FromGo converts a native Go value into a Value. Integers are
// widened to float64, map keys are sorted so member order is
// deterministic, and *Value inputs are deep-copied in.
func FromGo(x any) (*Value, error) {
	switch val := x.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(val), nil

	case float64:
		return Number(val), nil

	case int:
		return Number(float64(val)), nil

	case int64:
		return Number(float64(val)), nil

	case string:
		return Str(val), nil

	case []any:
		arr := Arr()
		for i, elem := range val {
			ev, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr.Append(ev)
		}
		return arr, nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := Obj()
		for _, k := range keys {
			ev, err := FromGo(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj.Set(k, ev)
		}
		return obj, nil

	case []*Value:
		arr := Arr()
		for _, elem := range val {
			arr.Append(elem.Clone())
		}
		return arr, nil

	case *Value:
		return val.Clone(), nil

	default:
		return nil, fmt.Errorf("jot: cannot convert %T", x)
	}
}

// ToGo converts a Value into the plain Go shape encoding/json uses.
// It is total; every Value converts. For hand-built objects carrying
// duplicate keys the later member wins, matching parse behavior.
func ToGo(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.boolVal

	case KindNumber:
		return v.numVal

	case KindString:
		return v.strVal

	case KindArray:
		items := make([]any, 0, len(v.elems))
		for _, e := range v.elems {
			items = append(items, ToGo(e))
		}
		return items

	case KindObject:
		obj := make(map[string]any, len(v.members))
		for _, m := range v.members {
			obj[m.Key] = ToGo(m.Value)
		}
		return obj

	default:
		return nil
	}
}
