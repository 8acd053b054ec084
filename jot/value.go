package jot

import "fmt"

// Kind represents JSON value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value represents a JSON value.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal bool
	numVal  float64
	strVal  string

	// Container values
	members []Member
	elems   []*Value
}

// Member represents a key-value pair in an object.
type Member struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Arr creates an array value.
func Arr(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// Obj creates an object value from key-value members.
func Obj(members ...Member) *Value {
	return &Value{kind: KindObject, members: members}
}

// Field creates a Member for use in Obj construction.
func Field(key string, value *Value) Member {
	return Member{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("jot: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("jot: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsNumber returns the number value.
func (v *Value) AsNumber() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("jot: nil value")
	}
	if v.kind != KindNumber {
		return 0, fmt.Errorf("jot: expected number, got %s", v.kind)
	}
	return v.numVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("jot: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("jot: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsArr returns the array elements.
func (v *Value) AsArr() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("jot: nil value")
	}
	if v.kind != KindArray {
		return nil, fmt.Errorf("jot: expected array, got %s", v.kind)
	}
	return v.elems, nil
}

// AsObj returns the object members.
func (v *Value) AsObj() ([]Member, error) {
	if v == nil {
		return nil, fmt.Errorf("jot: nil value")
	}
	if v.kind != KindObject {
		return nil, fmt.Errorf("jot: expected object, got %s", v.kind)
	}
	return v.members, nil
}

// Len returns the length of an object or array.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.elems)
	default:
		return 0
	}
}

// Get returns a member value by key from an object, or nil if absent.
func (v *Value) Get(key string) *Value {
	m, _ := v.lookup(key)
	return m
}

// lookup distinguishes an absent key from a stored nil value.
func (v *Value) lookup(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, fmt.Errorf("jot: not an array")
	}
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("jot: index %d out of bounds (len=%d)", i, len(v.elems))
	}
	return v.elems[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a member value on an object. An existing key keeps its
// position and has its value overwritten; a new key is appended.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		panic("jot: cannot set on non-object")
	}
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Append adds an element to an array.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		panic("jot: cannot append to non-array")
	}
	v.elems = append(v.elems, val)
}

// ============================================================
// Deep Copy & Equality
// ============================================================

// Clone returns a deep copy of the value with no shared state.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{
		kind:    v.kind,
		boolVal: v.boolVal,
		numVal:  v.numVal,
		strVal:  v.strVal,
	}
	switch v.kind {
	case KindObject:
		if v.members != nil {
			c.members = make([]Member, len(v.members))
			for i, m := range v.members {
				c.members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
			}
		}
	case KindArray:
		if v.elems != nil {
			c.elems = make([]*Value, len(v.elems))
			for i, e := range v.elems {
				c.elems[i] = e.Clone()
			}
		}
	}
	return c
}

// Equal reports structural equality. Object members are compared as a
// mapping, so member order does not matter. Numbers are compared with
// ==, so -0 equals 0 and NaN never equals anything.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i, e := range v.elems {
			if !e.Equal(other.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for _, m := range v.members {
			o, ok := other.lookup(m.Key)
			if !ok || !m.Value.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
