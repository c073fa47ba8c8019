package arc

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

// Script fields are configured with struct tags:
//
//	arc:"serialize"   list an unexported field
//	arc:"show"        same as serialize
//	arc:"hide"        omit an exported field
//	range:"min,max"   clamp numeric assignments
//	tooltip:"text"    editor hint
//	header:"text"     editor group heading
//
// Several arc options may be combined with commas.

// FieldType classifies an editable script field.
type FieldType uint8

const (
	FieldUnknown FieldType = iota
	FieldBool
	FieldInt
	FieldUint
	FieldFloat
	FieldString
	FieldVector2
	FieldVector3
	FieldVector4
	FieldColor
)

var fieldTypeNames = [...]string{
	FieldUnknown: "unknown",
	FieldBool:    "bool",
	FieldInt:     "int",
	FieldUint:    "uint",
	FieldFloat:   "float",
	FieldString:  "string",
	FieldVector2: "Vector2",
	FieldVector3: "Vector3",
	FieldVector4: "Vector4",
	FieldColor:   "Color",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Field describes one editable script field and its current value.
type Field struct {
	Name    string
	Type    FieldType
	Value   any
	Tooltip string
	Header  string

	// HasRange is set when the field carries a range tag.
	HasRange bool
	Min, Max float64

	// Settable is false for unexported fields, which are listed for display
	// but cannot be assigned with SetScriptField.
	Settable bool
}

var (
	typeVector2 = reflect.TypeOf(Vector2{})
	typeVector3 = reflect.TypeOf(Vector3{})
	typeVector4 = reflect.TypeOf(Vector4{})
	typeColor   = reflect.TypeOf(Color{})
)

func fieldTypeOf(t reflect.Type) FieldType {
	switch t {
	case typeVector2:
		return FieldVector2
	case typeVector3:
		return FieldVector3
	case typeVector4:
		return FieldVector4
	case typeColor:
		return FieldColor
	}
	switch t.Kind() {
	case reflect.Bool:
		return FieldBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FieldInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FieldUint
	case reflect.Float32, reflect.Float64:
		return FieldFloat
	case reflect.String:
		return FieldString
	}
	return FieldUnknown
}

type fieldOptions struct {
	serialize bool
	show      bool
	hide      bool
}

func parseFieldOptions(tag string) fieldOptions {
	var o fieldOptions
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "serialize":
			o.serialize = true
		case "show":
			o.show = true
		case "hide":
			o.hide = true
		}
	}
	return o
}

func parseRange(tag string) (lo, hi float64, err error) {
	a, b, ok := strings.Cut(tag, ",")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: want \"min,max\"", tag)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", tag, err)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", tag, err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// scriptStruct returns an addressable struct value for script.
func scriptStruct(script any) (reflect.Value, error) {
	v := reflect.ValueOf(script)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("arc: script fields: nil script: %w", ErrFieldType)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("arc: script fields: %s is not a struct: %w", v.Type(), ErrFieldType)
	}
	if !v.CanAddr() {
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		v = c
	}
	return v, nil
}

// readable returns a value of f that supports Interface, including for
// unexported fields. f must be addressable.
func readable(f reflect.Value) reflect.Value {
	if f.CanInterface() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

type scriptField struct {
	Field
	value reflect.Value
}

func collectFields(v reflect.Value) ([]scriptField, error) {
	t := v.Type()
	var out []scriptField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			continue
		}
		opts := parseFieldOptions(sf.Tag.Get("arc"))
		exported := sf.IsExported()
		switch {
		case opts.hide:
			continue
		case !exported && !opts.serialize && !opts.show:
			continue
		}
		ft := fieldTypeOf(sf.Type)
		if ft == FieldUnknown {
			continue
		}
		fv := v.Field(i)
		f := Field{
			Name:     sf.Name,
			Type:     ft,
			Value:    readable(fv).Interface(),
			Tooltip:  sf.Tag.Get("tooltip"),
			Header:   sf.Tag.Get("header"),
			Settable: exported,
		}
		if r, ok := sf.Tag.Lookup("range"); ok {
			lo, hi, err := parseRange(r)
			if err != nil {
				return nil, fmt.Errorf("arc: field %s.%s: %w", t.Name(), sf.Name, err)
			}
			f.HasRange, f.Min, f.Max = true, lo, hi
		}
		out = append(out, scriptField{Field: f, value: fv})
	}
	return out, nil
}

// ScriptFields lists the editable fields of script, a struct or pointer to
// struct, in declaration order. Exported fields are listed unless tagged
// arc:"hide"; unexported fields only when tagged arc:"serialize" or
// arc:"show". Fields of unsupported types and embedded fields are skipped.
func ScriptFields(script any) ([]Field, error) {
	v, err := scriptStruct(script)
	if err != nil {
		return nil, err
	}
	fields, err := collectFields(v)
	if err != nil {
		return nil, err
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Field
	}
	return out, nil
}

// SetScriptField assigns value to the named exported field of script, which
// must be a pointer to struct. Numeric values of any Go numeric type are
// converted and then clamped to the field's range tag.
func SetScriptField(script any, name string, value any) error {
	v := reflect.ValueOf(script)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("arc: set field %q: script must be a non-nil struct pointer: %w", name, ErrFieldType)
	}
	fields, err := collectFields(v.Elem())
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f.Name != name {
			continue
		}
		if !f.Settable {
			return fmt.Errorf("arc: set field %q: unexported field: %w", name, ErrUnknownField)
		}
		if err := assignField(f, value); err != nil {
			return fmt.Errorf("arc: set field %q: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("arc: set field %q: %w", name, ErrUnknownField)
}

func assignField(f scriptField, value any) error {
	dst := f.value
	switch f.Type {
	case FieldInt:
		return assignInt(f, value)
	case FieldUint:
		return assignUint(f, value)
	case FieldFloat:
		n, ok := toFloat64(value)
		if !ok {
			return fmt.Errorf("%T to %s: %w", value, f.Type, ErrFieldType)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Errorf("non-finite %v to %s: %w", n, dst.Type(), ErrFieldType)
		}
		if f.HasRange {
			n = math.Max(f.Min, math.Min(f.Max, n))
		}
		if dst.OverflowFloat(n) {
			return fmt.Errorf("%v overflows %s: %w", n, dst.Type(), ErrFieldType)
		}
		dst.SetFloat(n)
		return nil
	}
	src := reflect.ValueOf(value)
	if !src.IsValid() || !src.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%T to %s: %w", value, f.Type, ErrFieldType)
	}
	dst.Set(src)
	return nil
}

// 2^63 and 2^64 are exact in float64. The max* constants are the largest
// float64 values below them.
const (
	twoTo63        = float64(1 << 63)
	twoTo64        = twoTo63 * 2
	maxInt64Float  = twoTo63 - 1024
	maxUint64Float = twoTo64 - 2048
)

// assignInt stores value in a signed field. Integer sources are converted
// without passing through float64; float sources are truncated.
func assignInt(f scriptField, value any) error {
	dst := f.value
	lo, hi := intBounds(f)
	var n int64
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = max(lo, min(hi, v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		switch {
		case u <= math.MaxInt64:
			n = max(lo, min(hi, int64(u)))
		case f.HasRange:
			n = hi
		default:
			return fmt.Errorf("%d overflows %s: %w", u, dst.Type(), ErrFieldType)
		}
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("non-finite %v to %s: %w", x, dst.Type(), ErrFieldType)
		}
		if f.HasRange {
			x = math.Max(f.Min, math.Min(f.Max, x))
		}
		x = math.Trunc(x)
		if x < -twoTo63 || x >= twoTo63 {
			return fmt.Errorf("%v overflows %s: %w", x, dst.Type(), ErrFieldType)
		}
		n = max(lo, min(hi, int64(x)))
	default:
		return fmt.Errorf("%T to %s: %w", value, f.Type, ErrFieldType)
	}
	if dst.OverflowInt(n) {
		return fmt.Errorf("%d overflows %s: %w", n, dst.Type(), ErrFieldType)
	}
	dst.SetInt(n)
	return nil
}

// assignUint stores value in an unsigned field. Negative values left after
// clamping are rejected.
func assignUint(f scriptField, value any) error {
	dst := f.value
	var n uint64
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo, hi := intBounds(f)
		i := max(lo, min(hi, v.Int()))
		if i < 0 {
			return fmt.Errorf("negative %d to %s: %w", i, dst.Type(), ErrFieldType)
		}
		n = uint64(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		lo, hi := uintBounds(f)
		n = max(lo, min(hi, v.Uint()))
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("non-finite %v to %s: %w", x, dst.Type(), ErrFieldType)
		}
		if f.HasRange {
			x = math.Max(f.Min, math.Min(f.Max, x))
		}
		x = math.Trunc(x)
		if x < 0 {
			return fmt.Errorf("negative %v to %s: %w", x, dst.Type(), ErrFieldType)
		}
		if x >= twoTo64 {
			return fmt.Errorf("%v overflows %s: %w", x, dst.Type(), ErrFieldType)
		}
		n = uint64(x)
	default:
		return fmt.Errorf("%T to %s: %w", value, f.Type, ErrFieldType)
	}
	if dst.OverflowUint(n) {
		return fmt.Errorf("%d overflows %s: %w", n, dst.Type(), ErrFieldType)
	}
	dst.SetUint(n)
	return nil
}

// intBounds returns the range tag as whole int64 bounds, or the full int64
// range when there is no tag.
func intBounds(f scriptField) (lo, hi int64) {
	lo, hi = math.MinInt64, math.MaxInt64
	if !f.HasRange {
		return lo, hi
	}
	if m := math.Ceil(f.Min); m > -twoTo63 {
		lo = int64(min(m, maxInt64Float))
	}
	if m := math.Floor(f.Max); m < twoTo63 {
		hi = int64(max(m, -twoTo63))
	}
	return lo, hi
}

// uintBounds is intBounds for unsigned fields.
func uintBounds(f scriptField) (lo, hi uint64) {
	lo, hi = 0, math.MaxUint64
	if !f.HasRange {
		return lo, hi
	}
	if m := math.Ceil(f.Min); m > 0 {
		lo = uint64(min(m, maxUint64Float))
	}
	if m := math.Floor(f.Max); m < twoTo64 {
		hi = uint64(max(m, 0))
	}
	return lo, hi
}

func toFloat64(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
