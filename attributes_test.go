package arc

import (
	"errors"
	"math"
	"testing"
)

type tunable struct {
	Entity

	Speed   float32 `range:"0,10" tooltip:"Units per second"`
	Lives   int     `range:"1,5" header:"Rules"`
	Charges uint8
	Name    string
	Enabled bool
	Offset  Vector2
	Tint    Color
	Secret  string `arc:"hide"`
	Big     int64
	ULong   uint64

	cooldown float32 `arc:"serialize"`
	shown    Vector3 `arc:"show"`
	private  int
	callback func()
}

func TestScriptFields(t *testing.T) {
	s := &tunable{Speed: 3, Lives: 2, cooldown: 1.5, shown: Vector3One}
	fields, err := ScriptFields(s)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	want := []string{"Speed", "Lives", "Charges", "Name", "Enabled", "Offset", "Tint", "Big", "ULong", "cooldown", "shown"}
	if len(names) != len(want) {
		t.Fatalf("fields = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("field %d = %s, want %s", i, names[i], want[i])
		}
	}

	speed := fields[0]
	if speed.Type != FieldFloat || speed.Value != float32(3) || !speed.HasRange || speed.Max != 10 {
		t.Errorf("Speed = %+v", speed)
	}
	if speed.Tooltip != "Units per second" || !speed.Settable {
		t.Errorf("Speed tooltip/settable = %q/%v", speed.Tooltip, speed.Settable)
	}
	if fields[1].Header != "Rules" {
		t.Errorf("Lives header = %q", fields[1].Header)
	}
	cooldown := fields[9]
	if cooldown.Settable || cooldown.Value != float32(1.5) {
		t.Errorf("cooldown = %+v", cooldown)
	}
	if fields[10].Type != FieldVector3 || fields[10].Value != Vector3One {
		t.Errorf("shown = %+v", fields[10])
	}
}

func TestScriptFields_ByValue(t *testing.T) {
	fields, err := ScriptFields(tunable{cooldown: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range fields {
		if f.Name == "cooldown" && f.Value != float32(2) {
			t.Errorf("cooldown = %v, want 2", f.Value)
		}
	}
}

func TestScriptFields_Errors(t *testing.T) {
	if _, err := ScriptFields(42); !errors.Is(err, ErrFieldType) {
		t.Errorf("non-struct err = %v", err)
	}
	var nilScript *tunable
	if _, err := ScriptFields(nilScript); !errors.Is(err, ErrFieldType) {
		t.Errorf("nil pointer err = %v", err)
	}
	type badRange struct {
		X float32 `range:"1"`
	}
	if _, err := ScriptFields(badRange{}); err == nil {
		t.Error("malformed range tag should fail")
	}
}

func TestSetScriptField(t *testing.T) {
	s := &tunable{}
	tests := []struct {
		name  string
		value any
	}{
		{"Speed", 4.5},
		{"Lives", int64(3)},
		{"Charges", 7},
		{"Name", "hero"},
		{"Enabled", true},
		{"Offset", NewVector2(1, 2)},
		{"Tint", ColorRed},
		{"Big", int32(-9)},
	}
	for _, tt := range tests {
		if err := SetScriptField(s, tt.name, tt.value); err != nil {
			t.Errorf("SetScriptField(%s, %v): %v", tt.name, tt.value, err)
		}
	}
	if s.Speed != 4.5 || s.Lives != 3 || s.Charges != 7 || s.Name != "hero" || !s.Enabled {
		t.Errorf("after set: %+v", s)
	}
	if !s.Offset.Equals(NewVector2(1, 2)) || s.Tint != ColorRed || s.Big != -9 {
		t.Errorf("after set: %+v", s)
	}
}

func TestSetScriptField_Clamps(t *testing.T) {
	s := &tunable{}
	if err := SetScriptField(s, "Speed", 50); err != nil {
		t.Fatal(err)
	}
	if s.Speed != 10 {
		t.Errorf("Speed = %v, want clamped to 10", s.Speed)
	}
	if err := SetScriptField(s, "Lives", -3); err != nil {
		t.Fatal(err)
	}
	if s.Lives != 1 {
		t.Errorf("Lives = %v, want clamped to 1", s.Lives)
	}
}

func TestSetScriptField_Errors(t *testing.T) {
	s := &tunable{}
	tests := []struct {
		name  string
		field string
		value any
		want  error
	}{
		{"unknown", "Missing", 1, ErrUnknownField},
		{"hidden", "Secret", "x", ErrUnknownField},
		{"unexported", "cooldown", 1, ErrUnknownField},
		{"string to float", "Speed", "fast", ErrFieldType},
		{"float to string", "Name", 1.0, ErrFieldType},
		{"nil to vector", "Offset", nil, ErrFieldType},
		{"negative to uint", "Charges", -1, ErrFieldType},
		{"uint overflow", "Charges", 300, ErrFieldType},
		{"NaN to int", "Lives", math.NaN(), ErrFieldType},
		{"Inf to int", "Big", math.Inf(1), ErrFieldType},
		{"NaN to uint", "Charges", math.NaN(), ErrFieldType},
		{"NaN to float", "Speed", math.NaN(), ErrFieldType},
		{"uint64 to int64 overflow", "Big", uint64(math.MaxUint64), ErrFieldType},
	}
	for _, tt := range tests {
		if err := SetScriptField(s, tt.field, tt.value); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
	if s.Lives != 0 || s.Big != 0 || s.Speed != 0 {
		t.Errorf("rejected values were stored: %+v", s)
	}
	if err := SetScriptField(*s, "Speed", 1); !errors.Is(err, ErrFieldType) {
		t.Errorf("non-pointer script err = %v", err)
	}
}

func TestSetScriptField_IntegerPrecision(t *testing.T) {
	s := &tunable{}
	set := func(field string, value any) {
		t.Helper()
		if err := SetScriptField(s, field, value); err != nil {
			t.Fatalf("SetScriptField(%s, %v): %v", field, value, err)
		}
	}

	set("Big", int64(math.MaxInt64))
	if s.Big != math.MaxInt64 {
		t.Errorf("Big = %d, want MaxInt64", s.Big)
	}
	set("Big", int64(math.MinInt64))
	if s.Big != math.MinInt64 {
		t.Errorf("Big = %d, want MinInt64", s.Big)
	}
	set("Big", int64(1<<53+1))
	if s.Big != 1<<53+1 {
		t.Errorf("Big = %d, want 2^53+1", s.Big)
	}
	set("Big", uint64(1<<62))
	if s.Big != 1<<62 {
		t.Errorf("Big from uint64 = %d", s.Big)
	}

	set("ULong", uint64(math.MaxUint64))
	if s.ULong != math.MaxUint64 {
		t.Errorf("ULong = %d, want MaxUint64", s.ULong)
	}
	set("ULong", uint64(1<<53+1))
	if s.ULong != 1<<53+1 {
		t.Errorf("ULong = %d, want 2^53+1", s.ULong)
	}

	set("Lives", uint64(math.MaxUint64))
	if s.Lives != 5 {
		t.Errorf("Lives = %d, want clamped to 5", s.Lives)
	}
	set("Lives", 2.9)
	if s.Lives != 2 {
		t.Errorf("Lives = %d, want 2.9 truncated to 2", s.Lives)
	}
}

func TestFieldTypeString(t *testing.T) {
	if FieldVector2.String() != "Vector2" || FieldUint.String() != "uint" {
		t.Error("unexpected FieldType names")
	}
	if got := FieldType(99).String(); got != "FieldType(99)" {
		t.Errorf("unknown FieldType = %q", got)
	}
}
