package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID || b.Bool == NoTypeID || b.Null == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	if in.Kind(b.Char) != KindChar {
		t.Fatalf("expected char kind, got %v", in.Kind(b.Char))
	}
	if in.Intern(Type{Kind: KindInvalid}) != NoTypeID {
		t.Fatal("invalid must map to NoTypeID")
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().String
	arr1 := in.Intern(MakeArray(elem))
	arr2 := in.Intern(MakeArray(elem))
	if arr1 != arr2 {
		t.Fatalf("array types should be deduplicated")
	}
	// Size у несized массива игнорируется
	if in.Intern(Type{Kind: KindArray, Elem: elem, Size: "3"}) != arr1 {
		t.Fatal("size must not affect T[]")
	}
}

func TestStructuralEquality(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	intArr := in.Intern(MakeArray(b.Int))
	intArrArr := in.Intern(MakeArray(intArr))
	int3 := in.Intern(MakeSizedArray(b.Int, "3"))
	int3b := in.Intern(MakeSizedArray(b.Int, "3"))
	int4 := in.Intern(MakeSizedArray(b.Int, "4"))
	float3 := in.Intern(MakeSizedArray(b.Float, "3"))

	tests := []struct {
		name string
		a, b TypeID
		want bool
	}{
		{"int[] == int[]", intArr, in.Intern(MakeArray(b.Int)), true},
		{"int[] != int[][]", intArr, intArrArr, false},
		{"int[3] == int[3]", int3, int3b, true},
		{"int[3] != int[4]", int3, int4, false},
		{"int[3] != float[3]", int3, float3, false},
		{"int[] != int[3]", intArr, int3, false},
		{"int == int", b.Int, b.Int, true},
		{"int != bool", b.Int, b.Bool, false},
		{"null == null", b.Null, b.Null, true},
		{"unknown", NoTypeID, NoTypeID, false},
	}
	for _, tt := range tests {
		if got := in.Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v", tt.name, got)
		}
	}
}

func TestSizeComparedTextually(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeSizedArray(in.Builtins().Int, "3"))
	b := in.Intern(MakeSizedArray(in.Builtins().Int, "03"))
	if in.Equal(a, b) {
		t.Fatal("sizes 3 and 03 differ textually")
	}
}

func TestAdditiveSet(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	for _, id := range []TypeID{b.Int, b.Float, b.Char, b.String} {
		if !in.IsAdditive(id) {
			t.Errorf("%s must be additive", Label(in, id))
		}
	}
	for _, id := range []TypeID{b.Bool, b.Void, b.Null, in.Intern(MakeArray(b.Int))} {
		if in.IsAdditive(id) {
			t.Errorf("%s must not be additive", Label(in, id))
		}
	}
}

func TestLabel(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	sized := in.Intern(MakeSizedArray(b.Int, "3"))
	mixed := in.Intern(MakeArray(sized))
	if got := Label(in, mixed); got != "int[3][]" {
		t.Fatalf("Label = %q", got)
	}
	if got := Label(in, b.Bool); got != "bool" {
		t.Fatalf("Label = %q", got)
	}
	if got := Label(in, NoTypeID); got != "?" {
		t.Fatalf("Label = %q", got)
	}
}
