package arena

import (
	"strings"
	"testing"
)

func TestArena_InsertGet(t *testing.T) {
	a := New[string]()

	x := a.Insert("x")
	y := a.Insert("y")

	if x == y {
		t.Fatal("distinct inserts returned equal handles")
	}

	if x.Index() != 0 || y.Index() != 1 {
		t.Errorf("indices = %d, %d; want 0, 1", x.Index(), y.Index())
	}

	if a.Get(x) != "x" || a.Get(y) != "y" {
		t.Errorf("Get returned %q, %q", a.Get(x), a.Get(y))
	}

	*a.Ref(x) = "xx"
	if a.Get(x) != "xx" {
		t.Errorf("Ref did not update stored value: %q", a.Get(x))
	}

	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestArena_All(t *testing.T) {
	a := New[int]()
	ids := []ID[int]{a.Insert(10), a.Insert(20), a.Insert(30)}

	i := 0
	for id, v := range a.All() {
		if id != ids[i] {
			t.Errorf("All()[%d] handle = %v, want %v", i, id, ids[i])
		}

		if v != (i+1)*10 {
			t.Errorf("All()[%d] value = %d", i, v)
		}

		i++
	}

	if i != 3 {
		t.Errorf("All() yielded %d values, want 3", i)
	}
}

func TestArena_ZeroHandle(t *testing.T) {
	var zero ID[int]
	if !zero.IsZero() {
		t.Error("zero handle is not zero")
	}

	if New[int]().Insert(1).IsZero() {
		t.Error("inserted handle reports zero")
	}
}

func TestArena_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		call func()
		want string
	}{
		{
			name: "foreign arena",
			call: func() {
				a, b := New[int](), New[int]()
				b.Get(a.Insert(1))
			},
			want: "does not belong",
		},
		{
			name: "zero handle",
			call: func() {
				New[int]().Get(ID[int]{})
			},
			want: "does not belong",
		},
		{
			name: "out of range",
			call: func() {
				a := New[int]()
				id := a.Insert(1)
				id.index = 5
				a.Get(id)
			},
			want: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}

				if s, ok := r.(string); !ok || !strings.Contains(s, tt.want) {
					t.Errorf("panic = %v, want substring %q", r, tt.want)
				}
			}()

			tt.call()
		})
	}
}
