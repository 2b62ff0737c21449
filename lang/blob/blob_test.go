package blob

import "testing"

func TestBlob_ContentEquality(t *testing.T) {
	src := []byte("builddir")
	a := New(src)
	src[0] = 'X'

	if a.String() != "builddir" {
		t.Fatalf("New did not copy its input: %q", a.String())
	}

	b := FromString("builddir")
	if a != b || !a.Equal(b) {
		t.Error("blobs with equal content compare unequal")
	}

	if a.Hash() != b.Hash() {
		t.Error("blobs with equal content hash differently")
	}

	if a.Hash() == FromString("builddi").Hash() {
		t.Error("distinct content produced identical hashes")
	}

	seen := map[Blob]int{a: 1}
	if seen[b] != 1 {
		t.Error("equal blob did not find map entry")
	}
}

func TestBlob_BytesIsCopy(t *testing.T) {
	v := FromString("abc")
	p := v.Bytes()
	p[0] = 'z'

	if v.String() != "abc" {
		t.Errorf("mutating Bytes() changed blob: %q", v.String())
	}
}

func TestBlob_Empty(t *testing.T) {
	if !Empty().IsEmpty() || Empty().Len() != 0 {
		t.Error("Empty() is not empty")
	}

	if Empty() != New(nil) || Empty() != New([]byte{}) {
		t.Error("empty blobs from different sources compare unequal")
	}
}

func TestBuilder(t *testing.T) {
	var b Builder

	b.Push('a')
	b.Extend([]byte("bc"))
	b.Append(FromString("de"))

	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}

	v := b.Blob()
	if v.String() != "abcde" {
		t.Errorf("Blob() = %q, want %q", v.String(), "abcde")
	}

	if b.Len() != 0 {
		t.Errorf("builder not reset after Blob(): Len() = %d", b.Len())
	}

	b.Push('x')
	if v.String() != "abcde" {
		t.Errorf("reusing builder mutated frozen blob: %q", v.String())
	}
}
