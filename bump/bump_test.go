package bump

import (
	"fmt"
	"reflect"
	"testing"
)

// reflectTypeForTest returns a distinct struct type per index, letting the
// TooManyTypes guard be exercised without hand-declaring 256 Go types.
func reflectTypeForTest(i int) reflect.Type {
	return reflect.StructOf([]reflect.StructField{
		{
			Name: "F",
			Type: reflect.TypeOf(int8(0)),
			Tag:  reflect.StructTag(fmt.Sprintf(`probe:"%d"`, i)),
		},
	})
}

func TestAllocateACoupleOfThings(t *testing.T) {
	a := New()
	defer a.Close()

	x, err := Allocate(a, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *x != 5 {
		t.Fatalf("expected 5, got %d", *x)
	}

	y, err := Allocate(a, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *y != "hello" {
		t.Fatalf("expected hello, got %q", *y)
	}
}

type dtorTest struct {
	fired *bool
}

func (d *dtorTest) Destroy() { *d.fired = true }

func TestDestructorFiresExactlyOnceOnClose(t *testing.T) {
	a := New()
	fired := false

	v, err := Allocate(a, dtorTest{fired: &fired})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fired {
		t.Fatalf("destructor fired before Close")
	}
	_ = v

	a.Close()
	if !fired {
		t.Fatalf("expected destructor to fire on Close")
	}

	fired = false
	a.Close() // idempotent: must not refire
	if fired {
		t.Fatalf("destructor refired on second Close")
	}
}

type typeA struct{ _ int }
type typeB struct{ _ int }

func TestTooManyTypes(t *testing.T) {
	a := New()
	defer a.Close()

	// Allocate 256 distinct generic instantiations via a helper that
	// parametrizes over an index using distinct wrapper types would be
	// impractical; instead exercise the guard directly by pre-seeding the
	// type table.
	for i := 0; i < maxTypes; i++ {
		a.types = append(a.types, typeEntry{})
		a.typeIndex[reflectTypeForTest(i)] = uint8(i)
	}

	if _, err := Allocate(a, typeA{}); err != ErrTooManyTypes {
		t.Fatalf("expected ErrTooManyTypes, got %v", err)
	}
}

func TestOutOfMemoryRespectsMaxPages(t *testing.T) {
	a := New()
	a.MaxPages = 1
	defer a.Close()

	for i := 0; i < slotsPerPage; i++ {
		if _, err := Allocate(a, i); err != nil {
			t.Fatalf("unexpected error filling first page: %v", err)
		}
	}

	if _, err := Allocate(a, 1); err != ErrOutOfMemory {
		t.Fatalf("expected ErrOutOfMemory once MaxPages is exhausted, got %v", err)
	}
}

func TestAllocateAfterCloseFails(t *testing.T) {
	a := New()
	a.Close()
	if _, err := Allocate(a, 1); err == nil {
		t.Fatalf("expected error allocating after Close")
	}
}
