// Package bump implements a slab allocator that owns node payloads at
// addresses stable for the allocator's lifetime, with uniform teardown.
//
// Each page is a fixed-size (4096 byte) array of slot descriptors; the
// actual payload for each slot lives in a separately heap-allocated object
// so that growing the descriptor array never invalidates a previously
// returned pointer. A destructor thunk is registered once per distinct
// payload type (up to 256 per allocator) and invoked exactly once for every
// live slot when the allocator is closed.
package bump

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"fortio.org/safecast"
)

// ErrOutOfMemory is returned when a page cannot be allocated because the
// allocator has reached its configured MaxPages.
var ErrOutOfMemory = errors.New("bump: out of memory")

// ErrTooManyTypes is returned when more than 256 distinct payload types
// have been requested from a single allocator.
var ErrTooManyTypes = errors.New("bump: too many distinct payload types")

// errClosed is returned by Allocate after Close.
var errClosed = errors.New("bump: allocate called after Close")

const (
	pageSize = 4096
	maxTypes = 256
)

// Destroyer is implemented by payload types that need to run cleanup when
// their owning Allocator is torn down. Types that don't implement it are
// released with no per-value action, equivalent to a trivial destructor.
type Destroyer interface {
	Destroy()
}

type typeEntry struct {
	destroy func(unsafe.Pointer)
}

type slotDescriptor struct {
	ptr     unsafe.Pointer
	typeIdx uint8
}

// slotsPerPage caps a page's descriptor array so the whole page fits in
// pageSize bytes, mirroring the fixed-size page from the design this
// allocator is modeled on.
var slotsPerPage = pageSize / int(unsafe.Sizeof(slotDescriptor{}))

type page struct {
	slots []slotDescriptor
}

// Allocator is a slab allocator for heterogeneous payload types.
//
// The zero value is not usable; construct one with New. An Allocator is not
// safe for concurrent use, matching the single-threaded contract of its
// owning e-graph.
type Allocator struct {
	// MaxPages bounds how many pages the allocator may open before
	// Allocate starts returning ErrOutOfMemory. Zero means unbounded.
	MaxPages int

	pages     []*page
	available []*page
	types     []typeEntry
	typeIndex map[reflect.Type]uint8
	closed    bool
}

// New returns a ready-to-use Allocator.
func New() *Allocator {
	return &Allocator{typeIndex: make(map[reflect.Type]uint8)}
}

// Allocate constructs a value of type T owned by a, returning a pointer
// whose address is stable for the lifetime of a.
func Allocate[T any](a *Allocator, value T) (*T, error) {
	if a.closed {
		return nil, errClosed
	}
	idx, err := typeIndexFor[T](a)
	if err != nil {
		return nil, err
	}

	pg, err := a.pageWithRoom()
	if err != nil {
		return nil, err
	}

	datum := new(T)
	*datum = value

	pg.slots = append(pg.slots, slotDescriptor{ptr: unsafe.Pointer(datum), typeIdx: idx})
	if len(pg.slots) >= slotsPerPage {
		a.retirePage(pg)
	}
	return datum, nil
}

// Close invokes every live slot's destructor thunk exactly once and
// releases the allocator's backing storage. Close is idempotent.
func (a *Allocator) Close() {
	if a.closed {
		return
	}
	for _, pg := range a.pages {
		for _, slot := range pg.slots {
			if d := a.types[slot.typeIdx].destroy; d != nil {
				d(slot.ptr)
			}
		}
	}
	a.pages = nil
	a.available = nil
	a.closed = true
}

// Len returns the number of values currently allocated (and not yet
// released by Close).
func (a *Allocator) Len() int {
	n := 0
	for _, pg := range a.pages {
		n += len(pg.slots)
	}
	return n
}

func (a *Allocator) pageWithRoom() (*page, error) {
	if len(a.available) > 0 {
		return a.available[len(a.available)-1], nil
	}
	if a.MaxPages > 0 && len(a.pages) >= a.MaxPages {
		return nil, ErrOutOfMemory
	}
	pg := &page{slots: make([]slotDescriptor, 0, slotsPerPage)}
	a.pages = append(a.pages, pg)
	a.available = append(a.available, pg)
	return pg, nil
}

func (a *Allocator) retirePage(pg *page) {
	for i, candidate := range a.available {
		if candidate == pg {
			a.available = append(a.available[:i], a.available[i+1:]...)
			return
		}
	}
}

func typeIndexFor[T any](a *Allocator) (uint8, error) {
	rt := reflect.TypeFor[T]()
	if idx, ok := a.typeIndex[rt]; ok {
		return idx, nil
	}
	if len(a.types) >= maxTypes {
		return 0, ErrTooManyTypes
	}
	idx, err := safecast.Conv[uint8](len(a.types))
	if err != nil {
		return 0, fmt.Errorf("bump: type index overflow: %w", err)
	}
	a.types = append(a.types, typeEntry{destroy: destructorFor[T]()})
	a.typeIndex[rt] = idx
	return idx, nil
}

// destructorFor returns a destructor thunk for T if T implements Destroyer,
// or nil if destruction is a no-op (matching a trivially destructible type
// in the design this allocator is modeled on).
func destructorFor[T any]() func(unsafe.Pointer) {
	var probe *T
	if _, ok := any(probe).(Destroyer); !ok {
		return nil
	}
	return func(p unsafe.Pointer) {
		if d, ok := any((*T)(p)).(Destroyer); ok {
			d.Destroy()
		}
	}
}
