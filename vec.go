package vec

import (
	"github.com/pkg/errors"
)

// Vector is an ordered, index-addressable, dynamically resizable sequence of
// T. It owns exactly one backing block; elements at indices [0, Len) are
// live, slots [Len, Cap) are raw storage. The zero Vector is an empty vector
// ready for use. Not safe for concurrent mutation.
type Vector[T any] struct {
	buf  block[T]
	len  int
	info *typeInfo

	grows     int // reallocations performed
	relocated int // elements carried to a new block
}

// New creates an empty vector with no backing block.
func New[T any]() *Vector[T] {
	return &Vector[T]{info: infoOf[T]()}
}

// NewCapacity creates an empty vector with room for capacity elements.
// A capacity <= 0 allocates nothing.
func NewCapacity[T any](capacity int) *Vector[T] {
	v := New[T]()
	v.buf = allocBlock[T](capacity)
	return v
}

// NewFill creates a vector holding n copies of val (length == capacity == n).
// For Cloner element types each slot receives its own Clone of val.
func NewFill[T any](n int, val T) *Vector[T] {
	v := NewCapacity[T](n)
	if n > 0 {
		fillRange(v.info, v.buf.view(0, n), val)
		v.len = n
	}
	return v
}

// Of creates a vector from a literal sequence, copy-constructing each element
// in order (length == capacity == len(vals)).
func Of[T any](vals ...T) *Vector[T] {
	v := NewCapacity[T](len(vals))
	for i := range vals {
		constructAt(v.info, v.buf.slot(i), vals[i])
	}
	v.len = len(vals)
	return v
}

// Move creates a vector that adopts src's buffer in O(1); src is left empty.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.MoveFrom(src)
	return v
}

// typeinfo returns the cached element classification, resolving it lazily so
// the zero Vector works.
func (v *Vector[T]) typeinfo() *typeInfo {
	if v.info == nil {
		v.info = infoOf[T]()
	}
	return v.info
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return v.buf.cap }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.len == 0 }

// Data returns the live elements [0, Len) as a slice sharing the vector's
// storage. The view is invalidated by the next capacity-changing operation or
// element-shifting removal.
func (v *Vector[T]) Data() []T {
	return v.buf.view(0, v.len)
}

// Get returns the element at index i. Unchecked: callers guarantee
// 0 <= i < Len.
func (v *Vector[T]) Get(i int) T {
	return *v.buf.slot(i)
}

// Ref returns a pointer to the element at index i. Unchecked.
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.slot(i)
}

// Set replaces the element at index i, destroying the previous one and taking
// ownership of val. Unchecked.
func (v *Vector[T]) Set(i int, val T) {
	slot := v.buf.slot(i)
	destroyAt(v.typeinfo(), slot)
	*slot = val
}

// At returns a pointer to the element at index i, or an error wrapping
// ErrOutOfRange if i is not a live index.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.len {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, v.len)
	}
	return v.buf.slot(i), nil
}

// Front returns a pointer to the first element. Panics if the vector is empty.
func (v *Vector[T]) Front() *T {
	if v.len == 0 {
		panic("vec: Front on empty vector")
	}
	return v.buf.slot(0)
}

// Back returns a pointer to the last element. Panics if the vector is empty.
func (v *Vector[T]) Back() *T {
	if v.len == 0 {
		panic("vec: Back on empty vector")
	}
	return v.buf.slot(v.len - 1)
}

// Reserve grows capacity to at least n slots. It never shrinks and is a no-op
// when capacity already suffices. Live elements are preserved in order.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.buf.cap {
		return
	}
	v.grow(n)
}

// Resize sets the length to n. Shrinking destroys the trailing elements;
// growing default-constructs (zeroes) the new trailing slots, reallocating
// first if capacity is insufficient.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > v.buf.cap {
		v.grow(n)
	}
	switch {
	case n < v.len:
		destroyRange(v.typeinfo(), v.buf.view(n, v.len))
	case n > v.len:
		clear(v.buf.view(v.len, n)) // slots may hold stale bytes from erased elements
	}
	v.len = n
}

// Append adds val after the last element, growing the block if full. Takes
// ownership of val: Cloner types are not cloned, so the caller must not
// retain resource-owning values it appends.
func (v *Vector[T]) Append(val T) {
	if v.len == v.buf.cap {
		v.grow(0)
	}
	*v.buf.slot(v.len) = val
	v.len++
}

// RemoveLast destroys the last element. Panics if the vector is empty; the
// length never goes below zero.
func (v *Vector[T]) RemoveLast() {
	if v.len == 0 {
		panic("vec: RemoveLast on empty vector")
	}
	v.len--
	destroyAt(v.typeinfo(), v.buf.slot(v.len))
}

// Clear destroys all live elements and sets the length to zero. Capacity is
// unchanged.
func (v *Vector[T]) Clear() {
	destroyRange(v.typeinfo(), v.buf.view(0, v.len))
	v.len = 0
}

// Release destroys all live elements, frees the backing block and resets the
// vector to the empty state. Safe to call repeatedly; the vector remains
// usable afterwards.
func (v *Vector[T]) Release() {
	destroyRange(v.typeinfo(), v.buf.view(0, v.len))
	v.buf.release()
	v.len = 0
}

// Insert inserts val at index i, shifting elements from i onward one slot
// right. i must be in [0, Len]. Returns the insertion index.
func (v *Vector[T]) Insert(i int, val T) int {
	return v.InsertN(i, val, 1)
}

// InsertN inserts n copy-constructed copies of val starting at index i,
// shifting elements from i onward n slots right. i must be in [0, Len];
// n <= 0 inserts nothing. When growth is needed the new capacity is
// max(2*Cap, Len+n). Returns the index of the first inserted element.
func (v *Vector[T]) InsertN(i int, val T, n int) int {
	if i < 0 || i > v.len {
		panic("vec: Insert position out of range")
	}
	if n <= 0 {
		return i
	}
	info := v.typeinfo()
	newLen := v.len + n
	if newLen > v.buf.cap {
		v.grow(newLen)
	}
	s := v.buf.view(0, newLen)
	// Shift [i, len) right by n. relocateRange is overlap-safe, so no manual
	// reverse loop with its index-underflow hazard.
	relocateRange(info, s[i+n:], s[i:v.len])
	for k := 0; k < n; k++ {
		constructAt(info, &s[i+k], val)
	}
	v.len = newLen
	return i
}

// Erase removes the element at index i, shifting later elements one slot
// left. i must be a live index.
func (v *Vector[T]) Erase(i int) {
	v.EraseRange(i, i+1)
}

// EraseRange removes elements [i, j), shifting later elements left and
// preserving their order. Requires 0 <= i <= j <= Len.
func (v *Vector[T]) EraseRange(i, j int) {
	if i < 0 || j < i || j > v.len {
		panic("vec: Erase range out of bounds")
	}
	n := j - i
	if n == 0 {
		return
	}
	shiftErase(v.typeinfo(), v.buf.view(i, v.len), n)
	v.len -= n
}

// Swap exchanges the contents of v and o in O(1). No element is copied,
// moved or destroyed.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.buf, o.buf = o.buf, v.buf
	v.len, o.len = o.len, v.len
	v.grows, o.grows = o.grows, v.grows
	v.relocated, o.relocated = o.relocated, v.relocated
}

// Equal reports whether v and o hold pairwise-equal elements in order.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if o == nil {
		return false
	}
	return equalRange(v.typeinfo(), v.Data(), o.Data())
}

// Clone returns a deep copy with its own block of the same capacity. Mutating
// either vector never affects the other.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewCapacity[T](v.buf.cap)
	copyRange(c.info, c.buf.view(0, v.len), v.Data())
	c.len = v.len
	return c
}

// CopyFrom releases v's current contents and replaces them with a deep copy
// of o. Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(o *Vector[T]) {
	if v == o {
		return
	}
	v.Release()
	v.buf = allocBlock[T](o.buf.cap)
	copyRange(v.typeinfo(), v.buf.view(0, o.len), o.Data())
	v.len = o.len
}

// MoveFrom releases v's current contents and adopts o's buffer in O(1),
// leaving o empty. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(o *Vector[T]) {
	if v == o {
		return
	}
	v.Release()
	v.buf = o.buf
	v.len = o.len
	o.buf = block[T]{}
	o.len = 0
}

// grow reallocates to max(2, 2*Cap, need) slots and relocates the live prefix
// in order. Plain-data elements move as one raw byte copy; others move slot
// by slot. The old block is freed without teardown - its elements were moved
// out, and destroying them would tear down transferred resources.
func (v *Vector[T]) grow(need int) {
	newCap := v.buf.cap * 2
	if newCap < 2 {
		newCap = 2
	}
	if newCap < need {
		newCap = need
	}
	dst := allocBlock[T](newCap)
	if v.len > 0 {
		relocateRange(v.typeinfo(), dst.view(0, v.len), v.buf.view(0, v.len))
		v.relocated += v.len
	}
	v.buf.release()
	v.buf = dst
	v.grows++
}
