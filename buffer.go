package vec

import "unsafe"

// block is an owned handle to one contiguous run of element slots. A zero
// block owns nothing; ptr is non-nil exactly when cap > 0. The block itself
// never tracks which slots are live - that bookkeeping belongs to the owner.
type block[T any] struct {
	ptr unsafe.Pointer // start of the backing array, nil when cap == 0
	cap int            // number of element slots
}

// allocBlock obtains memory for n element slots. The slots are raw storage
// from the container's point of view; nothing in them is considered live.
// Returns a zero block if n <= 0. Out-of-memory aborts the process.
//
// The backing array is allocated as []T rather than raw bytes so the runtime
// keeps a pointer bitmap for the region; elements with pointer fields stay
// visible to the garbage collector.
func allocBlock[T any](n int) block[T] {
	if n <= 0 {
		return block[T]{}
	}
	return block[T]{
		ptr: unsafe.Pointer(unsafe.SliceData(make([]T, n))),
		cap: n,
	}
}

// absent reports whether the block owns no memory.
func (b *block[T]) absent() bool {
	return b.ptr == nil
}

// slot returns a pointer to slot i. No bounds check; callers guarantee
// 0 <= i < cap.
func (b *block[T]) slot(i int) *T {
	var zero T
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// view returns slots [i, j) as a slice sharing the block's storage.
func (b *block[T]) view(i, j int) []T {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), b.cap)[i:j:b.cap]
}

// release drops the backing memory and resets the block to its zero state.
// Live elements must already have been destroyed or moved out. Safe to call
// on an absent block.
func (b *block[T]) release() {
	b.ptr = nil
	b.cap = 0
}

// rawBytes reinterprets the elements of s as their underlying bytes. Only
// meaningful for plain-data element types.
func rawBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	n := uintptr(len(s)) * unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), n)
}
