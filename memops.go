package vec

import (
	"bytes"
	"reflect"
)

// Memory operations over typed slot ranges. These are the leaf primitives the
// container is built on: they assume valid, non-overlapping arguments (except
// where noted), never allocate and never fail. Each one dispatches on the
// element type's classification - a single bulk byte operation for plain-data
// types, per-element lifecycle calls otherwise.

// constructAt copy-constructs v into an uninitialized slot.
func constructAt[T any](info *typeInfo, slot *T, v T) {
	if info.hasClone {
		*slot = any(&v).(Cloner[T]).Clone()
		return
	}
	*slot = v
}

// fillRange copy-constructs v into every slot of dst. The plain-data path
// writes the element's full byte pattern once and doubles it across the
// range, so multi-byte values are replicated intact; both paths produce an
// identical element sequence.
func fillRange[T any](info *typeInfo, dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	if info.plain && info.size > 0 {
		dst[0] = v
		b := rawBytes(dst)
		for n := int(info.size); n < len(b); n *= 2 {
			copy(b[n:], b[:n])
		}
		return
	}
	for i := range dst {
		constructAt(info, &dst[i], v)
	}
}

// copyRange copy-constructs src into dst slot by slot, preserving order.
// dst and src must not overlap.
func copyRange[T any](info *typeInfo, dst, src []T) {
	if !info.hasClone {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = any(&src[i]).(Cloner[T]).Clone()
	}
}

// relocateRange moves elements between slot ranges. A bit copy is a complete
// move in Go, so ownership transfers wholesale: the source slots become
// moved-from and must not be destroyed. Overlapping ranges are handled.
// Pointer-bearing elements go through the typed copy so GC write barriers
// fire; plain-data ranges move as raw bytes.
func relocateRange[T any](info *typeInfo, dst, src []T) {
	if info.plain {
		copy(rawBytes(dst), rawBytes(src))
		return
	}
	copy(dst, src)
}

// destroyAt tears down a single live element and leaves the slot raw.
// No-op for plain-data types.
func destroyAt[T any](info *typeInfo, slot *T) {
	if info.plain {
		return
	}
	if info.hasDestroy {
		any(slot).(Destroyer).Destroy()
	}
	var zero T
	*slot = zero // drop references held by the dead slot
}

// destroyRange tears down every live element in s. No-op for plain-data
// types; otherwise runs Destroy hooks (when present) and zeroes the range.
func destroyRange[T any](info *typeInfo, s []T) {
	if info.plain {
		return
	}
	if info.hasDestroy {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

// shiftErase removes the first n elements of s: the removed elements are
// destroyed, the survivors relocate n slots left preserving their order, and
// the trailing n slots are left raw. Requires 0 <= n <= len(s); violations
// are caller bugs.
func shiftErase[T any](info *typeInfo, s []T, n int) {
	if n <= 0 {
		return
	}
	destroyRange(info, s[:n])
	relocateRange(info, s[:len(s)-n], s[n:])
	if !info.plain {
		clear(s[len(s)-n:]) // moved-from slots: drop stale references, no teardown
	}
}

// equalRange reports whether a and b hold pairwise-equal elements in order.
// Plain-data ranges compare as raw bytes; types with an Equal hook use it;
// remaining comparable types use ==, and anything else falls back to deep
// reflection.
func equalRange[T any](info *typeInfo, a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	switch {
	case info.hasEqual:
		for i := range a {
			if !any(&a[i]).(Equaler[T]).Equal(b[i]) {
				return false
			}
		}
	case info.plain:
		return bytes.Equal(rawBytes(a), rawBytes(b))
	case info.comparable:
		for i := range a {
			if any(a[i]) != any(b[i]) {
				return false
			}
		}
	default:
		for i := range a {
			if !reflect.DeepEqual(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}
