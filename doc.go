// Package vec implements a growable contiguous-array container (Vector) for Go,
// together with the raw-memory primitives it is built on.
//
// # Overview
//
// A Vector owns exactly one contiguous block of element slots and tracks how
// many of them hold live elements. It grows by reallocating the block and
// relocating the live prefix, which makes it useful for:
//
//   - Dense, cache-friendly sequences with index addressing
//   - Workloads that append heavily and want amortized O(1) growth
//   - Element types that own resources and need deterministic teardown
//   - Avoiding the per-element boxing that []any-style containers pay
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // destroy elements, free the block
//
//	for i := 0; i < 100; i++ {
//		v.Append(i)
//	}
//
//	sum := 0
//	for _, x := range v.Data() {
//		sum += x
//	}
//
//	p, err := v.At(3) // checked access
//	_ = p
//	_ = err
//
// # Element Lifecycle
//
// Element types may opt into lifecycle hooks:
//
//   - Cloner[T]: Clone() T is called whenever the container copy-constructs an
//     element (NewFill, InsertN, Clone, CopyFrom).
//   - Destroyer: Destroy() is called when an element is removed or the
//     container is cleared or released.
//   - Equaler[T]: Equal(T) bool is consulted by Equal.
//
// Types with no hooks, no pointer fields and no padding are classified as
// plain-data and take single-memmove fast paths for fill, copy and comparison.
// Relocation during growth is always a raw move: elements are never cloned and
// never destroyed while being carried to a new block.
//
// # Thread Safety
//
// Vector is not safe for concurrent mutation. Callers that share a vector
// across goroutines must serialize access externally.
//
// # Reference Validity
//
// Pointers and slices obtained from Ref, Front, Back or Data stay valid only
// until the next capacity-changing operation (Append past capacity, Reserve,
// Resize, a reallocating Insert) or any removal that shifts elements.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized, capacity doubles on growth
//   - Insert/Erase: O(n) in the number of shifted elements
//   - Swap: O(1), no element traffic
//   - Release/Clear: O(n) for types with Destroy hooks, O(1) otherwise
//
// # Important Notes
//
//   - Out-of-memory is fatal; allocation failure is never surfaced as an error
//   - Get, Set and Ref are unchecked; At is the checked alternative
//   - Front, Back and RemoveLast panic on an empty vector
//   - Slots beyond Len() are raw storage: never read, never destroyed
//
// # Metrics and Monitoring
//
// The vector tracks its growth behavior for inspection:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Grows)
//	fmt.Printf("Relocated elements: %d\n", m.Relocated)
package vec
