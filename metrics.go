package vec

// BytesLive returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesLive() int {
	return v.len * int(v.typeinfo().size)
}

// BytesReserved returns the number of bytes backing all allocated slots,
// live or raw.
func (v *Vector[T]) BytesReserved() int {
	return v.buf.cap * int(v.typeinfo().size)
}

// Utilization returns the ratio of live slots to allocated slots (0.0 to 1.0).
// Returns 0.0 when no block is allocated.
func (v *Vector[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.len,
		Cap:           v.buf.cap,
		BytesLive:     v.BytesLive(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
		Grows:         v.grows,
		Relocated:     v.relocated,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated element slots
	BytesLive     int     // Bytes occupied by live elements
	BytesReserved int     // Bytes backing all allocated slots
	Utilization   float64 // Ratio of live to allocated slots (0.0-1.0)
	Grows         int     // Reallocations performed over the vector's lifetime
	Relocated     int     // Elements carried to a new block during growth
}
