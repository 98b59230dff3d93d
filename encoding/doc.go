// Package encoding converts caller arrays to the little-endian byte stream of
// the appended payload.
//
// Two layers live here:
//
//   - The byte-order codec: PutScalar and AppendScalar encode a single value,
//     WriteSequence and AppendSequence encode a whole view.
//   - The Accessor: a type-erased handle over a view.View[T] that the writer
//     keeps in its block list without knowing T.
//
// # Fast and slow paths
//
// When the view implements view.Contiguous and the host is little-endian the
// slice memory already is the on-disk representation, so WriteSequence hands
// it to the sink in one Write call without copying. Every other combination
// (strided or projected views, iterator-backed views, big-endian hosts)
// converts elements into a pooled 4 KiB staging buffer and flushes it as it
// fills, keeping the number of sink writes at one per 4 KiB.
//
// # Usage
//
//	acc := encoding.Of(points) // []float64
//	fmt.Println(acc.Type().Name(), acc.ByteLen())
//	_, err := acc.WriteTo(w)
//
// Nothing in this package copies or retains caller memory beyond the
// Accessor's own reference to the view.
package encoding
