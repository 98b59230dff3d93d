// Package vtu writes unstructured meshes as VTK XML UnstructuredGrid files in
// the appended raw binary layout.
//
// A Writer collects references to caller-owned arrays (points, cell topology,
// and named point or cell attributes) and emits a single file:
//
//	<VTKFile type="UnstructuredGrid" ... header_type="UInt64">
//	  <UnstructuredGrid>
//	    <Piece NumberOfPoints=".." NumberOfCells="..">
//	      <Points>   DataArray ... offset="0"
//	      <Cells>    connectivity, offsets, types
//	      <PointData>, <CellData>
//	    </Piece>
//	  </UnstructuredGrid>
//	  <AppendedData encoding="raw">_<block><block>...</AppendedData>
//	</VTKFile>
//
// Every DataArray's offset attribute is the position of its block relative
// to the byte after the '_' marker. Blocks appear in a fixed order: points,
// connectivity, offsets, types, point data in registration order, then cell
// data in registration order.
//
// Registered arrays are not copied. They must stay valid and unmodified until
// the Write or WriteTo call that emits them returns. When compression is
// enabled each array is materialized once, compressed, and written from the
// compressed copy.
//
// Example:
//
//	w, _ := vtu.NewWriter(vtu.WithCompression(format.CompressionZLib))
//	_ = w.SetPoints(encoding.Of(points))
//	_ = w.SetCells(encoding.Of(conn), encoding.Of(offsets), encoding.Of(types))
//	_ = w.AddPointData("Pressure", encoding.Of(pressure), 1)
//	report, err := w.Write("mesh.vtu")
//
// A Writer is not safe for concurrent use. Independent writers may run in
// parallel.
package vtu
