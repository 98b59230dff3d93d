package main

import (
	"math"

	"github.com/arloliu/vtkio/encoding"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/vtu"
)

// mesh owns the arrays of one generated grid until it is written.
type mesh struct {
	points       []float64
	connectivity []int32
	offsets      []int32
	types        []format.CellType
	pointData    map[string][]float64
	pointOrder   []string
	cellData     map[string][]int32
	cellOrder    []string
}

func newMesh(numPoints int) *mesh {
	return &mesh{
		points:    make([]float64, 0, 3*numPoints),
		pointData: make(map[string][]float64),
		cellData:  make(map[string][]int32),
	}
}

func (m *mesh) addPoint(x, y, z float64) {
	m.points = append(m.points, x, y, z)
}

func (m *mesh) addCell(ct format.CellType, ids ...int32) {
	m.connectivity = append(m.connectivity, ids...)
	m.offsets = append(m.offsets, int32(len(m.connectivity)))
	m.types = append(m.types, ct)
}

func (m *mesh) addPointScalar(name string, v float64) {
	if _, ok := m.pointData[name]; !ok {
		m.pointOrder = append(m.pointOrder, name)
	}
	m.pointData[name] = append(m.pointData[name], v)
}

func (m *mesh) addCellScalar(name string, v int32) {
	if _, ok := m.cellData[name]; !ok {
		m.cellOrder = append(m.cellOrder, name)
	}
	m.cellData[name] = append(m.cellData[name], v)
}

// register hands every array to w without copying.
func (m *mesh) register(w *vtu.Writer) error {
	if err := w.SetPoints(encoding.Of(m.points)); err != nil {
		return err
	}
	if err := w.SetCells(encoding.Of(m.connectivity), encoding.Of(m.offsets), encoding.Of(m.types)); err != nil {
		return err
	}
	for _, name := range m.pointOrder {
		if err := w.AddPointData(name, encoding.Of(m.pointData[name]), 1); err != nil {
			return err
		}
	}
	for _, name := range m.cellOrder {
		if err := w.AddCellData(name, encoding.Of(m.cellData[name]), 1); err != nil {
			return err
		}
	}

	return nil
}

// waveMesh is a line of numPoints points displaced by a travelling sine wave
// at time t, split into Line cells.
func waveMesh(numPoints int, t float64) *mesh {
	m := newMesh(numPoints)
	for i := range numPoints {
		x := float64(i)
		z := math.Sin(x*0.5 + t*5.0)
		m.addPoint(x, 0, z)
		m.addPointScalar("Elevation", z)
	}
	for i := range numPoints - 1 {
		m.addCell(format.CellLine, int32(i), int32(i+1))
		m.addCellScalar("Segment", int32(i))
	}

	return m
}

// spiralMesh is a conical spiral of numPoints points joined by one PolyLine.
func spiralMesh(numPoints int) *mesh {
	m := newMesh(numPoints)
	ids := make([]int32, numPoints)
	for i := range numPoints {
		t := float64(i) * 0.1
		m.addPoint(t*math.Cos(t), t*math.Sin(t), t)
		m.addPointScalar("SineWave", math.Sin(t))
		ids[i] = int32(i)
	}
	if numPoints > 0 {
		m.addCell(format.CellPolyLine, ids...)
		m.addCellScalar("Turns", int32(float64(numPoints)*0.1/(2*math.Pi)))
	}

	return m
}
