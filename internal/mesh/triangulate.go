package mesh

import (
	"fmt"

	"obj-bmp-renderer/internal/mathutil"
	"obj-bmp-renderer/internal/obj"
)

// Triangle is a screen-space triangle ready for rasterization.
// Normals are carried along untransformed; HasNormals is false when any
// corner lacked a normal index.
type Triangle struct {
	Verts      [3]mathutil.Vec3
	Normals    [3]mathutil.Vec3
	HasNormals bool
}

// IndexError reports a face corner that cannot be resolved.
type IndexError struct {
	Face   int
	Corner int
	Kind   string // "vertex" or "normal"
	Index  obj.Index
	Len    int
}

func (e *IndexError) Error() string {
	if !e.Index.Valid {
		return fmt.Sprintf("mesh: face %d corner %d: missing %s index", e.Face, e.Corner, e.Kind)
	}
	return fmt.Sprintf("mesh: face %d corner %d: %s index %d out of range [0,%d)",
		e.Face, e.Corner, e.Kind, e.Index.Value, e.Len)
}

type corner struct {
	pos       mathutil.Vec3
	normal    mathutil.Vec3
	hasNormal bool
}

// Triangulate converts every face of m into screen-space triangles.
//
// A triangle face yields (A,B,C); a quad yields (A,B,C) and (A,C,D) sharing
// the A–C diagonal. Larger polygons are fanned around A the same way.
func Triangulate(m *obj.Mesh, xf Transform) ([]Triangle, error) {
	if m == nil {
		return nil, fmt.Errorf("mesh: nil mesh")
	}
	tris := make([]Triangle, 0, len(m.Faces))

	var corners []corner
	for fi, f := range m.Faces {
		n := len(f.Verts)
		if n < 3 {
			return nil, fmt.Errorf("mesh: face %d has %d vertices, need at least 3", fi, n)
		}

		corners = corners[:0]
		for ci, fv := range f.Verts {
			c, err := resolve(m, xf, fi, ci, fv)
			if err != nil {
				return nil, err
			}
			corners = append(corners, c)
		}

		a := corners[0]
		for i := 1; i+1 < n; i++ {
			tris = append(tris, makeTriangle(a, corners[i], corners[i+1]))
		}
	}

	return tris, nil
}

func resolve(m *obj.Mesh, xf Transform, fi, ci int, fv obj.FaceVertex) (corner, error) {
	vi := fv.Vertex
	if !vi.Valid || vi.Value < 0 || vi.Value >= len(m.Vertexes) {
		return corner{}, &IndexError{Face: fi, Corner: ci, Kind: "vertex", Index: vi, Len: len(m.Vertexes)}
	}
	c := corner{pos: xf.Apply(m.Vertexes[vi.Value])}

	ni := fv.Normal
	if ni.Valid {
		if ni.Value < 0 || ni.Value >= len(m.Normals) {
			return corner{}, &IndexError{Face: fi, Corner: ci, Kind: "normal", Index: ni, Len: len(m.Normals)}
		}
		c.normal = m.Normals[ni.Value]
		c.hasNormal = true
	}
	return c, nil
}

func makeTriangle(a, b, c corner) Triangle {
	return Triangle{
		Verts:      [3]mathutil.Vec3{a.pos, b.pos, c.pos},
		Normals:    [3]mathutil.Vec3{a.normal, b.normal, c.normal},
		HasNormals: a.hasNormal && b.hasNormal && c.hasNormal,
	}
}
