package obj

import "obj-bmp-renderer/internal/mathutil"

// Index is an optional 0-based index into one of the mesh lists.
// Valid is false when the source component was empty or not an integer.
type Index struct {
	Value int
	Valid bool
}

// At returns a valid index.
func At(i int) Index { return Index{Value: i, Valid: true} }

// FaceVertex is one corner of a face: position, texcoord and normal indices.
type FaceVertex struct {
	Vertex Index
	Tex    Index
	Normal Index
}

// Face is a polygon, usually a triangle or a quad.
type Face struct {
	Verts []FaceVertex
}

// Mesh holds the lists read from one OBJ file.
type Mesh struct {
	Vertexes  []mathutil.Vec3
	TexCoords []mathutil.Vec3
	Normals   []mathutil.Vec3
	Faces     []Face
}
