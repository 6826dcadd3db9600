package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"obj-bmp-renderer/internal/mathutil"
)

// Parse reads an OBJ file and returns its mesh.
func Parse(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses OBJ records from r. name is only used in error messages.
//
// Supported records are v, vn, vt and f. Comments, blank lines and grouping
// or material records are skipped. Face indices are stored 0-based; an index
// component that does not parse as an integer is kept as an invalid Index
// instead of failing the whole file.
func Read(r io.Reader, name string) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		prefix, args := fields[0], fields[1:]

		switch prefix {
		case "v":
			v, err := parseVec(args, 3)
			if err != nil {
				return nil, fmt.Errorf("obj: %s:%d: vertex: %w", name, lineNo, err)
			}
			m.Vertexes = append(m.Vertexes, v)
		case "vn":
			v, err := parseVec(args, 3)
			if err != nil {
				return nil, fmt.Errorf("obj: %s:%d: normal: %w", name, lineNo, err)
			}
			m.Normals = append(m.Normals, v)
		case "vt":
			v, err := parseVec(args, 1)
			if err != nil {
				return nil, fmt.Errorf("obj: %s:%d: texcoord: %w", name, lineNo, err)
			}
			m.TexCoords = append(m.TexCoords, v)
		case "f":
			if len(args) == 0 {
				return nil, fmt.Errorf("obj: %s:%d: face without vertices", name, lineNo)
			}
			face := Face{Verts: make([]FaceVertex, len(args))}
			for i, a := range args {
				face.Verts[i] = m.parseFaceVertex(a)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", name, err)
	}

	return m, nil
}

// parseVec reads up to three floats; at least need must be present.
// Missing trailing components are zero.
func parseVec(args []string, need int) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(args) < need {
		return v, fmt.Errorf("want %d components, got %d", need, len(args))
	}
	for i := 0; i < len(args) && i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}

// parseFaceVertex splits "v/vt/vn" (any of which may be empty) and resolves
// each part against the list lengths seen so far.
func (m *Mesh) parseFaceVertex(s string) FaceVertex {
	parts := strings.Split(s, "/")
	var fv FaceVertex
	fv.Vertex = resolveIndex(parts[0], len(m.Vertexes))
	if len(parts) > 1 {
		fv.Tex = resolveIndex(parts[1], len(m.TexCoords))
	}
	if len(parts) > 2 {
		fv.Normal = resolveIndex(parts[2], len(m.Normals))
	}
	return fv
}

// resolveIndex converts a 1-based OBJ index to 0-based. Negative indices
// count back from the end of the list read so far (-1 is the last element).
func resolveIndex(s string, n int) Index {
	i, err := strconv.Atoi(s)
	if err != nil || i == 0 {
		return Index{}
	}
	if i < 0 {
		return At(n + i)
	}
	return At(i - 1)
}
