package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obj-bmp-renderer/internal/mathutil"
)

const quadOBJ = `# unit square
o square
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1

s off
f 1/1/1 2/1/1 3/1/1 4/1/1
f 1//1 2//1 3//1
`

func TestReadQuad(t *testing.T) {
	m, err := Read(strings.NewReader(quadOBJ), "quad.obj")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(m.Vertexes) != 4 {
		t.Fatalf("vertexes = %d, want 4", len(m.Vertexes))
	}
	if m.Vertexes[2] != (mathutil.Vec3{1, 1, 0}) {
		t.Errorf("vertex 2 = %v", m.Vertexes[2])
	}
	if len(m.Normals) != 1 || m.Normals[0] != (mathutil.Vec3{0, 0, 1}) {
		t.Errorf("normals = %v", m.Normals)
	}
	if len(m.TexCoords) != 1 {
		t.Errorf("texcoords = %d, want 1", len(m.TexCoords))
	}
	if len(m.Faces) != 2 {
		t.Fatalf("faces = %d, want 2", len(m.Faces))
	}

	quad := m.Faces[0]
	if len(quad.Verts) != 4 {
		t.Fatalf("quad corners = %d, want 4", len(quad.Verts))
	}
	for i, fv := range quad.Verts {
		if fv.Vertex != At(i) {
			t.Errorf("corner %d vertex = %+v, want %d", i, fv.Vertex, i)
		}
		if fv.Tex != At(0) || fv.Normal != At(0) {
			t.Errorf("corner %d tex/normal = %+v/%+v", i, fv.Tex, fv.Normal)
		}
	}

	tri := m.Faces[1]
	if tri.Verts[0].Tex.Valid {
		t.Error("empty texcoord component should be invalid")
	}
	if tri.Verts[0].Normal != At(0) {
		t.Errorf("normal = %+v, want 0", tri.Verts[0].Normal)
	}
}

func TestFaceIndexForms(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nf -3 -2 -1\nf x/y/z 2 3\n"
	m, err := Read(strings.NewReader(src), "forms.obj")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	tests := []struct {
		name string
		face int
		want []Index
	}{
		{"plain", 0, []Index{At(0), At(1), At(2)}},
		{"relative", 1, []Index{At(0), At(1), At(2)}},
		{"unparsable", 2, []Index{{}, At(1), At(2)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := m.Faces[tc.face]
			for i, want := range tc.want {
				if got := f.Verts[i].Vertex; got != want {
					t.Errorf("corner %d = %+v, want %+v", i, got, want)
				}
				if f.Verts[i].Normal.Valid {
					t.Errorf("corner %d has a normal", i)
				}
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad vertex", "v 1 nope 3\n", "bad.obj:1: vertex"},
		{"short vertex", "v 1 2\n", "want 3 components"},
		{"bad normal", "\n\nvn a b c\n", "bad.obj:3: normal"},
		{"empty face", "v 0 0 0\nf\n", "face without vertices"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.src), "bad.obj")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Faces) != 2 {
		t.Errorf("faces = %d, want 2", len(m.Faces))
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Parse of a missing file should fail")
	}
}
