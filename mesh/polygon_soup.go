package mesh

import "github.com/ajcurley/meshr/geometry"

// PolygonSoup is an unindexed collection of faces over a shared vertex
// pool, the intermediate form between a file format (OBJ) and a
// half-edge mesh. Faces are stored CSR-style -- a single flat
// face-vertex slice sliced per face by face-offsets -- rather than a
// slice of slices, to avoid one small allocation per face while
// parsing large meshes.
type PolygonSoup struct {
	vertices     []geometry.Vector3
	faceOffsets  []int
	faceVertices []int
	facePatches  []int // -1 when the face has no patch
	patches      []string
}

// NewPolygonSoup constructs an empty PolygonSoup.
func NewPolygonSoup() *PolygonSoup {
	return &PolygonSoup{}
}

// NVertices returns the number of vertices.
func (s *PolygonSoup) NVertices() int {
	return len(s.vertices)
}

// Vertex returns the vertex at index.
func (s *PolygonSoup) Vertex(index int) geometry.Vector3 {
	return s.vertices[index]
}

// InsertVertex appends a vertex and returns its index.
func (s *PolygonSoup) InsertVertex(position geometry.Vector3) int {
	s.vertices = append(s.vertices, position)
	return len(s.vertices) - 1
}

// NFaces returns the number of faces.
func (s *PolygonSoup) NFaces() int {
	return len(s.faceOffsets)
}

// Face returns the vertex indices bounding the face at index and its
// patch index, or -1 if the face has no patch.
func (s *PolygonSoup) Face(index int) ([]int, int) {
	patch := s.facePatches[index]
	start := s.faceOffsets[index]

	if index < s.NFaces()-1 {
		end := s.faceOffsets[index+1]
		return s.faceVertices[start:end], patch
	}

	return s.faceVertices[start:], patch
}

// InsertFace appends a face bounded by vertices, with an optional
// patch index (-1 for none), and returns the face's index.
func (s *PolygonSoup) InsertFace(vertices []int, patch int) int {
	offset := len(s.faceVertices)
	s.faceOffsets = append(s.faceOffsets, offset)
	s.faceVertices = append(s.faceVertices, vertices...)
	s.facePatches = append(s.facePatches, patch)
	return len(s.faceOffsets) - 1
}

// NPatches returns the number of patches.
func (s *PolygonSoup) NPatches() int {
	return len(s.patches)
}

// Patch returns the patch name at index.
func (s *PolygonSoup) Patch(index int) string {
	return s.patches[index]
}

// InsertPatch appends a patch and returns its index.
func (s *PolygonSoup) InsertPatch(name string) int {
	s.patches = append(s.patches, name)
	return len(s.patches) - 1
}
