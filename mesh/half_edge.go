package mesh

import (
	"math"
	"sort"

	"github.com/edaniels/golog"
	"gonum.org/v1/gonum/mat"

	"github.com/ajcurley/meshr/geometry"
)

// HeVertex is a mesh vertex: its position and one outgoing half-edge.
type HeVertex struct {
	Origin   geometry.Vector3
	HalfEdge int
}

// HeFace is a mesh face: one bounding half-edge and an optional patch.
type HeFace struct {
	HalfEdge int
	Patch    int // -1 when the face has no patch
}

// HeHalfEdge is one directed edge bounding a face.
type HeHalfEdge struct {
	Origin int
	Face   int
	Prev   int
	Next   int
	Twin   int // -1 when the half-edge is a boundary edge
}

// IsBoundary reports whether the half-edge has no twin.
func (h HeHalfEdge) IsBoundary() bool {
	return h.Twin < 0
}

// HePatch names a group of faces.
type HePatch struct {
	Name string
}

// HeMesh is an index-based half-edge mesh: four parallel slices
// (vertices, faces, half-edges, patches) linked by int handles rather
// than pointers, so the whole structure can be copied, serialized, or
// indexed by an external octree without chasing references.
type HeMesh struct {
	vertices  []HeVertex
	faces     []HeFace
	halfEdges []HeHalfEdge
	patches   []HePatch
}

// New constructs a half-edge mesh from a polygon soup, in a single
// deterministic pass. Half-edges are twinned by the undirected vertex
// pair they bound; if a pair is shared by more than two half-edges the
// mesh is non-manifold and construction fails.
func New(soup *PolygonSoup, logger golog.Logger) (*HeMesh, error) {
	m := &HeMesh{}
	edges := make(map[[2]int][]int)

	for i := 0; i < soup.NPatches(); i++ {
		m.patches = append(m.patches, HePatch{Name: soup.Patch(i)})
	}

	for i := 0; i < soup.NVertices(); i++ {
		m.vertices = append(m.vertices, HeVertex{Origin: soup.Vertex(i)})
	}

	for f := 0; f < soup.NFaces(); f++ {
		vertices, patch := soup.Face(f)
		nv := len(vertices)
		nh := len(m.halfEdges)

		m.faces = append(m.faces, HeFace{HalfEdge: nh, Patch: patch})

		for k, v := range vertices {
			prev := nh + (k+nv-1)%nv
			next := nh + (k+1)%nv

			m.halfEdges = append(m.halfEdges, HeHalfEdge{
				Origin: v,
				Face:   f,
				Prev:   prev,
				Next:   next,
				Twin:   -1,
			})
			m.vertices[v].HalfEdge = nh + k

			kn := vertices[(k+1)%nv]
			key := undirectedKey(v, kn)

			shared := edges[key]
			if len(shared) >= 2 {
				if logger != nil {
					logger.Debugw("non-manifold edge", "v0", key[0], "v1", key[1])
				}
				return nil, ErrNonManifold
			}
			edges[key] = append(shared, nh+k)
		}
	}

	for _, shared := range edges {
		if len(shared) == 2 {
			m.halfEdges[shared[0]].Twin = shared[1]
			m.halfEdges[shared[1]].Twin = shared[0]
		}
	}

	return m, nil
}

func undirectedKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// ImportObj reads the OBJ file at path and constructs a half-edge mesh
// from it.
func ImportObj(path string, logger golog.Logger) (*HeMesh, error) {
	soup, err := NewObjReader(path).Read()
	if err != nil {
		return nil, err
	}
	return New(soup, logger)
}

// ExportObj writes m to the OBJ file at path.
func (m *HeMesh) ExportObj(path string) error {
	return NewObjWriter(path).Write(m)
}

// NVertices returns the number of vertices.
func (m *HeMesh) NVertices() int {
	return len(m.vertices)
}

// Vertex returns the vertex at index.
func (m *HeMesh) Vertex(index int) HeVertex {
	return m.vertices[index]
}

// NFaces returns the number of faces.
func (m *HeMesh) NFaces() int {
	return len(m.faces)
}

// Face returns the face at index.
func (m *HeMesh) Face(index int) HeFace {
	return m.faces[index]
}

// NHalfEdges returns the number of half-edges.
func (m *HeMesh) NHalfEdges() int {
	return len(m.halfEdges)
}

// HalfEdge returns the half-edge at index.
func (m *HeMesh) HalfEdge(index int) HeHalfEdge {
	return m.halfEdges[index]
}

// NPatches returns the number of patches.
func (m *HeMesh) NPatches() int {
	return len(m.patches)
}

// Patch returns the patch at index.
func (m *HeMesh) Patch(index int) HePatch {
	return m.patches[index]
}

// IsClosed reports whether every half-edge has a twin.
func (m *HeMesh) IsClosed() bool {
	for _, h := range m.halfEdges {
		if h.IsBoundary() {
			return false
		}
	}
	return true
}

// IsConsistent reports whether every twin pair winds in opposite
// directions (shares no common origin).
func (m *HeMesh) IsConsistent() bool {
	for _, h := range m.halfEdges {
		if h.IsBoundary() {
			continue
		}
		if m.halfEdges[h.Twin].Origin == h.Origin {
			return false
		}
	}
	return true
}

// IsTriangles reports whether every face is bounded by exactly three
// half-edges.
func (m *HeMesh) IsTriangles() bool {
	for f := range m.faces {
		if len(m.FaceHalfEdges(f)) != 3 {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of every vertex origin.
func (m *HeMesh) Bounds() geometry.Aabb {
	min := geometry.OnesVector3().Scale(math.Inf(1))
	max := geometry.OnesVector3().Scale(math.Inf(-1))

	for _, v := range m.vertices {
		for i := 0; i < 3; i++ {
			if v.Origin.At(i) < min.At(i) {
				min = min.Set(i, v.Origin.At(i))
			}
			if v.Origin.At(i) > max.At(i) {
				max = max.Set(i, v.Origin.At(i))
			}
		}
	}

	return geometry.AabbFromBounds(min, max)
}

// FaceHalfEdges returns the handles of the half-edges bounding face f,
// in winding order.
func (m *HeMesh) FaceHalfEdges(f int) []int {
	start := m.faces[f].HalfEdge
	handles := []int{start}

	for next := m.halfEdges[start].Next; next != start; next = m.halfEdges[next].Next {
		handles = append(handles, next)
	}

	return handles
}

// FaceVertices returns the vertex handles bounding face f, in winding
// order.
func (m *HeMesh) FaceVertices(f int) []int {
	halfEdges := m.FaceHalfEdges(f)
	vertices := make([]int, len(halfEdges))

	for i, h := range halfEdges {
		vertices[i] = m.halfEdges[h].Origin
	}

	return vertices
}

// FaceNeighbors returns the handles of the faces sharing a bounding
// edge with face f, skipping boundary half-edges.
func (m *HeMesh) FaceNeighbors(f int) []int {
	var neighbors []int

	for _, h := range m.FaceHalfEdges(f) {
		edge := m.halfEdges[h]
		if !edge.IsBoundary() {
			neighbors = append(neighbors, m.halfEdges[edge.Twin].Face)
		}
	}

	return neighbors
}

// VertexOutgoing returns the handles of the half-edges originating at
// vertex v, walking the twin/next ring around it. This requires the
// mesh to be closed and consistently oriented; use Orient first if it
// is not.
func (m *HeMesh) VertexOutgoing(v int) ([]int, error) {
	start := m.vertices[v].HalfEdge
	handles := []int{start}

	current := start
	for {
		twin := m.halfEdges[current].Twin
		if twin < 0 {
			return nil, ErrMeshNotClosed
		}

		next := m.halfEdges[twin].Next
		if m.halfEdges[next].Origin != v {
			return nil, ErrMeshNotOriented
		}
		if next == start {
			break
		}

		handles = append(handles, next)
		current = next
	}

	return handles, nil
}

// VertexIncoming returns the handles of the half-edges terminating at
// vertex v (the prev of each of VertexOutgoing's half-edges).
func (m *HeMesh) VertexIncoming(v int) ([]int, error) {
	outgoing, err := m.VertexOutgoing(v)
	if err != nil {
		return nil, err
	}

	incoming := make([]int, len(outgoing))
	for i, h := range outgoing {
		incoming[i] = m.halfEdges[h].Prev
	}

	return incoming, nil
}

// VertexNeighbors returns the handles of the vertices adjacent to
// vertex v.
func (m *HeMesh) VertexNeighbors(v int) ([]int, error) {
	outgoing, err := m.VertexOutgoing(v)
	if err != nil {
		return nil, err
	}

	neighbors := make([]int, len(outgoing))
	for i, h := range outgoing {
		neighbors[i] = m.halfEdges[m.halfEdges[h].Next].Origin
	}

	return neighbors, nil
}

// VertexFaces returns the handles of the faces incident to vertex v.
func (m *HeMesh) VertexFaces(v int) ([]int, error) {
	outgoing, err := m.VertexOutgoing(v)
	if err != nil {
		return nil, err
	}

	faces := make([]int, len(outgoing))
	for i, h := range outgoing {
		faces[i] = m.halfEdges[h].Face
	}

	return faces, nil
}

// FaceNormal returns the face's normal via Newell's method, which
// handles arbitrary (possibly non-planar) polygons and reduces to the
// two-edge cross product for triangles.
func (m *HeMesh) FaceNormal(f int) geometry.Vector3 {
	vertices := m.FaceVertices(f)
	n := geometry.ZeroVector3()

	for i, vi := range vertices {
		vj := vertices[(i+1)%len(vertices)]
		a := m.vertices[vi].Origin
		b := m.vertices[vj].Origin

		n = geometry.NewVector3(
			n.X+(a.Y-b.Y)*(a.Z+b.Z),
			n.Y+(a.Z-b.Z)*(a.X+b.X),
			n.Z+(a.X-b.X)*(a.Y+b.Y),
		)
	}

	return n
}

// FeatureEdges returns the undirected vertex-pair handles of every
// interior edge whose two incident face normals differ by more than
// thresholdRadians.
func (m *HeMesh) FeatureEdges(thresholdRadians float64) [][2]int {
	var edges [][2]int
	seen := make(map[int]bool)

	for h, edge := range m.halfEdges {
		if edge.IsBoundary() || seen[h] {
			continue
		}
		seen[h] = true
		seen[edge.Twin] = true

		n0 := m.FaceNormal(edge.Face)
		n1 := m.FaceNormal(m.halfEdges[edge.Twin].Face)

		if geometry.AngleVector3(n0, n1) > thresholdRadians {
			other := m.halfEdges[edge.Next].Origin
			edges = append(edges, [2]int{edge.Origin, other})
		}
	}

	return edges
}

// Components returns the connected components of faces, grouped by
// face adjacency across non-boundary half-edges.
func (m *HeMesh) Components() [][]int {
	visited := make([]bool, len(m.faces))
	var components [][]int

	for start := range m.faces {
		if visited[start] {
			continue
		}

		var component []int
		queue := []int{start}
		visited[start] = true

		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			component = append(component, f)

			for _, n := range m.FaceNeighbors(f) {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		sort.Ints(component)
		components = append(components, component)
	}

	return components
}

// SharedVertices returns the sorted vertex handles shared by the
// vertex rings of faces i and j.
func (m *HeMesh) SharedVertices(i, j int) []int {
	in := make(map[int]bool)
	for _, v := range m.FaceVertices(i) {
		in[v] = true
	}

	var shared []int
	for _, v := range m.FaceVertices(j) {
		if in[v] {
			shared = append(shared, v)
		}
	}

	sort.Ints(shared)
	return shared
}

// Orient walks each connected component by breadth-first search over
// face adjacency, flipping any face whose shared boundary half-edge
// runs the same direction as its neighbor's (the inconsistent case),
// so that every pair of adjacent faces winds oppositely along their
// shared edge.
func (m *HeMesh) Orient() {
	visited := make([]bool, len(m.faces))

	for start := range m.faces {
		if visited[start] {
			continue
		}

		queue := []int{start}
		visited[start] = true

		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]

			for _, h := range m.FaceHalfEdges(f) {
				edge := m.halfEdges[h]
				if edge.IsBoundary() {
					continue
				}

				twin := edge.Twin
				neighbor := m.halfEdges[twin].Face

				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true

				if m.halfEdges[twin].Origin == edge.Origin {
					m.flipFace(neighbor)
				}

				queue = append(queue, neighbor)
			}
		}
	}
}

// flipFace reverses the winding order of a face's bounding half-edges
// in place: swaps prev/next, and reassigns each half-edge's origin to
// its successor's former origin.
func (m *HeMesh) flipFace(f int) {
	handles := m.FaceHalfEdges(f)
	n := len(handles)

	origins := make([]int, n)
	for i, h := range handles {
		origins[i] = m.halfEdges[h].Origin
	}

	for i, h := range handles {
		m.halfEdges[h].Origin = origins[(i+1)%n]
		m.halfEdges[h].Prev, m.halfEdges[h].Next = m.halfEdges[h].Next, m.halfEdges[h].Prev
	}

	for i, v := range origins {
		m.vertices[v].HalfEdge = handles[(i+n-1)%n]
	}
}

// ZipEdges pairs up remaining boundary half-edges that run opposite
// directions across the same undirected vertex pair and twins them.
// Half-edges left without a match remain boundary. This may produce a
// non-manifold mesh if more than two boundary half-edges share a pair;
// that case returns ErrNonManifold without mutating the mesh.
func (m *HeMesh) ZipEdges() error {
	boundary := make(map[[2]int][]int)

	for h, edge := range m.halfEdges {
		if !edge.IsBoundary() {
			continue
		}
		next := m.halfEdges[edge.Next].Origin
		key := undirectedKey(edge.Origin, next)
		boundary[key] = append(boundary[key], h)

		if len(boundary[key]) > 2 {
			return ErrNonManifold
		}
	}

	for _, pair := range boundary {
		if len(pair) == 2 && m.halfEdges[pair[0]].Origin != m.halfEdges[pair[1]].Origin {
			m.halfEdges[pair[0]].Twin = pair[1]
			m.halfEdges[pair[1]].Twin = pair[0]
		}
	}

	return nil
}

// PrincipalAxes returns the eigenvectors of the covariance matrix of
// vertex origins about their centroid, ordered by descending
// eigenvalue -- the dominant orthogonal coordinate frame local to the
// mesh.
func (m *HeMesh) PrincipalAxes() [3]geometry.Vector3 {
	centroid := geometry.ZeroVector3()
	for _, v := range m.vertices {
		centroid = centroid.Add(v.Origin)
	}
	centroid = centroid.Scale(1 / float64(len(m.vertices)))

	var cov mat.SymDense
	cov.SymOuterK(1, mat.NewDense(len(m.vertices), 3, flattenCentered(m.vertices, centroid)).T())
	n := float64(len(m.vertices))

	scaled := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			scaled.SetSym(i, j, cov.At(i, j)/n)
		}
	}

	var eig mat.EigenSym
	eig.Factorize(scaled, true)

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	order := []int{0, 1, 2}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	var axes [3]geometry.Vector3
	for i, o := range order {
		axes[i] = geometry.NewVector3(vectors.At(0, o), vectors.At(1, o), vectors.At(2, o))
	}

	return axes
}

func flattenCentered(vertices []HeVertex, centroid geometry.Vector3) []float64 {
	flat := make([]float64, 0, len(vertices)*3)
	for _, v := range vertices {
		d := v.Origin.Sub(centroid)
		flat = append(flat, d.X, d.Y, d.Z)
	}
	return flat
}

// Merge appends other's vertices, faces, and half-edges into m,
// offsetting all handles, with no attempt at deduplication. Patches
// are merged by name: any of other's patches whose name already
// exists in m is remapped onto the existing patch rather than
// duplicated.
func (m *HeMesh) Merge(other *HeMesh) {
	nv := len(m.vertices)
	nh := len(m.halfEdges)

	for _, v := range other.vertices {
		m.vertices = append(m.vertices, HeVertex{
			Origin:   v.Origin,
			HalfEdge: v.HalfEdge + nh,
		})
	}

	byName := make(map[string]int, len(m.patches))
	for i, p := range m.patches {
		byName[p.Name] = i
	}

	patchMap := make([]int, len(other.patches))
	for i, p := range other.patches {
		if existing, ok := byName[p.Name]; ok {
			patchMap[i] = existing
			continue
		}
		patchMap[i] = len(m.patches)
		byName[p.Name] = patchMap[i]
		m.patches = append(m.patches, p)
	}

	for _, f := range other.faces {
		patch := f.Patch
		if patch >= 0 {
			patch = patchMap[patch]
		}
		m.faces = append(m.faces, HeFace{
			HalfEdge: f.HalfEdge + nh,
			Patch:    patch,
		})
	}

	for _, h := range other.halfEdges {
		twin := h.Twin
		if twin >= 0 {
			twin += nh
		}
		m.halfEdges = append(m.halfEdges, HeHalfEdge{
			Origin: h.Origin + nv,
			Face:   h.Face + len(m.faces) - len(other.faces),
			Prev:   h.Prev + nh,
			Next:   h.Next + nh,
			Twin:   twin,
		})
	}
}

// ExtractFaces builds a new mesh from the subset of faces, keeping
// only the vertices and patches they reference and re-twinning
// half-edges that still share an undirected vertex pair within the
// subset (boundary elsewhere).
func (m *HeMesh) ExtractFaces(faces []int) *HeMesh {
	soup := NewPolygonSoup()
	vertexIndex := make(map[int]int)
	patchIndex := make(map[int]int)

	for _, f := range faces {
		for _, v := range m.FaceVertices(f) {
			if _, ok := vertexIndex[v]; !ok {
				vertexIndex[v] = soup.InsertVertex(m.vertices[v].Origin)
			}
		}
	}

	for _, f := range faces {
		vertices := m.FaceVertices(f)
		mapped := make([]int, len(vertices))
		for i, v := range vertices {
			mapped[i] = vertexIndex[v]
		}

		patch := m.faces[f].Patch
		if patch < 0 {
			soup.InsertFace(mapped, -1)
			continue
		}

		mappedPatch, ok := patchIndex[patch]
		if !ok {
			mappedPatch = soup.InsertPatch(m.patches[patch].Name)
			patchIndex[patch] = mappedPatch
		}
		soup.InsertFace(mapped, mappedPatch)
	}

	extracted, _ := New(soup, nil)
	return extracted
}

// ExtractPatches builds a new mesh from every face belonging to one of
// the given patch indices.
func (m *HeMesh) ExtractPatches(patches []int) *HeMesh {
	index := make(map[int]bool)
	for _, p := range patches {
		index[p] = true
	}

	var faces []int
	for f := range m.faces {
		if p := m.faces[f].Patch; p >= 0 && index[p] {
			faces = append(faces, f)
		}
	}

	return m.ExtractFaces(faces)
}

// ExtractPatchNames builds a new mesh from every face belonging to a
// patch with one of the given names.
func (m *HeMesh) ExtractPatchNames(names []string) *HeMesh {
	index := make(map[string]bool)
	for _, name := range names {
		index[name] = true
	}

	var patches []int
	for i, p := range m.patches {
		if index[p.Name] {
			patches = append(patches, i)
		}
	}

	return m.ExtractPatches(patches)
}
