package mesh

import "github.com/pkg/errors"

// ErrNonManifold is returned when constructing a half-edge mesh (or
// zipping its boundary edges) would leave an undirected edge shared by
// more than two half-edges.
var ErrNonManifold = errors.New("non-manifold mesh")

// ErrInvalidVertex is returned for an OBJ "v" line that does not parse
// as exactly three floats.
var ErrInvalidVertex = errors.New("invalid vertex")

// ErrInvalidFace is returned for an OBJ "f" line with fewer than three
// vertex references, or a reference that does not parse as a positive
// integer.
var ErrInvalidFace = errors.New("invalid face")

// ErrMeshNotClosed is returned by vertex-traversal methods that require
// every incident half-edge to have a twin.
var ErrMeshNotClosed = errors.New("mesh is not closed")

// ErrMeshNotOriented is returned by vertex-traversal methods that
// require adjacent faces around a vertex to wind consistently.
var ErrMeshNotOriented = errors.New("mesh is not consistently oriented")
