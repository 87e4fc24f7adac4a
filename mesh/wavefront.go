package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ajcurley/meshr/geometry"
)

// ObjReader parses a Wavefront OBJ file (the "v"/"f"/"g" subset) into a
// PolygonSoup.
type ObjReader struct {
	path string
}

// NewObjReader constructs an ObjReader for the file at path.
func NewObjReader(path string) *ObjReader {
	return &ObjReader{path: path}
}

// Read parses the referenced file. Parse errors on individual lines
// (bad vertex or face data) are accumulated and returned together via
// multierr.Combine rather than aborting at the first one, since a
// malformed export is far more useful to debug with every bad line
// reported at once. Gzip-compressed input is detected by a ".gz" or
// ".gzip" path suffix.
func (r *ObjReader) Read() (*PolygonSoup, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", r.path)
	}
	defer f.Close()

	reader, err := openReader(f, r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.path)
	}
	if closer, ok := reader.(io.Closer); ok {
		defer closer.Close()
	}

	soup := NewPolygonSoup()
	var parseErrs []error

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		if len(fields) < 2 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = r.parseVertex(soup, fields[1])
		case "f":
			err = r.parseFace(soup, fields[1])
		case "g":
			r.parseGroup(soup, fields[1])
		}

		if err != nil {
			parseErrs = append(parseErrs, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.path)
	}
	if combined := multierr.Combine(parseErrs...); combined != nil {
		return nil, combined
	}

	return soup, nil
}

func (r *ObjReader) parseVertex(soup *PolygonSoup, data string) error {
	fields := strings.Fields(data)
	if len(fields) != 3 {
		return errors.Wrapf(ErrInvalidVertex, "%q", data)
	}

	v := geometry.ZeroVector3()
	for i, text := range fields {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidVertex, "%q", data)
		}
		v = v.Set(i, value)
	}

	soup.InsertVertex(v)
	return nil
}

func (r *ObjReader) parseFace(soup *PolygonSoup, data string) error {
	var vertices []int

	for _, text := range strings.Fields(data) {
		ref := strings.SplitN(text, "/", 2)[0]
		value, err := strconv.Atoi(ref)
		if err != nil || value <= 0 {
			return errors.Wrapf(ErrInvalidFace, "%q", data)
		}
		vertices = append(vertices, value-1)
	}

	if len(vertices) < 3 {
		return errors.Wrapf(ErrInvalidFace, "%q", data)
	}

	patch := -1
	if n := soup.NPatches(); n > 0 {
		patch = n - 1
	}

	soup.InsertFace(vertices, patch)
	return nil
}

func (r *ObjReader) parseGroup(soup *PolygonSoup, data string) {
	soup.InsertPatch(strings.TrimSpace(data))
}

func openReader(f *os.File, path string) (io.Reader, error) {
	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".gzip") {
		return pgzip.NewReader(f)
	}
	return f, nil
}

// ObjWriter writes a half-edge mesh to a Wavefront OBJ file.
type ObjWriter struct {
	path string
}

// NewObjWriter constructs an ObjWriter for the file at path.
func NewObjWriter(path string) *ObjWriter {
	return &ObjWriter{path: path}
}

// Write serializes m: vertex lines, then ungrouped face lines, then
// one "g name" header plus its face lines per patch. Gzip compression
// is applied transparently for ".gz"/".gzip" paths.
func (w *ObjWriter) Write(m *HeMesh) error {
	f, err := os.Create(w.path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", w.path)
	}
	defer f.Close()

	writer, closer, err := openWriter(f, w.path)
	if err != nil {
		return errors.Wrapf(err, "writing %s", w.path)
	}
	if closer != nil {
		defer closer.Close()
	}

	buf := bufio.NewWriter(writer)

	for i := 0; i < m.NVertices(); i++ {
		v := m.Vertex(i).Origin
		if _, err := fmt.Fprintf(buf, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return errors.Wrapf(err, "writing %s", w.path)
		}
	}

	byPatch := make(map[int][]int)
	var ungrouped []int

	for f := 0; f < m.NFaces(); f++ {
		patch := m.Face(f).Patch
		if patch < 0 {
			ungrouped = append(ungrouped, f)
		} else {
			byPatch[patch] = append(byPatch[patch], f)
		}
	}

	if err := writeFaceLines(buf, m, ungrouped); err != nil {
		return errors.Wrapf(err, "writing %s", w.path)
	}

	for p := 0; p < m.NPatches(); p++ {
		faces := byPatch[p]
		if len(faces) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(buf, "g %s\n", m.Patch(p).Name); err != nil {
			return errors.Wrapf(err, "writing %s", w.path)
		}
		if err := writeFaceLines(buf, m, faces); err != nil {
			return errors.Wrapf(err, "writing %s", w.path)
		}
	}

	return buf.Flush()
}

func writeFaceLines(buf *bufio.Writer, m *HeMesh, faces []int) error {
	for _, f := range faces {
		vertices := m.FaceVertices(f)
		parts := make([]string, len(vertices))
		for i, v := range vertices {
			parts[i] = strconv.Itoa(v + 1)
		}
		if _, err := fmt.Fprintf(buf, "f %s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func openWriter(f *os.File, path string) (io.Writer, io.Closer, error) {
	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".gzip") {
		gz := pgzip.NewWriter(f)
		return gz, gz, nil
	}
	return f, nil, nil
}
