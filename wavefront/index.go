package wavefront

import (
	"strings"
)

// Collection names reported by IndexOutOfRange errors.
const (
	CollectionVertex  = "vertex"
	CollectionTexture = "texture"
	CollectionNormal  = "normal"
)

// The lengths of the vertex, texture and normal lists at the time an element
// is parsed.
type listCounts struct {
	vertices  int
	texCoords int
	normals   int
}

// Parse a face-vertex reference. The following forms are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Trailing empty slots ("1/" or "1//") are treated as absent. Indices start
// from 1 and may be negative to select an entry counting back from the end
// of the list.
func resolveFaceVertex(ln *line, token string, counts listCounts) (FaceVertex, error) {
	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return FaceVertex{}, newError(MalformedIndex, ln, token, "too many slashes")
	}
	if parts[0] == "" {
		return FaceVertex{}, newError(MalformedIndex, ln, token, "missing vertex index")
	}

	var (
		fv  FaceVertex
		err error
	)

	hasTexture := len(parts) > 1 && parts[1] != ""
	hasNormal := len(parts) > 2 && parts[2] != ""
	switch {
	case hasTexture && hasNormal:
		fv.Form = FormVTN
	case hasTexture:
		fv.Form = FormVT
	case hasNormal:
		fv.Form = FormVN
	default:
		fv.Form = FormV
	}

	if fv.Vertex, err = resolveIndex(ln, token, parts[0], counts.vertices, CollectionVertex); err != nil {
		return FaceVertex{}, err
	}

	fv.Texture, fv.Normal = -1, -1
	if hasTexture {
		if fv.Texture, err = resolveIndex(ln, token, parts[1], counts.texCoords, CollectionTexture); err != nil {
			return FaceVertex{}, err
		}
	}
	if hasNormal {
		if fv.Normal, err = resolveIndex(ln, token, parts[2], counts.normals, CollectionNormal); err != nil {
			return FaceVertex{}, err
		}
	}

	return fv, nil
}

// Given an index for a face coord type (vertex, normal, tex) calculate the
// proper offset into the coord list. Wavefront format can also use negative
// indices to reference elements from the end of the coord list.
func resolveIndex(ln *line, token, segment string, listLen int, collection string) (int, error) {
	if !isDecimalInt(segment) {
		return -1, newError(MalformedIndex, ln, token, "segment %q is not an integer", segment)
	}

	index, err := parseInt(ln, segment)
	if err != nil {
		return -1, newError(IndexOutOfRange, ln, token, "").withCollection(collection)
	}

	var offset int
	if index < 0 {
		offset = listLen + index
	} else {
		offset = index - 1
	}
	if index == 0 || offset < 0 || offset >= listLen {
		return -1, newError(IndexOutOfRange, ln, token, "%d entries defined so far", listLen).withCollection(collection)
	}
	return offset, nil
}
