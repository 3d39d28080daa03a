package wavefront

import (
	"sort"

	"github.com/achilleasa/wavefront/types"
)

// DefaultGroup is the name of the group that is active before any "g"
// directive is encountered.
const DefaultGroup = "default"

// IndexForm describes which optional slots a face-vertex reference carries.
type IndexForm uint8

// The supported face-vertex reference forms.
const (
	// v
	FormV IndexForm = iota
	// v/vt
	FormVT
	// v//vn
	FormVN
	// v/vt/vn
	FormVTN
)

func (f IndexForm) String() string {
	switch f {
	case FormVT:
		return "v/vt"
	case FormVN:
		return "v//vn"
	case FormVTN:
		return "v/vt/vn"
	}
	return "v"
}

// HasTexture returns true if this form includes a texture index.
func (f IndexForm) HasTexture() bool {
	return f == FormVT || f == FormVTN
}

// HasNormal returns true if this form includes a normal index.
func (f IndexForm) HasNormal() bool {
	return f == FormVN || f == FormVTN
}

// FaceVertex references one corner of a face or line element. All indices
// are resolved, zero-based offsets into the ObjData vertex, texture and
// normal lists. Texture and Normal are only meaningful if the Form says so.
type FaceVertex struct {
	Form    IndexForm
	Vertex  int
	Texture int
	Normal  int
}

// TextureIndex returns the texture coordinate offset and true if present.
func (fv FaceVertex) TextureIndex() (int, bool) {
	if !fv.Form.HasTexture() {
		return -1, false
	}
	return fv.Texture, true
}

// NormalIndex returns the normal offset and true if present.
func (fv FaceVertex) NormalIndex() (int, bool) {
	if !fv.Form.HasNormal() {
		return -1, false
	}
	return fv.Normal, true
}

// A polygonal face element with 3 or more corners.
type Face struct {
	Vertices []FaceVertex

	// The parse state when the face was defined.
	Object         string
	Material       string
	SmoothingGroup int
}

// A line element with 2 or more corners. Corners may only use the v and
// v/vt forms.
type Line struct {
	Vertices []FaceVertex
	Object   string
	Material string
}

// A point element; a list of vertex offsets.
type Point struct {
	Vertices []int
	Object   string
	Material string
}

// Group metadata.
type Group struct {
	Name string

	// The object, material and smoothing group that were active when an
	// element was last added to the group.
	Object         string
	Material       string
	SmoothingGroup int

	// Display and render attributes.
	Bevel          bool
	ColorInterp    bool
	DissolveInterp bool
	LOD            int
	TextureMap     string
	ShadowObject   string
	TraceObject    string
}

// ObjData contains the data parsed from obj content.
type ObjData struct {
	Vertices      []types.Vec4
	TexCoords     []types.Vec3
	Normals       []types.Vec3
	ParamVertices []types.Vec3

	// Group metadata by group name. The default group is always present.
	Groups map[string]*Group

	// Elements by group name. An element defined while more than one group
	// is active is recorded under all active groups.
	Faces  map[string][]Face
	Lines  map[string][]Line
	Points map[string][]Point

	// Object names in definition order.
	Objects []string

	// File names referenced by mtllib and maplib. They are never opened
	// by the parser.
	MaterialLibraries []string
	TextureLibraries  []string
}

func newObjData() *ObjData {
	return &ObjData{
		Vertices:      make([]types.Vec4, 0),
		TexCoords:     make([]types.Vec3, 0),
		Normals:       make([]types.Vec3, 0),
		ParamVertices: make([]types.Vec3, 0),
		Groups: map[string]*Group{
			DefaultGroup: {Name: DefaultGroup},
		},
		Faces:  make(map[string][]Face),
		Lines:  make(map[string][]Line),
		Points: make(map[string][]Point),
	}
}

// GroupNames returns the sorted list of defined group names.
func (d *ObjData) GroupNames() []string {
	names := make([]string, 0, len(d.Groups))
	for name := range d.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FaceCount returns the number of face records across all groups. A face
// that belongs to several groups is counted once per group.
func (d *ObjData) FaceCount() int {
	count := 0
	for _, faces := range d.Faces {
		count += len(faces)
	}
	return count
}

// BBox returns the axis-aligned bounding box of the projected vertices. An
// empty vertex list yields a zero bounding box.
func (d *ObjData) BBox() [2]types.Vec3 {
	if len(d.Vertices) == 0 {
		return [2]types.Vec3{}
	}

	min := d.Vertices[0].Project()
	max := min
	for _, v := range d.Vertices[1:] {
		p := v.Project()
		min = types.MinVec3(min, p)
		max = types.MaxVec3(max, p)
	}
	return [2]types.Vec3{min, max}
}
