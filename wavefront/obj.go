package wavefront

import (
	"io"
	"strings"

	"github.com/achilleasa/wavefront/types"
)

// Options controls how obj content is parsed.
type Options struct {
	// Fail with an UnsupportedDirective error when a free-form geometry
	// statement (cstype, curv, surf, ...) or one of mg, ctech, stech is
	// encountered. By default these statements are skipped.
	RejectUnsupported bool
}

// Directives that are recognized but intentionally not implemented.
var unsupportedObjDirectives = map[string]struct{}{
	"cstype": {},
	"deg":    {},
	"bmat":   {},
	"step":   {},
	"curv":   {},
	"curv2":  {},
	"surf":   {},
	"parm":   {},
	"trim":   {},
	"hole":   {},
	"scrv":   {},
	"sp":     {},
	"end":    {},
	"con":    {},
	"mg":     {},
	"ctech":  {},
	"stech":  {},
}

// IsUnsupportedDirective returns true if keyword names an obj directive that
// is recognized but not implemented by this package.
func IsUnsupportedDirective(keyword string) bool {
	_, found := unsupportedObjDirectives[strings.ToLower(keyword)]
	return found
}

// The parser context for a single ParseObj call.
type objParser struct {
	opts Options
	data *ObjData

	curObject    string
	curGroups    []string
	curMaterial  string
	curSmoothing int
}

// ParseObj parses obj content using the default options.
func ParseObj(text string) (*ObjData, error) {
	return ParseObjWithOptions(text, Options{})
}

// ParseObjWithOptions parses obj content. Parsing stops at the first error
// in which case a *ParseError is returned and no data.
func ParseObjWithOptions(text string, opts Options) (*ObjData, error) {
	p := &objParser{
		opts:      opts,
		data:      newObjData(),
		curGroups: []string{DefaultGroup},
	}

	scanner := newLineScanner(text)
	for scanner.Scan() {
		if err := p.handle(scanner.Line()); err != nil {
			return nil, err
		}
	}

	return p.data, nil
}

// ReadObj reads all obj content from r and parses it.
func ReadObj(r io.Reader, opts Options) (*ObjData, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseObjWithOptions(string(content), opts)
}

func (p *objParser) handle(ln *line) error {
	switch ln.key {
	case "v":
		v, err := parseFloats(ln, 3, 4)
		if err != nil {
			return err
		}
		vertex := types.XYZW(v[0], v[1], v[2], 1.0)
		if len(v) == 4 {
			vertex[3] = v[3]
		}
		p.data.Vertices = append(p.data.Vertices, vertex)
	case "vt", "vp":
		v, err := parseFloats(ln, 1, 3)
		if err != nil {
			return err
		}
		var coord types.Vec3
		copy(coord[:], v)
		if ln.key == "vt" {
			p.data.TexCoords = append(p.data.TexCoords, coord)
		} else {
			p.data.ParamVertices = append(p.data.ParamVertices, coord)
		}
	case "vn":
		v, err := parseFloats(ln, 3, 3)
		if err != nil {
			return err
		}
		p.data.Normals = append(p.data.Normals, types.XYZ(v[0], v[1], v[2]))
	case "f":
		corners, err := p.parseElement(ln, 3, func(IndexForm) bool { return true })
		if err != nil {
			return err
		}
		face := Face{
			Vertices:       corners,
			Object:         p.curObject,
			Material:       p.curMaterial,
			SmoothingGroup: p.curSmoothing,
		}
		for _, name := range p.stampGroups() {
			p.data.Faces[name] = append(p.data.Faces[name], face)
		}
	case "l":
		corners, err := p.parseElement(ln, 2, func(f IndexForm) bool { return f == FormV || f == FormVT })
		if err != nil {
			return err
		}
		polyline := Line{
			Vertices: corners,
			Object:   p.curObject,
			Material: p.curMaterial,
		}
		for _, name := range p.stampGroups() {
			p.data.Lines[name] = append(p.data.Lines[name], polyline)
		}
	case "p":
		corners, err := p.parseElement(ln, 1, func(f IndexForm) bool { return f == FormV })
		if err != nil {
			return err
		}
		point := Point{
			Vertices: make([]int, len(corners)),
			Object:   p.curObject,
			Material: p.curMaterial,
		}
		for idx, corner := range corners {
			point.Vertices[idx] = corner.Vertex
		}
		for _, name := range p.stampGroups() {
			p.data.Points[name] = append(p.data.Points[name], point)
		}
	case "g":
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}
		p.curGroups = p.curGroups[:0]
		for _, name := range ln.values {
			if _, exists := p.data.Groups[name]; !exists {
				p.data.Groups[name] = &Group{
					Name:           name,
					Object:         p.curObject,
					Material:       p.curMaterial,
					SmoothingGroup: p.curSmoothing,
				}
			}
			if !containsString(p.curGroups, name) {
				p.curGroups = append(p.curGroups, name)
			}
		}
	case "o":
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}
		p.curObject = strings.Join(ln.values, " ")
		p.data.Objects = append(p.data.Objects, p.curObject)
	case "s":
		if err := checkValueCount(ln, 1, 1); err != nil {
			return err
		}
		if ln.values[0] == "off" {
			p.curSmoothing = 0
			break
		}
		id, err := parseInt(ln, ln.values[0])
		if err != nil {
			return err
		}
		if id < 0 {
			return newError(InvalidValue, ln, ln.values[0], "smoothing group ids must be positive")
		}
		p.curSmoothing = id
	case "usemtl":
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}
		p.curMaterial = strings.Join(ln.values, " ")
		for _, group := range p.activeGroups() {
			group.Material = p.curMaterial
		}
	case "mtllib":
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}
		p.data.MaterialLibraries = append(p.data.MaterialLibraries, ln.values...)
	case "maplib":
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}
		p.data.TextureLibraries = append(p.data.TextureLibraries, ln.values...)
	case "usemap":
		if err := checkValueCount(ln, 1, 1); err != nil {
			return err
		}
		textureMap := ln.values[0]
		if textureMap == "off" {
			textureMap = ""
		}
		for _, group := range p.activeGroups() {
			group.TextureMap = textureMap
		}
	case "bevel", "c_interp", "d_interp":
		if err := checkValueCount(ln, 1, 1); err != nil {
			return err
		}
		flag, err := parseOnOff(ln, ln.values[0])
		if err != nil {
			return err
		}
		for _, group := range p.activeGroups() {
			switch ln.key {
			case "bevel":
				group.Bevel = flag
			case "c_interp":
				group.ColorInterp = flag
			case "d_interp":
				group.DissolveInterp = flag
			}
		}
	case "lod":
		if err := checkValueCount(ln, 1, 1); err != nil {
			return err
		}
		level, err := parseInt(ln, ln.values[0])
		if err != nil {
			return err
		}
		if level < 0 || level > 100 {
			return newError(InvalidValue, ln, ln.values[0], "level of detail must be in the [0, 100] range")
		}
		for _, group := range p.activeGroups() {
			group.LOD = level
		}
	case "shadow_obj", "trace_obj":
		if err := checkValueCount(ln, 1, 1); err != nil {
			return err
		}
		for _, group := range p.activeGroups() {
			if ln.key == "shadow_obj" {
				group.ShadowObject = ln.values[0]
			} else {
				group.TraceObject = ln.values[0]
			}
		}
	default:
		if _, unsupported := unsupportedObjDirectives[ln.key]; unsupported && p.opts.RejectUnsupported {
			return newError(UnsupportedDirective, ln, ln.keyword, "")
		}
	}

	return nil
}

// Resolve the index tokens of a face, line or point element. All corners
// must share the same form and the form must be accepted by allowForm.
func (p *objParser) parseElement(ln *line, minCorners int, allowForm func(IndexForm) bool) ([]FaceVertex, error) {
	if err := checkValueCount(ln, minCorners, -1); err != nil {
		return nil, err
	}

	counts := listCounts{
		vertices:  len(p.data.Vertices),
		texCoords: len(p.data.TexCoords),
		normals:   len(p.data.Normals),
	}

	corners := make([]FaceVertex, len(ln.values))
	for idx, token := range ln.values {
		fv, err := resolveFaceVertex(ln, token, counts)
		if err != nil {
			return nil, err
		}

		// The first corner defines the form for the following corners
		if idx == 0 && !allowForm(fv.Form) {
			return nil, newError(MalformedIndex, ln, token, "form %s is not supported by this element", fv.Form)
		} else if idx > 0 && fv.Form != corners[0].Form {
			return nil, newError(MalformedIndex, ln, token, "expected form %s; got %s", corners[0].Form, fv.Form)
		}
		corners[idx] = fv
	}

	return corners, nil
}

// Update the metadata of the active groups to reflect the current parse
// state and return their names.
func (p *objParser) stampGroups() []string {
	for _, group := range p.activeGroups() {
		group.Object = p.curObject
		group.Material = p.curMaterial
		group.SmoothingGroup = p.curSmoothing
	}
	return p.curGroups
}

func (p *objParser) activeGroups() []*Group {
	groups := make([]*Group, len(p.curGroups))
	for idx, name := range p.curGroups {
		groups[idx] = p.data.Groups[name]
	}
	return groups
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
