package wavefront

import (
	"io"
	"strings"

	"github.com/achilleasa/wavefront/types"
)

// Texture map directives and their slots.
var mtlMapDirectives = map[string]MapKind{
	"map_ka":   MapAmbient,
	"map_kd":   MapDiffuse,
	"map_ks":   MapSpecular,
	"map_ke":   MapEmissive,
	"map_ns":   MapShininess,
	"map_d":    MapDissolve,
	"disp":     MapDisplacement,
	"map_disp": MapDisplacement,
	"decal":    MapDecal,
	"bump":     MapBump,
	"map_bump": MapBump,
	"refl":     MapReflection,
}

// The parser context for a single ParseMtl call.
type mtlParser struct {
	materials   MaterialLibrary
	curMaterial *Material
}

// ParseMtl parses mtl content into a list of materials in definition order.
// Parsing stops at the first error in which case a *ParseError is returned.
func ParseMtl(text string) (MaterialLibrary, error) {
	p := &mtlParser{
		materials: make(MaterialLibrary, 0),
	}

	scanner := newLineScanner(text)
	for scanner.Scan() {
		if err := p.handle(scanner.Line()); err != nil {
			return nil, err
		}
	}

	return p.materials, nil
}

// ReadMtl reads all mtl content from r and parses it.
func ReadMtl(r io.Reader) (MaterialLibrary, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseMtl(string(content))
}

func (p *mtlParser) handle(ln *line) error {
	if ln.key == "newmtl" {
		if err := checkValueCount(ln, 1, -1); err != nil {
			return err
		}

		p.curMaterial = &Material{
			Name: strings.Join(ln.values, " "),
			Maps: make(map[MapKind]*TextureMap),
		}
		p.materials = append(p.materials, p.curMaterial)
		return nil
	}

	if !isMtlAttribute(ln.key) {
		return nil
	}

	if p.curMaterial == nil {
		return newError(MaterialAttributeBeforeName, ln, ln.keyword, "")
	}

	var err error
	mat := p.curMaterial
	switch ln.key {
	case "ka":
		mat.Ambient, err = parseColor(ln)
	case "kd":
		mat.Diffuse, err = parseColor(ln)
	case "ks":
		mat.Specular, err = parseColor(ln)
	case "ke":
		mat.Emissive, err = parseColor(ln)
	case "tf":
		mat.TransmissionFilter, err = parseColor(ln)
	case "d":
		mat.Dissolve, err = parseDissolve(ln)
	case "tr":
		var v []float32
		if v, err = parseFloats(ln, 1, 1); err == nil {
			mat.Dissolve = &Dissolve{Alpha: 1.0 - v[0]}
		}
	case "ns":
		mat.SpecularExponent, err = parseScalar(ln)
	case "ni":
		mat.OpticalDensity, err = parseScalar(ln)
	case "sharpness":
		mat.Sharpness, err = parseScalar(ln)
	case "illum":
		if err = checkValueCount(ln, 1, 1); err != nil {
			break
		}
		var model int
		if model, err = parseInt(ln, ln.values[0]); err == nil {
			if model < 0 {
				return newError(InvalidValue, ln, ln.values[0], "illumination model must be positive")
			}
			mat.IlluminationModel = &model
		}
	case "map_aat":
		if err = checkValueCount(ln, 1, 1); err != nil {
			break
		}
		var flag bool
		if flag, err = parseOnOff(ln, ln.values[0]); err == nil {
			mat.AntiAliasTextures = &flag
		}
	default:
		var texMap *TextureMap
		if texMap, err = parseTextureMap(ln); err == nil {
			mat.Maps[mtlMapDirectives[ln.key]] = texMap
		}
	}

	return err
}

func isMtlAttribute(key string) bool {
	switch key {
	case "ka", "kd", "ks", "ke", "tf", "d", "tr", "ns", "ni", "sharpness", "illum", "map_aat":
		return true
	}
	_, isMap := mtlMapDirectives[key]
	return isMap
}

// Parse a color definition. The following formats are supported:
// - r [g b]          : g and b default to r
// - spectral file [factor] : factor defaults to 1.0
// - xyz x [y z]      : y and z default to x
func parseColor(ln *line) (*Color, error) {
	if err := checkValueCount(ln, 1, 4); err != nil {
		return nil, err
	}

	switch strings.ToLower(ln.values[0]) {
	case "spectral":
		if len(ln.values) < 2 {
			return nil, newError(MissingRequiredValue, ln, "", "expected a spectral curve file name")
		}
		if len(ln.values) > 3 {
			return nil, newError(TooManyValues, ln, ln.values[3], "")
		}
		color := &Color{Type: ColorSpectral, SpectralFile: ln.values[1], Factor: 1.0}
		if len(ln.values) == 3 {
			factor, err := parseFloat(ln, ln.values[2])
			if err != nil {
				return nil, err
			}
			color.Factor = factor
		}
		return color, nil
	case "xyz":
		if len(ln.values) < 2 {
			return nil, newError(MissingRequiredValue, ln, "", "expected at least one CIEXYZ component")
		}
		value, err := parseColorComponents(ln, ln.values[1:])
		if err != nil {
			return nil, err
		}
		return &Color{Type: ColorXYZ, Value: value, Factor: 1.0}, nil
	}

	value, err := parseColorComponents(ln, ln.values)
	if err != nil {
		return nil, err
	}
	return &Color{Type: ColorRGB, Value: value, Factor: 1.0}, nil
}

// Parse 1 or 3 color components. If only one component is specified it is
// used for all three.
func parseColorComponents(ln *line, tokens []string) (types.Vec3, error) {
	switch len(tokens) {
	case 1, 3:
	case 2:
		return types.Vec3{}, newError(MissingRequiredValue, ln, "", "expected 1 or 3 color components; got 2")
	default:
		return types.Vec3{}, newError(TooManyValues, ln, tokens[3], "expected 1 or 3 color components; got %d", len(tokens))
	}

	var value types.Vec3
	for idx, token := range tokens {
		v, err := parseFloat(ln, token)
		if err != nil {
			return value, err
		}
		value[idx] = v
	}
	if len(tokens) == 1 {
		value[1], value[2] = value[0], value[0]
	}
	return value, nil
}

// Parse "d alpha" or "d -halo factor".
func parseDissolve(ln *line) (*Dissolve, error) {
	if err := checkValueCount(ln, 1, 2); err != nil {
		return nil, err
	}

	halo := strings.ToLower(ln.values[0]) == "-halo"
	if halo && len(ln.values) != 2 {
		return nil, newError(MissingRequiredValue, ln, "", "expected a factor after -halo")
	} else if !halo && len(ln.values) != 1 {
		return nil, newError(TooManyValues, ln, ln.values[1], "")
	}

	alpha, err := parseFloat(ln, ln.values[len(ln.values)-1])
	if err != nil {
		return nil, err
	}
	return &Dissolve{Alpha: alpha, Halo: halo}, nil
}

// Parse a single float attribute.
func parseScalar(ln *line) (*float32, error) {
	v, err := parseFloats(ln, 1, 1)
	if err != nil {
		return nil, err
	}
	return &v[0], nil
}

// Parse a texture map definition with the format:
// map_xx -option args -option args ... filename
//
// Tokens starting with a dash that are not numbers start a new option; any
// other token preceding the file name is an argument of the last option.
func parseTextureMap(ln *line) (*TextureMap, error) {
	if err := checkValueCount(ln, 1, -1); err != nil {
		return nil, err
	}

	last := len(ln.values) - 1
	if isMapOptionFlag(ln.values[last]) {
		return nil, newError(MissingRequiredValue, ln, ln.values[last], "expected a texture file name after the map options")
	}

	texMap := &TextureMap{
		File:    ln.values[last],
		Options: make([]MapOption, 0),
	}
	for _, token := range ln.values[:last] {
		if isMapOptionFlag(token) {
			texMap.Options = append(texMap.Options, MapOption{Flag: token, Args: make([]string, 0)})
			continue
		}

		if len(texMap.Options) == 0 {
			return nil, newError(InvalidValue, ln, token, "expected a map option or the texture file name")
		}
		opt := &texMap.Options[len(texMap.Options)-1]
		opt.Args = append(opt.Args, token)
	}

	return texMap, nil
}

func isMapOptionFlag(token string) bool {
	return len(token) > 1 && token[0] == '-' && !isDecimalFloat(token)
}
