package wavefront

import (
	"github.com/achilleasa/wavefront/types"
)

// ColorType describes how a material color was specified.
type ColorType uint8

// The supported color specifications.
const (
	ColorRGB ColorType = iota
	ColorSpectral
	ColorXYZ
)

func (t ColorType) String() string {
	switch t {
	case ColorSpectral:
		return "spectral"
	case ColorXYZ:
		return "xyz"
	}
	return "rgb"
}

// A material color. For RGB and CIEXYZ colors Value holds the three
// components. Spectral colors reference a .rfl file and a multiplier.
type Color struct {
	Type         ColorType
	Value        types.Vec3
	SpectralFile string
	Factor       float32
}

// Dissolve holds the material opacity. A value of 1.0 is fully opaque. If
// Halo is true, the dissolve depends on the surface orientation relative to
// the viewer and Alpha is the minimum dissolve.
type Dissolve struct {
	Alpha float32
	Halo  bool
}

// MapKind identifies a material texture map slot.
type MapKind uint8

// The supported texture map slots.
const (
	MapAmbient MapKind = iota
	MapDiffuse
	MapSpecular
	MapEmissive
	MapShininess
	MapDissolve
	MapDisplacement
	MapDecal
	MapBump
	MapReflection
)

// MapKinds lists all map slots in display order.
var MapKinds = []MapKind{
	MapAmbient, MapDiffuse, MapSpecular, MapEmissive, MapShininess,
	MapDissolve, MapDisplacement, MapDecal, MapBump, MapReflection,
}

func (k MapKind) String() string {
	switch k {
	case MapAmbient:
		return "map_Ka"
	case MapDiffuse:
		return "map_Kd"
	case MapSpecular:
		return "map_Ks"
	case MapEmissive:
		return "map_Ke"
	case MapShininess:
		return "map_Ns"
	case MapDissolve:
		return "map_d"
	case MapDisplacement:
		return "disp"
	case MapDecal:
		return "decal"
	case MapBump:
		return "bump"
	case MapReflection:
		return "refl"
	}
	return "unknown"
}

// A texture map option flag (e.g. "-mm") followed by its arguments. Options
// are passed through verbatim.
type MapOption struct {
	Flag string
	Args []string
}

// Floats parses the option arguments as floats.
func (o MapOption) Floats() ([]float32, error) {
	out := make([]float32, len(o.Args))
	for idx, arg := range o.Args {
		val, err := parseFloat(nil, arg)
		if err != nil {
			return nil, err
		}
		out[idx] = val
	}
	return out, nil
}

// TextureMap references a texture file plus any option flags that preceded
// the file name. The file is never opened by the parser.
type TextureMap struct {
	File    string
	Options []MapOption
}

// Option returns the last option with the given flag.
func (m *TextureMap) Option(flag string) (MapOption, bool) {
	for idx := len(m.Options) - 1; idx >= 0; idx-- {
		if m.Options[idx].Flag == flag {
			return m.Options[idx], true
		}
	}
	return MapOption{}, false
}

// Material is a single newmtl record. Unset attributes are nil.
type Material struct {
	Name string

	// Ka, Kd, Ks, Ke and Tf.
	Ambient            *Color
	Diffuse            *Color
	Specular           *Color
	Emissive           *Color
	TransmissionFilter *Color

	// d and Tr. Tr is stored as 1 - Tr so whichever appears last wins.
	Dissolve *Dissolve

	// Ns, Ni and sharpness.
	SpecularExponent *float32
	OpticalDensity   *float32
	Sharpness        *float32

	// illum.
	IlluminationModel *int

	// map_aat.
	AntiAliasTextures *bool

	// Texture maps by slot.
	Maps map[MapKind]*TextureMap
}

// Map returns the texture map for a slot or nil if it is not defined.
func (m *Material) Map(kind MapKind) *TextureMap {
	return m.Maps[kind]
}

// MaterialLibrary is the ordered list of materials parsed from mtl content.
type MaterialLibrary []*Material

// Lookup returns the material with the given name. If a name is defined
// more than once, the last definition wins.
func (lib MaterialLibrary) Lookup(name string) (*Material, bool) {
	for idx := len(lib) - 1; idx >= 0; idx-- {
		if lib[idx].Name == name {
			return lib[idx], true
		}
	}
	return nil, false
}
