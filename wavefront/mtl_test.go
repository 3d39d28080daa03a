package wavefront

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/wavefront/types"
)

func mustParseMtl(t *testing.T, payload string) MaterialLibrary {
	lib, err := ParseMtl(payload)
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func TestParseMtl(t *testing.T) {
	payload := `
newmtl frost_wind
	Ka 0.2 0.2 0.2
	Kd 0.6 0.6 0.6
	Ks 0.1 0.1 0.1
	d 1
	Ns 200
	illum 2
	map_d -mm 0.200 0.800 window.mps
`
	lib := mustParseMtl(t, payload)
	if len(lib) != 1 {
		t.Fatalf("expected 1 material; got %d", len(lib))
	}

	mat := lib[0]
	if mat.Name != "frost_wind" {
		t.Fatalf("expected material name to be frost_wind; got %q", mat.Name)
	}

	type colorSpec struct {
		name  string
		color *Color
		exp   types.Vec3
	}
	for _, s := range []colorSpec{
		{"Ka", mat.Ambient, types.XYZ(0.2, 0.2, 0.2)},
		{"Kd", mat.Diffuse, types.XYZ(0.6, 0.6, 0.6)},
		{"Ks", mat.Specular, types.XYZ(0.1, 0.1, 0.1)},
	} {
		if s.color == nil || s.color.Type != ColorRGB || s.color.Value != s.exp {
			t.Fatalf("expected %s to be rgb %v; got %+v", s.name, s.exp, s.color)
		}
	}

	if mat.Dissolve == nil || mat.Dissolve.Alpha != 1 || mat.Dissolve.Halo {
		t.Fatalf("expected dissolve to be 1; got %+v", mat.Dissolve)
	}
	if mat.SpecularExponent == nil || *mat.SpecularExponent != 200 {
		t.Fatalf("expected specular exponent to be 200; got %v", mat.SpecularExponent)
	}
	if mat.IlluminationModel == nil || *mat.IlluminationModel != 2 {
		t.Fatalf("expected illumination model to be 2; got %v", mat.IlluminationModel)
	}
	if mat.Emissive != nil || mat.OpticalDensity != nil || mat.AntiAliasTextures != nil {
		t.Fatal("expected undefined attributes to be nil")
	}

	texMap := mat.Map(MapDissolve)
	if texMap == nil {
		t.Fatal("expected map_d to be defined")
	}
	if texMap.File != "window.mps" {
		t.Fatalf("expected map_d file to be window.mps; got %q", texMap.File)
	}
	opt, found := texMap.Option("-mm")
	if !found {
		t.Fatal("expected map_d to define the -mm option")
	}
	if exp := []string{"0.200", "0.800"}; !reflect.DeepEqual(opt.Args, exp) {
		t.Fatalf("expected -mm args to be %v; got %v", exp, opt.Args)
	}
	floats, err := opt.Floats()
	if err != nil {
		t.Fatal(err)
	}
	if exp := []float32{0.2, 0.8}; !reflect.DeepEqual(floats, exp) {
		t.Fatalf("expected -mm floats to be %v; got %v", exp, floats)
	}
	if mat.Map(MapDiffuse) != nil {
		t.Fatal("expected map_Kd to be undefined")
	}
}

func TestMtlAttributeOverwrite(t *testing.T) {
	lib := mustParseMtl(t, "newmtl a\nKd 1 0 0\nKd 0 1 0\nNs 10\nNs 20\n")
	if exp := types.XYZ(0, 1, 0); lib[0].Diffuse.Value != exp {
		t.Fatalf("expected the last Kd to win; got %v", lib[0].Diffuse.Value)
	}
	if *lib[0].SpecularExponent != 20 {
		t.Fatalf("expected the last Ns to win; got %f", *lib[0].SpecularExponent)
	}
}

func TestMtlDissolveAndTransparency(t *testing.T) {
	type spec struct {
		payload  string
		expAlpha float32
		expHalo  bool
	}
	specs := []spec{
		{"d 0.25", 0.25, false},
		{"Tr 0.25", 0.75, false},
		{"d 0.25\nTr 0.5", 0.5, false},
		{"Tr 0.5\nd 0.25", 0.25, false},
		{"d -halo 0.5", 0.5, true},
		{"d -halo 0.5\nd 1", 1, false},
	}

	for idx, s := range specs {
		lib := mustParseMtl(t, "newmtl glass\n"+s.payload)
		d := lib[0].Dissolve
		if d == nil {
			t.Fatalf("[spec %d] expected dissolve to be defined", idx)
		}
		if d.Alpha != s.expAlpha || d.Halo != s.expHalo {
			t.Fatalf("[spec %d] expected dissolve {%f %t}; got {%f %t}", idx, s.expAlpha, s.expHalo, d.Alpha, d.Halo)
		}
	}
}

func TestMtlColorFormats(t *testing.T) {
	payload := `
newmtl colors
Ka 0.5
Kd spectral ident.rfl
Ks spectral ident.rfl 0.5
Ke xyz 0.1 0.2 0.3
Tf xyz 0.4
`
	mat := mustParseMtl(t, payload)[0]

	if exp := (&Color{Type: ColorRGB, Value: types.XYZ(0.5, 0.5, 0.5), Factor: 1}); !reflect.DeepEqual(mat.Ambient, exp) {
		t.Fatalf("expected Ka to be %+v; got %+v", exp, mat.Ambient)
	}
	if exp := (&Color{Type: ColorSpectral, SpectralFile: "ident.rfl", Factor: 1}); !reflect.DeepEqual(mat.Diffuse, exp) {
		t.Fatalf("expected Kd to be %+v; got %+v", exp, mat.Diffuse)
	}
	if exp := (&Color{Type: ColorSpectral, SpectralFile: "ident.rfl", Factor: 0.5}); !reflect.DeepEqual(mat.Specular, exp) {
		t.Fatalf("expected Ks to be %+v; got %+v", exp, mat.Specular)
	}
	if exp := (&Color{Type: ColorXYZ, Value: types.XYZ(0.1, 0.2, 0.3), Factor: 1}); !reflect.DeepEqual(mat.Emissive, exp) {
		t.Fatalf("expected Ke to be %+v; got %+v", exp, mat.Emissive)
	}
	if exp := (&Color{Type: ColorXYZ, Value: types.XYZ(0.4, 0.4, 0.4), Factor: 1}); !reflect.DeepEqual(mat.TransmissionFilter, exp) {
		t.Fatalf("expected Tf to be %+v; got %+v", exp, mat.TransmissionFilter)
	}
}

func TestMtlScalarsAndFlags(t *testing.T) {
	mat := mustParseMtl(t, "newmtl m\nNi 1.45\nsharpness 60\nmap_aat on\nillum 0\n")[0]

	if mat.OpticalDensity == nil || *mat.OpticalDensity != 1.45 {
		t.Fatalf("expected optical density to be 1.45; got %v", mat.OpticalDensity)
	}
	if mat.Sharpness == nil || *mat.Sharpness != 60 {
		t.Fatalf("expected sharpness to be 60; got %v", mat.Sharpness)
	}
	if mat.AntiAliasTextures == nil || !*mat.AntiAliasTextures {
		t.Fatalf("expected texture anti-aliasing to be enabled; got %v", mat.AntiAliasTextures)
	}
	if mat.IlluminationModel == nil || *mat.IlluminationModel != 0 {
		t.Fatalf("expected illumination model to be 0; got %v", mat.IlluminationModel)
	}
}

func TestMtlTextureMaps(t *testing.T) {
	payload := `
newmtl textured
map_Kd -o -1 0 0 -s 2 2 1 -clamp on brick.png
bump -bm 0.5 brick_bump.png
map_bump brick_bump2.png
disp brick_disp.png
map_Disp brick_disp2.png
decal stencil.png
refl -type sphere sky.png
map_Ka ambient.png
map_Ks spec.png
map_Ke glow.png
map_Ns rough.png
`
	mat := mustParseMtl(t, payload)[0]

	kd := mat.Map(MapDiffuse)
	expOpts := []MapOption{
		{Flag: "-o", Args: []string{"-1", "0", "0"}},
		{Flag: "-s", Args: []string{"2", "2", "1"}},
		{Flag: "-clamp", Args: []string{"on"}},
	}
	if kd.File != "brick.png" || !reflect.DeepEqual(kd.Options, expOpts) {
		t.Fatalf("expected map_Kd to be brick.png with options %+v; got %+v", expOpts, kd)
	}

	expFiles := map[MapKind]string{
		MapAmbient:      "ambient.png",
		MapDiffuse:      "brick.png",
		MapSpecular:     "spec.png",
		MapEmissive:     "glow.png",
		MapShininess:    "rough.png",
		MapDisplacement: "brick_disp2.png",
		MapDecal:        "stencil.png",
		MapBump:         "brick_bump2.png",
		MapReflection:   "sky.png",
	}
	for kind, expFile := range expFiles {
		texMap := mat.Map(kind)
		if texMap == nil || texMap.File != expFile {
			t.Fatalf("expected %s file to be %q; got %+v", kind, expFile, texMap)
		}
	}

	if _, found := mat.Map(MapBump).Option("-bm"); found {
		t.Fatal("expected map_bump to replace the earlier bump definition")
	}
	if opt, _ := mat.Map(MapReflection).Option("-type"); !reflect.DeepEqual(opt.Args, []string{"sphere"}) {
		t.Fatalf("expected refl -type to be sphere; got %v", opt.Args)
	}
}

func TestMtlDuplicateNames(t *testing.T) {
	lib := mustParseMtl(t, "newmtl a\nKd 1 0 0\nnewmtl b\nnewmtl a\nKd 0 0 1\n")
	if len(lib) != 3 {
		t.Fatalf("expected 3 material records; got %d", len(lib))
	}

	mat, found := lib.Lookup("a")
	if !found {
		t.Fatal("expected to find material a")
	}
	if exp := types.XYZ(0, 0, 1); mat.Diffuse.Value != exp {
		t.Fatalf("expected lookup to return the last definition; got %v", mat.Diffuse.Value)
	}
	if lib[0].Diffuse.Value != types.XYZ(1, 0, 0) {
		t.Fatal("expected the first definition to be preserved")
	}
	if _, found = lib.Lookup("missing"); found {
		t.Fatal("expected lookup of an undefined material to fail")
	}
}

func TestMtlMultiWordName(t *testing.T) {
	lib := mustParseMtl(t, "newmtl Material  Two\n")
	if lib[0].Name != "Material Two" {
		t.Fatalf(`expected name to be "Material Two"; got %q`, lib[0].Name)
	}
}

func TestMtlUnknownDirectivesIgnored(t *testing.T) {
	payload := `
# exported by some tool
Pr 0.5
newmtl m
Pr 0.5
norm normal.png
Kd 1 1 1
`
	lib := mustParseMtl(t, payload)
	if len(lib) != 1 || lib[0].Diffuse == nil {
		t.Fatalf("expected unknown directives to be ignored; got %+v", lib)
	}
}

func TestMtlEmptyInput(t *testing.T) {
	lib := mustParseMtl(t, "# nothing to see here\n")
	if len(lib) != 0 {
		t.Fatalf("expected no materials; got %d", len(lib))
	}
}

func TestMtlParseErrors(t *testing.T) {
	type spec struct {
		payload  string
		expError error
		expLine  int
	}
	specs := []spec{
		{"Kd 1 1 1", ErrMaterialAttributeBeforeName, 1},
		{"\n\nmap_Kd a.png\nnewmtl m", ErrMaterialAttributeBeforeName, 3},
		{"newmtl", ErrMissingRequiredValue, 1},
		{"newmtl m\nKd", ErrMissingRequiredValue, 2},
		{"newmtl m\nKd 1 1", ErrMissingRequiredValue, 2},
		{"newmtl m\nKd 1 1 1 1", ErrTooManyValues, 2},
		{"newmtl m\nKd red", ErrInvalidNumber, 2},
		{"newmtl m\nKd spectral", ErrMissingRequiredValue, 2},
		{"newmtl m\nKd spectral a.rfl x", ErrInvalidNumber, 2},
		{"newmtl m\nKs xyz", ErrMissingRequiredValue, 2},
		{"newmtl m\nd -halo", ErrMissingRequiredValue, 2},
		{"newmtl m\nd 0.5 0.5", ErrTooManyValues, 2},
		{"newmtl m\nTr", ErrMissingRequiredValue, 2},
		{"newmtl m\nNs 1 2", ErrTooManyValues, 2},
		{"newmtl m\nillum 1.5", ErrInvalidNumber, 2},
		{"newmtl m\nillum -1", ErrInvalidValue, 2},
		{"newmtl m\nmap_aat yes", ErrInvalidValue, 2},
		{"newmtl m\nmap_Kd", ErrMissingRequiredValue, 2},
		{"newmtl m\nmap_Kd -clamp", ErrMissingRequiredValue, 2},
		{"newmtl m\nmap_Kd a.png b.png", ErrInvalidValue, 2},
	}

	for idx, s := range specs {
		lib, err := ParseMtl(s.payload)
		if lib != nil {
			t.Fatalf("[spec %d] expected no partial result", idx)
		}
		if !errors.Is(err, s.expError) {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expError, err)
		}
		if errLine := err.(*ParseError).Line; errLine != s.expLine {
			t.Fatalf("[spec %d] expected error at line %d; got %d", idx, s.expLine, errLine)
		}
	}
}

func TestReadMtl(t *testing.T) {
	lib, err := ReadMtl(strings.NewReader("newmtl a\nnewmtl b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lib) != 2 || lib[1].Name != "b" {
		t.Fatalf("expected to read materials a and b; got %+v", lib)
	}
}
