package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/achilleasa/wavefront/wavefront"
	"github.com/olekukonko/tablewriter"
)

// Normals whose length differs from 1 by more than this are reported.
const normalEpsilon = 1e-3

// Summarize the geometry and element counts of parsed obj data.
func objStats(data *wavefront.ObjData) string {
	var lineCount, pointCount int
	for _, lines := range data.Lines {
		lineCount += len(lines)
	}
	for _, points := range data.Points {
		pointCount += len(points)
	}
	bbox := data.BBox()

	nonUnitNormals := 0
	for _, n := range data.Normals {
		if !n.IsUnit(normalEpsilon) {
			nonUnitNormals++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Section", "Item", "Value"})
	table.Append([]string{"Geometry", "Vertices", strconv.Itoa(len(data.Vertices))})
	table.Append([]string{"", "Tex coords", strconv.Itoa(len(data.TexCoords))})
	table.Append([]string{"", "Normals", strconv.Itoa(len(data.Normals))})
	table.Append([]string{"", "Non-unit normals", strconv.Itoa(nonUnitNormals)})
	table.Append([]string{"", "Param vertices", strconv.Itoa(len(data.ParamVertices))})
	table.Append([]string{"", "BBox min", fmtVec3(bbox[0])})
	table.Append([]string{"", "BBox max", fmtVec3(bbox[1])})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Elements", "Faces", strconv.Itoa(data.FaceCount())})
	table.Append([]string{"", "Lines", strconv.Itoa(lineCount)})
	table.Append([]string{"", "Points", strconv.Itoa(pointCount)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Metadata", "Groups", strconv.Itoa(len(data.Groups))})
	table.Append([]string{"", "Objects", strconv.Itoa(len(data.Objects))})
	table.Append([]string{"", "Material libs", strings.Join(data.MaterialLibraries, ", ")})
	table.Append([]string{"", "Texture libs", strings.Join(data.TextureLibraries, ", ")})

	table.Render()
	return buf.String()
}

// Summarize each group of parsed obj data.
func groupStats(data *wavefront.ObjData) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Object", "Material", "Smoothing", "Faces", "Lines", "Points"})

	var faceTotal, lineTotal, pointTotal int
	for _, name := range data.GroupNames() {
		group := data.Groups[name]
		faceCount, lineCount, pointCount := len(data.Faces[name]), len(data.Lines[name]), len(data.Points[name])
		faceTotal += faceCount
		lineTotal += lineCount
		pointTotal += pointCount

		table.Append([]string{
			name,
			group.Object,
			group.Material,
			strconv.Itoa(group.SmoothingGroup),
			strconv.Itoa(faceCount),
			strconv.Itoa(lineCount),
			strconv.Itoa(pointCount),
		})
	}
	table.SetFooter([]string{"Total", " ", " ", " ", strconv.Itoa(faceTotal), strconv.Itoa(lineTotal), strconv.Itoa(pointTotal)})

	table.Render()
	return buf.String()
}

// Summarize a list of materials.
func materialStats(materials wavefront.MaterialLibrary) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material", "Kd", "Ks", "Ke", "Ns", "d", "Illum", "Maps"})

	for _, mat := range materials {
		dissolve := "-"
		if mat.Dissolve != nil {
			dissolve = fmtFloat(mat.Dissolve.Alpha)
			if mat.Dissolve.Halo {
				dissolve += " (halo)"
			}
		}

		illum := "-"
		if mat.IlluminationModel != nil {
			illum = strconv.Itoa(*mat.IlluminationModel)
		}

		table.Append([]string{
			mat.Name,
			fmtColor(mat.Diffuse),
			fmtColor(mat.Specular),
			fmtColor(mat.Emissive),
			fmtOptionalFloat(mat.SpecularExponent),
			dissolve,
			illum,
			fmtMaps(mat),
		})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(len(materials)), " ", " ", " ", " ", " ", " "})

	table.Render()
	return buf.String()
}

// Return the sorted list of material names referenced by obj elements that
// are not defined by any of the loaded material libraries.
func missingMaterials(data *wavefront.ObjData, materials wavefront.MaterialLibrary) []string {
	referenced := make(map[string]struct{})
	for _, faces := range data.Faces {
		for _, face := range faces {
			referenced[face.Material] = struct{}{}
		}
	}
	for _, lines := range data.Lines {
		for _, line := range lines {
			referenced[line.Material] = struct{}{}
		}
	}
	for _, points := range data.Points {
		for _, point := range points {
			referenced[point.Material] = struct{}{}
		}
	}

	missing := make([]string, 0)
	for name := range referenced {
		if name == "" {
			continue
		}
		if _, found := materials.Lookup(name); !found {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 4, 32)
}

func fmtOptionalFloat(v *float32) string {
	if v == nil {
		return "-"
	}
	return fmtFloat(*v)
}

func fmtVec3(v [3]float32) string {
	return fmt.Sprintf("(%s, %s, %s)", fmtFloat(v[0]), fmtFloat(v[1]), fmtFloat(v[2]))
}

func fmtColor(c *wavefront.Color) string {
	if c == nil {
		return "-"
	}

	switch c.Type {
	case wavefront.ColorSpectral:
		return fmt.Sprintf("spectral %s x%s", c.SpectralFile, fmtFloat(c.Factor))
	case wavefront.ColorXYZ:
		return "xyz " + fmtVec3(c.Value)
	}
	return fmtVec3(c.Value)
}

func fmtMaps(mat *wavefront.Material) string {
	maps := make([]string, 0)
	for _, kind := range wavefront.MapKinds {
		if texMap := mat.Map(kind); texMap != nil {
			maps = append(maps, fmt.Sprintf("%s=%s", kind, texMap.File))
		}
	}
	if len(maps) == 0 {
		return "-"
	}
	return strings.Join(maps, " ")
}
