package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectIndex  int                    `json:"objectIndex"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Radiance     [3]float64             `json:"radiance"` // Traced radiance through the pixel
	Color        string                 `json:"color"`    // Tone mapped pixel color
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect reports what the camera ray through pixel (x, y) hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", -1, 0, sceneObj.CameraConfig.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, sceneObj.CameraConfig.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if x < 0 || y < 0 {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}

	bounces := sceneObj.SamplingConfig.MaxBounces
	if req.MaxBounces >= 0 {
		bounces = req.MaxBounces
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y, bounces))
}

// inspectPixel casts the camera ray for (x, y) and describes the nearest hit
func inspectPixel(sceneObj *scene.Scene, x, y, bounces int) InspectResponse {
	ray := renderer.NewOriginCamera(sceneObj.CameraConfig).MakeRay(x, y)
	radiance := integrator.NewPathTracer(bounces).RayColor(ray, sceneObj)
	c := renderer.RadianceToColor(radiance)

	response := InspectResponse{
		ObjectIndex: -1,
		Radiance:    [3]float64{radiance.R, radiance.G, radiance.B},
		Color:       fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		Properties:  make(map[string]interface{}),
	}

	hit, ok := sceneObj.Intersect(ray)
	if !ok {
		return response
	}

	normal := hit.Object.Normal(hit.Point)
	response.Hit = true
	response.ObjectIndex = objectIndex(sceneObj, hit.Object)
	response.Point = vecArray(hit.Point)
	response.Normal = vecArray(normal)
	response.Distance = hit.Point.Subtract(ray.Origin).Length()

	var materialProps, geometryProps map[string]interface{}
	response.MaterialType, materialProps = extractMaterialInfo(hit.Object.Material)
	response.GeometryType, geometryProps = extractGeometryInfo(hit.Object.Shape)
	response.Properties["material"] = materialProps
	response.Properties["geometry"] = geometryProps

	return response
}

func objectIndex(sceneObj *scene.Scene, obj *scene.Object) int {
	for i, o := range sceneObj.Objects {
		if o == obj {
			return i
		}
	}
	return -1
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Diffuse:
		properties["diffuse"] = radianceArray(m.Diffuse)
		properties["specular"] = radianceArray(m.Specular)
		properties["shininess"] = m.Shininess
		return "diffuse", properties

	case *material.Emitter:
		properties["emission"] = radianceArray(m.Emission)
		return "emitter", properties

	case *material.Reflective:
		properties["attenuation"] = radianceArray(m.Attenuation)
		return "reflective", properties

	case *material.Refractive:
		properties["attenuation"] = radianceArray(m.Attenuation)
		properties["refractiveIndex"] = m.RefractiveIndex
		return "refractive", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts geometry-specific information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch g := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(g.Center)
		properties["radius"] = g.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(g.UnitNormal)
		properties["offset"] = g.Offset
		return "plane", properties

	case *geometry.Disc:
		properties["center"] = vecArray(g.Center)
		properties["normal"] = vecArray(g.UnitNormal)
		properties["radius"] = g.Radius
		return "disc", properties

	case *geometry.Quad:
		properties["corner"] = vecArray(g.Corner)
		properties["u"] = vecArray(g.U)
		properties["v"] = vecArray(g.V)
		properties["normal"] = vecArray(g.UnitNormal)
		return "quad", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecArray(g.V0), vecArray(g.V1), vecArray(g.V2)}
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func radianceArray(r core.Radiance) [3]float64 {
	return [3]float64{r.R, r.G, r.B}
}
