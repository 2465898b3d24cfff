package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Object couples one shape with the material covering it.
// Materials are always evaluated with the shape's normal at the hit point.
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// Hit is the nearest intersection of a ray with an object
type Hit struct {
	Object *Object
	Point  core.Vec3
}

// NewObject creates a new scene object
func NewObject(shape geometry.Shape, mat material.Material) *Object {
	return &Object{Shape: shape, Material: mat}
}

// Normal returns the unit surface normal at p
func (o *Object) Normal(p core.Vec3) core.Vec3 {
	return o.Shape.Normal(p)
}

// Emittance returns the light emitted at p towards dir
func (o *Object) Emittance(p, dir core.Vec3) core.Radiance {
	return o.Material.Emittance(o.Normal(p), dir)
}

// Reflectance evaluates the material BRDF at p
func (o *Object) Reflectance(p, in, out core.Vec3) core.Radiance {
	return o.Material.Reflectance(o.Normal(p), in, out)
}

// NextStep evaluates the recursive bounce contribution at p
func (o *Object) NextStep(p, in core.Vec3, trace material.TraceFunc) core.Radiance {
	return o.Material.NextStep(p, o.Normal(p), in, trace)
}

// Intersect returns the hit with a back reference to this object
func (o *Object) Intersect(ray core.Ray) (Hit, bool) {
	point, ok := o.Shape.Intersect(ray)
	if !ok {
		return Hit{}, false
	}
	return Hit{Object: o, Point: point}, true
}

// ShadowIntersect reports whether the object blocks the ray before maxLength
func (o *Object) ShadowIntersect(ray core.Ray, maxLength float64) bool {
	return o.Shape.ShadowIntersect(ray, maxLength)
}
