// Package geom provides position/index mapping for a cubic lattice
// with toroidal wrapping.
package geom

import "math"

// Vec3 is an integer lattice position.
type Vec3 struct {
	X, Y, Z int32
}

// Add returns v + o componentwise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o componentwise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// IndexToPos converts a flat slice index into a lattice position.
// Layout is x + y*bound + z*bound*bound.
func IndexToPos(index int, bound int32) Vec3 {
	b := int32(bound)
	i := int32(index)
	return Vec3{i % b, i / b % b, i / b / b}
}

// PosToIndex converts a lattice position into a flat slice index.
// The position must already be in [0, bound) on every axis.
func PosToIndex(pos Vec3, bound int32) int {
	b := int(bound)
	return int(pos.X) + int(pos.Y)*b + int(pos.Z)*b*b
}

// Wrap maps any position into [0, bound) per axis, toroidally.
func Wrap(pos Vec3, bound int32) Vec3 {
	return Vec3{
		(pos.X%bound + bound) % bound,
		(pos.Y%bound + bound) % bound,
		(pos.Z%bound + bound) % bound,
	}
}

// Center returns the cube center cell.
func Center(bound int32) Vec3 {
	c := bound / 2
	return Vec3{c, c, c}
}

// DistToCenter returns the distance from pos to the cube center,
// normalized so the cube faces sit at roughly 1.0.
func DistToCenter(pos Vec3, bound int32) float32 {
	d := pos.Sub(Center(bound))
	half := float64(bound) / 2.0
	dist := math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
	return float32(dist / half)
}
