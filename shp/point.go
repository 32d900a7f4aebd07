// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// pointShape is the 0-dimensional shape: the face-shape of a segment.
type pointShape struct{}

var thePoint pointShape

func init() { register(thePoint) }

func (pointShape) Name() string    { return "point" }
func (pointShape) Dim() int        { return 0 }
func (pointShape) NumFaces() int   { return 0 }
func (pointShape) FaceShape() Shape { return nil }

func (pointShape) PrincipalNodes() [][]float64 {
	return [][]float64{{}}
}

func (pointShape) NumBasis(order int) int { return 1 }

func (pointShape) EquidistantNodes(order int) [][]float64 {
	return [][]float64{{}}
}

func (pointShape) FaceLift(faceID int, facePts [][]float64) [][]float64 {
	return nil
}

func (pointShape) FaceLocalNodes(faceID, order int) []int {
	return nil
}
