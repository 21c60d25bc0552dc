// Package export writes an evaluated orrery frame as a glTF scene.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/ansipixels/orrery/pkg/kinematics"
	"github.com/ansipixels/orrery/pkg/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a glTF document with one shared mesh and one node per body,
// each node carrying the body's translation, spin and scale.
func Document(frame kinematics.Frame, mesh *render.Mesh) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(mesh.Vertices))
	colors := make([][3]uint8, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = [3]float32{float32(v.Position.X()), float32(v.Position.Y()), float32(v.Position.Z())}
		colors[i] = [3]uint8{v.Color.R, v.Color.G, v.Color.B}
	}
	doc.Meshes = []*gltf.Mesh{{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Mode: gltf.PrimitiveTriangles,
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.COLOR_0:  modeler.WriteColor(doc, colors),
			},
		}},
	}}

	for _, st := range frame.States {
		q := mgl64.QuatRotate(st.SelfRotation, st.Body.SpinAxis())
		s := st.Body.Scale
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        st.Body.Name,
			Mesh:        gltf.Index(0),
			Translation: [3]float64{st.Position.X(), st.Position.Y(), st.Position.Z()},
			Rotation:    [4]float64{q.V.X(), q.V.Y(), q.V.Z(), q.W},
			Scale:       [3]float64{s, s, s},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// WriteGLB encodes the frame as binary glTF.
func WriteGLB(w io.Writer, frame kinematics.Frame, mesh *render.Mesh) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(Document(frame, mesh)); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// SaveGLB writes the frame to a .glb file.
func SaveGLB(path string, frame kinematics.Frame, mesh *render.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGLB(f, frame, mesh); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
