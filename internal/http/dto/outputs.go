package dto

import (
	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/registry"
)

// OutputType is the wire code of an output's role.
type OutputType int32

const (
	OutputTypeMain OutputType = 0
	OutputTypeCue  OutputType = 1
)

// Output is the API model for GET /api/outputs[/:id].
// A mono output reports its path in both port fields.
type Output struct {
	ID            uint32     `json:"id"`
	Name          string     `json:"name"`
	OutputType    OutputType `json:"output_type"`
	LeftPortPath  *string    `json:"left_port_path,omitempty"`
	RightPortPath *string    `json:"right_port_path,omitempty"`
}

func FromOutput(o mixer.Output) Output {
	res := Output{ID: o.ID, Name: o.Name, OutputType: OutputTypeMain}
	if o.Kind == mixer.OutputCue {
		res.OutputType = OutputTypeCue
	}
	switch o.Ports.Kind() {
	case mixer.PortsMono:
		l, _ := o.Ports.Left()
		res.LeftPortPath, res.RightPortPath = &l, &l
	case mixer.PortsStereo:
		res.LeftPortPath = optional(o.Ports.Left())
		res.RightPortPath = optional(o.Ports.Right())
	}
	return res
}

func FromOutputs(outs []mixer.Output) []Output { return mapAll(outs, FromOutput) }

// OutputPortsUpdate is the body of PUT /api/outputs/:id/ports.
type OutputPortsUpdate struct {
	LeftPortPath  *string `json:"left_port_path"`  // optional; string | null
	RightPortPath *string `json:"right_port_path"` // optional; string | null
}

// ToAssignment collapses the two optional paths into a binding kind:
// neither → unbound, exactly one → mono on that path, both → stereo.
// An empty string counts as absent.
func (req OutputPortsUpdate) ToAssignment() registry.PortAssignment {
	l, r := present(req.LeftPortPath), present(req.RightPortPath)
	switch {
	case l && r:
		return registry.AssignStereo(*req.LeftPortPath, *req.RightPortPath)
	case l:
		return registry.AssignMono(*req.LeftPortPath)
	case r:
		return registry.AssignMono(*req.RightPortPath)
	default:
		return registry.ClearPorts()
	}
}
