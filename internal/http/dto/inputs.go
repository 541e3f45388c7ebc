package dto

import (
	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/edirooss/pmx-registry/pkg/jsonx"
)

// InputType is the wire code of an input's port binding kind.
type InputType int32

const (
	InputTypeNone   InputType = 0
	InputTypeMono   InputType = 1
	InputTypeStereo InputType = 2
)

func (t InputType) portKind() (mixer.PortKind, bool) {
	switch t {
	case InputTypeNone:
		return mixer.PortsNone, true
	case InputTypeMono:
		return mixer.PortsMono, true
	case InputTypeStereo:
		return mixer.PortsStereo, true
	}
	return 0, false
}

func inputTypeOf(k mixer.PortKind) InputType {
	switch k {
	case mixer.PortsMono:
		return InputTypeMono
	case mixer.PortsStereo:
		return InputTypeStereo
	default:
		return InputTypeNone
	}
}

// Input is the API model for GET /api/inputs[/:id].
// left_port_path carries the mono path or the stereo left path.
type Input struct {
	ID                    uint32    `json:"id"`
	Name                  string    `json:"name"`
	InputType             InputType `json:"input_type"`
	LeftPortPath          *string   `json:"left_port_path,omitempty"`
	RightPortPath         *string   `json:"right_port_path,omitempty"`
	GroupChannelStripName string    `json:"group_channel_strip_name"`
}

func FromInput(in mixer.Input) Input {
	return Input{
		ID:                    in.ID,
		Name:                  in.Name,
		InputType:             inputTypeOf(in.Ports.Kind()),
		LeftPortPath:          optional(in.Ports.Left()),
		RightPortPath:         optional(in.Ports.Right()),
		GroupChannelStripName: in.GroupChannelStripName,
	}
}

func FromInputs(ins []mixer.Input) []Input { return mapAll(ins, FromInput) }

// InputNameUpdate is the body of PUT /api/inputs/:id/name.
type InputNameUpdate struct {
	Name jsonx.Field[string] `json:"name"` // required; string (may be empty)
}

func (req InputNameUpdate) Validate() (string, error) {
	if !req.Name.IsSet() || req.Name.IsNull() {
		return "", invalid("name is required")
	}
	return req.Name.Get(), nil
}

// InputPortsUpdate is the body of PUT /api/inputs/:id/ports.
type InputPortsUpdate struct {
	InputType     InputType `json:"input_type"`      // optional; 0 | 1 | 2            (default: 0)
	LeftPortPath  *string   `json:"left_port_path"`  // optional; string | null       (required for 1, 2)
	RightPortPath *string   `json:"right_port_path"` // optional; string | null       (required for 2)
}

// ToAssignment maps the wire request to a registry assignment.
// Path presence is checked by the registry; only the type code is checked here.
func (req InputPortsUpdate) ToAssignment() (registry.PortAssignment, error) {
	kind, ok := req.InputType.portKind()
	if !ok {
		return registry.PortAssignment{}, invalid("unknown input_type %d", req.InputType)
	}
	return registry.PortAssignment{Kind: kind, Left: req.LeftPortPath, Right: req.RightPortPath}, nil
}
