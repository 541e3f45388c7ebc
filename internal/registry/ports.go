package registry

import (
	"fmt"
	"slices"

	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"go.uber.org/zap"
)

// PortAssignment is a requested port binding change in wire shape: a kind plus
// optional paths. The registry validates it into a mixer.PortBinding.
type PortAssignment struct {
	Kind  mixer.PortKind
	Left  *string
	Right *string
}

// ClearPorts returns an assignment that unbinds a channel.
func ClearPorts() PortAssignment { return PortAssignment{Kind: mixer.PortsNone} }

// AssignMono returns a single-path assignment.
func AssignMono(path string) PortAssignment {
	return PortAssignment{Kind: mixer.PortsMono, Left: &path}
}

// AssignStereo returns a two-path assignment.
func AssignStereo(left, right string) PortAssignment {
	return PortAssignment{Kind: mixer.PortsStereo, Left: &left, Right: &right}
}

func (a PortAssignment) binding() (mixer.PortBinding, error) {
	b, err := mixer.NewPortBinding(a.Kind, a.Left, a.Right)
	if err != nil {
		return mixer.PortBinding{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return b, nil
}

// Inputs returns every input in insertion order.
func (r *Registry) Inputs() []mixer.Input { return list(&r.mu, &r.inputs) }

// Input returns the first input with the given id.
func (r *Registry) Input(id uint32) (mixer.Input, error) {
	return getByID(&r.mu, &r.inputs, id, inputID)
}

// Outputs returns every output in insertion order.
func (r *Registry) Outputs() []mixer.Output { return list(&r.mu, &r.outputs) }

// Output returns the first output with the given id.
func (r *Registry) Output(id uint32) (mixer.Output, error) {
	return getByID(&r.mu, &r.outputs, id, outputID)
}

// UpdateInputName renames an input in place and publishes an inputs snapshot.
func (r *Registry) UpdateInputName(id uint32, name string) (mixer.Input, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := find(r.inputs, id, inputID)
	if i < 0 {
		return mixer.Input{}, ErrNotFound
	}
	r.inputs[i].Name = name
	r.publishInputs()

	r.log.Debug("input renamed", zap.Uint32("id", id), zap.String("name", name))
	return r.inputs[i], nil
}

// UpdateInputPorts validates the assignment, rebinds the input and publishes an
// inputs snapshot. A malformed assignment fails before the id is looked up.
func (r *Registry) UpdateInputPorts(id uint32, a PortAssignment) (mixer.Input, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := a.binding()
	if err != nil {
		return mixer.Input{}, err
	}
	i := find(r.inputs, id, inputID)
	if i < 0 {
		return mixer.Input{}, ErrNotFound
	}
	r.inputs[i].Ports = b
	r.publishInputs()

	r.log.Debug("input ports updated", zap.Uint32("id", id), zap.Stringer("ports", b))
	return r.inputs[i], nil
}

// UpdateOutputPorts validates the assignment, rebinds the output and publishes an
// outputs snapshot.
func (r *Registry) UpdateOutputPorts(id uint32, a PortAssignment) (mixer.Output, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := a.binding()
	if err != nil {
		return mixer.Output{}, err
	}
	i := find(r.outputs, id, outputID)
	if i < 0 {
		return mixer.Output{}, ErrNotFound
	}
	r.outputs[i].Ports = b
	r.publishOutputs()

	r.log.Debug("output ports updated", zap.Uint32("id", id), zap.Stringer("ports", b))
	return r.outputs[i], nil
}

// publishInputs pushes a full inputs copy. Caller must hold the write lock.
func (r *Registry) publishInputs() { r.inputsPub.Push(slices.Clone(r.inputs)) }

// publishOutputs pushes a full outputs copy. Caller must hold the write lock.
func (r *Registry) publishOutputs() { r.outputsPub.Push(slices.Clone(r.outputs)) }
