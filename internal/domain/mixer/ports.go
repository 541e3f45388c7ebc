package mixer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PortKind tags the shape of a PortBinding.
type PortKind uint8

const (
	PortsNone   PortKind = iota // no physical endpoint
	PortsMono                   // one path
	PortsStereo                 // left + right paths
)

func (k PortKind) String() string {
	switch k {
	case PortsNone:
		return "none"
	case PortsMono:
		return "mono"
	case PortsStereo:
		return "stereo"
	default:
		return fmt.Sprintf("PortKind(%d)", uint8(k))
	}
}

// PortBinding associates a mixer channel with zero, one or two PipeWire port paths.
//
// It is a closed sum type: the zero value is Unbound, and the only way to build a
// bound value is through Mono, Stereo or NewPortBinding. Because the fields are
// unexported a Mono binding always carries exactly one path and a Stereo binding
// exactly two. Values are comparable with ==.
type PortBinding struct {
	kind  PortKind
	left  string
	right string
}

// Unbound returns a binding with no ports.
func Unbound() PortBinding { return PortBinding{} }

// Mono returns a single-path binding.
func Mono(path string) PortBinding { return PortBinding{kind: PortsMono, left: path} }

// Stereo returns a two-path binding.
func Stereo(left, right string) PortBinding {
	return PortBinding{kind: PortsStereo, left: left, right: right}
}

// NewPortBinding builds a binding of the requested kind from optional paths.
//
// Shape rules:
//   - PortsNone: both paths ignored.
//   - PortsMono: left is required; right is ignored (callers collapse to left).
//   - PortsStereo: left and right are both required.
//
// A nil or empty path counts as missing. Violations wrap ErrInvalidPortBinding.
func NewPortBinding(kind PortKind, left, right *string) (PortBinding, error) {
	switch kind {
	case PortsNone:
		return Unbound(), nil
	case PortsMono:
		if !present(left) {
			return PortBinding{}, fmt.Errorf("%w: mono binding requires a left port path", ErrInvalidPortBinding)
		}
		return Mono(*left), nil
	case PortsStereo:
		if !present(left) || !present(right) {
			return PortBinding{}, fmt.Errorf("%w: stereo binding requires left and right port paths", ErrInvalidPortBinding)
		}
		return Stereo(*left, *right), nil
	default:
		return PortBinding{}, fmt.Errorf("%w: unknown port kind %d", ErrInvalidPortBinding, uint8(kind))
	}
}

func present(p *string) bool { return p != nil && *p != "" }

func (p PortBinding) Kind() PortKind { return p.kind }

// Left returns the mono path or the stereo left path.
func (p PortBinding) Left() (string, bool) {
	if p.kind == PortsNone {
		return "", false
	}
	return p.left, true
}

// Right returns the stereo right path.
func (p PortBinding) Right() (string, bool) {
	if p.kind != PortsStereo {
		return "", false
	}
	return p.right, true
}

func (p PortBinding) String() string {
	switch p.kind {
	case PortsMono:
		return fmt.Sprintf("Mono(%q)", p.left)
	case PortsStereo:
		return fmt.Sprintf("Stereo(%q, %q)", p.left, p.right)
	default:
		return "Unbound"
	}
}

// MarshalJSON encodes the binding in the externally tagged layout used by the
// persisted data files: "None", {"Mono":"path"} or {"Stereo":["left","right"]}.
func (p PortBinding) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case PortsNone:
		return []byte(`"None"`), nil
	case PortsMono:
		return json.Marshal(map[string]string{"Mono": p.left})
	case PortsStereo:
		return json.Marshal(map[string][2]string{"Stereo": {p.left, p.right}})
	default:
		return nil, fmt.Errorf("%w: unknown port kind %d", ErrInvalidPortBinding, uint8(p.kind))
	}
}

// UnmarshalJSON accepts the layouts written by MarshalJSON, plus {"None":{}} and
// {"None":null} found in older data files. Null or empty paths are rejected,
// as is anything else.
func (p *PortBinding) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	var tag string
	if err := json.Unmarshal(b, &tag); err == nil {
		if tag != "None" {
			return fmt.Errorf("%w: unknown unit variant %q", ErrInvalidPortBinding, tag)
		}
		*p = Unbound()
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortBinding, err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidPortBinding, len(obj))
	}

	for variant, raw := range obj {
		switch variant {
		case "None":
			*p = Unbound()
			return nil
		case "Mono":
			var path string
			if err := json.Unmarshal(raw, &path); err != nil {
				return fmt.Errorf("%w: mono: %v", ErrInvalidPortBinding, err)
			}
			if path == "" {
				return fmt.Errorf("%w: mono: path missing", ErrInvalidPortBinding)
			}
			*p = Mono(path)
			return nil
		case "Stereo":
			var paths [2]string
			if err := strictPair(raw, &paths); err != nil {
				return fmt.Errorf("%w: stereo: %v", ErrInvalidPortBinding, err)
			}
			*p = Stereo(paths[0], paths[1])
			return nil
		default:
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidPortBinding, variant)
		}
	}
	return nil // unreachable
}

// strictPair decodes a JSON array of exactly two non-empty strings.
func strictPair(raw json.RawMessage, dst *[2]string) error {
	var paths []string
	if err := json.Unmarshal(raw, &paths); err != nil {
		return err
	}
	if len(paths) != 2 {
		return fmt.Errorf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] == "" || paths[1] == "" {
		return fmt.Errorf("empty path")
	}
	dst[0], dst[1] = paths[0], paths[1]
	return nil
}
