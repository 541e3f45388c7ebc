package mixer

import (
	"encoding/json"
	"fmt"

	"github.com/edirooss/pmx-registry/pkg/jsonx"
)

// Persisted records must carry every key. A missing or null field is an error,
// never a zero value.

type inputRecord struct {
	ID                    jsonx.Field[uint32]      `json:"id"`
	Name                  jsonx.Field[string]      `json:"name"`
	Ports                 jsonx.Field[PortBinding] `json:"pipewire_ports"`
	GroupChannelStripName jsonx.Field[string]      `json:"group_channel_strip_name"`
}

func (in *Input) UnmarshalJSON(b []byte) error {
	var rec inputRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	if err := requireFields("input",
		field{"id", rec.ID.Value() != nil},
		field{"name", rec.Name.Value() != nil},
		field{"pipewire_ports", rec.Ports.Value() != nil},
		field{"group_channel_strip_name", rec.GroupChannelStripName.Value() != nil},
	); err != nil {
		return err
	}

	*in = Input{
		ID:                    rec.ID.Get(),
		Name:                  rec.Name.Get(),
		Ports:                 rec.Ports.Get(),
		GroupChannelStripName: rec.GroupChannelStripName.Get(),
	}
	return nil
}

type outputRecord struct {
	ID    jsonx.Field[uint32]      `json:"id"`
	Name  jsonx.Field[string]      `json:"name"`
	Ports jsonx.Field[PortBinding] `json:"pipewire_ports"`
	Kind  jsonx.Field[OutputKind]  `json:"output_type"`
}

func (out *Output) UnmarshalJSON(b []byte) error {
	var rec outputRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	if err := requireFields("output",
		field{"id", rec.ID.Value() != nil},
		field{"name", rec.Name.Value() != nil},
		field{"pipewire_ports", rec.Ports.Value() != nil},
		field{"output_type", rec.Kind.Value() != nil},
	); err != nil {
		return err
	}

	*out = Output{
		ID:    rec.ID.Get(),
		Name:  rec.Name.Get(),
		Ports: rec.Ports.Get(),
		Kind:  rec.Kind.Get(),
	}
	return nil
}

type field struct {
	key string
	ok  bool
}

func requireFields(entity string, fields ...field) error {
	for _, f := range fields {
		if !f.ok {
			return fmt.Errorf("%w: %s: %q missing or null", ErrIncompleteRecord, entity, f.key)
		}
	}
	return nil
}
