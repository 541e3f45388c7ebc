package mixer

import (
	"encoding/json"
	"fmt"
)

// Input is a physical source feeding the mixer (a synth, a drum machine, ...).
// Created at bootstrap; only Name and Ports change afterwards.
type Input struct {
	ID                    uint32      `json:"id"`                       //
	Name                  string      `json:"name"`                     //
	Ports                 PortBinding `json:"pipewire_ports"`           //
	GroupChannelStripName string      `json:"group_channel_strip_name"` // by name, not id
}

// Output is a physical destination (main mix or cue bus).
// Created at bootstrap; only Ports changes afterwards.
type Output struct {
	ID    uint32      `json:"id"`             //
	Name  string      `json:"name"`           //
	Ports PortBinding `json:"pipewire_ports"` //
	Kind  OutputKind  `json:"output_type"`    //
}

// OutputKind distinguishes main mix outputs from cue (headphone) outputs.
type OutputKind uint8

const (
	OutputMain OutputKind = iota
	OutputCue
)

func (k OutputKind) String() string {
	switch k {
	case OutputMain:
		return "Main"
	case OutputCue:
		return "Cue"
	default:
		return fmt.Sprintf("OutputKind(%d)", uint8(k))
	}
}

func (k OutputKind) MarshalJSON() ([]byte, error) {
	switch k {
	case OutputMain, OutputCue:
		return json.Marshal(k.String())
	default:
		return nil, fmt.Errorf("unknown output kind %d", uint8(k))
	}
}

func (k *OutputKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("output_type: %w", err)
	}
	switch s {
	case "Main":
		*k = OutputMain
	case "Cue":
		*k = OutputCue
	default:
		return fmt.Errorf("output_type: unknown variant %q", s)
	}
	return nil
}

// Plugin is an audio processor hosted by mod-host.
type Plugin struct {
	ID        uint32     `json:"id"`
	ModHostID uint32     `json:"mod_host_id"` // instance number inside mod-host
	Name      string     `json:"name"`
	URI       string     `json:"plugin_uri"`
	Kind      PluginKind `json:"plugin_type"`
}

// PluginKind is the plugin standard. Only LV2 is hosted today.
type PluginKind uint8

const (
	PluginLv2 PluginKind = iota
)

func (k PluginKind) String() string {
	switch k {
	case PluginLv2:
		return "Lv2"
	default:
		return fmt.Sprintf("PluginKind(%d)", uint8(k))
	}
}

// OutputStage pairs two channel strips behind a cross-fader.
// Referenced ids are not checked against their collections.
type OutputStage struct {
	ID                  uint32 `json:"id"`
	Name                string `json:"name"`
	LeftChannelStripID  uint32 `json:"left_channel_strip_id"`
	RightChannelStripID uint32 `json:"right_channel_strip_id"`
	CrossFaderPluginID  uint32 `json:"cross_fader_plugin_id"`
}

// Looper is a loop slot. Its id is the loop number.
type Looper struct {
	ID         uint32 `json:"id"`
	Name       string `json:"name"`
	LoopNumber uint32 `json:"loop_number"`
}

// NewLooper derives a looper from its loop number.
func NewLooper(loopNumber uint32) Looper {
	return Looper{
		ID:         loopNumber,
		Name:       fmt.Sprintf("loop_%d", loopNumber),
		LoopNumber: loopNumber,
	}
}
