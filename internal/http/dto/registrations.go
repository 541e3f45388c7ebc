package dto

import (
	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/edirooss/pmx-registry/pkg/jsonx"
)

// ---------- Plugins ----------

// PluginType is the wire code of a plugin format.
type PluginType int32

const PluginTypeLv2 PluginType = 0

// Plugin is the API model for /api/plugins, used for both request and response.
type Plugin struct {
	ID         uint32     `json:"id"`
	ModHostID  uint32     `json:"mod_host_id"`
	Name       string     `json:"name"`
	PluginURI  string     `json:"plugin_uri"`
	PluginType PluginType `json:"plugin_type"` // 0 (lv2)
}

func FromPlugin(p mixer.Plugin) Plugin {
	return Plugin{ID: p.ID, ModHostID: p.ModHostID, Name: p.Name, PluginURI: p.URI, PluginType: PluginTypeLv2}
}

func FromPlugins(ps []mixer.Plugin) []Plugin { return mapAll(ps, FromPlugin) }

func (req Plugin) ToPlugin() (mixer.Plugin, error) {
	if req.PluginType != PluginTypeLv2 {
		return mixer.Plugin{}, invalid("unknown plugin_type %d", req.PluginType)
	}
	return mixer.Plugin{ID: req.ID, ModHostID: req.ModHostID, Name: req.Name, URI: req.PluginURI, Kind: mixer.PluginLv2}, nil
}

// ---------- Channel strips ----------

// ChannelStripType is the wire code of a channel strip variant.
type ChannelStripType int32

const (
	ChannelStripTypeBasic      ChannelStripType = 0
	ChannelStripTypeCrossFaded ChannelStripType = 1
)

// ChannelStrip is the API model for /api/channel-strips, used for both request and response.
type ChannelStrip struct {
	ID                 uint32           `json:"id"`
	Name               string           `json:"name"`
	ChannelStripType   ChannelStripType `json:"channel_strip_type"`              // 0 (basic) | 1 (cross_faded)
	CrossFaderPluginID *uint32          `json:"cross_fader_plugin_id,omitempty"` // required for cross_faded
	SaturatorPluginID  uint32           `json:"saturator_plugin_id"`
	CompressorPluginID uint32           `json:"compressor_plugin_id"`
	EqualizerPluginID  uint32           `json:"equalizer_plugin_id"`
	GainPluginID       uint32           `json:"gain_plugin_id"`
}

func FromChannelStrip(cs mixer.ChannelStrip) ChannelStrip {
	slots := cs.Variant.Slots()
	res := ChannelStrip{
		ID:                 cs.ID,
		Name:               cs.Name,
		ChannelStripType:   ChannelStripTypeBasic,
		SaturatorPluginID:  slots.Saturator,
		CompressorPluginID: slots.Compressor,
		EqualizerPluginID:  slots.Equalizer,
		GainPluginID:       slots.Gain,
	}
	if xf, ok := cs.Variant.CrossFader(); ok {
		res.ChannelStripType = ChannelStripTypeCrossFaded
		res.CrossFaderPluginID = &xf
	}
	return res
}

func FromChannelStrips(css []mixer.ChannelStrip) []ChannelStrip { return mapAll(css, FromChannelStrip) }

// ToSpec maps the request to a registration. A cross-faded strip without a
// fader id is rejected by the registry.
func (req ChannelStrip) ToSpec() (registry.ChannelStripSpec, error) {
	var kind mixer.StripKind
	switch req.ChannelStripType {
	case ChannelStripTypeBasic:
		kind = mixer.StripBasic
	case ChannelStripTypeCrossFaded:
		kind = mixer.StripCrossFaded
	default:
		return registry.ChannelStripSpec{}, invalid("unknown channel_strip_type %d", req.ChannelStripType)
	}
	return registry.ChannelStripSpec{
		ID:   req.ID,
		Name: req.Name,
		Kind: kind,
		Slots: mixer.PluginSlots{
			Saturator:  req.SaturatorPluginID,
			Compressor: req.CompressorPluginID,
			Equalizer:  req.EqualizerPluginID,
			Gain:       req.GainPluginID,
		},
		CrossFader: req.CrossFaderPluginID,
	}, nil
}

// ---------- Loopers ----------

type Looper struct {
	ID         uint32 `json:"id"`
	Name       string `json:"name"`
	LoopNumber uint32 `json:"loop_number"`
}

func FromLooper(l mixer.Looper) Looper {
	return Looper{ID: l.ID, Name: l.Name, LoopNumber: l.LoopNumber}
}

func FromLoopers(ls []mixer.Looper) []Looper { return mapAll(ls, FromLooper) }

// LooperCreate is the body of POST /api/loopers. Id and name are derived.
type LooperCreate struct {
	LoopNumber jsonx.Field[uint32] `json:"loop_number"` // required; uint32
}

func (req LooperCreate) Validate() (uint32, error) {
	if req.LoopNumber.Value() == nil {
		return 0, invalid("loop_number is required")
	}
	return req.LoopNumber.Get(), nil
}

// ---------- Output stages ----------

// OutputStage is the API model for /api/output-stages, used for both request and response.
type OutputStage struct {
	ID                  uint32 `json:"id"` // optional on create (default: 0)
	Name                string `json:"name"`
	LeftChannelStripID  uint32 `json:"left_channel_strip_id"`
	RightChannelStripID uint32 `json:"right_channel_strip_id"`
	CrossFaderPluginID  uint32 `json:"cross_fader_plugin_id"`
}

func FromOutputStage(st mixer.OutputStage) OutputStage { return OutputStage(st) }

func FromOutputStages(sts []mixer.OutputStage) []OutputStage { return mapAll(sts, FromOutputStage) }

func (req OutputStage) ToOutputStage() mixer.OutputStage { return mixer.OutputStage(req) }

func mapAll[S, D any](src []S, f func(S) D) []D {
	out := make([]D, len(src))
	for i := range src {
		out[i] = f(src[i])
	}
	return out
}
