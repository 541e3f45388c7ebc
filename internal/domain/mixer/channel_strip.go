package mixer

import "fmt"

// ChannelStrip is a named processing chain with fixed plugin slots.
type ChannelStrip struct {
	ID      uint32
	Name    string
	Variant StripVariant
}

// StripKind tags the shape of a StripVariant.
type StripKind uint8

const (
	StripBasic StripKind = iota
	StripCrossFaded
)

func (k StripKind) String() string {
	switch k {
	case StripBasic:
		return "basic"
	case StripCrossFaded:
		return "cross_faded"
	default:
		return fmt.Sprintf("StripKind(%d)", uint8(k))
	}
}

// PluginSlots holds the plugin ids every strip variant carries.
type PluginSlots struct {
	Saturator  uint32
	Compressor uint32
	Equalizer  uint32
	Gain       uint32
}

// StripVariant is a closed sum type: Basic carries the four common slots,
// CrossFaded additionally carries a cross-fader plugin id.
type StripVariant struct {
	kind       StripKind
	slots      PluginSlots
	crossFader uint32
}

func Basic(slots PluginSlots) StripVariant {
	return StripVariant{kind: StripBasic, slots: slots}
}

func CrossFaded(slots PluginSlots, crossFader uint32) StripVariant {
	return StripVariant{kind: StripCrossFaded, slots: slots, crossFader: crossFader}
}

// NewStripVariant builds a variant from wire-level fields.
// CrossFaded requires crossFader; Basic ignores it.
func NewStripVariant(kind StripKind, slots PluginSlots, crossFader *uint32) (StripVariant, error) {
	switch kind {
	case StripBasic:
		return Basic(slots), nil
	case StripCrossFaded:
		if crossFader == nil {
			return StripVariant{}, fmt.Errorf("%w: cross_faded strip requires a cross-fader plugin id", ErrInvalidChannelStrip)
		}
		return CrossFaded(slots, *crossFader), nil
	default:
		return StripVariant{}, fmt.Errorf("%w: unknown strip kind %d", ErrInvalidChannelStrip, uint8(kind))
	}
}

func (v StripVariant) Kind() StripKind    { return v.kind }
func (v StripVariant) Slots() PluginSlots { return v.slots }

// CrossFader returns the cross-fader plugin id of a CrossFaded strip.
func (v StripVariant) CrossFader() (uint32, bool) {
	if v.kind != StripCrossFaded {
		return 0, false
	}
	return v.crossFader, true
}

// PluginIDs lists every referenced plugin id, cross-fader last.
func (v StripVariant) PluginIDs() []uint32 {
	ids := []uint32{v.slots.Saturator, v.slots.Compressor, v.slots.Equalizer, v.slots.Gain}
	if v.kind == StripCrossFaded {
		ids = append(ids, v.crossFader)
	}
	return ids
}
