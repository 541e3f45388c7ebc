package registry

import (
	"fmt"

	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"go.uber.org/zap"
)

// ChannelStripSpec is a channel strip registration in wire shape.
type ChannelStripSpec struct {
	ID         uint32
	Name       string
	Kind       mixer.StripKind
	Slots      mixer.PluginSlots
	CrossFader *uint32 // required for StripCrossFaded
}

// RegisterPlugin appends a plugin and returns the stored copy.
func (r *Registry) RegisterPlugin(p mixer.Plugin) mixer.Plugin {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plugins = append(r.plugins, p)
	r.log.Debug("plugin registered", zap.Uint32("id", p.ID), zap.String("uri", p.URI))
	return p
}

// RegisterChannelStrip validates the variant, appends the strip and returns the stored copy.
func (r *Registry) RegisterChannelStrip(spec ChannelStripSpec) (mixer.ChannelStrip, error) {
	variant, err := mixer.NewStripVariant(spec.Kind, spec.Slots, spec.CrossFader)
	if err != nil {
		return mixer.ChannelStrip{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	cs := mixer.ChannelStrip{ID: spec.ID, Name: spec.Name, Variant: variant}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.channelStrips = append(r.channelStrips, cs)
	r.log.Debug("channel strip registered", zap.Uint32("id", cs.ID), zap.Stringer("kind", variant.Kind()))
	return cs, nil
}

// RegisterLooper appends a looper derived from its loop number.
func (r *Registry) RegisterLooper(loopNumber uint32) mixer.Looper {
	l := mixer.NewLooper(loopNumber)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.loopers = append(r.loopers, l)
	r.log.Debug("looper registered", zap.Uint32("id", l.ID))
	return l
}

// RegisterOutputStage appends an output stage and returns the stored copy.
func (r *Registry) RegisterOutputStage(st mixer.OutputStage) mixer.OutputStage {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outputStages = append(r.outputStages, st)
	r.log.Debug("output stage registered", zap.Uint32("id", st.ID), zap.String("name", st.Name))
	return st
}

func (r *Registry) Plugins() []mixer.Plugin { return list(&r.mu, &r.plugins) }

func (r *Registry) Plugin(id uint32) (mixer.Plugin, error) {
	return getByID(&r.mu, &r.plugins, id, pluginID)
}

func (r *Registry) ChannelStrips() []mixer.ChannelStrip { return list(&r.mu, &r.channelStrips) }

func (r *Registry) ChannelStrip(id uint32) (mixer.ChannelStrip, error) {
	return getByID(&r.mu, &r.channelStrips, id, stripID)
}

func (r *Registry) Loopers() []mixer.Looper { return list(&r.mu, &r.loopers) }

func (r *Registry) Looper(id uint32) (mixer.Looper, error) {
	return getByID(&r.mu, &r.loopers, id, looperID)
}

func (r *Registry) OutputStages() []mixer.OutputStage { return list(&r.mu, &r.outputStages) }

func (r *Registry) OutputStage(id uint32) (mixer.OutputStage, error) {
	return getByID(&r.mu, &r.outputStages, id, stageID)
}
