package config

import "github.com/edirooss/pmx-registry/internal/domain/mixer"

// DefaultInputs is the built-in input set used when no inputs snapshot exists.
// Consumed only by the bootstrap loader.
func DefaultInputs() []mixer.Input {
	return []mixer.Input{
		{ID: 1, Name: "DSMPL", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
		{ID: 2, Name: "DFire", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
		{ID: 3, Name: "DEuro", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
		{ID: 4, Name: "Prophet rev2", Ports: mixer.Unbound(), GroupChannelStripName: "Melody"},
		{ID: 5, Name: "SE02", Ports: mixer.Unbound(), GroupChannelStripName: "Bass"},
		{ID: 6, Name: "Torso S4", Ports: mixer.Unbound(), GroupChannelStripName: "Atmos"},
		{ID: 7, Name: "opsix", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
		{ID: 8, Name: "System 1m", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
		{ID: 9, Name: "Cobalt 8m", Ports: mixer.Unbound(), GroupChannelStripName: "Drums"},
	}
}

// DefaultOutputs is the built-in output set used when no outputs snapshot exists.
// Consumed only by the bootstrap loader.
func DefaultOutputs() []mixer.Output {
	return []mixer.Output{
		{ID: 1, Name: "Main", Ports: mixer.Unbound(), Kind: mixer.OutputMain},
		{ID: 2, Name: "Cue", Ports: mixer.Unbound(), Kind: mixer.OutputCue},
		{ID: 3, Name: "Main 2", Ports: mixer.Unbound(), Kind: mixer.OutputMain},
	}
}
