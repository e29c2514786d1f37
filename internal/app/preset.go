package app

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"

	"cube-tweaks/internal/engineconfig"
	"cube-tweaks/internal/params"
)

var presetConverters = []copier.TypeConverter{
	{
		SrcType: copier.String,
		DstType: color.RGBA{},
		Fn: func(src any) (any, error) {
			return params.ParseColor(src.(string))
		},
	},
	{
		SrcType: color.RGBA{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return params.FormatColor(src.(color.RGBA)), nil
		},
	},
}

// StateFromPreset converts the config file form into panel State.
func StateFromPreset(p engineconfig.DebugPreset) (params.State, error) {
	var s params.State
	if err := copier.CopyWithOption(&s, &p, copier.Option{Converters: presetConverters}); err != nil {
		return params.State{}, fmt.Errorf("app: preset: %w", err)
	}
	return s, nil
}

// PresetFromState converts panel State into the config file form.
func PresetFromState(s params.State) (engineconfig.DebugPreset, error) {
	var p engineconfig.DebugPreset
	if err := copier.CopyWithOption(&p, &s, copier.Option{Converters: presetConverters}); err != nil {
		return engineconfig.DebugPreset{}, fmt.Errorf("app: preset: %w", err)
	}
	return p, nil
}

// Preset returns the current State in config file form.
func (a *App) Preset() engineconfig.DebugPreset {
	p, err := PresetFromState(a.State)
	if err != nil {
		a.log.Warn("preset", "err", err)
	}
	return p
}
