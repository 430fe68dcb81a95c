package battle

import "strings"

// Preset is a named defender bonus schedule.
type Preset struct {
	Name        string
	Description string
	Schedule    BonusSchedule
}

const (
	PresetClassic       = "classic"
	PresetBunker        = "bunker"
	PresetFortification = "fortification"
	PresetAmmoShortage  = "ammo_shortage"
)

// Presets returns the built-in rule presets in display order.
func Presets() []Preset {
	return []Preset{
		{Name: PresetClassic, Description: "Standard rules, no defender bonus."},
		{Name: PresetBunker, Description: "Defender adds 1 to its highest die.", Schedule: BonusSchedule{1}},
		{Name: PresetFortification, Description: "Defender adds 1 to both dice.", Schedule: BonusSchedule{1, 1}},
		{Name: PresetAmmoShortage, Description: "Defender subtracts 1 from its highest die.", Schedule: BonusSchedule{-1}},
	}
}

// PresetByName looks up a preset, ignoring case and surrounding space.
func PresetByName(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, preset := range Presets() {
		if preset.Name == name {
			return preset, nil
		}
	}
	return Preset{}, ErrUnknownPreset
}

// ResolveSchedule picks the schedule for a request that may name a preset
// or carry an explicit bonus list, but not both.
func ResolveSchedule(preset string, bonus []int) (BonusSchedule, error) {
	if strings.TrimSpace(preset) == "" {
		return BonusSchedule(bonus).Normalize(), nil
	}
	if len(bonus) > 0 {
		return nil, ErrPresetWithBonus
	}
	p, err := PresetByName(preset)
	if err != nil {
		return nil, err
	}
	return p.Schedule.Normalize(), nil
}
