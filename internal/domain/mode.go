package domain

import "strings"

// Transport mode of a leg.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeGlobal Mode = "global"
)

// ParseMode accepts the wire names "local" and "global".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLocal, ModeGlobal:
		return m, nil
	}
	return "", &InvalidModeError{Mode: s}
}

// DistanceSource records which strategy produced a leg's distance.
type DistanceSource string

const (
	SourceLiveRoute           DistanceSource = "live_route"
	SourceGreatCircleEstimate DistanceSource = "great_circle_estimate"
)

// EquipmentAge selects the emission policy used for the final total.
type EquipmentAge string

const (
	EquipmentOld EquipmentAge = "Old"
	EquipmentNew EquipmentAge = "New"
)

// ParseEquipmentAge is case-insensitive; anything other than old/new is rejected.
func ParseEquipmentAge(s string) (EquipmentAge, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "old":
		return EquipmentOld, true
	case "new":
		return EquipmentNew, true
	}
	return "", false
}
