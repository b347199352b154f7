package models

// WeaponHEGrenade is the weapon id the host reports for high-explosive
// grenade damage, the only area-damage weapon whose hits are aggregated
const WeaponHEGrenade = "hegrenade"

// IsAreaDamage reports whether hits from weapon are summed per attacker
// instead of shown one by one
func IsAreaDamage(weapon string) bool {
	return weapon == WeaponHEGrenade
}

// HitGroup is the body region code the host reports for a hit
type HitGroup int

const (
	HitGroupGeneric  HitGroup = 0
	HitGroupHead     HitGroup = 1
	HitGroupChest    HitGroup = 2
	HitGroupStomach  HitGroup = 3
	HitGroupLeftArm  HitGroup = 4
	HitGroupRightArm HitGroup = 5
	HitGroupLeftLeg  HitGroup = 6
	HitGroupRightLeg HitGroup = 7
	HitGroupGear     HitGroup = 10
)

var hitGroupLabels = map[HitGroup]string{
	HitGroupHead:     "Head",
	HitGroupChest:    "Chest",
	HitGroupStomach:  "Stomach",
	HitGroupLeftArm:  "Left Arm",
	HitGroupRightArm: "Right Arm",
	HitGroupLeftLeg:  "Left Leg",
	HitGroupRightLeg: "Right Leg",
	HitGroupGear:     "Gear",
}

// String returns the human readable label, "Unknown" for unmapped codes
func (h HitGroup) String() string {
	if label, ok := hitGroupLabels[h]; ok {
		return label
	}
	return "Unknown"
}
