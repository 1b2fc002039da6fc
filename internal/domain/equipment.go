package domain

import (
	"encoding/json"
	"fmt"
)

// EquipmentSlot is the closed set of places a stat bonus can be attached to
type EquipmentSlot string

const (
	SlotWeapon   EquipmentSlot = "weapon"
	SlotArmor    EquipmentSlot = "armor"
	SlotHelmet   EquipmentSlot = "helmet"
	SlotShield   EquipmentSlot = "shield"
	SlotBoots    EquipmentSlot = "boots"
	SlotNecklace EquipmentSlot = "necklace"
	SlotEarrings EquipmentSlot = "earrings"
	SlotBracelet EquipmentSlot = "bracelet"
)

// MaxStatDelta bounds each field of a StatDelta in either direction
const MaxStatDelta = 1000

// EquipmentSlots lists every valid slot in display order
var EquipmentSlots = []EquipmentSlot{
	SlotWeapon, SlotArmor, SlotHelmet, SlotShield,
	SlotBoots, SlotNecklace, SlotEarrings, SlotBracelet,
}

// ParseEquipmentSlot validates a slot name coming from the outside
func ParseEquipmentSlot(s string) (EquipmentSlot, error) {
	for _, slot := range EquipmentSlots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// StatDelta is the fixed set of numeric bonuses an equipped item grants
type StatDelta struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	MaxHP      int `json:"max_hp"`
	MaxStamina int `json:"max_stamina"`
}

// Validate checks every field stays within MaxStatDelta
func (d StatDelta) Validate() error {
	for name, v := range map[string]int{
		"attack":      d.Attack,
		"defense":     d.Defense,
		"max_hp":      d.MaxHP,
		"max_stamina": d.MaxStamina,
	} {
		if v > MaxStatDelta || v < -MaxStatDelta {
			return fmt.Errorf("%w: %s=%d out of range", ErrInvalidStatDelta, name, v)
		}
	}
	return nil
}

// Plus adds two deltas field by field
func (d StatDelta) Plus(o StatDelta) StatDelta {
	return StatDelta{
		Attack:     d.Attack + o.Attack,
		Defense:    d.Defense + o.Defense,
		MaxHP:      d.MaxHP + o.MaxHP,
		MaxStamina: d.MaxStamina + o.MaxStamina,
	}
}

// Equipment maps each occupied slot to its bonus
type Equipment map[EquipmentSlot]StatDelta

// Total sums the bonuses of every occupied slot
func (e Equipment) Total() StatDelta {
	var total StatDelta
	for _, d := range e {
		total = total.Plus(d)
	}
	return total
}

// MarshalEquipment converts Equipment to JSONB
func MarshalEquipment(e Equipment) ([]byte, error) {
	if e == nil {
		e = Equipment{}
	}
	return json.Marshal(e)
}

// UnmarshalEquipment converts JSONB to Equipment
func UnmarshalEquipment(data []byte) (Equipment, error) {
	e := Equipment{}
	if len(data) == 0 {
		return e, nil
	}
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return e, nil
}
