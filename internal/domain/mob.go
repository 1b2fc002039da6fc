package domain

// Mob is a catalog monster that attack works can target
type Mob struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Level    int      `json:"level" yaml:"level"`
	HP       int      `json:"hp" yaml:"hp"`
	Attack   int      `json:"attack" yaml:"attack"`
	Exp      int      `json:"exp" yaml:"exp"`
	Yang     int      `json:"yang" yaml:"yang"`
	Position Position `json:"position" yaml:"position"`
}

// Snapshot copies the mob's stats into a work target
func (m Mob) Snapshot() *MobSnapshot {
	return &MobSnapshot{
		ID:       m.ID,
		Name:     m.Name,
		Type:     m.Type,
		Level:    m.Level,
		HP:       m.HP,
		Attack:   m.Attack,
		Exp:      m.Exp,
		Yang:     m.Yang,
		Position: m.Position,
	}
}
