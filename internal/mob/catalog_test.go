package mob

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/validation"
)

const sampleCatalog = `
version: "1.0"
mobs:
  - id: wolf
    name: Wolf
    type: beast
    level: 3
    hp: 100
    attack: 10
    exp: 50
    yang: 50
    position: {x: 120, y: 80}
  - id: wild_dog
    name: Wild Dog
    type: beast
    level: 1
    hp: 60
    attack: 6
    exp: 20
    yang: 15
    position: {x: 40, y: 25}
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog), validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, "1.0", c.Version())

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "wild_dog", list[0].ID, "sorted by level")
	assert.Equal(t, "wolf", list[1].ID)

	wolf, err := c.Get("wolf")
	require.NoError(t, err)
	assert.Equal(t, 100, wolf.HP)
	assert.Equal(t, domain.Position{X: 120, Y: 80}, wolf.Position)
}

func TestGet_Unknown(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog), validation.NewSchemaValidator())
	require.NoError(t, err)

	_, err = c.Get("dragon")
	assert.ErrorIs(t, err, domain.ErrMobNotFound)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing mobs", `version: "1.0"`},
		{"negative hp", `
version: "1.0"
mobs:
  - {id: rat, name: Rat, type: beast, level: 1, hp: -4, attack: 1, exp: 1, yang: 1, position: {x: 0, y: 0}}
`},
		{"unknown type", `
version: "1.0"
mobs:
  - {id: rat, name: Rat, type: fish, level: 1, hp: 4, attack: 1, exp: 1, yang: 1, position: {x: 0, y: 0}}
`},
		{"unexpected field", `
version: "1.0"
mobs:
  - {id: rat, name: Rat, type: beast, level: 1, hp: 4, attack: 1, exp: 1, yang: 1, speed: 9, position: {x: 0, y: 0}}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), validation.NewSchemaValidator())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid mob catalog")
		})
	}
}

func TestParse_DuplicateIDs(t *testing.T) {
	doc := `
version: "1.0"
mobs:
  - {id: rat, name: Rat, type: beast, level: 1, hp: 4, attack: 1, exp: 1, yang: 1, position: {x: 0, y: 0}}
  - {id: rat, name: Big Rat, type: beast, level: 2, hp: 8, attack: 2, exp: 2, yang: 2, position: {x: 1, y: 1}}
`
	_, err := Parse([]byte(doc), validation.NewSchemaValidator())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestLoad_ShippedCatalog(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "mobs.yaml"), validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.NotEmpty(t, c.List())

	wolf, err := c.Get("wolf")
	require.NoError(t, err)
	assert.Equal(t, 50, wolf.Exp)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), validation.NewSchemaValidator())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
