package world

// Variant selects an enemy's colour. It has no effect on behaviour.
type Variant uint8

const (
	VariantA Variant = iota
	VariantB
)

func (v Variant) String() string {
	if v == VariantB {
		return "B"
	}
	return "A"
}

// Enemy is one member of the formation. Enemies are only ever created in bulk
// when a session starts.
type Enemy struct {
	Entity
	Variant Variant
}

// EnemySpawn is one entry of a formation layout.
type EnemySpawn struct {
	X       int
	Y       int
	Variant Variant
}

// Classic layout geometry.
const (
	classicStartX   = 100
	classicStartY   = 120
	classicSpacingX = 60
	classicSpacingY = 40
)

// ClassicLayout returns the reference formation: three rows of ten, a row of
// nine and a row of eight stacked above them at half-spacing offsets, and two
// bosses in the top corners. 49 enemies in total.
func ClassicLayout() []EnemySpawn {
	spawns := make([]EnemySpawn, 0, 49)

	x, y := classicStartX, classicStartY
	for j := 0; j < 3; j++ {
		v := VariantA
		if j%2 != 0 {
			v = VariantB
		}
		for i := 0; i < 10; i++ {
			spawns = append(spawns, EnemySpawn{X: x + i*classicSpacingX, Y: y + j*classicSpacingY, Variant: v})
		}
	}

	x += classicSpacingX / 2
	y -= classicSpacingY
	for i := 0; i < 9; i++ {
		spawns = append(spawns, EnemySpawn{X: x + i*classicSpacingX, Y: y, Variant: VariantA})
	}

	x += classicSpacingX / 2
	y -= classicSpacingY
	for i := 0; i < 8; i++ {
		spawns = append(spawns, EnemySpawn{X: x + i*classicSpacingX, Y: y, Variant: VariantB})
	}

	// bosses
	spawns = append(spawns,
		EnemySpawn{X: 50, Y: 0, Variant: VariantA},
		EnemySpawn{X: 750, Y: 0, Variant: VariantA},
	)
	return spawns
}
