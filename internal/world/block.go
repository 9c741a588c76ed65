package world

// BlockType tags the material of a block cell.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeSand
	BlockTypeWater
	BlockTypeWood
	BlockTypeLeaves
	BlockTypeGlass
	BlockTypeSnow
)

// SeeThrough reports whether a visibility sampling ray passes through the
// block without registering a surface.
func (t BlockType) SeeThrough() bool {
	switch t {
	case BlockTypeAir, BlockTypeWater, BlockTypeGlass:
		return true
	default:
		return false
	}
}

func (t BlockType) String() string {
	switch t {
	case BlockTypeAir:
		return "air"
	case BlockTypeStone:
		return "stone"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeGrass:
		return "grass"
	case BlockTypeSand:
		return "sand"
	case BlockTypeWater:
		return "water"
	case BlockTypeWood:
		return "wood"
	case BlockTypeLeaves:
		return "leaves"
	case BlockTypeGlass:
		return "glass"
	case BlockTypeSnow:
		return "snow"
	default:
		return "unknown"
	}
}
