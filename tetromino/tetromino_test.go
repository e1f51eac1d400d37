package tetromino_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/fptetris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	distinct := map[string]int{"O": 1, "S": 2, "Z": 2, "I": 2, "T": 4, "J": 4, "L": 4}

	require.Len(t, tetromino.Kinds(), 7)

	for _, kind := range tetromino.Kinds() {
		t.Run(kind.Name, func(t *testing.T) {
			assert.Equal(t, distinct[kind.Name], kind.DistinctRotations())
			assert.Len(t, kind.Centers, kind.DistinctRotations())
			assert.Contains(t, []int{0, 1}, kind.ColorIndex)

			for angle := tetromino.Deg0; angle <= tetromino.Deg270; angle++ {
				shape := kind.Shape(angle)
				require.Len(t, shape, kind.Size)

				cells := 0
				for _, row := range shape {
					require.Len(t, row, kind.Size)
					for _, cell := range row {
						assert.Contains(t, []uint8{0, 1}, cell)
						cells += int(cell)
					}
				}
				assert.Equal(t, 4, cells, "angle %d", angle)
			}
		})
	}
}

func TestShapeWrapsAngle(t *testing.T) {
	assert.Equal(t, tetromino.O.Shape(tetromino.Deg0), tetromino.O.Shape(tetromino.Deg270))
	assert.Equal(t, tetromino.S.Shape(tetromino.Deg0), tetromino.S.Shape(tetromino.Deg180))
	assert.Equal(t, tetromino.I.Shape(tetromino.Deg90), tetromino.I.Shape(tetromino.Deg270))
	assert.NotEqual(t, tetromino.T.Shape(tetromino.Deg0), tetromino.T.Shape(tetromino.Deg180))
	assert.Equal(t, tetromino.I.Center(tetromino.Deg90), tetromino.I.Center(tetromino.Deg270))
}

func TestVerticalOffset(t *testing.T) {
	assert.Equal(t, 2, tetromino.I.VerticalOffset)
	assert.Equal(t, 0, tetromino.O.VerticalOffset)
	for _, kind := range []*tetromino.Kind{tetromino.T, tetromino.J, tetromino.L, tetromino.S, tetromino.Z} {
		assert.Equal(t, 1, kind.VerticalOffset, kind.Name)
	}
}

func TestCenters(t *testing.T) {
	assert.Equal(t, tetromino.Point{X: 1, Y: 1}, tetromino.O.Center(tetromino.Deg0))
	assert.Equal(t, tetromino.Point{X: 2, Y: 2.5}, tetromino.I.Center(tetromino.Deg0))
	assert.Equal(t, tetromino.Point{X: 1.5, Y: 2}, tetromino.I.Center(tetromino.Deg90))
	assert.Equal(t, tetromino.Point{X: 1.5, Y: 2}, tetromino.T.Center(tetromino.Deg0))
}

func TestAngleNext(t *testing.T) {
	assert.Equal(t, tetromino.Deg90, tetromino.Deg0.Next())
	assert.Equal(t, tetromino.Deg0, tetromino.Deg270.Next())
	assert.Equal(t, 270.0, tetromino.Deg270.Degrees())
}

func TestRandomCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[string]int{}
	for range 700 {
		seen[tetromino.Random(rng).Name]++
	}
	assert.Len(t, seen, 7)
	for name, count := range seen {
		assert.Greater(t, count, 50, name)
	}
}

func TestByName(t *testing.T) {
	kind, ok := tetromino.ByName("L")
	require.True(t, ok)
	assert.Same(t, tetromino.L, kind)

	_, ok = tetromino.ByName("X")
	assert.False(t, ok)
}

func TestPieceCenter(t *testing.T) {
	p := tetromino.NewPiece(tetromino.O)
	p.X, p.Y = 4, -1
	assert.Equal(t, tetromino.Point{X: 5, Y: 0}, p.Center())
}

// ExampleShape_Cells walks the occupied cells of the T piece at spawn.
func ExampleShape_Cells() {
	for x, y := range tetromino.T.Shape(tetromino.Deg0).Cells() {
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println()
	// Output:
	// (0,1) (1,1) (2,1) (1,2)
}
