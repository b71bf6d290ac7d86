package imaging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lsb-steganography/models"
)

func TestCalculatePSNR(t *testing.T) {
	original := randomGrid(5, 4, 4)
	require.True(t, math.IsInf(CalculatePSNR(original, original.Clone()), 1))

	a := models.NewPixelGrid(1, 1)
	b := models.NewPixelGrid(1, 1)
	b.Pixels[0] = models.Pixel{1, 0, 0}
	expected := 20 * math.Log10(255/math.Sqrt(1.0/3.0))
	require.InDelta(t, expected, CalculatePSNR(a, b), 1e-9)

	require.Zero(t, CalculatePSNR(a, models.NewPixelGrid(2, 1)))
	require.Zero(t, CalculatePSNR(models.NewPixelGrid(0, 0), models.NewPixelGrid(0, 0)))
}

func TestValidatePSNR(t *testing.T) {
	require.True(t, ValidatePSNR(math.Inf(1), 40))
	require.True(t, ValidatePSNR(45, 40))
	require.False(t, ValidatePSNR(20, 40))
}
