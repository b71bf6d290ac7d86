package imaging

import (
	"math"

	"lsb-steganography/models"
)

// CalculatePSNR compares every channel of two equally sized grids.
func CalculatePSNR(original, stego *models.PixelGrid) float64 {
	if original.Width != stego.Width || original.Height != stego.Height {
		return 0.0
	}

	if len(original.Pixels) == 0 {
		return 0.0
	}

	var mse float64
	for i := range original.Pixels {
		for c := range original.Pixels[i] {
			diff := float64(original.Pixels[i][c]) - float64(stego.Pixels[i][c])
			mse += diff * diff
		}
	}
	mse /= float64(len(original.Pixels) * 3)

	// If MSE is 0, images are identical
	if mse == 0 {
		return math.Inf(1)
	}

	// PSNR = 20 * log10(MAX / sqrt(MSE)), MAX = 255 for 8-bit channels
	maxSignalValue := 255.0
	psnr := 20 * math.Log10(maxSignalValue/math.Sqrt(mse))

	return psnr
}

func ValidatePSNR(psnr float64, threshold float64) bool {
	if math.IsInf(psnr, 1) {
		return true // Infinite PSNR is always good
	}
	return psnr >= threshold
}
