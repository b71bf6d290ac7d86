package stego

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lsb-steganography/models"
)

// Probe decodes grid with every key from MinLSBBits to MaxLSBBits and
// returns the smallest key that succeeds. The attempts run concurrently
// since extraction only reads the grid. ErrKeyNotFound is returned along with
// the failed attempts when no key decodes.
func Probe(ctx context.Context, grid *models.PixelGrid) (models.ProbeResult, error) {
	attempts := make([]models.DecodeResult, MaxLSBBits-MinLSBBits+1)

	g, ctx := errgroup.WithContext(ctx)
	for i := range attempts {
		key := MinLSBBits + i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lsb := NewLSBSteganography(&models.StegoConfig{LSBBits: key})
			result, err := lsb.Extract(grid)
			if err != nil {
				return err
			}
			attempts[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.ProbeResult{}, err
	}

	for i, attempt := range attempts {
		if attempt.Succeeded() {
			return models.ProbeResult{
				LSBBits:  attempt.LSBBits,
				Message:  attempt.Message,
				Attempts: attempts[:i+1],
			}, nil
		}
	}

	return models.ProbeResult{Attempts: attempts}, ErrKeyNotFound
}
