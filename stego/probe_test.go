package stego

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"lsb-steganography/models"
)

func TestProbeFindsKey(t *testing.T) {
	for key := MinLSBBits; key <= MaxLSBBits; key++ {
		// mid-grey: every low bit starts out as zero
		grid := filledGrid(8, 8, 128)
		lsb := NewLSBSteganography(&models.StegoConfig{LSBBits: key})
		require.NoError(t, lsb.Embed("Hi", grid))

		result, err := Probe(context.Background(), grid)
		require.NoError(t, err, "key %d", key)
		require.Equal(t, key, result.LSBBits)
		require.Equal(t, "Hi", result.Message)

		require.Len(t, result.Attempts, key)
		for _, attempt := range result.Attempts[:key-1] {
			require.False(t, attempt.Succeeded())
		}
		require.True(t, result.Attempts[key-1].Succeeded())
	}
}

func TestKeySearchRandomCovers(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := range 200 {
		key := MinLSBBits + rng.Intn(MaxLSBBits)
		text := randomText(rng, 8+rng.Intn(33))
		grid := randomGrid(rng, 48, 48)
		lsb := NewLSBSteganography(&models.StegoConfig{LSBBits: key})
		require.NoError(t, lsb.Embed(text, grid))

		result, err := Probe(context.Background(), grid)
		require.NoError(t, err, "trial %d key %d text %q", trial, key, text)
		require.Equal(t, key, result.LSBBits, "trial %d text %q", trial, text)
		require.Equal(t, text, result.Message)
	}
}

func TestProbeNoMessage(t *testing.T) {
	grid := filledGrid(8, 8, 0)

	result, err := Probe(context.Background(), grid)
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Len(t, result.Attempts, MaxLSBBits)
	for i, attempt := range result.Attempts {
		require.Equal(t, i+1, attempt.LSBBits)
		require.False(t, attempt.Succeeded())
	}
}

func TestProbeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Probe(ctx, filledGrid(8, 8, 0))
	require.ErrorIs(t, err, context.Canceled)
}
