package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"

	"lsb-steganography/imaging"
	"lsb-steganography/models"
	"lsb-steganography/stego"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

// writeCover writes a mid-grey PNG whose low bits are all zero.
func writeCover(t *testing.T, width, height int) string {
	grid := models.NewPixelGrid(width, height)
	for i := range grid.Pixels {
		grid.Pixels[i] = models.Pixel{128, 128, 128}
	}
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, imaging.NewImageCodec().WriteFile(path, grid))
	return path
}

func run(t *testing.T, input string, fn func(p *Prompter) error) (string, error) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out, testLogger(t))
	err := fn(p)
	return out.String(), err
}

func TestEncodeThenDecodeWithKey(t *testing.T) {
	cover := writeCover(t, 16, 16)
	output := filepath.Join(t.TempDir(), "image.png")

	out, err := run(t, "Hello, there!\n3\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.NoError(t, err)
	require.Contains(t, out, "Enter message to encrypt: ")
	require.Contains(t, out, "Encryption Successful")

	out, err = run(t, "3\n", func(p *Prompter) error {
		return p.Decode(context.Background(), output)
	})
	require.NoError(t, err)
	require.Contains(t, out, "Decryption Successful\nDecoded Message:\nHello, there!\n")
}

func TestEncodeRepromptsAndDefaultsKey(t *testing.T) {
	cover := writeCover(t, 8, 8)
	output := filepath.Join(t.TempDir(), "image.png")

	out, err := run(t, "\n\nHi\n\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "Enter message to encrypt: "))

	grid, _, err := imaging.NewImageCodec().ReadFile(output)
	require.NoError(t, err)
	result, err := stego.NewLSBSteganography(&models.StegoConfig{LSBBits: DefaultLSBBits}).Extract(grid)
	require.NoError(t, err)
	require.Equal(t, "Hi", result.Message)
}

func TestEncodeFailures(t *testing.T) {
	cover := writeCover(t, 1, 1)
	output := filepath.Join(t.TempDir(), "image.png")

	out, err := run(t, "Hi\n9\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.ErrorIs(t, err, stego.ErrLargeKey)
	require.Contains(t, out, "Key is large.")

	out, err = run(t, "Hi\n1\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.ErrorIs(t, err, stego.ErrNotEnoughPixels)
	require.Contains(t, out, "Not enough Pixels")
	require.NoFileExists(t, output)

	_, err = run(t, "Hi\nabc\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.Error(t, err)
}

func TestDecodeProbesUnknownKey(t *testing.T) {
	cover := writeCover(t, 8, 8)
	output := filepath.Join(t.TempDir(), "image.png")

	_, err := run(t, "Hi\n4\n", func(p *Prompter) error {
		return p.Encode(cover, output)
	})
	require.NoError(t, err)

	out, err := run(t, "\n", func(p *Prompter) error {
		return p.Decode(context.Background(), output)
	})
	require.NoError(t, err)
	require.Contains(t, out, "Decryption Unsuccessful with Key 1\n")
	require.Contains(t, out, "Decryption Unsuccessful with Key 3\n")
	require.NotContains(t, out, "with Key 4")
	require.Contains(t, out, "Decoded Message:\nHi\nKey used is 4\n")
}

func TestDecodeNothingHidden(t *testing.T) {
	cover := writeCover(t, 8, 8)

	out, err := run(t, "2\n", func(p *Prompter) error {
		return p.Decode(context.Background(), cover)
	})
	require.NoError(t, err)
	require.Contains(t, out, "Decryption Unsuccessful\n")

	out, err = run(t, "\n", func(p *Prompter) error {
		return p.Decode(context.Background(), cover)
	})
	require.ErrorIs(t, err, stego.ErrKeyNotFound)
	require.Contains(t, out, "Decryption Unsuccessful with Key 7\n")
}
