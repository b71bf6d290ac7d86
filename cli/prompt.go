// Package cli runs the interactive encode and decode flows.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"lsb-steganography/imaging"
	"lsb-steganography/models"
	"lsb-steganography/stego"
)

const (
	DefaultLSBBits = 1

	// below this the embedded frame may be visible
	psnrThreshold = 30.0
)

// Prompter reads answers from in and writes prompts and results to out.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	codec  *imaging.ImageCodec
	logger *slog.Logger
}

func NewPrompter(in io.Reader, out io.Writer, logger *slog.Logger) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		codec:  imaging.NewImageCodec(),
		logger: logger,
	}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseKey(answer string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", answer, err)
	}
	return key, nil
}

// Encode asks for a message and a key, hides the message in the image at
// path and writes the result to output.
func (p *Prompter) Encode(path, output string) error {
	grid, metadata, err := p.codec.ReadFile(path)
	if err != nil {
		return err
	}
	p.logger.Info("image loaded", "path", path, "format", metadata.Format, "width", metadata.Width, "height", metadata.Height)

	var text string
	for text == "" {
		if text, err = p.ask("Enter message to encrypt: "); err != nil {
			return err
		}
	}

	answer, err := p.ask("Enter a key (Default key = 1): ")
	if err != nil {
		return err
	}
	key := DefaultLSBBits
	if strings.TrimSpace(answer) != "" {
		if key, err = parseKey(answer); err != nil {
			return err
		}
	}

	original := grid.Clone()
	lsb := stego.NewLSBSteganography(&models.StegoConfig{LSBBits: key})
	if err := lsb.Embed(text, grid); err != nil {
		switch {
		case errors.Is(err, stego.ErrLargeKey):
			fmt.Fprintln(p.out, "Key is large.")
		case errors.Is(err, stego.ErrNotEnoughPixels):
			fmt.Fprintln(p.out, "Not enough Pixels: Try a larger image or a bigger key")
		}
		return err
	}

	if err := p.codec.WriteFile(output, grid); err != nil {
		return err
	}

	psnr := imaging.CalculatePSNR(original, grid)
	if !imaging.ValidatePSNR(psnr, psnrThreshold) {
		p.logger.Warn("embedding may be visible", "psnr", psnr, "key", key)
	}
	p.logger.Debug("embedded", "key", key, "capacity", lsb.CalculateCapacity(grid), "output", output)

	fmt.Fprintf(p.out, "Encryption Successful\nWritten to %s (PSNR %.2f dB)\n", output, psnr)
	return nil
}

// Decode asks for a key and recovers the message from the image at path. An
// empty key probes every key in turn.
func (p *Prompter) Decode(ctx context.Context, path string) error {
	grid, _, err := p.codec.ReadFile(path)
	if err != nil {
		return err
	}

	answer, err := p.ask("Enter a key (press enter for Unknown key): ")
	if err != nil {
		return err
	}

	if strings.TrimSpace(answer) == "" {
		return p.probe(ctx, grid)
	}

	key, err := parseKey(answer)
	if err != nil {
		return err
	}
	lsb := stego.NewLSBSteganography(&models.StegoConfig{LSBBits: key})
	result, err := lsb.Extract(grid)
	if err != nil {
		if errors.Is(err, stego.ErrLargeKey) {
			fmt.Fprintln(p.out, "Key is large.")
		}
		return err
	}
	p.printResult(result)
	return nil
}

func (p *Prompter) probe(ctx context.Context, grid *models.PixelGrid) error {
	result, err := stego.Probe(ctx, grid)
	for _, attempt := range result.Attempts {
		if !attempt.Succeeded() {
			fmt.Fprintf(p.out, "Decryption Unsuccessful with Key %d\n", attempt.LSBBits)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Decryption Successful\nDecoded Message:\n%s\nKey used is %d\n", result.Message, result.LSBBits)
	return nil
}

func (p *Prompter) printResult(result models.DecodeResult) {
	if !result.Succeeded() {
		fmt.Fprintln(p.out, "Decryption Unsuccessful")
		return
	}
	fmt.Fprintf(p.out, "Decryption Successful\nDecoded Message:\n%s\n", result.Message)
}
