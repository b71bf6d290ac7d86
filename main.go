package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"lsb-steganography/cli"
	"lsb-steganography/handlers"
)

type CLI struct {
	Encrypt string `help:"Hide a message in the image at PATH" short:"e" placeholder:"PATH" type:"existingfile"`
	Decrypt string `help:"Recover a message from the image at PATH" short:"d" placeholder:"PATH" type:"existingfile"`
	Output  string `help:"Where to write the encoded image (png or bmp)" short:"o" default:"image.png"`

	Serve        bool     `help:"Run the HTTP API instead of the prompt flow"`
	Listen       string   `help:"Address to listen on" short:"l" env:"PORT" default:":8080"`
	AllowOrigins []string `help:"Origins allowed by CORS" name:"allow-origin" default:"http://localhost:3000"`

	Verbose int `help:"Log verbosity (0=warn, 1=info, 2=debug)" short:"v" type:"counter"`
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("lsb"),
		kong.Description("Hide text in the least significant bits of an image."),
		kong.UsageOnError(),
	)

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel(c.Verbose),
	}))
	slog.SetDefault(logger)

	if err := c.Run(ctx, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logLevel(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default: // 2+
		return slog.LevelDebug
	}
}

func (c *CLI) Run(kctx *kong.Context, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout, logger)
	switch {
	case c.Serve:
		return c.serve(logger)
	case c.Encrypt != "":
		return prompter.Encode(c.Encrypt, c.Output)
	case c.Decrypt != "":
		return prompter.Decode(ctx, c.Decrypt)
	default:
		return kctx.PrintUsage(false)
	}
}

func (c *CLI) serve(logger *slog.Logger) error {
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.NewStegoHandler(logger), c.AllowOrigins)

	addr := listenAddress(c.Listen)
	logger.Info("server starting", "listen", addr)
	logger.Info("endpoint", "route", "POST /api/v1/stego/insert", "description", "Insert secret message into image (returns stego PNG)")
	logger.Info("endpoint", "route", "POST /api/v1/stego/extract", "description", "Extract secret message from image, lsb_bits optional")
	logger.Info("endpoint", "route", "GET  /api/v1/health", "description", "Health check")

	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// listenAddress accepts a bare port, as PORT is usually set.
func listenAddress(listen string) string {
	if strings.Contains(listen, ":") {
		return listen
	}
	return ":" + listen
}
