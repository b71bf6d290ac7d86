// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lsb-steganography/imaging"
	"lsb-steganography/models"
	"lsb-steganography/stego"
)

const maxUploadBytes = 32 << 20

var errImageRequired = errors.New("image file is required")

type StegoHandler struct {
	codec  *imaging.ImageCodec
	logger *slog.Logger
}

func NewStegoHandler(logger *slog.Logger) *StegoHandler {
	return &StegoHandler{
		codec:  imaging.NewImageCodec(),
		logger: logger,
	}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Steganography API is running",
		"version": "1.0.0",
	})
}

// readImage decodes the uploaded image_file field.
func (h *StegoHandler) readImage(c *gin.Context) (*models.PixelGrid, string, error) {
	file, header, err := c.Request.FormFile("image_file")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errImageRequired, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image file: %w", err)
	}

	grid, metadata, err := h.codec.Decode(data)
	if err != nil {
		return nil, "", err
	}
	h.logger.Debug("image uploaded", "filename", header.Filename, "format", metadata.Format,
		"width", metadata.Width, "height", metadata.Height)

	return grid, header.Filename, nil
}

func (h *StegoHandler) InsertMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Message is required",
		})
		return
	}

	lsbBits := 1
	if lsbBitsStr := c.PostForm("lsb_bits"); lsbBitsStr != "" {
		var err error
		lsbBits, err = strconv.Atoi(lsbBitsStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: "LSB bits must be a number between 1 and 7",
			})
			return
		}
	}

	grid, filename, err := h.readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: imageErrorMessage(err),
		})
		return
	}

	original := grid.Clone()
	lsb := stego.NewLSBSteganography(&models.StegoConfig{LSBBits: lsbBits})
	if err := lsb.Embed(message, grid); err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success:  false,
			Message:  embedErrorMessage(err),
			Capacity: lsb.CalculateCapacity(grid),
		})
		return
	}

	stegoImage, err := h.codec.Encode(grid, imaging.FormatPNG)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to encode image: %v", err),
		})
		return
	}

	psnr := imaging.CalculatePSNR(original, grid)
	h.logger.Info("message embedded", "filename", filename, "lsb_bits", lsbBits, "psnr", psnr)

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputFilename := fmt.Sprintf("%s_stego.png", baseFilename)

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))

	// Include metadata about the steganography operation
	c.Header("X-Stego-Method", "Image LSB")
	c.Header("X-Stego-Message", "Secret message successfully embedded")
	c.Header("X-Stego-Capacity", strconv.Itoa(lsb.CalculateCapacity(grid)))
	c.Header("X-Stego-PSNR", formatPSNR(psnr))

	c.Data(http.StatusOK, "image/png", stegoImage)
}

func (h *StegoHandler) ExtractMessage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	lsbBitsStr := c.PostForm("lsb_bits")
	lsbBits := 0
	if lsbBitsStr != "" {
		var err error
		lsbBits, err = strconv.Atoi(lsbBitsStr)
		if err != nil || lsbBits < stego.MinLSBBits || lsbBits > stego.MaxLSBBits {
			c.JSON(http.StatusBadRequest, models.ExtractResponse{
				Success: false,
				Message: "LSB bits must be between 1 and 7",
			})
			return
		}
	}

	grid, filename, err := h.readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{
			Success: false,
			Message: imageErrorMessage(err),
		})
		return
	}

	// Unknown key: try them all
	if lsbBits == 0 {
		result, err := stego.Probe(c.Request.Context(), grid)
		response := models.ExtractResponse{
			Attempts: attemptReports(result.Attempts),
		}
		if err != nil {
			h.logger.Info("probe failed", "filename", filename, "error", err)
			response.Message = "Decryption Unsuccessful: no key between 1 and 7 decodes this image"
			c.JSON(http.StatusUnprocessableEntity, response)
			return
		}
		response.Success = true
		response.Message = "Decryption Successful"
		response.Secret = result.Message
		response.LSBBits = result.LSBBits
		c.JSON(http.StatusOK, response)
		return
	}

	lsb := stego.NewLSBSteganography(&models.StegoConfig{LSBBits: lsbBits})
	result, err := lsb.Extract(grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ExtractResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if !result.Succeeded() {
		c.JSON(http.StatusUnprocessableEntity, models.ExtractResponse{
			Success: false,
			Message: "Decryption Unsuccessful. Possible causes: (1) Image contains no embedded message, (2) Wrong LSB bits, (3) Image was recompressed after embedding.",
			LSBBits: lsbBits,
		})
		return
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		Success: true,
		Message: "Decryption Successful",
		Secret:  result.Message,
		LSBBits: lsbBits,
	})
}

func imageErrorMessage(err error) string {
	if errors.Is(err, errImageRequired) {
		return "Image file is required"
	}
	return fmt.Sprintf("Invalid image file: %v", err)
}

func embedErrorMessage(err error) string {
	switch {
	case errors.Is(err, stego.ErrLargeKey):
		return "LSB bits must be between 1 and 7"
	case errors.Is(err, stego.ErrNotEnoughPixels):
		return "Not enough pixels: try a larger image or a bigger key"
	default:
		return err.Error()
	}
}

func attemptReports(attempts []models.DecodeResult) []models.AttemptReport {
	reports := make([]models.AttemptReport, 0, len(attempts))
	for _, attempt := range attempts {
		reports = append(reports, models.AttemptReport{
			LSBBits: attempt.LSBBits,
			Status:  attempt.Status.String(),
		})
	}
	return reports
}

func formatPSNR(psnr float64) string {
	if math.IsInf(psnr, 1) {
		return "inf"
	}
	return strconv.FormatFloat(psnr, 'f', 2, 64)
}
