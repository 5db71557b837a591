package handler

import (
	"io"

	"studygeni/internal/dto"
	"studygeni/internal/extractor"
	"studygeni/internal/logger"
	"studygeni/internal/service"
	"studygeni/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler handles study-material generation HTTP requests
type StudyHandler struct {
	service   service.StudyService
	validator *validation.Validator
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(service service.StudyService) *StudyHandler {
	return &StudyHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Generate godoc
// @Summary Generate study materials
// @Description Generates a summary, flashcards and a quiz from raw text or a topic
// @Tags study
// @Accept json
// @Produce json
// @Param request body dto.StudyMaterialRequest true "Generation Request"
// @Success 200 {object} dto.StudyMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *StudyHandler) Generate(c *fiber.Ctx) error {
	var req dto.StudyMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateStudyMaterialRequest(&req); len(errs) > 0 {
		return errs
	}

	response, err := h.service.GenerateStudyMaterials(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to generate study materials",
			zap.Error(err),
			zap.String("input_method", req.InputMethod),
		)
		return err
	}

	return c.JSON(response)
}

// ProcessFileUpload godoc
// @Summary Generate study materials from an uploaded file
// @Description Extracts text from a PDF or TXT upload and generates study materials
// @Tags study
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or plain-text file"
// @Param purpose formData string true "Study purpose"
// @Param difficulty_level formData string true "Difficulty level"
// @Param gemini_api_key formData string false "API key override"
// @Success 200 {object} dto.StudyMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /process-file-upload [post]
func (h *StudyHandler) ProcessFileUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	purpose := c.FormValue("purpose")
	difficultyLevel := c.FormValue("difficulty_level")
	apiKey := c.FormValue("gemini_api_key")

	if errs := h.validator.ValidateUploadForm(purpose, difficultyLevel); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}

	text, err := extractor.ExtractText(fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		logger.Get().Warn("Text extraction failed",
			zap.Error(err),
			zap.String("filename", fileHeader.Filename),
			zap.String("content_type", fileHeader.Header.Get("Content-Type")),
		)
		return err
	}

	logger.Get().Info("Extracted text from upload",
		zap.String("filename", fileHeader.Filename),
		zap.Int("characters", len(text)),
	)

	response, err := h.service.GenerateFromExtractedText(c.Context(), text, purpose, difficultyLevel, apiKey)
	if err != nil {
		logger.Get().Error("Failed to generate study materials from upload",
			zap.Error(err),
			zap.String("filename", fileHeader.Filename),
		)
		return err
	}

	return c.JSON(response)
}
