package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/extract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SnapshotsRepo is the single-slot persistence surface the handler needs.
type SnapshotsRepo interface {
	Save(ctx context.Context, s *domain.Snapshot) error
	Load(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error)
}

type Handler struct {
	processor *usecase.Processor
	repo      SnapshotsRepo
	aiClient  *ai.Client
	tplDir    string
}

func NewHandler(p *usecase.Processor, r SnapshotsRepo, aiClient *ai.Client, tplDir string) *Handler {
	return &Handler{processor: p, repo: r, aiClient: aiClient, tplDir: tplDir}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes/:userId", h.GetResume)
	app.Put("/resumes/:userId", h.SaveResume)
	app.Post("/resumes/import", h.ImportResume)
	app.Post("/resumes/export/text", h.ExportText)
	app.Post("/resumes/export/pdf", h.ExportPDF)
	app.Post("/ai/parse", h.AIParse)
	app.Post("/ai/match", h.AIMatch)
	app.Post("/ai/cover-letter", h.AICoverLetter)
}

type createReq struct {
	Template string `json:"template"`
}

// CreateResume returns a fresh document: empty, or seeded from a starter
// template when one is named. Unknown starter names fall back to the
// professional starter.
func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}

	var doc model.ResumeDocument
	if req.Template == "" {
		doc = model.NewDocument()
	} else {
		doc = model.Starter(req.Template)
	}
	return c.JSON(doc)
}

// GetResume loads and normalizes the user's snapshot. A snapshot that cannot
// be parsed yields an empty document plus a soft warning rather than an
// error: the user keeps an editable resume no matter what came back from
// storage.
func (h *Handler) GetResume(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	snap, err := h.repo.Load(c.Context(), uid)
	if err != nil {
		log.Printf("warning: failed to load snapshot for %s: %v", uid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	if snap == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no resume found"})
	}

	doc, err := usecase.Normalize(snap.Document)
	var unparsable *usecase.UnparsableImportError
	if errors.As(err, &unparsable) {
		return c.JSON(fiber.Map{
			"resume":  model.NewDocument(),
			"warning": "resume data could not be loaded",
		})
	}
	return c.JSON(fiber.Map{"resume": doc})
}

// SaveResume normalizes the body and writes it to the user's snapshot slot.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	doc, err := usecase.Normalize(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode resume"})
	}
	snap := &domain.Snapshot{UserID: uid, Document: payload}
	if err := h.repo.Save(c.Context(), snap); err != nil {
		log.Printf("warning: failed to save snapshot for %s: %v", uid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// ImportResume normalizes an arbitrary payload into a complete document.
// Schema violations are attached as advisory warnings, never rejections.
func (h *Handler) ImportResume(c *fiber.Ctx) error {
	doc, err := usecase.Normalize(c.Body())
	var unparsable *usecase.UnparsableImportError
	if errors.As(err, &unparsable) {
		return c.JSON(fiber.Map{
			"resume":  model.NewDocument(),
			"warning": "resume data could not be loaded",
		})
	}

	resp := fiber.Map{"resume": doc}
	var raw map[string]interface{}
	if b, err := json.Marshal(doc); err == nil {
		if err := json.Unmarshal(b, &raw); err == nil {
			if warnings, err := model.SchemaWarnings(h.tplDir, raw); err == nil && len(warnings) > 0 {
				resp["warnings"] = warnings
			}
		}
	}
	return c.JSON(resp)
}

// ExportText renders the document in the body as the plain-text format.
func (h *Handler) ExportText(c *fiber.Ctx) error {
	doc, err := usecase.Normalize(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(usecase.ExportText(doc))
}

// ExportPDF renders the document through the requested template variant and
// returns the PDF bytes. Unknown variants fall back to professional.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	doc, err := usecase.Normalize(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	variant := usecase.ParseVariant(c.Query("template"))

	pdfBytes, err := h.processor.ExportPDF(c.Context(), doc, variant)
	if err != nil {
		log.Printf("warning: pdf export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdfBytes)
}

// AIParse accepts an uploaded resume file, extracts its text, and asks the
// ai-service to parse it into a resume payload, which is then normalized.
func (h *Handler) AIParse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}
	modelChoice := c.FormValue("model_choice")

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}

	text, err := extract.Text(fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	payload, missing, err := h.aiClient.ParseResume(c.Context(), text, modelChoice)
	if err != nil {
		// collaborator errors pass through as opaque strings
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	doc := usecase.NormalizeMap(payload)
	return c.JSON(fiber.Map{"resume": doc, "missing_skills": missing})
}

type matchReq struct {
	Resume     json.RawMessage `json:"resume,omitempty"`
	ResumeText string          `json:"resume_text,omitempty"`
	JDText     string          `json:"jd_text"`
	UserName   string          `json:"user_name,omitempty"`
}

// resumeText resolves the resume side of an AI request: explicit text wins,
// otherwise a structured document is serialized to the text wire format.
func (h *Handler) resumeText(req *matchReq) (string, error) {
	if req.ResumeText != "" {
		return req.ResumeText, nil
	}
	if len(req.Resume) == 0 {
		return "", errors.New("resume or resume_text required")
	}
	doc, err := usecase.Normalize(req.Resume)
	if err != nil {
		return "", err
	}
	return usecase.ExportText(doc), nil
}

// AIMatch runs the job-description compatibility analysis.
func (h *Handler) AIMatch(c *fiber.Ctx) error {
	var req matchReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jd_text required"})
	}
	text, err := h.resumeText(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.aiClient.AnalyzeMatch(c.Context(), text, req.JDText)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// AICoverLetter asks the ai-service to draft a cover letter.
func (h *Handler) AICoverLetter(c *fiber.Ctx) error {
	var req matchReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jd_text required"})
	}
	text, err := h.resumeText(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	letter, err := h.aiClient.GenerateCoverLetter(c.Context(), text, req.JDText, req.UserName)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"cover_letter": letter})
}
