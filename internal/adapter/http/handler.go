package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"resume-studio/internal/adapter/repository"
	"resume-studio/internal/model"
	"resume-studio/internal/render"
	"resume-studio/internal/usecase"
)

type Handler struct {
	exporter  *usecase.Exporter
	templates *repository.TemplatesRepo
	logger    *slog.Logger
}

func NewHandler(e *usecase.Exporter, t *repository.TemplatesRepo, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{exporter: e, templates: t, logger: logger.With("component", "http")}
}

func (h *Handler) Register(app *fiber.App) {
	app.Post("/render/preview", h.RenderPreview)
	app.Post("/export/pdf", h.ExportPDF)
	app.Get("/templates", h.ListTemplates)
	app.Get("/templates/:id", h.GetTemplate)
	app.Get("/templates/:id/options", h.TemplateOptions)
}

type renderReq struct {
	ResumeData    model.ResumeData               `json:"resumeData"`
	Options       *model.EnhancedTemplateOptions `json:"options"`
	LegacyOptions *model.LegacyTemplateOptions   `json:"legacyOptions"`
	Preview       bool                           `json:"preview"`
	PDF           usecase.PDFGenerationOptions   `json:"pdf"`
}

// options picks the effective configuration: enhanced when present,
// converted legacy otherwise, defaults when neither is supplied.
func (r *renderReq) options() model.EnhancedTemplateOptions {
	switch {
	case r.Options != nil:
		opts := *r.Options
		opts.ApplyDefaults()
		return opts
	case r.LegacyOptions != nil:
		return model.ConvertLegacyOptions(*r.LegacyOptions)
	default:
		return model.DefaultEnhancedOptions()
	}
}

func (h *Handler) parseRenderReq(c *fiber.Ctx) (*renderReq, error) {
	if err := model.ValidateRenderRequest(c.Body()); err != nil {
		return nil, err
	}
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *Handler) RenderPreview(c *fiber.Ctx) error {
	req, err := h.parseRenderReq(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	html := render.Interactive(req.ResumeData, req.options(), req.Preview)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportPDF produces the downloadable artifact. All export-path failures
// collapse into one user-facing error here; no raw exception reaches the
// client.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	req, err := h.parseRenderReq(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.exporter.Export(c.Context(), req.ResumeData, req.options(), req.PDF)
	if err != nil {
		if errors.Is(err, usecase.ErrExportInFlight) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "an export is already in progress"})
		}
		h.logger.Error("pdf export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.templates.List(c.Context())
	if err != nil {
		h.logger.Error("list templates failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load templates"})
	}
	return c.JSON(templates)
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	t, err := h.findTemplate(c)
	if err != nil {
		return h.templateError(c, err)
	}
	return c.JSON(t)
}

// TemplateOptions returns the catalog entry converted to the enhanced
// configuration, ready to feed straight into the renderers.
func (h *Handler) TemplateOptions(c *fiber.Ctx) error {
	t, err := h.findTemplate(c)
	if err != nil {
		return h.templateError(c, err)
	}
	return c.JSON(t.Options())
}

var errTemplateNotFound = errors.New("template not found")

// findTemplate never returns a nil template with a nil error; an unknown id
// surfaces as errTemplateNotFound.
func (h *Handler) findTemplate(c *fiber.Ctx) (*model.Template, error) {
	t, err := h.templates.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errTemplateNotFound
	}
	return t, nil
}

func (h *Handler) templateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errTemplateNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "template not found"})
	}
	h.logger.Error("template lookup failed", "id", c.Params("id"), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load template"})
}
