package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/adapter/repository"
	"resume-studio/internal/model"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := NewHandler(nil, repository.NewTemplatesRepo(nil), nil)
	h.Register(app)
	return app
}

func TestListTemplates(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/templates", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var templates []model.Template
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&templates))
	assert.Len(t, templates, 4)
}

func TestGetTemplateByID(t *testing.T) {
	app := newTestApp(t)
	want := model.SeedTemplates()[0]

	resp, err := app.Test(httptest.NewRequest("GET", "/templates/"+want.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got model.Template
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, want.Name, got.Name)
}

func TestGetTemplateUnknownIDIs404(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/templates/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "template not found")
}

func TestTemplateOptionsByID(t *testing.T) {
	app := newTestApp(t)

	var sidebar model.Template
	for _, tpl := range model.SeedTemplates() {
		if tpl.Name == "Creative Sidebar" {
			sidebar = tpl
		}
	}
	require.NotEmpty(t, sidebar.ID)

	resp, err := app.Test(httptest.NewRequest("GET", "/templates/"+sidebar.ID+"/options", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var opts model.EnhancedTemplateOptions
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opts))
	assert.Equal(t, model.LayoutSidebar, opts.Layout.Type)
	assert.True(t, opts.ShowPhoto)
}

func TestTemplateOptionsUnknownIDIs404(t *testing.T) {
	app := newTestApp(t)

	// Must respond, not panic, when the id matches nothing.
	resp, err := app.Test(httptest.NewRequest("GET", "/templates/does-not-exist/options", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRenderPreviewValidatesBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/render/preview", nil)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRenderPreviewReturnsHTML(t *testing.T) {
	app := newTestApp(t)

	body := strings.NewReader(`{"resumeData":{"personalInfo":{"name":"Jane Doe"}},"preview":true}`)
	req := httptest.NewRequest("POST", "/render/preview", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), "Jane Doe")
	assert.Contains(t, string(html), `id="resume-preview"`)
	assert.NotContains(t, string(html), "data-edit")
}
