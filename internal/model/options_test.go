package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertLegacyOptionsDefaults(t *testing.T) {
	got := ConvertLegacyOptions(LegacyTemplateOptions{})

	assert.Equal(t, "Inter, sans-serif", got.FontFamily)
	assert.Equal(t, "11px", got.FontSize)
	assert.Equal(t, "1.5", got.LineHeight)
	assert.Equal(t, FontWeights{Light: "300", Normal: "400", Bold: "600"}, got.FontWeight)
	assert.Equal(t, "#000000", got.Colors.Primary)
	assert.Equal(t, "#333333", got.Colors.Secondary)
	assert.Equal(t, "#2E86AB", got.Colors.Accent)
	assert.Equal(t, "#ffffff", got.Colors.Background)
	assert.Equal(t, "#111827", got.Colors.Text)
	assert.Equal(t, "#6b7280", got.Colors.Muted)
	assert.Equal(t, "16px", got.Spacing.SectionSpacing)
	assert.Equal(t, "8px", got.Spacing.ItemSpacing)
	assert.Equal(t, Margins{Top: "20px", Right: "20px", Bottom: "20px", Left: "20px"}, got.Spacing.Margins)
	assert.Equal(t, LayoutSingleColumn, got.Layout.Type)
	assert.Equal(t, AlignLeft, got.Layout.HeaderAlignment)
	assert.True(t, got.Layout.SectionDividers)
	assert.False(t, got.Layout.Shadows)
	assert.Equal(t, "2px solid #2E86AB", got.Sections.SectionHeaders.BorderBottom)
	assert.Equal(t, "uppercase", got.Sections.SectionHeaders.TextTransform)
	assert.Equal(t, "16px", got.Sections.SectionHeaders.FontSize)
	assert.Equal(t, AllSections, got.SectionsOrder)
	for _, k := range AllSections {
		assert.True(t, got.SectionsVisibility[k], "section %s should default visible", k)
	}
}

func TestConvertLegacyOptionsCarriesValues(t *testing.T) {
	got := ConvertLegacyOptions(LegacyTemplateOptions{
		FontFamily: "Georgia, serif",
		FontSize:   "12px",
		TextAlign:  AlignCenter,
	})

	assert.Equal(t, "Georgia, serif", got.FontFamily)
	assert.Equal(t, "12px", got.FontSize)
	assert.Equal(t, AlignCenter, got.Layout.HeaderAlignment)
	// Header text inherits the primary color.
	assert.Equal(t, "#000000", got.Colors.Primary)
	assert.Equal(t, "#000000", got.Sections.Header.TextColor)
}

func TestConvertLegacyOptionsColorHints(t *testing.T) {
	got := ConvertLegacyOptions(LegacyTemplateOptions{
		Colors:  &LegacyColors{Primary: "#2C3E50", Accent: "#3498DB"},
		Spacing: &LegacySpacing{SectionSpacing: "18px"},
	})

	assert.Equal(t, "#2C3E50", got.Colors.Primary)
	assert.Equal(t, "#333333", got.Colors.Secondary, "unset hint falls back")
	assert.Equal(t, "#3498DB", got.Colors.Accent)
	assert.Equal(t, "#2C3E50", got.Sections.Header.TextColor)
	assert.Equal(t, "2px solid #3498DB", got.Sections.SectionHeaders.BorderBottom)
	assert.Equal(t, "#3498DB", got.Sections.Content.LinkColor)
	assert.Equal(t, "18px", got.Spacing.SectionSpacing)
	assert.Equal(t, "8px", got.Spacing.ItemSpacing)
}

func TestConvertLegacyOptionsDeterministic(t *testing.T) {
	legacy := LegacyTemplateOptions{FontFamily: "Arial", TextAlign: AlignRight}
	assert.Equal(t, ConvertLegacyOptions(legacy), ConvertLegacyOptions(legacy))
}

func TestApplyDefaultsFillsOnlyZeroFields(t *testing.T) {
	opts := EnhancedTemplateOptions{
		FontFamily: "Courier, monospace",
		Layout:     Layout{Type: LayoutSidebar},
	}
	opts.ApplyDefaults()

	assert.Equal(t, "Courier, monospace", opts.FontFamily)
	assert.Equal(t, LayoutSidebar, opts.Layout.Type)
	assert.Equal(t, "11px", opts.FontSize)
	assert.Equal(t, AlignLeft, opts.Layout.HeaderAlignment)
	assert.Equal(t, AllSections, opts.SectionsOrder)
	require.NotNil(t, opts.SectionsVisibility)
}

func TestApplyDefaultsIsNoopOnCompleteValue(t *testing.T) {
	opts := DefaultEnhancedOptions()
	before := opts
	opts.ApplyDefaults()
	assert.Equal(t, before, opts)
}

func TestTemplateOptions(t *testing.T) {
	var modern, sidebar Template
	for _, tpl := range SeedTemplates() {
		switch tpl.Name {
		case "Modern Professional":
			modern = tpl
		case "Creative Sidebar":
			sidebar = tpl
		}
	}
	require.NotEmpty(t, modern.ID)
	require.NotEmpty(t, sidebar.ID)

	opts := modern.Options()
	assert.Equal(t, "Calibri, sans-serif", opts.FontFamily)
	assert.Equal(t, "1.5", opts.LineHeight)
	assert.Equal(t, LayoutModern, opts.Layout.Type)
	assert.Equal(t, "▪", opts.Sections.Content.BulletStyle)
	assert.Equal(t, "#2C3E50", opts.Colors.Primary)
	// personalInfo is not a section key and is dropped from the order.
	assert.Equal(t,
		[]SectionKey{SectionSummary, SectionExperience, SectionSkills, SectionEducation, SectionProjects},
		opts.SectionsOrder)
	assert.False(t, opts.ShowPhoto)

	opts = sidebar.Options()
	assert.Equal(t, LayoutSidebar, opts.Layout.Type)
	assert.True(t, opts.ShowPhoto)
	assert.True(t, sidebar.IsPremium)
}

func TestLayoutFromConfigLegacyNames(t *testing.T) {
	tests := []struct {
		in   string
		want LayoutType
	}{
		{"two-column", LayoutTwoColumn},
		{"sidebar", LayoutSidebar},
		{"modern", LayoutModern},
		{"creative", LayoutCreative},
		{"standard", LayoutSingleColumn},
		{"professional", LayoutSingleColumn},
		{"", LayoutSingleColumn},
		{"bogus", LayoutSingleColumn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, layoutFromConfig(tt.in), "layout %q", tt.in)
	}
}

func TestValidateRenderRequest(t *testing.T) {
	valid := []byte(`{"resumeData":{"personalInfo":{"name":"Jane Doe"}},"preview":true}`)
	assert.NoError(t, ValidateRenderRequest(valid))

	missingData := []byte(`{"preview":true}`)
	assert.Error(t, ValidateRenderRequest(missingData))

	badQuality := []byte(`{"resumeData":{"personalInfo":{}},"pdf":{"quality":"ultra"}}`)
	assert.Error(t, ValidateRenderRequest(badQuality))

	badProficiency := []byte(`{"resumeData":{"personalInfo":{},"skills":[{"id":"1","proficiency":"Master"}]}}`)
	assert.Error(t, ValidateRenderRequest(badProficiency))
}
