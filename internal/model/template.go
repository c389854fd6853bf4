package model

// Template is a catalog entry fetched from the template store. The core
// treats it as read-only; Options() derives the enhanced configuration.
type Template struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	TemplateType string         `json:"template_type"`
	Description  string         `json:"description"`
	PreviewImage string         `json:"preview_image,omitempty"`
	ATSScore     int            `json:"ats_score"`
	IsPremium    bool           `json:"is_premium"`
	CSSStyles    TemplateStyles `json:"css_styles"`
	LayoutConfig LayoutConfig   `json:"layout_config"`
}

type TemplateStyles struct {
	FontFamily string        `json:"fontFamily,omitempty"`
	FontSize   string        `json:"fontSize,omitempty"`
	LineHeight string        `json:"lineHeight,omitempty"`
	Colors     LegacyColors  `json:"colors"`
	Spacing    LegacySpacing `json:"spacing"`
}

type LayoutConfig struct {
	Layout        string   `json:"layout,omitempty"`
	SectionsOrder []string `json:"sections_order,omitempty"`
	ShowPhoto     bool     `json:"show_photo"`
	BulletStyle   string   `json:"bullet_style,omitempty"`
}

// Options maps the catalog payload onto the enhanced configuration using the
// same defaulting rules as the legacy conversion. Total, like the legacy one.
func (t Template) Options() EnhancedTemplateOptions {
	colors := t.CSSStyles.Colors
	spacing := t.CSSStyles.Spacing
	opts := ConvertLegacyOptions(LegacyTemplateOptions{
		FontFamily: t.CSSStyles.FontFamily,
		FontSize:   t.CSSStyles.FontSize,
		TextAlign:  AlignLeft,
		Colors:     &colors,
		Spacing:    &spacing,
	})

	opts.LineHeight = orDefault(t.CSSStyles.LineHeight, opts.LineHeight)
	opts.Layout.Type = layoutFromConfig(t.LayoutConfig.Layout)
	opts.ShowPhoto = t.LayoutConfig.ShowPhoto
	if t.LayoutConfig.BulletStyle != "" {
		opts.Sections.Content.BulletStyle = t.LayoutConfig.BulletStyle
	}
	if order := sectionOrderFromConfig(t.LayoutConfig.SectionsOrder); len(order) > 0 {
		opts.SectionsOrder = order
	}
	return opts
}

// layoutFromConfig tolerates the catalog's historical layout names.
func layoutFromConfig(layout string) LayoutType {
	switch layout {
	case "two-column":
		return LayoutTwoColumn
	case "sidebar":
		return LayoutSidebar
	case "modern":
		return LayoutModern
	case "creative":
		return LayoutCreative
	case "single-column", "standard", "professional", "":
		return LayoutSingleColumn
	default:
		return LayoutSingleColumn
	}
}

// sectionOrderFromConfig keeps only known section keys. The catalog lists
// "personalInfo" first in some entries; the header always renders, so the
// key is dropped rather than mapped.
func sectionOrderFromConfig(raw []string) []SectionKey {
	known := map[SectionKey]bool{}
	for _, k := range AllSections {
		known[k] = true
	}
	var order []SectionKey
	for _, s := range raw {
		if known[SectionKey(s)] {
			order = append(order, SectionKey(s))
		}
	}
	return order
}

// SeedTemplates is the built-in catalog served when no database is
// configured, and the seed rows for the catalog table.
func SeedTemplates() []Template {
	return []Template{
		{
			ID:           "6f1c2a34-9d0b-4c5e-8f7a-0b1d2e3f4a56",
			Name:         "ATS Professional",
			TemplateType: "ats_friendly",
			Description:  "Clean, ATS-optimized template with excellent parsing compatibility. Perfect for corporate environments.",
			ATSScore:     98,
			CSSStyles: TemplateStyles{
				FontFamily: "Arial, sans-serif",
				FontSize:   "11px",
				LineHeight: "1.4",
				Colors:     LegacyColors{Primary: "#000000", Secondary: "#333333", Accent: "#2E86AB"},
				Spacing:    LegacySpacing{SectionSpacing: "16px", ItemSpacing: "8px"},
			},
			LayoutConfig: LayoutConfig{
				Layout:        "single-column",
				SectionsOrder: []string{"personalInfo", "summary", "experience", "education", "skills", "projects"},
				BulletStyle:   "•",
			},
		},
		{
			ID:           "b2d3e4f5-1a2b-4c3d-9e8f-7a6b5c4d3e2f",
			Name:         "Modern Professional",
			TemplateType: "modern",
			Description:  "Contemporary design with subtle colors and modern typography. Great ATS compatibility.",
			ATSScore:     95,
			CSSStyles: TemplateStyles{
				FontFamily: "Calibri, sans-serif",
				FontSize:   "11px",
				LineHeight: "1.5",
				Colors:     LegacyColors{Primary: "#2C3E50", Secondary: "#34495E", Accent: "#3498DB"},
				Spacing:    LegacySpacing{SectionSpacing: "18px", ItemSpacing: "10px"},
			},
			LayoutConfig: LayoutConfig{
				Layout:        "modern",
				SectionsOrder: []string{"personalInfo", "summary", "experience", "skills", "education", "projects"},
				BulletStyle:   "▪",
			},
		},
		{
			ID:           "c3e4f5a6-2b3c-4d5e-8f9a-6b7c8d9e0f1a",
			Name:         "Executive Classic",
			TemplateType: "professional",
			Description:  "Traditional executive format with excellent ATS parsing. Ideal for senior positions.",
			ATSScore:     96,
			CSSStyles: TemplateStyles{
				FontFamily: "Times New Roman, serif",
				FontSize:   "12px",
				LineHeight: "1.4",
				Colors:     LegacyColors{Primary: "#000000", Secondary: "#1a1a1a", Accent: "#8B4513"},
				Spacing:    LegacySpacing{SectionSpacing: "20px", ItemSpacing: "12px"},
			},
			LayoutConfig: LayoutConfig{
				Layout:        "single-column",
				SectionsOrder: []string{"personalInfo", "summary", "experience", "education", "skills", "projects"},
				BulletStyle:   "•",
			},
		},
		{
			ID:           "d4f5a6b7-3c4d-4e5f-9a0b-7c8d9e0f1a2b",
			Name:         "Creative Sidebar",
			TemplateType: "creative",
			Description:  "Sidebar layout with a soft gradient for design-adjacent roles. Moderate ATS compatibility.",
			ATSScore:     82,
			IsPremium:    true,
			CSSStyles: TemplateStyles{
				FontFamily: "Inter, sans-serif",
				FontSize:   "11px",
				LineHeight: "1.5",
				Colors:     LegacyColors{Primary: "#1F2937", Secondary: "#374151", Accent: "#7C3AED"},
				Spacing:    LegacySpacing{SectionSpacing: "16px", ItemSpacing: "8px"},
			},
			LayoutConfig: LayoutConfig{
				Layout:        "sidebar",
				SectionsOrder: []string{"personalInfo", "summary", "skills", "experience", "projects", "education"},
				ShowPhoto:     true,
				BulletStyle:   "•",
			},
		},
	}
}
