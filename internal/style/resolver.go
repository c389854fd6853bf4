// Package style derives concrete style tokens and layout classes from a
// resume and its template options. Both the interactive and the static
// renderer call Resolve, which is what guarantees that what the user edits
// and what gets exported look the same.
package style

import (
	"strings"

	"resume-studio/internal/model"
)

// Tokens is the flat style value set shared by both renderers. The six
// color roles are exposed directly and, via CustomProperties, as CSS
// custom-property aliases so nested rules reference them without
// re-deriving.
type Tokens struct {
	FontFamily string
	FontSize   string
	LineHeight string

	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
	Muted      string

	SectionSpacing   string
	ItemSpacing      string
	ParagraphSpacing string

	// PagePadding is the four page margins composed into one shorthand.
	PagePadding string

	BorderRadius string
	BulletStyle  string
	LinkColor    string
	LinkDeco     string
}

// Resolved is the full resolver output consumed by a renderer.
type Resolved struct {
	Tokens             Tokens
	LayoutClass        string
	HeaderClass        string
	SectionHeaderClass string
}

// Resolve derives the token set and structural classes for one render.
// Pure: same inputs, same output, regardless of which renderer calls it.
// The resume value is part of the contract but carries no style-affecting
// data today; it is accepted so future data-driven styling lands here and
// nowhere else.
func Resolve(_ model.ResumeData, opts model.EnhancedTemplateOptions) Resolved {
	m := opts.Spacing.Margins
	return Resolved{
		Tokens: Tokens{
			FontFamily:       opts.FontFamily,
			FontSize:         opts.FontSize,
			LineHeight:       opts.LineHeight,
			Primary:          opts.Colors.Primary,
			Secondary:        opts.Colors.Secondary,
			Accent:           opts.Colors.Accent,
			Background:       opts.Colors.Background,
			Text:             opts.Colors.Text,
			Muted:            opts.Colors.Muted,
			SectionSpacing:   opts.Spacing.SectionSpacing,
			ItemSpacing:      opts.Spacing.ItemSpacing,
			ParagraphSpacing: opts.Spacing.ParagraphSpacing,
			PagePadding:      strings.Join([]string{m.Top, m.Right, m.Bottom, m.Left}, " "),
			BorderRadius:     opts.Layout.BorderRadius,
			BulletStyle:      opts.Sections.Content.BulletStyle,
			LinkColor:        opts.Sections.Content.LinkColor,
			LinkDeco:         opts.Sections.Content.LinkDecoration,
		},
		LayoutClass:        layoutClass(opts.Layout),
		HeaderClass:        headerClass(opts.Layout.HeaderAlignment),
		SectionHeaderClass: sectionHeaderClass(opts),
	}
}

// CustomProperties returns the custom-property aliases in a fixed order so
// inline style output is deterministic.
func (t Tokens) CustomProperties() []Declaration {
	return []Declaration{
		{"--primary-color", t.Primary},
		{"--secondary-color", t.Secondary},
		{"--accent-color", t.Accent},
		{"--background-color", t.Background},
		{"--text-color", t.Text},
		{"--muted-color", t.Muted},
		{"--section-spacing", t.SectionSpacing},
		{"--item-spacing", t.ItemSpacing},
		{"--paragraph-spacing", t.ParagraphSpacing},
		{"--border-radius", t.BorderRadius},
		{"--link-color", t.LinkColor},
		{"--link-decoration", t.LinkDeco},
	}
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// InlineStyle renders the root element's inline style: typography, page
// padding and the custom-property aliases.
func (t Tokens) InlineStyle() string {
	decls := []Declaration{
		{"font-family", t.FontFamily},
		{"font-size", t.FontSize},
		{"line-height", t.LineHeight},
		{"color", t.Text},
		{"background-color", t.Background},
		{"padding", t.PagePadding},
	}
	decls = append(decls, t.CustomProperties()...)

	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteString(":")
		b.WriteString(d.Value)
		b.WriteString(";")
	}
	return b.String()
}

// layoutClass maps the layout variant to its structural class. Shadow and
// border-radius are independent overlays, not tied to a variant.
func layoutClass(l model.Layout) string {
	var cls string
	switch l.Type {
	case model.LayoutTwoColumn:
		cls = "layout-two-column"
	case model.LayoutSidebar:
		cls = "layout-sidebar"
	case model.LayoutModern:
		cls = "layout-modern"
	case model.LayoutCreative:
		cls = "layout-creative"
	default:
		cls = "layout-single-column"
	}
	if l.Shadows {
		cls += " with-shadow"
	}
	if l.BorderRadius != "" && l.BorderRadius != "0px" {
		cls += " rounded"
	}
	return cls
}

func headerClass(align model.Alignment) string {
	switch align {
	case model.AlignCenter:
		return "header-center"
	case model.AlignRight:
		return "header-right"
	default:
		return "header-left"
	}
}

func sectionHeaderClass(opts model.EnhancedTemplateOptions) string {
	cls := "section-heading"
	switch opts.Sections.SectionHeaders.TextTransform {
	case "uppercase":
		cls += " transform-uppercase"
	case "capitalize":
		cls += " transform-capitalize"
	}
	if opts.Layout.SectionDividers {
		cls += " with-divider"
	}
	return cls
}
