package model

// SectionKey identifies a resume section in ordering and visibility maps.
type SectionKey string

const (
	SectionSummary    SectionKey = "summary"
	SectionExperience SectionKey = "experience"
	SectionEducation  SectionKey = "education"
	SectionSkills     SectionKey = "skills"
	SectionProjects   SectionKey = "projects"
)

// AllSections is the canonical section order used by defaults.
var AllSections = []SectionKey{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
}

type LayoutType string

const (
	LayoutSingleColumn LayoutType = "single-column"
	LayoutTwoColumn    LayoutType = "two-column"
	LayoutSidebar      LayoutType = "sidebar"
	LayoutModern       LayoutType = "modern"
	LayoutCreative     LayoutType = "creative"
)

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

type FontWeights struct {
	Light  string `json:"light"`
	Normal string `json:"normal"`
	Bold   string `json:"bold"`
}

type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

type Margins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

type Spacing struct {
	SectionSpacing   string  `json:"sectionSpacing"`
	ItemSpacing      string  `json:"itemSpacing"`
	ParagraphSpacing string  `json:"paragraphSpacing"`
	Margins          Margins `json:"margins"`
}

type Layout struct {
	Type            LayoutType `json:"type"`
	HeaderAlignment Alignment  `json:"headerAlignment"`
	SectionDividers bool       `json:"sectionDividers"`
	BorderRadius    string     `json:"borderRadius"`
	Shadows         bool       `json:"shadows"`
}

type HeaderStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Padding         string `json:"padding"`
	BorderBottom    string `json:"borderBottom"`
}

type SectionHeaderStyle struct {
	FontSize      string `json:"fontSize"`
	Color         string `json:"color"`
	BorderBottom  string `json:"borderBottom"`
	TextTransform string `json:"textTransform"`
	FontWeight    string `json:"fontWeight"`
}

type ContentStyle struct {
	BulletStyle    string `json:"bulletStyle"`
	LinkColor      string `json:"linkColor"`
	LinkDecoration string `json:"linkDecoration"`
}

type SectionStyles struct {
	Header         HeaderStyle        `json:"header"`
	SectionHeaders SectionHeaderStyle `json:"sectionHeaders"`
	Content        ContentStyle       `json:"content"`
}

// EnhancedTemplateOptions is the canonical presentation configuration both
// renderers consume. Renderers only read it; callers own the value.
type EnhancedTemplateOptions struct {
	FontFamily string              `json:"fontFamily"`
	FontSize   string              `json:"fontSize"`
	LineHeight string              `json:"lineHeight"`
	FontWeight FontWeights         `json:"fontWeight"`
	Colors     ColorPalette        `json:"colors"`
	Spacing    Spacing             `json:"spacing"`
	Layout     Layout              `json:"layout"`
	Sections   SectionStyles       `json:"sections"`
	ShowPhoto  bool                `json:"showPhoto"`
	// SectionsOrder controls render order; a key absent here never renders.
	SectionsOrder      []SectionKey        `json:"sectionsOrder"`
	SectionsVisibility map[SectionKey]bool `json:"sectionsVisibility"`
	// CustomCSS is appended verbatim after all computed styles.
	CustomCSS  string `json:"customCSS,omitempty"`
	PageBreaks bool   `json:"pageBreaks"`
}

// LegacyTemplateOptions is the historical flat shape. Colors and Spacing are
// optional hints that older payloads may or may not carry.
type LegacyTemplateOptions struct {
	FontFamily string         `json:"fontFamily"`
	FontSize   string         `json:"fontSize"`
	TextAlign  Alignment      `json:"textAlign"`
	Colors     *LegacyColors  `json:"colors,omitempty"`
	Spacing    *LegacySpacing `json:"spacing,omitempty"`
}

type LegacyColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

type LegacySpacing struct {
	SectionSpacing string `json:"sectionSpacing,omitempty"`
	ItemSpacing    string `json:"itemSpacing,omitempty"`
}

// Documented defaults for every enhanced-only field.
const (
	defaultFontFamily     = "Inter, sans-serif"
	defaultFontSize       = "11px"
	defaultLineHeight     = "1.5"
	defaultPrimaryColor   = "#000000"
	defaultSecondaryColor = "#333333"
	defaultAccentColor    = "#2E86AB"
	defaultBackground     = "#ffffff"
	defaultTextColor      = "#111827"
	defaultMutedColor     = "#6b7280"
	defaultSectionSpacing = "16px"
	defaultItemSpacing    = "8px"
)

// DefaultEnhancedOptions returns the enhanced configuration every field of
// which matches the documented defaults of the legacy conversion.
func DefaultEnhancedOptions() EnhancedTemplateOptions {
	return ConvertLegacyOptions(LegacyTemplateOptions{
		FontFamily: defaultFontFamily,
		FontSize:   defaultFontSize,
		TextAlign:  AlignLeft,
	})
}

// ConvertLegacyOptions upgrades a legacy configuration to the enhanced shape.
// The conversion is total: every branch has a default, it never fails.
// Callers must only invoke it on values known to be legacy-shaped.
func ConvertLegacyOptions(legacy LegacyTemplateOptions) EnhancedTemplateOptions {
	primary := defaultPrimaryColor
	secondary := defaultSecondaryColor
	accent := defaultAccentColor
	if legacy.Colors != nil {
		primary = orDefault(legacy.Colors.Primary, primary)
		secondary = orDefault(legacy.Colors.Secondary, secondary)
		accent = orDefault(legacy.Colors.Accent, accent)
	}

	sectionSpacing := defaultSectionSpacing
	itemSpacing := defaultItemSpacing
	if legacy.Spacing != nil {
		sectionSpacing = orDefault(legacy.Spacing.SectionSpacing, sectionSpacing)
		itemSpacing = orDefault(legacy.Spacing.ItemSpacing, itemSpacing)
	}

	align := legacy.TextAlign
	if align == "" {
		align = AlignLeft
	}

	return EnhancedTemplateOptions{
		FontFamily: orDefault(legacy.FontFamily, defaultFontFamily),
		FontSize:   orDefault(legacy.FontSize, defaultFontSize),
		LineHeight: defaultLineHeight,
		FontWeight: FontWeights{Light: "300", Normal: "400", Bold: "600"},
		Colors: ColorPalette{
			Primary:    primary,
			Secondary:  secondary,
			Accent:     accent,
			Background: defaultBackground,
			Text:       defaultTextColor,
			Muted:      defaultMutedColor,
		},
		Spacing: Spacing{
			SectionSpacing:   sectionSpacing,
			ItemSpacing:      itemSpacing,
			ParagraphSpacing: "8px",
			Margins:          Margins{Top: "20px", Right: "20px", Bottom: "20px", Left: "20px"},
		},
		Layout: Layout{
			Type:            LayoutSingleColumn,
			HeaderAlignment: align,
			SectionDividers: true,
			BorderRadius:    "0px",
			Shadows:         false,
		},
		Sections: SectionStyles{
			Header: HeaderStyle{
				BackgroundColor: defaultBackground,
				TextColor:       primary,
				Padding:         "0px",
				BorderBottom:    "none",
			},
			SectionHeaders: SectionHeaderStyle{
				FontSize:      "16px",
				Color:         primary,
				BorderBottom:  "2px solid " + accent,
				TextTransform: "uppercase",
				FontWeight:    "600",
			},
			Content: ContentStyle{
				BulletStyle:    "disc",
				LinkColor:      accent,
				LinkDecoration: "none",
			},
		},
		ShowPhoto:          false,
		SectionsOrder:      append([]SectionKey(nil), AllSections...),
		SectionsVisibility: defaultVisibility(),
		PageBreaks:         false,
	}
}

// ApplyDefaults fills zero-valued fields so partially populated payloads
// behave like complete ones. Already-set fields are left untouched, which
// keeps the operation safe on fully enhanced values.
func (o *EnhancedTemplateOptions) ApplyDefaults() {
	def := DefaultEnhancedOptions()

	o.FontFamily = orDefault(o.FontFamily, def.FontFamily)
	o.FontSize = orDefault(o.FontSize, def.FontSize)
	o.LineHeight = orDefault(o.LineHeight, def.LineHeight)
	o.FontWeight.Light = orDefault(o.FontWeight.Light, def.FontWeight.Light)
	o.FontWeight.Normal = orDefault(o.FontWeight.Normal, def.FontWeight.Normal)
	o.FontWeight.Bold = orDefault(o.FontWeight.Bold, def.FontWeight.Bold)

	o.Colors.Primary = orDefault(o.Colors.Primary, def.Colors.Primary)
	o.Colors.Secondary = orDefault(o.Colors.Secondary, def.Colors.Secondary)
	o.Colors.Accent = orDefault(o.Colors.Accent, def.Colors.Accent)
	o.Colors.Background = orDefault(o.Colors.Background, def.Colors.Background)
	o.Colors.Text = orDefault(o.Colors.Text, def.Colors.Text)
	o.Colors.Muted = orDefault(o.Colors.Muted, def.Colors.Muted)

	o.Spacing.SectionSpacing = orDefault(o.Spacing.SectionSpacing, def.Spacing.SectionSpacing)
	o.Spacing.ItemSpacing = orDefault(o.Spacing.ItemSpacing, def.Spacing.ItemSpacing)
	o.Spacing.ParagraphSpacing = orDefault(o.Spacing.ParagraphSpacing, def.Spacing.ParagraphSpacing)
	o.Spacing.Margins.Top = orDefault(o.Spacing.Margins.Top, def.Spacing.Margins.Top)
	o.Spacing.Margins.Right = orDefault(o.Spacing.Margins.Right, def.Spacing.Margins.Right)
	o.Spacing.Margins.Bottom = orDefault(o.Spacing.Margins.Bottom, def.Spacing.Margins.Bottom)
	o.Spacing.Margins.Left = orDefault(o.Spacing.Margins.Left, def.Spacing.Margins.Left)

	if o.Layout.Type == "" {
		o.Layout.Type = def.Layout.Type
	}
	if o.Layout.HeaderAlignment == "" {
		o.Layout.HeaderAlignment = def.Layout.HeaderAlignment
	}
	o.Layout.BorderRadius = orDefault(o.Layout.BorderRadius, def.Layout.BorderRadius)

	o.Sections.Header.BackgroundColor = orDefault(o.Sections.Header.BackgroundColor, def.Sections.Header.BackgroundColor)
	o.Sections.Header.TextColor = orDefault(o.Sections.Header.TextColor, def.Sections.Header.TextColor)
	o.Sections.Header.Padding = orDefault(o.Sections.Header.Padding, def.Sections.Header.Padding)
	o.Sections.Header.BorderBottom = orDefault(o.Sections.Header.BorderBottom, def.Sections.Header.BorderBottom)
	o.Sections.SectionHeaders.FontSize = orDefault(o.Sections.SectionHeaders.FontSize, def.Sections.SectionHeaders.FontSize)
	o.Sections.SectionHeaders.Color = orDefault(o.Sections.SectionHeaders.Color, def.Sections.SectionHeaders.Color)
	o.Sections.SectionHeaders.BorderBottom = orDefault(o.Sections.SectionHeaders.BorderBottom, def.Sections.SectionHeaders.BorderBottom)
	o.Sections.SectionHeaders.TextTransform = orDefault(o.Sections.SectionHeaders.TextTransform, def.Sections.SectionHeaders.TextTransform)
	o.Sections.SectionHeaders.FontWeight = orDefault(o.Sections.SectionHeaders.FontWeight, def.Sections.SectionHeaders.FontWeight)
	o.Sections.Content.BulletStyle = orDefault(o.Sections.Content.BulletStyle, def.Sections.Content.BulletStyle)
	o.Sections.Content.LinkColor = orDefault(o.Sections.Content.LinkColor, def.Sections.Content.LinkColor)
	o.Sections.Content.LinkDecoration = orDefault(o.Sections.Content.LinkDecoration, def.Sections.Content.LinkDecoration)

	if o.SectionsOrder == nil {
		o.SectionsOrder = def.SectionsOrder
	}
	if o.SectionsVisibility == nil {
		o.SectionsVisibility = def.SectionsVisibility
	}
}

func defaultVisibility() map[SectionKey]bool {
	vis := make(map[SectionKey]bool, len(AllSections))
	for _, k := range AllSections {
		vis[k] = true
	}
	return vis
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
