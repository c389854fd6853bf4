// Package render produces resume markup from a ResumeData value and an
// enhanced template options value. Two entry points share one section
// builder: Interactive (on-screen, click-to-edit) and Static (off-screen
// export source). Both consume the same style.Resolve output, so a resume
// renders identically on either path.
package render

import (
	"encoding/json"
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-studio/internal/model"
	"resume-studio/internal/style"
)

// Mode selects a render variant.
//
// ModeEdit renders every field as a click target and shows italic
// placeholders for blank fields so the user can always click into them.
// ModePreview keeps the interactive markup shape but drops all edit
// affordances and omits empty sections, matching ModeStatic's visibility.
// ModeStatic is the export source: plain markup, no affordances.
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
	ModeStatic
)

// EditTarget describes which value a click should edit. It is the only
// coupling between the renderer and the edit-modal collaborator: the
// renderer serializes it into a data-edit attribute and never opens the
// editor itself.
type EditTarget struct {
	Section   string `json:"section"`
	Index     *int   `json:"index,omitempty"`
	Field     string `json:"field,omitempty"`
	Multiline bool   `json:"multiline"`
}

// sectionPersonalInfo is the edit-target section for header fields; it is
// not a SectionKey because the header always renders.
const sectionPersonalInfo = "personalInfo"

func target(section string, field string, multiline bool) EditTarget {
	return EditTarget{Section: section, Field: field, Multiline: multiline}
}

func (t EditTarget) at(i int) EditTarget {
	idx := i
	t.Index = &idx
	return t
}

type builder struct {
	data model.ResumeData
	opts model.EnhancedTemplateOptions
	res  style.Resolved
	mode Mode
	b    strings.Builder
}

func newBuilder(data model.ResumeData, opts model.EnhancedTemplateOptions, mode Mode) *builder {
	opts.ApplyDefaults()
	return &builder{
		data: data,
		opts: opts,
		res:  style.Resolve(data, opts),
		mode: mode,
	}
}

func (w *builder) editable() bool { return w.mode == ModeEdit }

// omitEmpty reports whether blank sections are dropped entirely. Preview
// mode emulates the static renderer's omission behavior.
func (w *builder) omitEmpty() bool { return w.mode != ModeEdit }

func esc(s string) string { return template.HTMLEscapeString(s) }

// editAttr serializes the target for the data-edit attribute.
func editAttr(t EditTarget) string {
	b, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return esc(string(b))
}

// field renders one editable text value. In edit mode the value (or its
// placeholder when blank) is wrapped in a click target; otherwise the
// escaped text is returned bare and blank values collapse to nothing.
func (w *builder) field(text, placeholder string, t EditTarget) string {
	if !w.editable() {
		return esc(text)
	}
	cls := "editable"
	display := text
	if strings.TrimSpace(text) == "" {
		cls += " placeholder"
		display = placeholder
	}
	return `<span class="` + cls + `" data-edit="` + editAttr(t) + `">` + esc(display) + `</span>`
}

// linkField renders a link-type value. Edit mode intercepts the click: the
// value renders as a span with the edit target and no href, so clicking can
// never navigate. Preview and static modes render a plain hyperlink.
func (w *builder) linkField(raw, label, scheme string, t EditTarget) string {
	if w.editable() {
		return w.field(labelOr(label, raw), label, t)
	}
	if raw == "" {
		return ""
	}
	return `<a class="contact-link" href="` + esc(linkHref(raw, scheme)) + `">` + esc(labelOr(label, raw)) + `</a>`
}

func labelOr(label, raw string) string {
	if label != "" {
		return label
	}
	return raw
}

func linkHref(raw, scheme string) string {
	switch scheme {
	case "mailto":
		return "mailto:" + raw
	case "tel":
		return "tel:" + raw
	default:
		if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
			return raw
		}
		return "https://" + raw
	}
}

// linkLabel derives a tidy eTLD+1 display label for a URL, falling back to
// the hostname and finally the raw value.
func linkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// fragment renders the resume root element with header and ordered,
// visibility-filtered sections.
func (w *builder) fragment(rootID string) string {
	w.b.WriteString(`<div id="` + rootID + `" class="resume ` + w.res.LayoutClass + `" style="` + esc(w.res.Tokens.InlineStyle()) + `">`)
	w.header()
	w.b.WriteString(`<main class="resume-body">`)
	for _, key := range w.opts.SectionsOrder {
		if vis, ok := w.opts.SectionsVisibility[key]; ok && !vis {
			continue
		}
		switch key {
		case model.SectionSummary:
			w.summarySection()
		case model.SectionExperience:
			w.experienceSection()
		case model.SectionEducation:
			w.educationSection()
		case model.SectionSkills:
			w.skillsSection()
		case model.SectionProjects:
			w.projectsSection()
		default:
			// unknown keys render nothing
		}
	}
	w.b.WriteString(`</main></div>`)
	return w.b.String()
}
