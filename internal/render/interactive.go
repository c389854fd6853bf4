package render

import "resume-studio/internal/model"

// Interactive renders the on-screen resume. With previewMode false every
// field carries a data-edit attribute; the host binds a click listener on
// [data-edit], decodes the EditTarget JSON and opens its editor. With
// previewMode true the markup carries no edit affordances and empty
// sections are omitted exactly as the static renderer omits them.
//
// The returned fragment is self-contained: it embeds the shared stylesheet
// so the host page needs no extra assets.
func Interactive(data model.ResumeData, opts model.EnhancedTemplateOptions, previewMode bool) string {
	mode := ModeEdit
	if previewMode {
		mode = ModePreview
	}
	w := newBuilder(data, opts, mode)
	frag := w.fragment("resume-preview")

	css := baseCSS
	if w.opts.CustomCSS != "" {
		css += "\n" + w.opts.CustomCSS
	}
	return `<div class="resume-preview-wrap"><style>` + css + `</style>` + frag + `</div>`
}
