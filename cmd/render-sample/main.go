package main

import (
	"flag"
	"fmt"
	"os"

	"resume-studio/internal/model"
	"resume-studio/internal/render"
)

// Renders the built-in sample resume to a standalone HTML file, useful for
// eyeballing template changes without a browser round-trip.
func main() {
	out := flag.String("o", "sample_resume.html", "output path")
	edit := flag.Bool("edit", false, "render the interactive editor fragment instead of the export document")
	flag.Parse()

	data := model.SampleResume()
	opts := model.DefaultEnhancedOptions()

	var html string
	if *edit {
		html = render.Interactive(data, opts, false)
	} else {
		doc, err := render.Static(data, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(2)
		}
		html = doc
	}

	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
