package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	bs3 "github.com/goliatone/go-bs3"
	"github.com/goliatone/go-bs3/internal/prompt"
	"github.com/goliatone/go-bs3/pkg/page"
)

// newPrompter is swapped in tests for a scripted driver.
var newPrompter = func() prompt.Driver { return prompt.Survey() }

const noLayout = "none"

type scaffoldOptions struct {
	output string
	force  bool
}

func newScaffoldCmd(root *rootFlags) *cobra.Command {
	opts := &scaffoldOptions{}

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Interactively create a starter page document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, root, opts, newPrompter())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write YAML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite the output file when it exists")

	return cmd
}

func runScaffold(cmd *cobra.Command, root *rootFlags, opts *scaffoldOptions, driver prompt.Driver) error {
	log, err := root.newLogger(cmd)
	if err != nil {
		return err
	}

	if opts.output != "" && !opts.force {
		if _, err := os.Stat(opts.output); err == nil {
			return newCommandError("scaffold", opts.output+" already exists", os.ErrExist, "Pass --force to overwrite it.")
		}
	}

	doc, err := askDocument(cmd, driver)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Scaffold cancelled.")
			return nil
		}
		return newCommandError("scaffold", "collecting answers", err, "")
	}
	if err := page.Validate(doc); err != nil {
		return newCommandError("scaffold", "validating the document", err, "")
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return newCommandError("scaffold", "encoding YAML", err, "")
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return newCommandError("scaffold", "writing "+opts.output, err, "Check the output directory exists and is writable.")
	}
	log.WithFields(map[string]any{"file": opts.output, "blocks": len(doc.Blocks)}).Info("page document written")
	fmt.Fprintf(cmd.OutOrStdout(), "Page document written to %s\nRender it with: bs3 render %s\n", opts.output, opts.output)
	return nil
}

func askDocument(cmd *cobra.Command, driver prompt.Driver) (page.Document, error) {
	ctx := cmd.Context()

	title, err := driver.Input(ctx, prompt.InputConfig{
		Message: "Page title",
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("a title is required")
			}
			return nil
		},
	})
	if err != nil {
		return page.Document{}, err
	}

	intro, err := driver.TextArea(ctx, prompt.TextAreaConfig{
		Message: "Intro paragraph",
		Help:    "Shown as a lead paragraph under the title. Leave empty to skip it.",
	})
	if err != nil {
		return page.Document{}, err
	}

	layouts := []string{bs3.LayoutPage, bs3.LayoutBare, noLayout}
	layoutIdx, err := driver.Select(ctx, prompt.SelectConfig{
		Message: "Layout",
		Options: layouts,
		Help:    "page emits a full HTML document, bare only the assets and body, none the body alone",
	})
	if err != nil {
		return page.Document{}, err
	}

	fluid, err := driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Use a full width (fluid) container?"})
	if err != nil {
		return page.Document{}, err
	}

	names := page.NewDefaultRegistry().Names()
	picked, err := driver.MultiSelect(ctx, prompt.SelectConfig{
		Message:  "Widgets to include",
		Options:  names,
		PageSize: 15,
	})
	if err != nil {
		return page.Document{}, err
	}

	doc := page.Document{Title: strings.TrimSpace(title), Fluid: fluid}
	if layoutIdx >= 0 && layoutIdx < len(layouts) && layouts[layoutIdx] != noLayout {
		doc.Layout = layouts[layoutIdx]
	}

	doc.Blocks = append(doc.Blocks, page.Block{
		Widget:  "heading",
		Content: doc.Title,
		Options: map[string]any{"level": 1, "page_header": true},
	})
	if intro = strings.TrimSpace(intro); intro != "" {
		doc.Blocks = append(doc.Blocks, page.Block{
			Widget:  "paragraph",
			Content: intro,
			Options: map[string]any{"lead": true},
		})
	}
	for _, idx := range picked {
		if idx < 0 || idx >= len(names) || names[idx] == "heading" {
			continue
		}
		doc.Blocks = append(doc.Blocks, starterBlock(names[idx]))
	}
	return doc, nil
}

// starterBlock returns a small working example of the named widget.
func starterBlock(name string) page.Block {
	switch name {
	case "paragraph":
		return page.Block{Widget: name, Content: "Introduce the page here.", Options: map[string]any{"lead": true}}
	case "alert":
		return page.Block{Widget: name, Content: "Something worth knowing.", Options: map[string]any{"style": "info", "dismissible": true}}
	case "button":
		return page.Block{Widget: name, Content: "Get started", Options: map[string]any{"classes": "primary lg", "href": "#"}}
	case "list":
		return page.Block{Widget: name, Items: []any{"First", "Second", []any{"Nested"}}}
	case "list_group", "breadcrumbs", "nav_tabs", "nav_pills", "dropdown":
		return page.Block{Widget: name, Content: "Menu", Items: []any{
			map[string]any{"label": "Home", "href": "/", "active": true},
			map[string]any{"label": "About", "href": "/about"},
		}}
	case "table":
		return page.Block{Widget: name, Options: map[string]any{"head": []any{"Name", "Role"}, "classes": "striped"}, Items: []any{
			[]any{"Ada", "Engineer"},
			[]any{"Grace", "Admiral"},
		}}
	case "pagination", "pager":
		return page.Block{Widget: name, Options: map[string]any{"per_page": 10, "total": 42}}
	case "row":
		return page.Block{Widget: name, Children: []page.Block{
			{Widget: "col", Content: "Left", Options: map[string]any{"columns": "md-6"}},
			{Widget: "col", Content: "Right", Options: map[string]any{"columns": "md-6"}},
		}}
	case "modal":
		return page.Block{Widget: name, Content: "Modal body", Options: map[string]any{"id": "dialog", "title": "Dialog"}}
	case "template":
		return page.Block{Widget: name, Content: "Hello {{ name }}", Options: map[string]any{"name": "world"}}
	default:
		return page.Block{Widget: name, Content: strings.ReplaceAll(name, "_", " ")}
	}
}
