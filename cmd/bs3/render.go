package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	bs3 "github.com/goliatone/go-bs3"
	"github.com/goliatone/go-bs3/pkg/page"
	"github.com/goliatone/go-bs3/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bs3/pkg/sanitize"
)

type renderOptions struct {
	output    string
	url       string
	host      string
	sanitize  bool
	templates string
	layout    string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a YAML or JSON page document to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&opts.url, "url", "", "Request URL used by pagination and pager widgets (e.g. /posts?page=2)")
	cmd.Flags().StringVar(&opts.host, "host", "", "Host treated as internal by nav widgets (defaults to the --url host)")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize block content and attributes before rendering")
	cmd.Flags().StringVar(&opts.templates, "templates", "", "Directory with extra layout templates (*.tpl)")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "Layout template overriding the document's layout")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions, path string) error {
	log, err := root.newLogger(cmd)
	if err != nil {
		return err
	}

	doc, err := page.LoadFile(path)
	if err != nil {
		return newCommandError("render", "loading "+path, err, "Check the document has a title and at least one block with a widget.")
	}
	if opts.layout != "" {
		doc.Layout = opts.layout
	}

	renderOpts := page.RenderOptions{Host: opts.host}
	if opts.url != "" {
		requestURL, err := url.Parse(opts.url)
		if err != nil {
			return newCommandError("render", "parsing --url", err, "Pass a URL such as /posts?page=2.")
		}
		renderOpts.RequestURL = requestURL
		if renderOpts.Host == "" {
			renderOpts.Host = requestURL.Host
		}
	}

	var engineOpts []gotemplate.Option
	if opts.templates != "" {
		engineOpts = append(engineOpts, gotemplate.WithBaseDir(opts.templates))
	}
	engine, err := bs3.NewTemplateEngine(engineOpts...)
	if err != nil {
		return newCommandError("render", "loading templates", err, "Check that --templates points to a readable directory.")
	}

	pageOpts := []page.Option{
		page.WithTemplateRenderer(engine),
		page.WithLogger(pageLogger{log: log}),
	}
	if opts.sanitize {
		pageOpts = append(pageOpts, page.WithSanitizer(sanitize.New()))
	}

	log.WithFields(map[string]any{
		"file":   path,
		"layout": doc.Layout,
		"blocks": len(doc.Blocks),
	}).Debug("rendering page")

	html, err := page.NewRenderer(pageOpts...).Render(cmd.Context(), doc, renderOpts)
	if err != nil {
		return newCommandError("render", path, err, "Run 'bs3 widgets' to list the available widgets.")
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(html)
		return err
	}
	if err := os.WriteFile(opts.output, html, 0o644); err != nil {
		return newCommandError("render", "writing "+opts.output, err, "Check the output directory exists and is writable.")
	}
	log.WithFields(map[string]any{"file": opts.output, "bytes": len(html)}).Info("page written")
	fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", opts.output)
	return nil
}
