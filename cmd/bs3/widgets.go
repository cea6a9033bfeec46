package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bs3/pkg/page"
)

type widgetsOptions struct {
	jsonOutput bool
}

type widgetInfo struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Scripts []string `json:"scripts,omitempty"`
}

func newWidgetsCmd() *cobra.Command {
	opts := &widgetsOptions{}

	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "List the widgets page documents can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidgets(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runWidgets(cmd *cobra.Command, opts *widgetsOptions) error {
	reg := page.NewDefaultRegistry()
	names := reg.Names()

	infos := make([]widgetInfo, 0, len(names))
	for _, name := range names {
		descriptor, _ := reg.Descriptor(name)
		infos = append(infos, widgetInfo{Name: name, Summary: descriptor.Summary, Scripts: descriptor.Scripts})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "WIDGET\tJS\tDESCRIPTION")
	for _, info := range infos {
		js := "-"
		if len(info.Scripts) > 0 {
			js = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", info.Name, js, info.Summary)
	}
	return writer.Flush()
}
