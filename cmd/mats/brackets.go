package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"twviewer/bracket"
	"twviewer/models"
)

func (c *cli) bracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets TYPE ID",
		Short: "List weight classes, bracket templates and pages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, id, err := tournamentArgs(args)
			if err != nil {
				return err
			}
			data, err := c.api.GetBrackets(cmd.Context(), et, id)
			if err != nil {
				return fmt.Errorf("load brackets: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(data.Weights) == 0 {
				fmt.Fprintln(out, "No weight classes are available yet.")
				return nil
			}

			weights := make([][]string, 0, len(data.Weights))
			for _, w := range data.Weights {
				def := ""
				if t, ok := data.DefaultTemplate(w); ok {
					def = t.TemplateName
				}
				weights = append(weights, []string{
					strconv.Itoa(w.WeightIndex), w.WeightName, strconv.Itoa(w.WeightID), strconv.Itoa(w.BracketID), def,
				})
			}
			printTable(out, []string{"#", "Weight", "Weight ID", "Bracket", "Default template"}, weights, nil)

			templates := make([][]string, 0, len(data.Templates))
			for _, t := range data.Templates {
				templates = append(templates, []string{
					strconv.Itoa(t.TemplateIndex), strconv.Itoa(t.BracketID), t.TemplateName, describePages(t.Pages),
				})
			}
			printTable(out, []string{"#", "Bracket", "Template", "Pages (* shown)"}, templates, nil)
			return nil
		},
	}
}

func describePages(pages []models.BracketPage) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		s := strconv.Itoa(p.PageID) + " " + p.PageName
		if p.ShowPage {
			s += "*"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func (c *cli) bracketCmd() *cobra.Command {
	var (
		weight, template int
		pages            []int
		output, baseURL  string
	)

	cmd := &cobra.Command{
		Use:   "bracket TYPE ID",
		Short: "Fetch one rendered bracket as a standalone HTML page",
		Long: `Fetch one rendered bracket as a standalone HTML page.

The weight and template default the same way the web view does. --page lists the pages to
show and needs --template.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, id, err := tournamentArgs(args)
			if err != nil {
				return err
			}
			q := bracket.Query{View: true}
			if weight >= 0 {
				q.Weight = &weight
			}
			if template >= 0 {
				q.Template = &template
			}
			if cmd.Flags().Changed("page") {
				if q.Template == nil {
					return errors.New("--page needs --template")
				}
				q.PagesFor, q.Pages = &template, pages
			}

			data, err := c.api.GetBrackets(cmd.Context(), et, id)
			if err != nil {
				return fmt.Errorf("load brackets: %w", err)
			}
			sel := bracket.Resolve(data, q)
			if !sel.Ready() {
				return errors.New("no bracket is available for that weight class")
			}

			raw, err := c.api.GetBracket(cmd.Context(), et, id, sel.UpstreamID(), sel.PageIDs())
			if err != nil {
				return fmt.Errorf("load bracket: %w", err)
			}
			html, err := bracket.Prepare(raw, bracket.PrepareOptions{BaseURL: baseURL})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), html)
				return err
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return fmt.Errorf("write bracket: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s, %s (pages %s) written to %s\n",
				sel.Weight.WeightName, sel.Template.TemplateName, sel.PagesParam(), output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&weight, "weight", -1, "weight index (default first)")
	flags.IntVar(&template, "template", -1, "template index (default the weight's default)")
	flags.IntSliceVar(&pages, "page", nil, "page id to show, repeatable")
	flags.StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	flags.StringVar(&baseURL, "base-url", "https://www.trackwrestling.com/tw/", "base for relative links in the bracket")
	return cmd
}
