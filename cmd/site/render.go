package main

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"personal-site/internal/adapter/markdown"
	"personal-site/internal/frontmatter"
)

func newRenderCmd() *cobra.Command {
	var (
		term  bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a local markdown note",
		Long:  "Parses front matter and renders the note body as sanitised HTML, or for the terminal with --term.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}
			if term {
				return renderTerminal(cmd.OutOrStdout(), string(raw), width)
			}
			return renderHTML(cmd.OutOrStdout(), cmd.ErrOrStderr(), string(raw))
		},
	}
	cmd.Flags().BoolVar(&term, "term", false, "render for the terminal instead of HTML")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width for --term")
	return cmd
}

func renderHTML(out, errOut io.Writer, raw string) error {
	meta, body, err := frontmatter.Parse(raw)
	if err != nil {
		fmt.Fprintf(errOut, "warning: front matter ignored: %v\n", err)
	}

	html, err := markdown.NewRenderer().Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	if meta.Title != "" {
		fmt.Fprintf(out, "<h1>%s</h1>\n", template.HTMLEscapeString(meta.Title))
	}
	_, err = io.WriteString(out, html)
	return err
}

func renderTerminal(out io.Writer, raw string, width int) error {
	meta, body, err := frontmatter.Parse(raw)
	if err == nil && meta.Title != "" {
		body = "# " + meta.Title + "\n\n" + body
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}
