package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/paperread/internal/importers"
	"github.com/mrlokans/paperread/internal/pagination"
)

const previewRunes = 60

// PaginateCommand prints the page layout of a text file under a policy.
type PaginateCommand struct {
	FilePath string
	Page     int
	Policy   pagination.Policy

	mode   string
	output io.Writer
}

func NewPaginateCommand() *PaginateCommand {
	return &PaginateCommand{output: os.Stdout}
}

func (cmd *PaginateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("paginate", flag.ContinueOnError)
	defaults := pagination.DefaultPolicy

	fs.StringVar(&cmd.FilePath, "file", "", "Text file to paginate (required)")
	fs.IntVar(&cmd.Page, "page", 0, "Print this page in full instead of the layout")
	fs.StringVar(&cmd.mode, "mode", string(defaults.Mode), "Pagination mode: fixed or smart")
	fs.IntVar(&cmd.Policy.PageSize, "page-size", defaults.PageSize, "Paragraphs per page in fixed mode")
	fs.IntVar(&cmd.Policy.TargetChars, "target-chars", defaults.TargetChars, "Characters a smart page aims for")
	fs.IntVar(&cmd.Policy.MinChars, "min-chars", defaults.MinChars, "Minimum characters per smart page")
	fs.IntVar(&cmd.Policy.MaxChars, "max-chars", defaults.MaxChars, "Maximum characters per smart page")
	fs.IntVar(&cmd.Policy.MinParagraphs, "min-paragraphs", defaults.MinParagraphs, "Minimum paragraphs per smart page")
	fs.IntVar(&cmd.Policy.MaxParagraphs, "max-paragraphs", defaults.MaxParagraphs, "Maximum paragraphs per smart page")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s paginate -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Preview how a text is split into reading pages.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	switch mode := pagination.Mode(cmd.mode); mode {
	case pagination.ModeFixed, pagination.ModeSmart:
		cmd.Policy.Mode = mode
	default:
		return fmt.Errorf("invalid -mode %q: must be fixed or smart", cmd.mode)
	}
	return nil
}

func (cmd *PaginateCommand) Run() error {
	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	text, _, err := importers.DecodeText(data)
	if err != nil {
		return err
	}

	paragraphs := pagination.Extract(text)
	out := cmd.output

	if cmd.Page > 0 {
		result := pagination.GetPage(paragraphs, cmd.Policy, cmd.Page)
		fmt.Fprintf(out, "Page %d of %d (%d paragraphs, %d chars)\n\n",
			result.CurrentPage, result.TotalPages, result.PageInfo.ParagraphCount, result.PageInfo.CharCount)
		fmt.Fprintln(out, pagination.Join(result.Paragraphs))
		return nil
	}

	pages := pagination.Paginate(paragraphs, cmd.Policy)
	fmt.Fprintf(out, "%d paragraphs, %d pages (%s)\n\n", len(paragraphs), len(pages), cmd.Policy.Key())
	for _, p := range pages {
		first := ""
		if len(p.Paragraphs) > 0 {
			first = preview(p.Paragraphs[0])
		}
		fmt.Fprintf(out, "%4d  paragraphs %d-%d  %5d chars  %s\n", p.Number, p.Start+1, p.End, p.CharCount, first)
	}
	return nil
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	return string([]rune(s)[:previewRunes]) + "..."
}
