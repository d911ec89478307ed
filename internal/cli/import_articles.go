package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/paperread/internal/config"
	"github.com/mrlokans/paperread/internal/database"
	"github.com/mrlokans/paperread/internal/database/articles"
	"github.com/mrlokans/paperread/internal/entities"
	"github.com/mrlokans/paperread/internal/importers"
)

// ImportArticlesCommand imports plain-text articles and books.
type ImportArticlesCommand struct {
	FilePath       string
	DirPath        string
	Pattern        string
	DatabasePath   string
	Title          string
	Category       string
	Difficulty     string
	Source         string
	DetectChapters bool
	Overwrite      bool
	Verbose        bool
}

func NewImportArticlesCommand() *ImportArticlesCommand {
	return &ImportArticlesCommand{}
}

func (cmd *ImportArticlesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-articles", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a single text file")
	fs.StringVar(&cmd.DirPath, "dir", "", "Directory to import in bulk")
	fs.StringVar(&cmd.Pattern, "pattern", config.DefaultImportPattern, "File pattern for -dir imports")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Title, "title", "", "Article title, or book title with -detect-chapters (detected when empty)")
	fs.StringVar(&cmd.Category, "category", "", "Category (detected when empty)")
	fs.StringVar(&cmd.Difficulty, "difficulty", "", "beginner, intermediate or advanced (detected when empty)")
	fs.StringVar(&cmd.Source, "source", "", "Source shown with the article")
	fs.BoolVar(&cmd.DetectChapters, "detect-chapters", false, "Split books into one article per chapter")
	fs.BoolVar(&cmd.Overwrite, "overwrite", false, "Replace articles that already exist with the same title")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every imported file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-articles (-file <path> | -dir <path>) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import plain-text articles or books into the reading library.\n")
		fmt.Fprintf(os.Stderr, "UTF-8, UTF-16 (with BOM) and GBK/GB18030 files are supported.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-articles -file article.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-articles -dir ./articles -category 科学\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-articles -file book.txt -detect-chapters -title \"Book\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if (cmd.FilePath == "") == (cmd.DirPath == "") {
		return fmt.Errorf("exactly one of -file or -dir is required")
	}
	if cmd.Difficulty != "" {
		if _, ok := entities.ParseDifficulty(cmd.Difficulty); !ok {
			return fmt.Errorf("invalid -difficulty %q: must be beginner, intermediate or advanced", cmd.Difficulty)
		}
	}

	return nil
}

func (cmd *ImportArticlesCommand) options() importers.Options {
	difficulty, _ := entities.ParseDifficulty(cmd.Difficulty)
	return importers.Options{
		Title:          cmd.Title,
		Category:       cmd.Category,
		Difficulty:     difficulty,
		Source:         cmd.Source,
		Overwrite:      cmd.Overwrite,
		DetectChapters: cmd.DetectChapters,
	}
}

func (cmd *ImportArticlesCommand) Run() error {
	fmt.Println("Article Import")
	fmt.Println("==============")

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	fmt.Printf("Database: %s\n\n", absDBPath)

	db, err := database.NewQuietDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	importer := importers.NewArticleImporter(articles.NewRepository(db.DB))

	if cmd.DirPath != "" {
		if err := importer.ImportDirectory(cmd.DirPath, cmd.Pattern, cmd.options()); err != nil {
			return err
		}
	} else {
		importer.ImportFile(cmd.FilePath, cmd.options())
	}

	result := importer.Result()
	if cmd.Verbose {
		fmt.Println("=== Files ===")
		for _, item := range result.Items {
			switch item.Status {
			case importers.StatusFailed:
				fmt.Printf("  [FAILED]   %s: %v\n", item.Path, item.Err)
			case importers.StatusSkipped:
				fmt.Printf("  [SKIPPED]  %s (already exists, use -overwrite)\n", item.Title)
			default:
				fmt.Printf("  [IMPORTED] #%d %s\n", item.ArticleID, item.Title)
			}
		}
		fmt.Println()
	}

	fmt.Println("=== Import Summary ===")
	fmt.Printf("Total:    %d\n", result.Total())
	fmt.Printf("Imported: %d\n", result.Imported)
	fmt.Printf("Failed:   %d\n", result.Failed)
	fmt.Printf("Skipped:  %d\n", result.Skipped)

	if result.Imported == 0 && result.Failed > 0 {
		return fmt.Errorf("no articles imported, %d failed", result.Failed)
	}
	return nil
}
