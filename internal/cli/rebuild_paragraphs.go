package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mrlokans/paperread/internal/config"
	"github.com/mrlokans/paperread/internal/database"
	"github.com/mrlokans/paperread/internal/database/articles"
	"github.com/mrlokans/paperread/internal/services"
)

// RebuildParagraphsCommand re-derives stored paragraph decompositions.
type RebuildParagraphsCommand struct {
	DatabasePath string
	ArticleID    uint
	OnlyMissing  bool
}

func NewRebuildParagraphsCommand() *RebuildParagraphsCommand {
	return &RebuildParagraphsCommand{}
}

func (cmd *RebuildParagraphsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("rebuild-paragraphs", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.UintVar(&cmd.ArticleID, "article", 0, "Rebuild only this article ID")
	fs.BoolVar(&cmd.OnlyMissing, "only-missing", false, "Rebuild only articles without a stored decomposition")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s rebuild-paragraphs [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Recompute the paragraphs and paragraph counts of stored articles.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *RebuildParagraphsCommand) Run() error {
	db, err := database.NewQuietDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := services.NewParagraphService(articles.NewRepository(db.DB), nil)

	if cmd.ArticleID != 0 {
		count, err := service.RebuildArticle(cmd.ArticleID)
		if err != nil {
			return err
		}
		fmt.Printf("Article %d: %d paragraphs\n", cmd.ArticleID, count)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := service.RebuildAll(ctx, cmd.OnlyMissing, 0)
	if err != nil {
		return err
	}

	fmt.Println("=== Paragraph Rebuild Summary ===")
	fmt.Printf("Articles:   %d\n", result.Total)
	fmt.Printf("Rebuilt:    %d\n", result.Rebuilt)
	fmt.Printf("Failed:     %d\n", result.Failed)
	fmt.Printf("Paragraphs: %d\n", result.Paragraphs)
	return nil
}
