package importers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/entities"
)

// ErrEmptyContent is returned for files without any text.
var ErrEmptyContent = errors.New("file has no content")

// ArticleStore persists imported articles.
type ArticleStore interface {
	CreateArticle(article *entities.Article) error
	GetArticleByTitle(title string) (*entities.Article, error)
	DeleteArticle(id uint) error
}

// Options override detected metadata. Zero values mean "detect".
type Options struct {
	Title      string
	Category   string
	Difficulty entities.Difficulty
	Source     string

	// Overwrite replaces an existing article with the same title instead of skipping it.
	Overwrite bool
	// DetectChapters imports each chapter of a book as its own article.
	DetectChapters bool
}

// Status is the outcome of importing one article.
type Status string

const (
	StatusImported Status = "imported"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Item describes one attempted import.
type Item struct {
	Path      string
	Title     string
	ArticleID uint
	Status    Status
	Err       error
}

// Result summarises an import run.
type Result struct {
	Imported int
	Failed   int
	Skipped  int
	Items    []Item
}

// Total returns the number of attempted imports.
func (r Result) Total() int {
	return r.Imported + r.Failed + r.Skipped
}

func (r Result) String() string {
	return fmt.Sprintf("total %d, imported %d, failed %d, skipped %d", r.Total(), r.Imported, r.Failed, r.Skipped)
}

// ArticleImporter imports text files and accumulates a Result across calls.
type ArticleImporter struct {
	store  ArticleStore
	result Result
}

func NewArticleImporter(store ArticleStore) *ArticleImporter {
	return &ArticleImporter{store: store}
}

// Result returns the summary of everything imported so far.
func (i *ArticleImporter) Result() Result {
	return i.result
}

// ImportFile imports a single file, split into chapters when requested.
func (i *ArticleImporter) ImportFile(path string, opts Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		i.record(Item{Path: path, Status: StatusFailed, Err: err})
		return
	}

	content, enc, err := DecodeText(data)
	if err != nil {
		i.record(Item{Path: path, Status: StatusFailed, Err: err})
		return
	}
	log.Printf("Read %s as %s", path, enc)

	if !opts.DetectChapters {
		i.ImportText(path, content, opts)
		return
	}

	chapters := SplitChapters(content)
	if chapters == nil {
		log.Printf("No chapter headings found in %s, importing as a single article", path)
		i.ImportText(path, content, opts)
		return
	}

	bookTitle := opts.Title
	if bookTitle == "" {
		bookTitle = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	log.Printf("Detected %d chapters in %s", len(chapters), path)

	for _, ch := range chapters {
		chapterOpts := opts
		chapterOpts.Title = bookTitle + " - " + ch.Heading
		i.ImportText(path, ch.Content, chapterOpts)
	}
}

// ImportDirectory imports every file in dir matching the glob pattern, in name order.
func (i *ArticleImporter) ImportDirectory(dir, pattern string, opts Options) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no files matching %s in %s", pattern, dir)
	}
	log.Printf("Found %d files in %s", len(files), dir)

	for _, f := range files {
		if fi, err := os.Stat(f); err == nil && fi.IsDir() {
			continue
		}
		// Titles are detected per file.
		fileOpts := opts
		fileOpts.Title = ""
		i.ImportFile(f, fileOpts)
	}
	return nil
}

// ImportText cleans content, fills in missing metadata and stores the
// article. path names the origin for title and source detection.
func (i *ArticleImporter) ImportText(path, content string, opts Options) *entities.Article {
	content = CleanContent(content)
	if content == "" {
		i.record(Item{Path: path, Title: opts.Title, Status: StatusFailed, Err: ErrEmptyContent})
		return nil
	}

	article := &entities.Article{
		Title:      opts.Title,
		Content:    content,
		Category:   opts.Category,
		Difficulty: opts.Difficulty,
		Source:     opts.Source,
	}
	if article.Title == "" {
		article.Title = ExtractTitle(content, path)
	}
	if article.Category == "" {
		article.Category = DetectCategory(content, article.Title)
	}
	if article.Difficulty == "" {
		article.Difficulty = DetectDifficulty(content)
	}
	if article.Source == "" {
		article.Source = "Imported from: " + filepath.Base(path)
	}

	existing, err := i.store.GetArticleByTitle(article.Title)
	switch {
	case err == nil && !opts.Overwrite:
		log.Printf("Article already exists, skipping: %s", article.Title)
		i.record(Item{Path: path, Title: article.Title, ArticleID: existing.ID, Status: StatusSkipped})
		return nil
	case err == nil:
		if err := i.store.DeleteArticle(existing.ID); err != nil {
			i.record(Item{Path: path, Title: article.Title, Status: StatusFailed, Err: fmt.Errorf("replace existing article: %w", err)})
			return nil
		}
		log.Printf("Replacing existing article %d: %s", existing.ID, article.Title)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		i.record(Item{Path: path, Title: article.Title, Status: StatusFailed, Err: err})
		return nil
	}

	if err := i.store.CreateArticle(article); err != nil {
		i.record(Item{Path: path, Title: article.Title, Status: StatusFailed, Err: err})
		return nil
	}

	log.Printf("Imported article %d: %s (%s, %s, %d words, %d paragraphs)",
		article.ID, article.Title, article.Category, article.Difficulty, article.WordCount, article.ParagraphCount)
	i.record(Item{Path: path, Title: article.Title, ArticleID: article.ID, Status: StatusImported})
	return article
}

func (i *ArticleImporter) record(item Item) {
	switch item.Status {
	case StatusImported:
		i.result.Imported++
	case StatusSkipped:
		i.result.Skipped++
	case StatusFailed:
		i.result.Failed++
		log.Printf("Failed to import %s: %v", item.Path, item.Err)
	}
	i.result.Items = append(i.result.Items, item)
}
