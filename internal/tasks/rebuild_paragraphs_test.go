package tasks

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/paperread/internal/services"
)

type fakeRebuilder struct {
	articles   chan uint
	bulk       chan RebuildAllParagraphsTask
	articleErr error
	bulkResult services.RebuildResult
	bulkErr    error
}

func newFakeRebuilder() *fakeRebuilder {
	return &fakeRebuilder{
		articles: make(chan uint, 4),
		bulk:     make(chan RebuildAllParagraphsTask, 4),
	}
}

func (f *fakeRebuilder) RebuildArticle(articleID uint) (int, error) {
	f.articles <- articleID
	return 3, f.articleErr
}

func (f *fakeRebuilder) RebuildAll(ctx context.Context, onlyMissing bool, limit int) (services.RebuildResult, error) {
	f.bulk <- RebuildAllParagraphsTask{OnlyMissing: onlyMissing, Limit: limit}
	return f.bulkResult, f.bulkErr
}

func TestRebuildParagraphsProcessor(t *testing.T) {
	rebuilder := newFakeRebuilder()
	process := RebuildParagraphsProcessor(rebuilder)

	require.NoError(t, process(context.Background(), RebuildParagraphsTask{ArticleID: 7}))
	assert.Equal(t, uint(7), <-rebuilder.articles)

	rebuilder.articleErr = errors.New("boom")
	assert.Error(t, process(context.Background(), RebuildParagraphsTask{ArticleID: 8}))
}

func TestRebuildParagraphsProcessor_NotConfigured(t *testing.T) {
	process := RebuildParagraphsProcessor(nil)
	assert.Error(t, process(context.Background(), RebuildParagraphsTask{ArticleID: 1}))
}

func TestRebuildAllParagraphsProcessor(t *testing.T) {
	rebuilder := newFakeRebuilder()
	rebuilder.bulkResult = services.RebuildResult{Total: 2, Rebuilt: 2, Paragraphs: 9}
	process := RebuildAllParagraphsProcessor(rebuilder)

	require.NoError(t, process(context.Background(), RebuildAllParagraphsTask{OnlyMissing: true, Limit: 50}))
	assert.Equal(t, RebuildAllParagraphsTask{OnlyMissing: true, Limit: 50}, <-rebuilder.bulk)

	rebuilder.bulkErr = errors.New("db locked")
	assert.Error(t, process(context.Background(), RebuildAllParagraphsTask{}))
}

func TestRebuildParagraphsQueue_EndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), cfg)
	require.NoError(t, err)
	defer client.Close()

	rebuilder := newFakeRebuilder()
	client.Register(NewRebuildParagraphsQueue(rebuilder), NewRebuildAllParagraphsQueue(rebuilder))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	_, err = client.Enqueue(RebuildParagraphsTask{ArticleID: 42})
	require.NoError(t, err)

	select {
	case id := <-rebuilder.articles:
		assert.Equal(t, uint(42), id)
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild task was not executed within timeout")
	}
}
