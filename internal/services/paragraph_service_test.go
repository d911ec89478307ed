package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/pagination"
)

type fakeRebuildStore struct {
	counts  map[uint]int
	missing []uint
	failing map[uint]error
	rebuilt []uint
	listErr error
}

func (f *fakeRebuildStore) RebuildParagraphs(id uint) (int, error) {
	if err, ok := f.failing[id]; ok {
		return 0, err
	}
	count, ok := f.counts[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	f.rebuilt = append(f.rebuilt, id)
	return count, nil
}

func (f *fakeRebuildStore) ListArticleIDs() ([]uint, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]uint, 0, len(f.counts))
	for id := uint(1); id <= uint(len(f.counts)+len(f.failing)); id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeRebuildStore) ListArticleIDsMissingParagraphs(limit int) ([]uint, error) {
	if limit > 0 && limit < len(f.missing) {
		return f.missing[:limit], nil
	}
	return f.missing, nil
}

func TestParagraphService_RebuildArticle(t *testing.T) {
	store := &fakeRebuildStore{counts: map[uint]int{1: 4}}
	service := NewParagraphService(store, nil)

	count, err := service.RebuildArticle(1)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = service.RebuildArticle(99)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestParagraphService_RebuildAll(t *testing.T) {
	store := &fakeRebuildStore{
		counts:  map[uint]int{1: 3, 2: 5},
		failing: map[uint]error{3: errors.New("disk full")},
	}
	cache, err := pagination.NewCache(4)
	require.NoError(t, err)
	cache.Paginate("article:1", []string{"a"}, pagination.DefaultPolicy)

	service := NewParagraphService(store, cache)
	result, err := service.RebuildAll(context.Background(), false, 0)
	require.NoError(t, err)

	assert.Equal(t, RebuildResult{Total: 3, Rebuilt: 2, Failed: 1, Paragraphs: 8}, result)
	assert.Equal(t, 0, cache.Len(), "rebuild should drop cached layouts")
}

func TestParagraphService_RebuildAll_OnlyMissing(t *testing.T) {
	store := &fakeRebuildStore{
		counts:  map[uint]int{1: 3, 2: 5, 3: 1},
		missing: []uint{2, 3},
	}
	service := NewParagraphService(store, nil)

	result, err := service.RebuildAll(context.Background(), true, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, []uint{2}, store.rebuilt)
}

func TestParagraphService_RebuildAll_ListError(t *testing.T) {
	store := &fakeRebuildStore{listErr: errors.New("db locked")}
	service := NewParagraphService(store, nil)

	_, err := service.RebuildAll(context.Background(), false, 0)
	assert.Error(t, err)
}

func TestParagraphService_RebuildAll_Cancelled(t *testing.T) {
	store := &fakeRebuildStore{counts: map[uint]int{1: 1, 2: 1}}
	service := NewParagraphService(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.RebuildAll(ctx, false, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Rebuilt)
}
