package vocabulary

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

const cacheWait = 2 * time.Millisecond

type savedSet map[string]struct{}

// wordCache memoizes the saved-word set of each language. Concurrent misses
// for different languages are folded into one repository call.
type wordCache struct {
	loader *dataloader.Loader[domain.Language, savedSet]
}

func newWordCache(words wordRepo) *wordCache {
	return &wordCache{
		loader: dataloader.NewBatchedLoader(
			newSavedBatchFn(words),
			dataloader.WithWait[domain.Language, savedSet](cacheWait),
			dataloader.WithBatchCapacity[domain.Language, savedSet](len(domain.Languages())),
		),
	}
}

func newSavedBatchFn(words wordRepo) dataloader.BatchFunc[domain.Language, savedSet] {
	return func(ctx context.Context, keys []domain.Language) []*dataloader.Result[savedSet] {
		results := make([]*dataloader.Result[savedSet], len(keys))

		grouped, err := words.WordsByLanguages(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[savedSet]{Error: err}
			}
			return results
		}

		for i, lang := range keys {
			set := make(savedSet, len(grouped[lang]))
			for _, w := range grouped[lang] {
				set[w] = struct{}{}
			}
			results[i] = &dataloader.Result[savedSet]{Data: set}
		}
		return results
	}
}

// get returns the cached set for lang, loading it on a miss. Failed loads
// are not kept.
func (c *wordCache) get(ctx context.Context, lang domain.Language) (savedSet, error) {
	set, err := c.loader.Load(ctx, lang)()
	if err != nil {
		c.loader.Clear(ctx, lang)
		return nil, err
	}
	return set, nil
}

func (c *wordCache) invalidate(ctx context.Context, langs ...domain.Language) {
	for _, lang := range langs {
		c.loader.Clear(ctx, lang)
	}
}
