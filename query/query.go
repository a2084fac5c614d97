// Package query is the read facade the page handlers consume: filtered,
// sorted, paginated retrieval with optional relationship resolution.
package query

import (
	"context"
	"time"

	"fanhub/models"
	"fanhub/resolve"
	"fanhub/schema"
	"fanhub/utils"

	"go.mongodb.org/mongo-driver/mongo/options"
)

type Options struct {
	Depth int
	Limit int64
	Page  int64 // 1-based; offset pagination, data volumes are small
	Sort  string
}

type Result struct {
	Docs      any   `json:"docs"`
	TotalDocs int64 `json:"totalDocs"`
}

// FindInto runs a validated find for a known entity type. Resolution is
// left to the caller so detail handlers can pick their own depth.
func FindInto[T any](ctx context.Context, collection string, where Where, opts Options) ([]T, int64, error) {
	c, err := schema.Lookup(collection)
	if err != nil {
		return nil, 0, err
	}
	filter, err := BuildFilter(c, where, time.Now())
	if err != nil {
		return nil, 0, err
	}
	sort, err := BuildSort(c, opts.Sort)
	if err != nil {
		return nil, 0, err
	}

	total, err := c.Handle().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find()
	if sort != nil {
		findOpts.SetSort(sort)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
		if opts.Page > 1 {
			findOpts.SetSkip((opts.Page - 1) * opts.Limit)
		}
	}

	docs, err := utils.FindAndDecode[T](ctx, c.Handle(), filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// Find is the dynamic entry point: it decodes into the right entity type
// and expands references to the requested depth.
func Find(ctx context.Context, collection string, where Where, opts Options) (Result, error) {
	r := resolve.New()

	switch collection {
	case "artists":
		docs, total, err := FindInto[models.Artist](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.Artist(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	case "teams":
		docs, total, err := FindInto[models.Team](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.Team(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	case "events":
		docs, total, err := FindInto[models.Event](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.Event(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	case "campaigns":
		docs, total, err := FindInto[models.Campaign](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.Campaign(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	case "news":
		docs, total, err := FindInto[models.News](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.News(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	case "hashtags":
		docs, total, err := FindInto[models.HashtagMetric](ctx, collection, where, opts)
		if err != nil {
			return Result{}, err
		}
		for i := range docs {
			if err := r.HashtagMetric(ctx, &docs[i], opts.Depth); err != nil {
				return Result{}, err
			}
		}
		return Result{Docs: docs, TotalDocs: total}, nil
	}

	_, err := schema.Lookup(collection)
	return Result{}, err
}

// Count matches the facade's count contract.
func Count(ctx context.Context, collection string, where Where) (int64, error) {
	c, err := schema.Lookup(collection)
	if err != nil {
		return 0, err
	}
	filter, err := BuildFilter(c, where, time.Now())
	if err != nil {
		return 0, err
	}
	return c.Handle().CountDocuments(ctx, filter)
}
