// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paginate turns an unbounded, filterable query into a bounded page
// of items plus navigation metadata.
//
// The package is generic over the entity type: it only relies on the
// count/slice contract of [Query] and never inspects item fields.
package paginate

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage is used when no per_page parameter is supplied.
	DefaultPerPage = 20

	// MaxPerPage is the upper bound applied to per_page.
	MaxPerPage = 100

	// PageParam and PerPageParam are the query-string parameter names.
	PageParam    = "page"
	PerPageParam = "per_page"
)

// Query is the data-access contract the paginator works against.
//
// Count must return the number of rows matching the current filters, before
// any slicing. Slice returns at most limit rows starting at offset, in the
// query's stable order.
type Query[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// Params selects one page. Page is 1-indexed.
type Params struct {
	Page    int
	PerPage int
}

// Links holds absolute URLs to sibling pages of the same filtered query.
// Prev and Next are nil when not applicable.
type Links struct {
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	First string  `json:"first"`
	Last  string  `json:"last"`
}

// Meta describes a page in relation to the whole result set.
type Meta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int   `json:"total"`
	Pages   int   `json:"pages"`
	Links   Links `json:"links"`
}

// Page is a bounded slice of a result set plus navigation metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Paginator parses page-selection parameters with a fixed default and
// upper bound for per_page.
type Paginator struct {
	defaultPerPage int
	maxPerPage     int
}

// NewPaginator constructs a [Paginator]. Non-positive arguments fall back to
// [DefaultPerPage] and [MaxPerPage]; a default above the maximum is lowered
// to the maximum.
func NewPaginator(defaultPerPage, maxPerPage int) *Paginator {
	if maxPerPage < 1 {
		maxPerPage = MaxPerPage
	}
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	if defaultPerPage > maxPerPage {
		defaultPerPage = maxPerPage
	}

	return &Paginator{
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
	}
}

// Params reads page and per_page from query-string values.
//
// A missing page means 1; a missing or non-positive per_page means the
// default; per_page above the maximum is clamped. Any page number is
// accepted, including values below 1, which later produce an empty page.
// A value that is not an integer yields a [*ParamError].
func (p *Paginator) Params(values url.Values) (Params, error) {
	params := Params{Page: 1, PerPage: p.defaultPerPage}

	if raw := values.Get(PageParam); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, &ParamError{Param: PageParam, Err: ErrNotAnInteger}
		}
		params.Page = page
	}

	if raw := values.Get(PerPageParam); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, &ParamError{Param: PerPageParam, Err: ErrNotAnInteger}
		}
		params.PerPage = p.clampPerPage(perPage)
	}

	return params, nil
}

func (p *Paginator) clampPerPage(perPage int) int {
	switch {
	case perPage < 1:
		return p.defaultPerPage
	case perPage > p.maxPerPage:
		return p.maxPerPage
	default:
		return perPage
	}
}

// Paginate computes one page of q.
//
// Total and page count are taken from q.Count before slicing. Items is never
// nil; it is empty when the page number is out of range. Links are built
// from pageURL, which must be the absolute URL of the current request: every
// query parameter is preserved and only page is rewritten.
func Paginate[T any](ctx context.Context, q Query[T], params Params, pageURL *url.URL) (Page[T], error) {
	if params.PerPage < 1 {
		return Page[T]{}, &ParamError{Param: PerPageParam, Err: ErrNotPositive}
	}

	total, err := q.Count(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("%w: %w", ErrCountingItems, err)
	}

	pages := PageCount(total, params.PerPage)

	items := make([]T, 0)
	if params.Page >= 1 && params.Page <= pages {
		sliced, err := q.Slice(ctx, (params.Page-1)*params.PerPage, params.PerPage)
		if err != nil {
			return Page[T]{}, fmt.Errorf("%w: %w", ErrSlicingItems, err)
		}
		items = append(items, sliced...)
	}

	return Page[T]{
		Items: items,
		Meta: Meta{
			Page:    params.Page,
			PerPage: params.PerPage,
			Total:   total,
			Pages:   pages,
			Links:   buildLinks(pageURL, params.Page, pages),
		},
	}, nil
}

// PageCount returns ceil(total / perPage), which is 0 when total is 0.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func buildLinks(pageURL *url.URL, page, pages int) Links {
	last := pages
	if last < 1 {
		last = 1
	}

	links := Links{
		First: linkTo(pageURL, 1),
		Last:  linkTo(pageURL, last),
	}

	if page > 1 {
		prev := linkTo(pageURL, page-1)
		links.Prev = &prev
	}
	if page < pages {
		next := linkTo(pageURL, page+1)
		links.Next = &next
	}

	return links
}

func linkTo(pageURL *url.URL, page int) string {
	if pageURL == nil {
		pageURL = &url.URL{}
	}

	u := *pageURL
	query := u.Query()
	query.Set(PageParam, strconv.Itoa(page))
	u.RawQuery = query.Encode()

	return u.String()
}
