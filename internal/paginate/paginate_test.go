// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginate

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceQuery is an in-memory Query over a fixed slice.
type sliceQuery struct {
	items    []int
	countErr error
	sliceErr error

	sliceCalls int
}

func (q *sliceQuery) Count(_ context.Context) (int, error) {
	if q.countErr != nil {
		return 0, q.countErr
	}
	return len(q.items), nil
}

func (q *sliceQuery) Slice(_ context.Context, offset, limit int) ([]int, error) {
	q.sliceCalls++
	if q.sliceErr != nil {
		return nil, q.sliceErr
	}
	if offset >= len(q.items) {
		return nil, nil
	}
	end := min(offset+limit, len(q.items))
	return q.items[offset:end], nil
}

func newSliceQuery(n int) *sliceQuery {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return &sliceQuery{items: items}
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func pageOf(t *testing.T, link *string) string {
	t.Helper()
	require.NotNil(t, link)
	return mustURL(t, *link).Query().Get(PageParam)
}

func TestPaginate_SecondPageOfTwentyFive(t *testing.T) {
	q := newSliceQuery(25)
	base := mustURL(t, "http://example.com/api/users/1/tasks?page=2&per_page=10")

	page, err := Paginate[int](context.Background(), q, Params{Page: 2, PerPage: 10}, base)
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 11, page.Items[0])
	assert.Equal(t, 25, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.Pages)
	assert.Equal(t, 2, page.Meta.Page)
	assert.Equal(t, 10, page.Meta.PerPage)

	assert.Equal(t, "1", pageOf(t, page.Meta.Links.Prev))
	assert.Equal(t, "3", pageOf(t, page.Meta.Links.Next))
	assert.Equal(t, "1", mustURL(t, page.Meta.Links.First).Query().Get(PageParam))
	assert.Equal(t, "3", mustURL(t, page.Meta.Links.Last).Query().Get(PageParam))
}

func TestPaginate_EmptyCollection(t *testing.T) {
	q := newSliceQuery(0)
	base := mustURL(t, "http://example.com/api/users/1/tasks")

	page, err := Paginate[int](context.Background(), q, Params{Page: 1, PerPage: 10}, base)
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Meta.Total)
	assert.Equal(t, 0, page.Meta.Pages)
	assert.Nil(t, page.Meta.Links.Prev)
	assert.Nil(t, page.Meta.Links.Next)
	assert.Equal(t, "1", mustURL(t, page.Meta.Links.First).Query().Get(PageParam))
	assert.Equal(t, "1", mustURL(t, page.Meta.Links.Last).Query().Get(PageParam))
	assert.Zero(t, q.sliceCalls, "slice must not be queried for an empty result set")
}

func TestPaginate_OutOfRangePages(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantPrev bool
		wantNext bool
	}{
		{name: "zero page", page: 0, wantPrev: false, wantNext: true},
		{name: "negative page", page: -3, wantPrev: false, wantNext: true},
		{name: "beyond last page", page: 7, wantPrev: true, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newSliceQuery(25)

			page, err := Paginate[int](context.Background(), q, Params{Page: tt.page, PerPage: 10}, mustURL(t, "http://h/x"))
			require.NoError(t, err)

			assert.Empty(t, page.Items)
			assert.Equal(t, 25, page.Meta.Total)
			assert.Equal(t, 3, page.Meta.Pages)
			assert.Equal(t, tt.wantPrev, page.Meta.Links.Prev != nil)
			assert.Equal(t, tt.wantNext, page.Meta.Links.Next != nil)
			assert.Zero(t, q.sliceCalls)
		})
	}
}

func TestPaginate_Properties(t *testing.T) {
	base := mustURL(t, "http://example.com/api/users")

	for total := 0; total <= 23; total++ {
		for _, perPage := range []int{1, 2, 5, 10, MaxPerPage} {
			for page := -1; page <= 25; page++ {
				q := newSliceQuery(total)

				got, err := Paginate[int](context.Background(), q, Params{Page: page, PerPage: perPage}, base)
				require.NoError(t, err)

				wantLen := 0
				if page >= 1 {
					wantLen = min(perPage, max(0, total-(page-1)*perPage))
				}
				wantPages := (total + perPage - 1) / perPage

				require.Len(t, got.Items, wantLen, "total=%d per_page=%d page=%d", total, perPage, page)
				require.Equal(t, wantPages, got.Meta.Pages)
				require.Equal(t, wantPages == 0, total == 0)
				require.Equal(t, page > 1, got.Meta.Links.Prev != nil)
				require.Equal(t, page < wantPages, got.Meta.Links.Next != nil)

				wantLast := strconv.Itoa(max(1, wantPages))
				require.Equal(t, wantLast, mustURL(t, got.Meta.Links.Last).Query().Get(PageParam))
			}
		}
	}
}

func TestPaginate_LinksPreserveOtherParameters(t *testing.T) {
	q := newSliceQuery(30)
	base := mustURL(t, "https://api.example.com/api/users/alice/tasks?complete=1&per_page=10&page=2")

	page, err := Paginate[int](context.Background(), q, Params{Page: 2, PerPage: 10}, base)
	require.NoError(t, err)

	for _, link := range []string{*page.Meta.Links.Prev, *page.Meta.Links.Next, page.Meta.Links.First, page.Meta.Links.Last} {
		u := mustURL(t, link)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "api.example.com", u.Host)
		assert.Equal(t, "/api/users/alice/tasks", u.Path)
		assert.Equal(t, "1", u.Query().Get("complete"))
		assert.Equal(t, "10", u.Query().Get(PerPageParam))
	}

	assert.Equal(t, "3", pageOf(t, page.Meta.Links.Next))
	assert.Equal(t, "2", base.Query().Get(PageParam), "base URL must not be mutated")
}

func TestPaginate_QueryErrors(t *testing.T) {
	t.Run("count error", func(t *testing.T) {
		q := &sliceQuery{countErr: errors.New("db down")}

		_, err := Paginate[int](context.Background(), q, Params{Page: 1, PerPage: 10}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCountingItems)
	})

	t.Run("slice error", func(t *testing.T) {
		q := newSliceQuery(3)
		q.sliceErr = errors.New("db down")

		_, err := Paginate[int](context.Background(), q, Params{Page: 1, PerPage: 10}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSlicingItems)
	})

	t.Run("non-positive per_page", func(t *testing.T) {
		_, err := Paginate[int](context.Background(), newSliceQuery(3), Params{Page: 1, PerPage: 0}, nil)

		var paramErr *ParamError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, PerPageParam, paramErr.Param)
	})
}

func TestPaginator_Params(t *testing.T) {
	p := NewPaginator(20, 100)

	tests := []struct {
		name      string
		query     string
		want      Params
		wantParam string
	}{
		{name: "defaults", query: "", want: Params{Page: 1, PerPage: 20}},
		{name: "explicit values", query: "page=3&per_page=15", want: Params{Page: 3, PerPage: 15}},
		{name: "per_page clamped to max", query: "per_page=1000", want: Params{Page: 1, PerPage: 100}},
		{name: "zero per_page falls back to default", query: "per_page=0", want: Params{Page: 1, PerPage: 20}},
		{name: "negative page kept", query: "page=-2", want: Params{Page: -2, PerPage: 20}},
		{name: "non-integer page", query: "page=abc", wantParam: PageParam},
		{name: "non-integer per_page", query: "per_page=1.5", wantParam: PerPageParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := p.Params(values)
			if tt.wantParam != "" {
				var paramErr *ParamError
				require.ErrorAs(t, err, &paramErr)
				assert.Equal(t, tt.wantParam, paramErr.Param)
				assert.ErrorIs(t, err, ErrNotAnInteger)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPaginator_Fallbacks(t *testing.T) {
	p := NewPaginator(0, 0)
	assert.Equal(t, DefaultPerPage, p.defaultPerPage)
	assert.Equal(t, MaxPerPage, p.maxPerPage)

	p = NewPaginator(50, 10)
	assert.Equal(t, 10, p.defaultPerPage)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 3, PageCount(25, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
