package wpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/wpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlocks is an in-memory /wp/v2/blocks route.
type fakeBlocks struct {
	mu     sync.Mutex
	next   int64
	items  map[int64]map[string]any
	pageSz int
}

func newFakeBlocks(t *testing.T) (*fakeBlocks, *wpapi.BlockStore) {
	t.Helper()
	f := &fakeBlocks{next: 1, items: map[int64]map[string]any{}, pageSz: 2}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c, err := wpapi.New(wpapi.Config{URL: srv.URL})
	require.NoError(t, err)
	return f, c.Blocks()
}

func (f *fakeBlocks) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	route := strings.TrimPrefix(r.URL.Path, "/wp-json/wp/v2/blocks")
	w.Header().Set("Content-Type", "application/json")

	if route == "" {
		switch r.Method {
		case http.MethodGet:
			f.list(w, r)
		case http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			id := f.next
			f.next++
			status, _ := body["status"].(string)
			slug, _ := body["slug"].(string)
			f.items[id] = map[string]any{
				"id": id, "type": "wp_block", "date": "2024-05-01T09:30:00", "slug": slug, "status": status,
				"author": 1, "title": map[string]any{"raw": body["title"]}, "content": map[string]any{"raw": body["content"]},
				"meta": map[string]any{"wp_pattern_sync_status": ""},
			}
			json.NewEncoder(w).Encode(f.items[id])
		}
		return
	}

	id, _ := strconv.ParseInt(strings.TrimPrefix(route, "/"), 10, 64)
	item, ok := f.items[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"rest_post_invalid_id","message":"Invalid post ID."}`))
		return
	}
	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(item)
	case http.MethodPost:
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if v, ok := body["title"]; ok {
			item["title"] = map[string]any{"raw": v}
		}
		if v, ok := body["content"]; ok {
			item["content"] = map[string]any{"raw": v}
		}
		if v, ok := body["meta"]; ok {
			item["meta"] = v
		}
		json.NewEncoder(w).Encode(item)
	case http.MethodDelete:
		if r.URL.Query().Get("force") == "true" {
			delete(f.items, id)
		} else if item["status"] == "trash" {
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"code":"rest_already_trashed","message":"The post has already been deleted."}`))
			return
		} else {
			item["status"] = "trash"
		}
		json.NewEncoder(w).Encode(item)
	}
}

// status returns the stored status of id and whether it still exists.
func (f *fakeBlocks) status(id int64) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return "", false
	}
	s, _ := it["status"].(string)
	return s, true
}

func (f *fakeBlocks) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var ids []int64
	for id, it := range f.items {
		if s := q.Get("status"); s != "" && it["status"] != s {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a := f.items[ids[i]]["title"].(map[string]any)["raw"].(string)
		b := f.items[ids[j]]["title"].(map[string]any)["raw"].(string)
		return a < b
	})
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pages := (len(ids) + f.pageSz - 1) / f.pageSz
	w.Header().Set("X-WP-TotalPages", strconv.Itoa(pages))
	out := []map[string]any{}
	for i := (page - 1) * f.pageSz; i < len(ids) && i < page*f.pageSz; i++ {
		out = append(out, f.items[ids[i]])
	}
	json.NewEncoder(w).Encode(out)
}

func TestBlockStore_CreateGetList(t *testing.T) {
	_, s := newFakeBlocks(t)
	ctx := context.Background()

	for _, title := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := s.Create(ctx, posts.NewPost{Type: posts.TypeBlock, Title: title, Content: "<!-- wp:spacer /-->"})
		require.NoError(t, err)
	}

	p, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Title)
	assert.Equal(t, posts.StatusPublish, p.Status)
	assert.Equal(t, "2024-05-01 09:30:00", p.Date)
	assert.Empty(t, p.SyncStatus)

	all, err := s.List(ctx, posts.ListOptions{Status: posts.StatusPublish})
	require.NoError(t, err)
	require.Len(t, all, 3, "pages are followed")
	assert.Equal(t, "Alpha", all[0].Title)
	assert.Equal(t, "Charlie", all[2].Title)

	_, err = s.Get(ctx, 99)
	assert.True(t, errors.Is(err, posts.ErrNotFound))
}

func TestBlockStore_UpdateAndSyncStatus(t *testing.T) {
	_, s := newFakeBlocks(t)
	ctx := context.Background()

	id, err := s.Create(ctx, posts.NewPost{Title: "Old", Content: "x"})
	require.NoError(t, err)

	title := "New"
	require.NoError(t, s.Update(ctx, id, posts.Changes{Title: &title}))
	require.NoError(t, s.SetSyncStatus(ctx, id, "unsynced"))

	p, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "x", p.Content)
	assert.Equal(t, "unsynced", p.SyncStatus)
}

func TestBlockStore_Delete(t *testing.T) {
	f, s := newFakeBlocks(t)
	ctx := context.Background()

	id, err := s.Create(ctx, posts.NewPost{Title: "Doomed", Content: "x"})
	require.NoError(t, err)

	permanent, err := s.Delete(ctx, id, false)
	require.NoError(t, err)
	assert.False(t, permanent)
	status, ok := f.status(id)
	require.True(t, ok)
	assert.Equal(t, "trash", status)

	permanent, err = s.Delete(ctx, id, false)
	require.NoError(t, err)
	assert.True(t, permanent, "trashed posts are removed")
	_, ok = f.status(id)
	assert.False(t, ok)

	_, err = s.Delete(ctx, id, true)
	assert.True(t, errors.Is(err, posts.ErrNotFound))
}
