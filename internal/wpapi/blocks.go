// blocks.go serves wp_block posts through /wp/v2/blocks so synced patterns
// can be managed without database access.
//
// The list endpoint cannot query post meta, so sync status is returned per
// post and filtered by the caller, the same as for the SQL store. Titles and
// content are read from the edit context's raw values; rendered values would
// return HTML, not block markup.

package wpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/posts"
)

// BlockStore implements posts.Store for the wp_block post type.
type BlockStore struct {
	c *Client
}

var _ posts.Store = (*BlockStore)(nil)

// Blocks returns a posts.Store over the client's /wp/v2/blocks route.
func (c *Client) Blocks() *BlockStore {
	return &BlockStore{c: c}
}

// editable is a field served as {raw, rendered} in the edit context.
type editable struct {
	Raw string `json:"raw"`
}

// restBlock is a wp_block post in the edit context.
type restBlock struct {
	ID      int64          `json:"id"`
	Type    string         `json:"type"`
	Date    string         `json:"date"`
	Slug    string         `json:"slug"`
	Status  string         `json:"status"`
	Author  int64          `json:"author"`
	Title   editable       `json:"title"`
	Content editable       `json:"content"`
	Meta    map[string]any `json:"meta"`
}

func (b restBlock) post() posts.Post {
	p := posts.Post{
		ID:      b.ID,
		Type:    b.Type,
		Title:   b.Title.Raw,
		Name:    b.Slug,
		Content: b.Content.Raw,
		Status:  b.Status,
		Author:  b.Author,
		Date:    strings.Replace(b.Date, "T", " ", 1),
	}
	if p.Type == "" {
		p.Type = posts.TypeBlock
	}
	if s, ok := b.Meta[posts.SyncStatusMeta].(string); ok {
		p.SyncStatus = s
	}
	return p
}

// List returns wp_block posts. The API searches content as well as titles, so
// results are narrowed to title matches and sorted by title.
func (s *BlockStore) List(ctx context.Context, opts posts.ListOptions) ([]posts.Post, error) {
	q := url.Values{
		"context": {"edit"},
		"orderby": {"title"},
		"order":   {"asc"},
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	raw, err := getAll[restBlock](ctx, s.c, "blocks", q)
	if err != nil {
		return nil, fmt.Errorf("list synced patterns: %w", err)
	}
	out := make([]posts.Post, 0, len(raw))
	for _, b := range raw {
		out = append(out, b.post())
	}
	return filter.Apply(out,
		filter.When(opts.Search != "", func(p posts.Post) bool { return filter.ContainsFold(p.Title, opts.Search) }),
	), nil
}

// Get returns a wp_block post by ID.
func (s *BlockStore) Get(ctx context.Context, id int64) (posts.Post, error) {
	var b restBlock
	err := s.c.get(ctx, "blocks/"+strconv.FormatInt(id, 10), url.Values{"context": {"edit"}}, &b)
	if isNotFound(err) {
		return posts.Post{}, fmt.Errorf("post %d: %w", id, posts.ErrNotFound)
	}
	if err != nil {
		return posts.Post{}, err
	}
	return b.post(), nil
}

// Create inserts a wp_block post. WordPress assigns a unique slug.
func (s *BlockStore) Create(ctx context.Context, p posts.NewPost) (int64, error) {
	body := map[string]any{
		"title":   p.Title,
		"content": p.Content,
		"status":  p.Status,
	}
	if p.Status == "" {
		body["status"] = posts.StatusPublish
	}
	if p.Name != "" {
		body["slug"] = p.Name
	}
	var b restBlock
	if _, err := s.c.do(ctx, http.MethodPost, "blocks", nil, body, &b); err != nil {
		return 0, err
	}
	return b.ID, nil
}

// Update changes title and/or content.
func (s *BlockStore) Update(ctx context.Context, id int64, c posts.Changes) error {
	if c.Empty() {
		return nil
	}
	body := map[string]any{}
	if c.Title != nil {
		body["title"] = *c.Title
	}
	if c.Content != nil {
		body["content"] = *c.Content
	}
	_, err := s.c.do(ctx, http.MethodPost, "blocks/"+strconv.FormatInt(id, 10), nil, body, nil)
	return err
}

// SetSyncStatus writes the registered wp_pattern_sync_status meta field. An
// empty value makes WordPress delete the meta row.
func (s *BlockStore) SetSyncStatus(ctx context.Context, id int64, status string) error {
	body := map[string]any{"meta": map[string]string{posts.SyncStatusMeta: status}}
	_, err := s.c.do(ctx, http.MethodPost, "blocks/"+strconv.FormatInt(id, 10), nil, body, nil)
	return err
}

// Delete trashes the post, or removes it when force is set or the post is
// already trashed (the API refuses to trash twice).
func (s *BlockStore) Delete(ctx context.Context, id int64, force bool) (bool, error) {
	if !force {
		p, err := s.Get(ctx, id)
		if err != nil {
			return false, err
		}
		force = p.Status == posts.StatusTrash
	}
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := s.c.do(ctx, http.MethodDelete, "blocks/"+strconv.FormatInt(id, 10), q, nil, nil)
	if isNotFound(err) {
		return false, fmt.Errorf("post %d: %w", id, posts.ErrNotFound)
	}
	return force, err
}

// Close is a no-op; the HTTP client holds no per-store resources.
func (s *BlockStore) Close() error { return nil }
