// Package synced manages synced patterns: wp_block posts whose
// wp_pattern_sync_status meta decides whether inserted copies stay linked to
// the source.
package synced

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/posts"
)

// Sync statuses. All is only meaningful as a list filter.
const (
	Synced   = "synced"
	Unsynced = "unsynced"
	All      = "all"
)

// ErrInvalidSyncStatus is returned for an unknown --sync-status value.
var ErrInvalidSyncStatus = errors.New("invalid sync status")

// Fields is the synced pattern projection.
var Fields = output.Fields{
	All: []string{
		"ID", "post_title", "post_name", "post_content", "post_status",
		"post_author", "post_date", "sync_status",
	},
	Default: []string{"ID", "post_title", "post_name", "sync_status", "post_date"},
	Detail:  []string{"post_content", "post_status", "post_author"},
}

// Reporter receives the non-fatal lines an operation produces.
type Reporter interface {
	Success(msg string)
	Warning(msg string)
}

// SyncStatus derives the status from the raw meta value: only "unsynced" is
// unsynced; absent, empty and unknown values are synced.
func SyncStatus(meta string) string {
	if meta == Unsynced {
		return Unsynced
	}
	return Synced
}

// NotFoundError reports an id that is missing or not a wp_block post.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Synced pattern with ID %s not found.", e.ID)
}

func (e *NotFoundError) Unwrap() error { return posts.ErrNotFound }

// ListOptions filters synced patterns.
type ListOptions struct {
	Search     string
	SyncStatus string // synced, unsynced or all (default)
}

// List returns published wp_block posts ordered by title.
func List(ctx context.Context, store posts.Store, opts ListOptions) ([]posts.Post, error) {
	if err := ValidateStatus(opts.SyncStatus, true); err != nil {
		return nil, err
	}
	all, err := store.List(ctx, posts.ListOptions{
		Type:   posts.TypeBlock,
		Status: posts.StatusPublish,
		Search: opts.Search,
	})
	if err != nil {
		return nil, err
	}
	want := opts.SyncStatus
	return filter.Apply(all,
		filter.When(want != "" && want != All, func(p posts.Post) bool { return SyncStatus(p.SyncStatus) == want }),
	), nil
}

// ValidateStatus accepts synced and unsynced, plus all when allowAll is set.
// An empty status is accepted as "not given".
func ValidateStatus(status string, allowAll bool) error {
	switch status {
	case "", Synced, Unsynced:
		return nil
	case All:
		if allowAll {
			return nil
		}
	}
	allowed := []string{Synced, Unsynced}
	if allowAll {
		allowed = append(allowed, All)
	}
	return fmt.Errorf("%w: %q (expected %s)", ErrInvalidSyncStatus, status, strings.Join(allowed, ", "))
}

// Get returns the wp_block post with the given id.
func Get(ctx context.Context, store posts.Store, id string) (posts.Post, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return posts.Post{}, &NotFoundError{ID: id}
	}
	p, err := store.Get(ctx, n)
	if errors.Is(err, posts.ErrNotFound) || err == nil && p.Type != posts.TypeBlock {
		return posts.Post{}, &NotFoundError{ID: id}
	}
	return p, err
}

// IDs returns post IDs as strings.
func IDs(ps []posts.Post) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = strconv.FormatInt(p.ID, 10)
	}
	return ids
}

// Record projects a post.
func Record(p posts.Post) output.Record {
	return output.Record{
		{Name: "ID", Value: p.ID},
		{Name: "post_title", Value: p.Title},
		{Name: "post_name", Value: p.Name},
		{Name: "post_content", Value: p.Content},
		{Name: "post_status", Value: p.Status},
		{Name: "post_author", Value: p.Author},
		{Name: "post_date", Value: p.Date},
		{Name: "sync_status", Value: SyncStatus(p.SyncStatus)},
	}
}

// Records projects a slice of posts.
func Records(ps []posts.Post) []output.Record {
	out := make([]output.Record, len(ps))
	for i, p := range ps {
		out[i] = Record(p)
	}
	return out
}
