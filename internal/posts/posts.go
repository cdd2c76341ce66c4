// Package posts defines WordPress post persistence for the wp_block post type
// and the Store interface the synced-pattern commands depend on.
// Implementations talk to the WordPress database directly (SQLStore) or to
// the REST API (wpapi.BlockStore); consumers depend only on Store.
package posts

import (
	"context"
	"errors"
)

// Post types and meta keys used by synced patterns.
const (
	TypeBlock      = "wp_block"
	SyncStatusMeta = "wp_pattern_sync_status"

	// StatusPublish is the default status for created posts.
	StatusPublish = "publish"
	// StatusTrash marks a soft-deleted post.
	StatusTrash = "trash"

	trashMetaStatus = "_wp_trash_meta_status"
	trashMetaTime   = "_wp_trash_meta_time"
)

var (
	// ErrNotFound indicates the post does not exist or is not of the expected
	// type.
	ErrNotFound = errors.New("post not found")
	// ErrInvalidPrefix is returned for a table prefix containing anything
	// other than letters, digits and underscores.
	ErrInvalidPrefix = errors.New("invalid table prefix")
	// ErrUnknownDriver is returned for a db.driver other than mysql or sqlite.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Post is one row of the posts table joined with its sync-status meta.
type Post struct {
	ID      int64
	Type    string
	Title   string
	Name    string // slug
	Content string
	Status  string
	Author  int64
	Date    string // "YYYY-MM-DD HH:MM:SS", site local time

	// SyncStatus is the raw wp_pattern_sync_status meta value; empty when the
	// meta row is absent.
	SyncStatus string
}

// ListOptions selects posts.
type ListOptions struct {
	Type   string
	Status string // exact post_status; empty for any
	Search string // case-insensitive substring of the title
}

// NewPost describes a post to insert.
type NewPost struct {
	Type    string
	Title   string
	Content string
	Status  string // defaults to publish
	Name    string // slug; derived from the title when empty
	Author  int64
}

// Changes updates a post's body. Nil fields are left unchanged.
type Changes struct {
	Title   *string
	Content *string
}

// Empty reports whether no field would change.
func (c Changes) Empty() bool {
	return c.Title == nil && c.Content == nil
}

// Store persists posts of one WordPress site.
type Store interface {
	// List returns matching posts ordered by title ascending.
	List(ctx context.Context, opts ListOptions) ([]Post, error)
	// Get returns a post by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (Post, error)
	// Create inserts a post and returns its ID.
	Create(ctx context.Context, p NewPost) (int64, error)
	// Update changes a post's title and/or content.
	Update(ctx context.Context, id int64, c Changes) error
	// SetSyncStatus writes the sync-status meta; an empty status deletes it.
	SetSyncStatus(ctx context.Context, id int64, status string) error
	// Delete trashes a post, or removes it when force is set or the post is
	// already in the trash. It reports whether the post was removed
	// permanently.
	Delete(ctx context.Context, id int64, force bool) (bool, error)
	Close() error
}
