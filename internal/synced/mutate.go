// mutate.go implements create, update and delete for synced patterns.

package synced

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jpl-au/wpblock/internal/blockparse"
	"github.com/jpl-au/wpblock/internal/posts"
)

var (
	// ErrTitleRequired is returned by Create without a title.
	ErrTitleRequired = errors.New("Pattern title is required. Use --title=<title>.")
	// ErrContentRequired is returned by Create without content.
	ErrContentRequired = errors.New("Pattern content is required. Use --content=<content> or provide a file.")
)

// NoBlocksWarning is reported when created content has no named block.
const NoBlocksWarning = "Content does not appear to contain valid blocks. The pattern will be created with the provided content."

// CreateOptions describes a new synced pattern. Content is already resolved
// from the file argument or --content.
type CreateOptions struct {
	Title      string
	Content    string
	Slug       string
	Status     string // default publish
	SyncStatus string // default synced
	Porcelain  bool   // report only the new id
}

// Validate checks required fields and the sync status.
func (o CreateOptions) Validate() error {
	if o.Title == "" {
		return ErrTitleRequired
	}
	if o.Content == "" {
		return ErrContentRequired
	}
	return ValidateStatus(o.SyncStatus, false)
}

// Create inserts a wp_block post and, for unsynced patterns, its sync-status
// meta. Unless Porcelain is set the outcome is reported as a success line.
func Create(ctx context.Context, store posts.Store, r Reporter, opts CreateOptions) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if !blockparse.HasNamedBlock(opts.Content) {
		r.Warning(NoBlocksWarning)
	}

	id, err := store.Create(ctx, posts.NewPost{
		Type:    posts.TypeBlock,
		Title:   opts.Title,
		Content: opts.Content,
		Status:  opts.Status,
		Name:    opts.Slug,
	})
	if err != nil {
		return 0, err
	}

	status := Synced
	if opts.SyncStatus == Unsynced {
		status = Unsynced
		// The post already exists as a synced pattern; name it so the
		// caller can repair it with update.
		if err := store.SetSyncStatus(ctx, id, Unsynced); err != nil {
			return id, fmt.Errorf("pattern %d created but sync status not set: %w", id, err)
		}
	}
	if !opts.Porcelain {
		r.Success(fmt.Sprintf("Created %s pattern %d.", status, id))
	}
	return id, nil
}

// UpdateOptions describes changes to a synced pattern. Empty fields are left
// unchanged.
type UpdateOptions struct {
	Title      string
	Content    string
	SyncStatus string
}

// Update changes title, content and sync status of an existing pattern.
// Setting synced removes the meta key.
func Update(ctx context.Context, store posts.Store, r Reporter, id string, opts UpdateOptions) error {
	if err := ValidateStatus(opts.SyncStatus, false); err != nil {
		return err
	}
	p, err := Get(ctx, store, id)
	if err != nil {
		return err
	}

	var c posts.Changes
	if opts.Title != "" {
		c.Title = &opts.Title
	}
	if opts.Content != "" {
		c.Content = &opts.Content
	}
	if !c.Empty() {
		if err := store.Update(ctx, p.ID, c); err != nil {
			return err
		}
	}

	switch opts.SyncStatus {
	case Unsynced:
		err = store.SetSyncStatus(ctx, p.ID, Unsynced)
	case Synced:
		err = store.SetSyncStatus(ctx, p.ID, "")
	}
	if err != nil {
		return err
	}
	r.Success(fmt.Sprintf("Updated synced pattern %s.", id))
	return nil
}

// DeleteError reports how many ids could not be deleted.
type DeleteError struct {
	Failed int
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("Failed to delete %d synced pattern(s).", e.Failed)
}

// Delete trashes, or with force removes, each id in turn. Missing ids and
// failed deletions are reported as warnings and the loop continues; a
// *DeleteError follows when any id failed.
func Delete(ctx context.Context, store posts.Store, r Reporter, ids []string, force bool) error {
	var done, failed int
	for _, id := range ids {
		p, err := Get(ctx, store, id)
		if err != nil {
			r.Warning(err.Error())
			failed++
			continue
		}
		if _, err := store.Delete(ctx, p.ID, force); err != nil {
			r.Warning(fmt.Sprintf("Failed to delete synced pattern %s.", id))
			failed++
			continue
		}
		done++
	}

	if done > 0 {
		action := "Trashed"
		if force {
			action = "Deleted"
		}
		r.Success(action + " " + strconv.Itoa(done) + " synced pattern(s).")
	}
	if failed > 0 {
		return &DeleteError{Failed: failed}
	}
	return nil
}
