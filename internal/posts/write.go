// write.go implements post creation, update, meta changes and deletion for
// SQLStore. Each mutation runs in its own transaction.
//
// Design: rows are written the way WordPress writes them (local and GMT
// dates, post_modified, trash meta) so wp-admin shows patterns created here
// exactly like its own. Slug uniqueness is checked inside the insert
// transaction; a concurrent wp-admin save can still race it, as it can race
// WordPress itself.

package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
)

// Create inserts a post. An empty slug is derived from the title and made
// unique among posts of the same type by appending -2, -3, ...
func (s *SQLStore) Create(ctx context.Context, p NewPost) (int64, error) {
	if p.Status == "" {
		p.Status = StatusPublish
	}
	local, gmt := s.stamp()

	var id int64
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		name, err := s.uniqueSlug(ctx, tx, p.Type, p.Name, p.Title)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO `+s.posts+` (
				post_author, post_date, post_date_gmt, post_content, post_title, post_excerpt,
				post_status, comment_status, ping_status, post_name, to_ping, pinged,
				post_modified, post_modified_gmt, post_content_filtered, post_type
			) VALUES (?, ?, ?, ?, ?, '', ?, 'closed', 'closed', ?, '', '', ?, ?, '', ?)`,
			p.Author, local, gmt, p.Content, p.Title, p.Status, name, local, gmt, p.Type)
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		if name == "" {
			_, err = tx.ExecContext(ctx, `UPDATE `+s.posts+` SET post_name = ? WHERE ID = ?`, strconv.FormatInt(id, 10), id)
			if err != nil {
				return fmt.Errorf("set post name: %w", err)
			}
		}
		return nil
	})
	return id, err
}

// uniqueSlug returns a post_name not yet used by a post of typ. An empty
// result means the caller should fall back to the post ID.
func (s *SQLStore) uniqueSlug(ctx context.Context, tx *sql.Tx, typ, name, title string) (string, error) {
	base := name
	if base == "" {
		base = slug.Make(title)
	}
	if base == "" {
		return "", nil
	}
	candidate := base
	for n := 2; ; n++ {
		var taken int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+s.posts+` WHERE post_type = ? AND post_name = ?`,
			typ, candidate).Scan(&taken)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if taken == 0 {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}

// Update changes title and/or content and bumps the modified date.
func (s *SQLStore) Update(ctx context.Context, id int64, c Changes) error {
	if c.Empty() {
		return nil
	}
	local, gmt := s.stamp()
	query := `UPDATE ` + s.posts + ` SET post_modified = ?, post_modified_gmt = ?`
	args := []any{local, gmt}
	if c.Title != nil {
		query += `, post_title = ?`
		args = append(args, *c.Title)
	}
	if c.Content != nil {
		query += `, post_content = ?`
		args = append(args, *c.Content)
	}
	query += ` WHERE ID = ?`
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	return nil
}

// SetSyncStatus writes or, for an empty status, deletes the sync-status meta.
func (s *SQLStore) SetSyncStatus(ctx context.Context, id int64, status string) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		if status == "" {
			return s.deleteMeta(ctx, tx, id, SyncStatusMeta)
		}
		return s.setMeta(ctx, tx, id, SyncStatusMeta, status)
	})
}

// setMeta updates the first meta row for key, inserting one when absent.
func (s *SQLStore) setMeta(ctx context.Context, tx *sql.Tx, id int64, key, value string) error {
	var metaID int64
	err := tx.QueryRowContext(ctx, `SELECT meta_id FROM `+s.meta+` WHERE post_id = ? AND meta_key = ? ORDER BY meta_id LIMIT 1`,
		id, key).Scan(&metaID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, `INSERT INTO `+s.meta+` (post_id, meta_key, meta_value) VALUES (?, ?, ?)`, id, key, value)
	case err == nil:
		_, err = tx.ExecContext(ctx, `UPDATE `+s.meta+` SET meta_value = ? WHERE meta_id = ?`, value, metaID)
	}
	if err != nil {
		return fmt.Errorf("set meta %s on post %d: %w", key, id, err)
	}
	return nil
}

func (s *SQLStore) deleteMeta(ctx context.Context, tx *sql.Tx, id int64, key string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+s.meta+` WHERE post_id = ? AND meta_key = ?`, id, key); err != nil {
		return fmt.Errorf("delete meta %s on post %d: %w", key, id, err)
	}
	return nil
}

// Delete trashes the post, recording its previous status and the trash time.
// A forced delete, or deleting a post already in the trash, removes the post
// and its meta rows.
//
// The trash meta keys are the ones WordPress reads, so a pattern trashed here
// can be restored from wp-admin with its old status. Deleting from the trash
// is permanent in WordPress too; a second delete of the same id therefore
// reports "Deleted" rather than trashing again.
func (s *SQLStore) Delete(ctx context.Context, id int64, force bool) (bool, error) {
	var permanent bool
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRowContext(ctx, `SELECT post_status FROM `+s.posts+` WHERE ID = ?`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get post %d: %w", id, err)
		}

		if force || status == StatusTrash {
			permanent = true
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+s.meta+` WHERE post_id = ?`, id); err != nil {
				return fmt.Errorf("delete meta of post %d: %w", id, err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+s.posts+` WHERE ID = ?`, id); err != nil {
				return fmt.Errorf("delete post %d: %w", id, err)
			}
			return nil
		}

		if err := s.setMeta(ctx, tx, id, trashMetaStatus, status); err != nil {
			return err
		}
		if err := s.setMeta(ctx, tx, id, trashMetaTime, strconv.FormatInt(s.now().Unix(), 10)); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE `+s.posts+` SET post_status = ? WHERE ID = ?`, StatusTrash, id); err != nil {
			return fmt.Errorf("trash post %d: %w", id, err)
		}
		return nil
	})
	return permanent, err
}
