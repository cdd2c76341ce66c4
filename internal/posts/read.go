// read.go implements post retrieval for SQLStore.
//
// Queries are plain SQL shared by the MySQL and SQLite dialects: no
// LIMIT/OFFSET variants, no ILIKE, and LIKE escaping done by hand with an
// explicit ESCAPE character so both engines agree.

package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// selectPosts joins at most one sync-status meta row per post. WordPress can
// leave duplicate meta rows behind; the oldest one is the one it reads.
func (s *SQLStore) selectPosts() string {
	return `SELECT p.ID, p.post_type, p.post_title, p.post_name, p.post_content, p.post_status,
		p.post_author, p.post_date, m.meta_value
		FROM ` + s.posts + ` p
		LEFT JOIN ` + s.meta + ` m ON m.meta_id = (
			SELECT MIN(meta_id) FROM ` + s.meta + `
			WHERE post_id = p.ID AND meta_key = '` + SyncStatusMeta + `'
		)`
}

func scanPost(sc scanner) (Post, error) {
	var (
		p    Post
		sync sql.NullString
	)
	err := sc.Scan(&p.ID, &p.Type, &p.Title, &p.Name, &p.Content, &p.Status, &p.Author, &p.Date, &sync)
	if err != nil {
		return p, err
	}
	p.SyncStatus = sync.String
	return p, nil
}

// List returns posts matching opts ordered by title.
func (s *SQLStore) List(ctx context.Context, opts ListOptions) ([]Post, error) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(s.selectPosts())
	b.WriteString(` WHERE 1 = 1`)
	if opts.Type != "" {
		b.WriteString(` AND p.post_type = ?`)
		args = append(args, opts.Type)
	}
	if opts.Status != "" {
		b.WriteString(` AND p.post_status = ?`)
		args = append(args, opts.Status)
	}
	if opts.Search != "" {
		b.WriteString(` AND LOWER(p.post_title) LIKE ? ESCAPE '!'`)
		args = append(args, "%"+escapeLike(strings.ToLower(opts.Search))+"%")
	}
	// ID breaks title ties so output is stable across runs.
	b.WriteString(` ORDER BY p.post_title ASC, p.ID ASC`)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty result encodes as [] rather than null.
	out := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns a post by ID.
func (s *SQLStore) Get(ctx context.Context, id int64) (Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx, s.selectPosts()+` WHERE p.ID = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return p, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

// escapeLike escapes LIKE wildcards using '!' as the escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
