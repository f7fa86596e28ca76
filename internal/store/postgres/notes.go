package postgres

import (
	"context"
	"fmt"

	"focusflow/internal/model"
	"focusflow/internal/store"

	"github.com/jackc/pgx/v5"
)

const noteColumns = `id, title, content, area_id, user_id, created_at, updated_at`

func scanNote(row pgx.Row) (*model.Note, error) {
	n := &model.Note{}
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.AreaID, &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

func collectNotes(op string, rows pgx.Rows, err error) ([]model.Note, error) {
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return notes, nil
}

func (s *Store) CreateNote(ctx context.Context, n *model.Note) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO notes (title, content, area_id, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		n.Title,
		n.Content,
		n.AreaID,
		n.UserID,
	)
	if err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return wrap("CreateNote", err)
	}
	return nil
}

func (s *Store) GetNote(ctx context.Context, id int) (*model.Note, error) {
	n, err := scanNote(s.db.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetNote", err)
	}
	return n, nil
}

func (s *Store) ListNotes(ctx context.Context, f store.NoteFilter) ([]model.Note, error) {
	page := f.Page.Normalize()
	where := `user_id = $1`
	args := []any{f.UserID}
	if f.AreaID != nil {
		args = append(args, *f.AreaID)
		where += ` AND area_id = $2`
	}
	args = append(args, page.Offset, page.Limit)
	sql := fmt.Sprintf(`SELECT %s FROM notes WHERE %s ORDER BY updated_at DESC, id DESC OFFSET $%d LIMIT $%d`,
		noteColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	return collectNotes("ListNotes", rows, err)
}

func (s *Store) UpdateNote(ctx context.Context, id int, p store.NotePatch) (*model.Note, error) {
	var b setBuilder
	if p.Title.HasValue() {
		b.add("title", p.Title.Value)
	}
	if p.Content.Set {
		b.add("content", p.Content.Ptr())
	}
	if p.AreaID.Set {
		b.add("area_id", p.AreaID.Ptr())
	}
	sql, args := b.build("notes", id, noteColumns)
	n, err := scanNote(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrap("UpdateNote", err)
	}
	return n, nil
}

func (s *Store) DeleteNote(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "DeleteNote", "notes", id)
}

func (s *Store) SearchNotes(ctx context.Context, userID int, query string) ([]model.Note, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1
		   AND (title ILIKE $2 ESCAPE '\' OR content ILIKE $2 ESCAPE '\')`,
		userID,
		store.LikePattern(query),
	)
	return collectNotes("SearchNotes", rows, err)
}
