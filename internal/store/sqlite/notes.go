package sqlite

import (
	"context"

	"focusflow/internal/model"
	"focusflow/internal/store"
)

func (s *Store) CreateNote(ctx context.Context, n *model.Note) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return wrap("CreateNote", err)
	}
	return nil
}

func (s *Store) GetNote(ctx context.Context, id int) (*model.Note, error) {
	n := &model.Note{}
	if err := s.db.WithContext(ctx).First(n, id).Error; err != nil {
		return nil, wrap("GetNote", err)
	}
	return n, nil
}

func (s *Store) ListNotes(ctx context.Context, f store.NoteFilter) ([]model.Note, error) {
	page := f.Page.Normalize()
	q := s.db.WithContext(ctx).Where("user_id = ?", f.UserID)
	if f.AreaID != nil {
		q = q.Where("area_id = ?", *f.AreaID)
	}
	notes := []model.Note{}
	if err := q.Order("updated_at DESC, id DESC").Offset(page.Offset).Limit(page.Limit).Find(&notes).Error; err != nil {
		return nil, wrap("ListNotes", err)
	}
	return notes, nil
}

func (s *Store) UpdateNote(ctx context.Context, id int, p store.NotePatch) (*model.Note, error) {
	fields := map[string]any{}
	if p.Title.HasValue() {
		fields["title"] = p.Title.Value
	}
	if p.Content.Set {
		fields["content"] = p.Content.Ptr()
	}
	if p.AreaID.Set {
		fields["area_id"] = p.AreaID.Ptr()
	}
	if err := s.updateByID(ctx, "UpdateNote", &model.Note{}, id, fields); err != nil {
		return nil, err
	}
	return s.GetNote(ctx, id)
}

func (s *Store) DeleteNote(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "DeleteNote", &model.Note{}, id)
}

func (s *Store) SearchNotes(ctx context.Context, userID int, query string) ([]model.Note, error) {
	all := []model.Note{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&all).Error; err != nil {
		return nil, wrap("SearchNotes", err)
	}
	notes := []model.Note{}
	for _, n := range all {
		if store.ContainsFold(query, n.Title, deref(n.Content)) {
			notes = append(notes, n)
		}
	}
	return notes, nil
}
