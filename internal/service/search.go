package service

import (
	"cmp"
	"context"
	"slices"

	"focusflow/internal/model"
)

const (
	ItemTask = "task"
	ItemNote = "note"

	DefaultSearchLimit = 10
)

type SearchStore interface {
	SearchTasks(ctx context.Context, userID int, query string) ([]model.Task, error)
	SearchNotes(ctx context.Context, userID int, query string) ([]model.Note, error)
}

type SearchParams struct {
	Query string
	// ItemType 為空時兩種都查
	ItemType string
	Limit    int
}

// SearchHit 是 Task 或 Note 其中之一
type SearchHit struct {
	Type string
	Task *model.Task
	Note *model.Note
}

// Search 先以 task 填滿 limit，剩下的名額給 note
func Search(ctx context.Context, s SearchStore, userID int, p SearchParams) ([]SearchHit, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	hits := []SearchHit{}
	if p.ItemType == "" || p.ItemType == ItemTask {
		tasks, err := s.SearchTasks(ctx, userID, p.Query)
		if err != nil {
			return nil, err
		}
		RankTasks(tasks)
		for i := range tasks {
			if len(hits) == limit {
				break
			}
			hits = append(hits, SearchHit{Type: ItemTask, Task: &tasks[i]})
		}
	}

	if (p.ItemType == "" || p.ItemType == ItemNote) && len(hits) < limit {
		notes, err := s.SearchNotes(ctx, userID, p.Query)
		if err != nil {
			return nil, err
		}
		RankNotes(notes)
		for i := range notes {
			if len(hits) == limit {
				break
			}
			hits = append(hits, SearchHit{Type: ItemNote, Note: &notes[i]})
		}
	}
	return hits, nil
}

// RankTasks 排序：未完成優先，其次優先度高者，再依到期日由晚到早，沒有到期日排最後
func RankTasks(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := cmp.Compare(boolRank(!b.Completed), boolRank(!a.Completed)); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
			return c
		}
		return compareDueDesc(a.DueDate, b.DueDate)
	})
}

// compareDueDesc 到期日由晚到早；nil 一律排在有日期的後面，
// 與搜尋排序規則「無到期日視為最大值但排最後」一致，不要改成以 9999-12-31 代入
func compareDueDesc(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*b, *a)
}

// RankNotes 依 updated_at 由新到舊
func RankNotes(notes []model.Note) {
	slices.SortStableFunc(notes, func(a, b model.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
