package service

import (
	"context"
	"fmt"

	"focusflow/internal/store"
)

// Owned 可判斷擁有者的資料 (Area、Task、Note)
type Owned interface {
	OwnerID() int
}

// LoadOwned 依 id 讀取資料並確認屬於 userID
//
// 不存在與不屬於呼叫者都回傳 store.ErrNotFound，避免洩漏資料是否存在。
func LoadOwned[T Owned](ctx context.Context, get func(context.Context, int) (T, error), userID, id int) (T, error) {
	var zero T
	v, err := get(ctx, id)
	if err != nil {
		return zero, err
	}
	if v.OwnerID() != userID {
		return zero, fmt.Errorf("LoadOwned: %w", store.ErrNotFound)
	}
	return v, nil
}

// CheckArea 確認 areaID (若有) 屬於 userID
func CheckArea(ctx context.Context, areas store.Areas, userID int, areaID *int) error {
	if areaID == nil {
		return nil
	}
	_, err := LoadOwned(ctx, areas.GetArea, userID, *areaID)
	return err
}
