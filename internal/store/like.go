package store

import (
	"strings"

	"golang.org/x/text/cases"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern 將 query 轉為 %query% 並跳脫萬用字元，跳脫字元為反斜線
func LikePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// ContainsFold 回報任一欄位是否包含 query，以 Unicode case folding 比較大小寫
func ContainsFold(query string, fields ...string) bool {
	fold := cases.Fold()
	q := fold.String(query)
	for _, f := range fields {
		if strings.Contains(fold.String(f), q) {
			return true
		}
	}
	return false
}
