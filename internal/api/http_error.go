package api

// HTTPError 全域錯誤響應模型
// swagger:model api.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"Task not found"`
}

// OKResponse 刪除成功的回應
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}
