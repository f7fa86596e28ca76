package api

import "github.com/go-playground/validator/v10"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate 先做 struct tag 驗證，再呼叫請求自己的 Validate (若有)
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	if v, ok := i.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}
