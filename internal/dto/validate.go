package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError 汇总所有字段的校验失败信息，不在第一个错误处中断
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Validator 实现 gin 的 binding.StructValidator，读取 binding 标签
type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")
		_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	})
}

// ValidateStruct 非结构体（或结构体指针）直接放行
func (v *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	v.lazyinit()
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldMessage(t, fe))
	}
	return &ValidationError{Details: details}
}

func (v *Validator) Engine() any {
	v.lazyinit()
	return v.validate
}

func fieldMessage(t reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fe.Field() + " is required"
	case "min", "max":
		lo, hi := sizeBounds(t, fe.StructField())
		return fmt.Sprintf("%s must be between %s and %s characters", fe.Field(), lo, hi)
	default:
		return fe.Field() + " is invalid"
	}
}

// sizeBounds 从 binding 标签取出 min/max，缺省时用 0 和 "unbounded"
func sizeBounds(t reflect.Type, field string) (string, string) {
	lo, hi := "0", "unbounded"
	sf, ok := t.FieldByName(field)
	if !ok {
		return lo, hi
	}
	for _, rule := range strings.Split(sf.Tag.Get("binding"), ",") {
		name, param, found := strings.Cut(rule, "=")
		if !found {
			continue
		}
		switch name {
		case "min":
			lo = param
		case "max":
			hi = param
		}
	}
	return lo, hi
}
