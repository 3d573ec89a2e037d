package web

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type userForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	ImageURL  string `form:"image_url"`
}

type postForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

var tagNameOnce sync.Once

// useFormFieldNames makes validation errors report form field names
// (first_name) instead of Go field names (FirstName).
func useFormFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}

// bindForm binds the POST body into form. Validation failures come back as
// a field name to message map; any other failure as an error.
func bindForm(c *gin.Context, form any) (map[string]string, error) {
	err := c.ShouldBindWith(form, binding.FormPost)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = fe.Field() + " is required"
		default:
			fieldErrors[fe.Field()] = fe.Field() + " is invalid"
		}
	}
	return fieldErrors, nil
}
