// Package validation holds the request contracts for every entity and checks them
// in one place. Each contract type has a message table keyed by "field.tag", and the
// first failing field's message is what the client sees.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/apperr"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("cents", cents)
	return &Validator{v: v}
}

// cents accepts amounts with at most two decimal places, so a stored price
// never differs from the one submitted.
func cents(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(f.Float()).Exponent() >= -2
	default:
		return false
	}
}

// Check validates a contract and returns an apperr validation error naming the
// first failing field.
func (v *Validator) Check(contract any) error {
	if n, ok := contract.(interface{ normalize() }); ok {
		n.normalize()
	}
	err := v.v.Struct(contract)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Internal(err)
	}
	return apperr.Validation(message(contract, verrs[0]))
}

// BindJSON decodes the request body into contract and validates it.
func (v *Validator) BindJSON(c *gin.Context, contract any) error {
	if err := c.ShouldBindJSON(contract); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return v.Check(contract)
}

func message(contract any, fe validator.FieldError) string {
	t := reflect.TypeOf(contract)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if table, ok := messages[t.Name()]; ok {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
