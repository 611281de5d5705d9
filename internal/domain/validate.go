package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/questx-lab/raffle/internal/entity"
	"github.com/questx-lab/raffle/pkg/enum"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/ethutil"
)

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()

	// Report the json name of fields, it is the name the client knows.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "eth_addr", func(fl validator.FieldLevel) bool {
		return ethutil.IsAddress(fl.Field().String())
	})

	mustRegister(v, "tx_hash", func(fl validator.FieldLevel) bool {
		return ethutil.IsTxHash(fl.Field().String())
	})

	mustRegister(v, "raffle_status", func(fl validator.FieldLevel) bool {
		_, err := enum.ToEnum[entity.RaffleStatus](fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateRequest checks the validate tags of req. All violated fields are reported in the
// details of the returned error.
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errorx.New(errorx.BadRequest, "Invalid payload")
	}

	details := make([]errorx.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, errorx.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldMessage(fieldErr),
		})
	}

	return errorx.New(errorx.BadRequest, "Invalid payload").WithDetails(details)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	case "eth_addr":
		return "must be 0x followed by 40 hex characters"
	case "tx_hash":
		return "must be 0x followed by 64 hex characters"
	case "raffle_status":
		statuses := []string{}
		for _, s := range enum.Values[entity.RaffleStatus]() {
			statuses = append(statuses, string(s))
		}

		return fmt.Sprintf("must be one of %s", strings.Join(statuses, ", "))
	default:
		return fmt.Sprintf("failed on %s", fieldErr.Tag())
	}
}
