package middleware

import (
	"fmt"

	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/calendar"
	"restaurant-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking tags used in request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	rules := map[string]validator.Func{
		"isodate": func(fl validator.FieldLevel) bool {
			_, err := reservation.NewDate(fl.Field().String())
			return err == nil
		},
		"slot": func(fl validator.FieldLevel) bool {
			return availability.IsCanonicalSlot(fl.Field().String())
		},
		"yearmonth": func(fl validator.FieldLevel) bool {
			_, _, err := calendar.ParseMonth(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
