package handlers

import (
	"sync"
	"time"

	"github.com/SscSPs/spendcheck/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules used by the dto package:
// "monthkey" (YYYY-MM) and "isodate" (YYYY-MM-DD or RFC3339).
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
			return domain.MonthKey(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := parseDateParam(fl.Field().String(), false)
			return err == nil
		})
	})
}

// parseDateParam parses a query date. A bare YYYY-MM-DD end date covers the
// whole day.
func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
