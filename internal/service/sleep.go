package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/storage"
)

var validate = newValidator()

// newValidator registers "finite", which rejects NaN and infinities that
// strconv.ParseFloat lets through form binding.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// SleepEntryRequest is the payload of the sleep tracker form and of POST /api/sleep.
// Only type coercion is checked; nap duration must be finite but is not range-checked.
type SleepEntryRequest struct {
	Date        string  `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Bedtime     string  `form:"bedtime" json:"bedtime" validate:"required,datetime=15:04"`
	WakeupTime  string  `form:"wakeup_time" json:"wakeup_time" validate:"required,datetime=15:04"`
	NapDuration float64 `form:"nap_duration" json:"nap_duration" validate:"finite"`
	Notes       string  `form:"notes" json:"notes"`
}

func ValidateSleepEntryRequest(body *SleepEntryRequest) error {
	return validate.Struct(body)
}

func CreateSleepEntry(ctx context.Context, sleepRepo storage.SleepLogRepository, body *SleepEntryRequest, now time.Time) (*internal.SleepEntry, error) {
	bedtime, err := internal.ParseTimeOfDay(body.Bedtime)
	if err != nil {
		return nil, fmt.Errorf("bedtime: %w", err)
	}
	wakeup, err := internal.ParseTimeOfDay(body.WakeupTime)
	if err != nil {
		return nil, fmt.Errorf("wakeup time: %w", err)
	}

	entry := &internal.SleepEntry{
		ID:          uuid.NewString(),
		Date:        dateOrToday(body.Date, now),
		Bedtime:     bedtime,
		WakeupTime:  wakeup,
		NapDuration: body.NapDuration,
		Notes:       body.Notes,
		CreatedAt:   now,
	}
	if err := sleepRepo.AppendSleepEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func dateOrToday(date string, now time.Time) string {
	if date == "" {
		return now.Format(internal.DateLayout)
	}
	return date
}
