package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	UserID     string                `json:"-"`
	PhotoPath  *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

// Validate checks the uploaded photo. A missing photo is the first check-in
// precondition and is reported as ErrMissingPhoto rather than a field error.
func (r *CheckInRequest) Validate() error {
	if r.FileHeader == nil {
		return ErrMissingPhoto
	}

	var errs validator.ValidationErrors

	filename := r.FileHeader.Filename
	idx := strings.LastIndex(filename, ".")
	ext := ""
	if idx >= 0 {
		ext = strings.ToLower(filename[idx:])
	}
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "photo size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Date        string  `json:"date"`
	CheckInTime *string `json:"check_in_time,omitempty"`
	Status      string  `json:"status"`
	PhotoPath   *string `json:"photo_path,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToRecordResponse formats a record for the API. Timestamps are converted to
// loc so the rendered wall times match the org timezone regardless of the
// zone the database driver returned. The date is formatted as stored.
func ToRecordResponse(rec Record, loc *time.Location) RecordResponse {
	if loc == nil {
		loc = time.Local
	}
	var checkIn *string
	if rec.CheckInTime != nil {
		formatted := rec.CheckInTime.In(loc).Format("15:04:05")
		checkIn = &formatted
	}
	return RecordResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		UserName:    rec.UserName,
		Date:        rec.Date.Format("2006-01-02"),
		CheckInTime: checkIn,
		Status:      string(rec.Status),
		PhotoPath:   rec.PhotoPath,
		CreatedAt:   rec.CreatedAt.In(loc).Format("2006-01-02 15:04:05"),
	}
}

type StatusResponse struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}
