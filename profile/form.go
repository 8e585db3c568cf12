package profile

import (
	"fmt"
	"strings"
	"time"

	"cinema-tui/model"
)

const (
	MsgInvalidDate        = "Invalid date"
	MsgInvalidDateOfBirth = "Invalid date of birth, please try again!"
)

// ValidationError is a problem with user input detected before any request is
// made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Draft holds the edits of the profile form. Empty fields are unset and fall
// back to the loaded profile on Merge.
type Draft struct {
	Name        string
	Phone       string
	DateOfBirth string
	Gender      model.Gender
}

// Merge overlays the draft onto user and returns the full update payload.
func Merge(user model.User, d Draft) model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:        firstNonEmpty(d.Name, user.Name),
		Phone:       firstNonEmpty(d.Phone, user.Phone),
		DateOfBirth: firstNonEmpty(d.DateOfBirth, user.DateOfBirth),
		Gender:      firstNonEmpty(string(d.Gender), user.Gender),
	}
}

// ValidateDateOfBirth rejects a date strictly later than now. An empty value
// is accepted.
func ValidateDateOfBirth(dob string, now time.Time) error {
	if strings.TrimSpace(dob) == "" {
		return nil
	}
	t, ok := ParseDate(dob, now.Location())
	if !ok || t.After(now) {
		return &ValidationError{Field: "date_of_birth", Message: MsgInvalidDateOfBirth}
	}
	return nil
}

// CheckDateInput validates the date field while it is being edited. It
// returns accepted=true with the value to store in the draft once input is a
// complete date that is not in the future. A complete future date yields a
// ValidationError. Incomplete input is neither accepted nor rejected.
func CheckDateInput(input string, now time.Time) (accepted string, ok bool, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", true, nil
	}
	t, parsed := ParseDate(input, now.Location())
	if !parsed {
		return "", false, nil
	}
	if t.After(now) {
		return "", false, &ValidationError{Field: "date_of_birth", Message: MsgInvalidDate}
	}
	return input, true, nil
}

// Prepare merges the draft with user and validates the result. The payload is
// only meaningful when err is nil.
func Prepare(user model.User, d Draft, now time.Time) (model.ProfileUpdate, error) {
	update := Merge(user, d)
	if err := ValidateDateOfBirth(update.DateOfBirth, now); err != nil {
		return model.ProfileUpdate{}, err
	}
	return update, nil
}

// ParseGender maps a stored gender to the enumeration, defaulting to None.
func ParseGender(raw string) model.Gender {
	for _, g := range model.Genders {
		if strings.EqualFold(raw, string(g)) {
			return g
		}
	}
	return model.GenderNone
}

// NextGender cycles through model.Genders by step (+1 or -1).
func NextGender(current model.Gender, step int) model.Gender {
	n := len(model.Genders)
	idx := 0
	for i, g := range model.Genders {
		if g == current {
			idx = i
			break
		}
	}
	return model.Genders[((idx+step)%n+n)%n]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
