package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinema-tui/model"
	"cinema-tui/profile"
)

const (
	fieldName = iota
	fieldPhone
	fieldDOB
	fieldGender
	fieldCount
)

var fieldLabels = [fieldCount]string{"Username", "Phone", "Date of birth", "Gender"}

// profileForm collects edits to a loaded profile.
type profileForm struct {
	inputs [fieldGender]textinput.Model
	focus  int

	gender    model.Gender
	genderSet bool

	// acceptedDOB is the last complete, non-future date typed in the date
	// field.
	acceptedDOB string
	alert       string
}

func newProfileForm(user model.User) profileForm {
	var f profileForm

	name := textinput.New()
	name.Placeholder = fmt.Sprintf("Your current username is %s", user.Name)
	name.CharLimit = 64
	name.Prompt = ""

	phone := textinput.New()
	phone.Placeholder = "New phone"
	phone.CharLimit = 20
	phone.Prompt = ""

	dob := textinput.New()
	dob.Placeholder = "yyyy-mm-dd"
	dob.CharLimit = 10
	dob.Prompt = ""

	f.inputs = [fieldGender]textinput.Model{name, phone, dob}
	f.gender = profile.ParseGender(user.Gender)
	return f
}

func (f *profileForm) setFocus(i int) tea.Cmd {
	f.focus = ((i % fieldCount) + fieldCount) % fieldCount
	var cmd tea.Cmd
	for idx := range f.inputs {
		if idx == f.focus {
			cmd = f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
	return cmd
}

// update applies a message to the focused field. now is used to validate the
// date field as it changes.
func (f *profileForm) update(msg tea.Msg, now time.Time) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.NextItem):
			return f.setFocus(f.focus + 1)
		case key.Matches(keyMsg, keys.PrevItem):
			return f.setFocus(f.focus - 1)
		case f.focus == fieldGender && key.Matches(keyMsg, keys.Left):
			f.gender = profile.NextGender(f.gender, -1)
			f.genderSet = true
			return nil
		case f.focus == fieldGender && key.Matches(keyMsg, keys.Right):
			f.gender = profile.NextGender(f.gender, 1)
			f.genderSet = true
			return nil
		}
	}
	if f.focus == fieldGender {
		return nil
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.focus == fieldDOB && f.inputs[fieldDOB].Value() != before {
		f.dateChanged(now)
	}
	return cmd
}

func (f *profileForm) dateChanged(now time.Time) {
	accepted, ok, err := profile.CheckDateInput(f.inputs[fieldDOB].Value(), now)
	var vErr *profile.ValidationError
	switch {
	case errors.As(err, &vErr):
		f.acceptedDOB = ""
		f.alert = vErr.Message
	case ok:
		f.acceptedDOB = accepted
		if f.alert == profile.MsgInvalidDate {
			f.alert = ""
		}
	default:
		f.acceptedDOB = ""
	}
}

func (f profileForm) draft() profile.Draft {
	d := profile.Draft{
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		Phone:       strings.TrimSpace(f.inputs[fieldPhone].Value()),
		DateOfBirth: f.acceptedDOB,
	}
	if f.genderSet {
		d.Gender = f.gender
	}
	return d
}

// prepare validates the form against user and returns the payload to send.
// A date that was typed but never accepted fails here as well.
func (f *profileForm) prepare(user model.User, now time.Time) (model.ProfileUpdate, error) {
	if typed := strings.TrimSpace(f.inputs[fieldDOB].Value()); typed != "" {
		accepted, ok, err := profile.CheckDateInput(typed, now)
		if err != nil || !ok {
			return model.ProfileUpdate{}, &profile.ValidationError{Field: "date_of_birth", Message: profile.MsgInvalidDateOfBirth}
		}
		f.acceptedDOB = accepted
	}
	return profile.Prepare(user, f.draft(), now)
}

func (f profileForm) View() string {
	var b strings.Builder
	if f.alert != "" {
		b.WriteString(validationStyle.Render(f.alert))
		b.WriteString("\n\n")
	}
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = focusedLabel.Render(fieldLabels[i])
		}
		var value string
		if i == fieldGender {
			value = fmt.Sprintf("‹ %s ›", f.gender)
			if !f.genderSet {
				value += " " + hint("(unchanged)")
			}
		} else {
			value = f.inputs[i].View()
		}
		b.WriteString(label + value + "\n")
	}
	return b.String()
}
