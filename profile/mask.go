package profile

import "strings"

const (
	MaskRune    = '*'
	Placeholder = "Not yet provided"
)

// MaskEmail replaces every rune of the local part with MaskRune and keeps
// "@domain" verbatim. An address without "@" is masked entirely.
func MaskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	masked := strings.Repeat(string(MaskRune), len([]rune(local)))
	if !found {
		return masked
	}
	return masked + "@" + domain
}

// MaskPhone keeps the last four runes and masks the rest.
func MaskPhone(phone string) string {
	runes := []rune(phone)
	if len(runes) <= 4 {
		return phone
	}
	return strings.Repeat(string(MaskRune), len(runes)-4) + string(runes[len(runes)-4:])
}

// Visibility is a show/hide toggle for one masked field. The zero value is
// hidden.
type Visibility struct {
	shown bool
}

func (v Visibility) Shown() bool { return v.shown }

func (v Visibility) Toggle() Visibility {
	return Visibility{shown: !v.shown}
}

// DisplayEmail renders email for the given visibility, or Placeholder when
// the email is absent.
func DisplayEmail(email string, v Visibility) string {
	if email == "" {
		return Placeholder
	}
	if v.shown {
		return email
	}
	return MaskEmail(email)
}

func DisplayPhone(phone string, v Visibility) string {
	if phone == "" {
		return Placeholder
	}
	if v.shown {
		return phone
	}
	return MaskPhone(phone)
}

// OrPlaceholder returns value, or Placeholder when it is empty.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}
