package model

type Gender string

const (
	GenderNone   Gender = "None"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderNone, GenderMale, GenderFemale, GenderOther}

type User struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProfileUpdate is the payload of PUT /profile. All four fields are always sent.
type ProfileUpdate struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Account struct {
	CreatedAt string `json:"created_at"`
	Expiry    int64  `json:"expiry"`
	Token     string `json:"token"`
}
