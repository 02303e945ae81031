package models

type SignupField string

const (
	FieldFirstName SignupField = "first_name"
	FieldLastName  SignupField = "last_name"
	FieldEmail     SignupField = "email"
	FieldPhone     SignupField = "phone"
	FieldPassword  SignupField = "password"
)

// SignupFields is the order the form is filled in.
var SignupFields = []SignupField{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldPassword}

// SignupForm is collected on the signup screen and never submitted anywhere.
type SignupForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"-"`
}

func (f *SignupForm) Set(field SignupField, value string) bool {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldPassword:
		f.Password = value
	default:
		return false
	}
	return true
}

func (f SignupForm) Get(field SignupField) string {
	switch field {
	case FieldFirstName:
		return f.FirstName
	case FieldLastName:
		return f.LastName
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldPassword:
		return f.Password
	}
	return ""
}

// NextEmpty returns the first unfilled field in form order.
func (f SignupForm) NextEmpty() (SignupField, bool) {
	for _, field := range SignupFields {
		if f.Get(field) == "" {
			return field, true
		}
	}
	return "", false
}

type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DefaultInstitutions() []Institution {
	return []Institution{
		{ID: "local-university", Name: "Local University"},
		{ID: "unisa", Name: "University of South Africa"},
		{ID: "wits", Name: "University of the Witwatersrand"},
		{ID: "up", Name: "University of Pretoria"},
		{ID: "other", Name: "Other institution"},
	}
}
