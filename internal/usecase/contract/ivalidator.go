package usecasecontract

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
	// ValidateStruct checks the `validate` tags of s.
	ValidateStruct(s interface{}) error
}
