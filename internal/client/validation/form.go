package validation

// Field names a form input.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
)

// FieldErrors maps each failing field to its validation error.
// A nil or empty map means the form is valid.
type FieldErrors map[Field]error

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Get returns the error for f, or nil.
func (fe FieldErrors) Get(f Field) error {
	if fe == nil {
		return nil
	}
	return fe[f]
}

// Clear drops the error for f, the way a screen hides a field's message
// once the user focuses that input again.
func (fe FieldErrors) Clear(f Field) {
	delete(fe, f)
}

func (fe FieldErrors) add(f Field, err error) {
	if err != nil {
		fe[f] = err
	}
}

// ValidateLogin checks every login field and collects all failures.
func ValidateLogin(email, password string) FieldErrors {
	fe := FieldErrors{}
	fe.add(FieldEmail, ValidateEmail(email))
	fe.add(FieldPassword, ValidatePassword(password))
	return fe
}

// ValidateRegister checks every registration field and collects all failures.
func ValidateRegister(firstName, lastName, email, password string) FieldErrors {
	fe := FieldErrors{}
	fe.add(FieldFirstName, ValidateFirstName(firstName))
	fe.add(FieldLastName, ValidateLastName(lastName))
	fe.add(FieldEmail, ValidateEmail(email))
	fe.add(FieldPassword, ValidatePassword(password))
	return fe
}
