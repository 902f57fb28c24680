package models

import (
	"strings"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// User holds the identity fields shared by students and faculty. The
// password is stored as an opaque hash produced by the caller.
type User struct {
	firstName    string
	lastName     string
	id           string
	email        string
	passwordHash string
}

func newUser(firstName, lastName, id, email, passwordHash string) (User, error) {
	var u User
	if id == "" {
		return u, appErrors.Clone(appErrors.ErrValidation, "Invalid id")
	}
	u.id = id
	if err := u.SetFirstName(firstName); err != nil {
		return u, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return u, err
	}
	if err := u.SetEmail(email); err != nil {
		return u, err
	}
	if err := u.SetPasswordHash(passwordHash); err != nil {
		return u, err
	}
	return u, nil
}

// ID returns the unique user id.
func (u *User) ID() string { return u.id }

// FirstName returns the first name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the last name.
func (u *User) LastName() string { return u.lastName }

// Email returns the email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// SetFirstName replaces the first name.
func (u *User) SetFirstName(firstName string) error {
	if firstName == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid first name")
	}
	u.firstName = firstName
	return nil
}

// SetLastName replaces the last name.
func (u *User) SetLastName(lastName string) error {
	if lastName == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid last name")
	}
	u.lastName = lastName
	return nil
}

// SetEmail replaces the email. The address needs an '@' followed somewhere
// by a '.'.
func (u *User) SetEmail(email string) error {
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	if email == "" || at < 0 || dot < 0 || dot < at {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid email")
	}
	u.email = email
	return nil
}

// SetPasswordHash replaces the password hash.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) equal(other *User) bool {
	return u.id == other.id &&
		u.firstName == other.firstName &&
		u.lastName == other.lastName &&
		u.email == other.email &&
		u.passwordHash == other.passwordHash
}

func (u *User) compare(other *User) int {
	if n := strings.Compare(u.lastName, other.lastName); n != 0 {
		return n
	}
	if n := strings.Compare(u.firstName, other.firstName); n != 0 {
		return n
	}
	return strings.Compare(u.id, other.id)
}
