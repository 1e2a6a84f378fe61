package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User owns places and writes reviews.
//
// Password always holds a bcrypt hash; SetField hashes plain text on the way
// in and the API representation never includes it.
type User struct {
	BaseModel
	Email     string `json:"email" db:"email"`
	Password  string `json:"password" db:"password"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

func (u *User) Kind() Kind { return KindUser }

func (u *User) References() []Ref { return nil }

func (u *User) SetField(key string, value any) (err error) {
	switch key {
	case "email":
		u.Email, err = stringValue(key, value)
	case "first_name":
		u.FirstName, err = stringValue(key, value)
	case "last_name":
		u.LastName, err = stringValue(key, value)
	case "password":
		var plain string
		if plain, err = stringValue(key, value); err != nil {
			return err
		}
		return u.SetPassword(plain)
	default:
		err = unknownField(key)
	}
	return err
}

// SetPassword stores the bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt refuses inputs longer than 72 bytes.
		return invalidValue("password")
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
