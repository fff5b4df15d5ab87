package guest

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 100
	MaxPhoneLength = 20
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

// Email keeps the address as entered; uniqueness is case-insensitive at the storage layer.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Email{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(t) > MaxEmailLength {
		return Email{}, ErrEmailTooLong
	}
	addr, err := mail.ParseAddress(t)
	if err != nil || addr.Address != t {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: t}, nil
}

func (e Email) String() string { return e.value }

// Domain returns the lower-cased part after '@'.
func (e Email) Domain() string {
	i := strings.LastIndex(e.value, "@")
	if i < 0 {
		return ""
	}
	return strings.ToLower(e.value[i+1:])
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Phone{}, ErrInvalidPhone
	}
	if len(t) > MaxPhoneLength {
		return Phone{}, ErrPhoneTooLong
	}
	digits := 0
	for i, r := range t {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == '-' || r == ' ' || r == '(' || r == ')' || r == '.':
		default:
			return Phone{}, ErrInvalidPhone
		}
	}
	if digits < 3 {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: t}, nil
}

func (p Phone) String() string { return p.value }
