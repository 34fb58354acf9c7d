package reservation

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"

	MinPartySize = 1
	MaxPartySize = 12
)

var (
	ErrInvalidDate       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrDateInPast        = errors.New("date is in the past")
	ErrInvalidSlot       = errors.New("time must be a HH:MM slot on a 30 minute boundary")
	ErrInvalidPartySize  = errors.New("party size must be between 1 and 12")
	ErrNameRequired      = errors.New("name is required")
	ErrPhoneRequired     = errors.New("phone is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Date is a calendar day in ISO form.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return Date{}, ErrInvalidDate
	}
	return Date{value: s}, nil
}

func (d Date) String() string { return d.value }

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, d.value)
	return t
}

// Slot is a seating start time on the half hour.
type Slot struct {
	value string
}

func NewSlot(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(SlotLayout, s)
	if err != nil || t.Format(SlotLayout) != s {
		return Slot{}, ErrInvalidSlot
	}
	if t.Minute()%30 != 0 {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{value: s}, nil
}

func (s Slot) String() string { return s.value }

type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < MinPartySize || n > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Int() int { return p.value }

// Contact is the guest's contact data. Email is optional.
type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, ErrNameRequired
	}
	if phone == "" {
		return Contact{}, ErrPhoneRequired
	}
	if email != "" && !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

// Fields is a validated set of guest-editable reservation values.
type Fields struct {
	Date      Date
	Slot      Slot
	PartySize PartySize
	Contact   Contact
}

func ParseFields(date, slot string, partySize int, name, email, phone string) (Fields, error) {
	d, err := NewDate(date)
	if err != nil {
		return Fields{}, err
	}
	s, err := NewSlot(slot)
	if err != nil {
		return Fields{}, err
	}
	p, err := NewPartySize(partySize)
	if err != nil {
		return Fields{}, err
	}
	c, err := NewContact(name, email, phone)
	if err != nil {
		return Fields{}, err
	}
	return Fields{Date: d, Slot: s, PartySize: p, Contact: c}, nil
}

// NotBefore rejects dates earlier than today. today is compared by calendar day.
func (d Date) NotBefore(today time.Time) error {
	if d.value < today.Format(DateLayout) {
		return ErrDateInPast
	}
	return nil
}
