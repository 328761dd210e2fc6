package checkout

import (
	"errors"
)

var ErrUnknownField = errors.New("unknown checkout field")

type Field string

const (
	FieldFullName       Field = "full_name"
	FieldCardNumber     Field = "card_number"
	FieldCardExpiry     Field = "card_expiry"
	FieldCardCVV        Field = "card_cvv"
	FieldBillingAddress Field = "billing_address"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldCountry        Field = "country"
	FieldZipCode        Field = "zip_code"
)

const DefaultCountry = "U.S.A."

var fields = []Field{
	FieldFullName,
	FieldCardNumber,
	FieldCardExpiry,
	FieldCardCVV,
	FieldBillingAddress,
	FieldCity,
	FieldState,
	FieldCountry,
	FieldZipCode,
}

func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.IsValid() {
		return "", ErrUnknownField
	}
	return f, nil
}

func (f Field) IsValid() bool {
	switch f {
	case FieldFullName, FieldCardNumber, FieldCardExpiry, FieldCardCVV,
		FieldBillingAddress, FieldCity, FieldState, FieldCountry, FieldZipCode:
		return true
	default:
		return false
	}
}

func (f Field) String() string {
	return string(f)
}

// FormValues holds display values only; raw keystrokes go through FormatField first.
type FormValues struct {
	FullName       string `json:"full_name"`
	CardNumber     string `json:"card_number"`
	CardExpiry     string `json:"card_expiry"`
	CardCVV        string `json:"card_cvv"`
	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	ZipCode        string `json:"zip_code"`
}

func NewFormValues() FormValues {
	return FormValues{Country: DefaultCountry}
}

func (v FormValues) Get(f Field) (string, error) {
	ptr := v.ref(f)
	if ptr == nil {
		return "", ErrUnknownField
	}
	return *ptr, nil
}

func (v *FormValues) Set(f Field, value string) error {
	ptr := v.ref(f)
	if ptr == nil {
		return ErrUnknownField
	}
	*ptr = value
	return nil
}

func (v *FormValues) ref(f Field) *string {
	switch f {
	case FieldFullName:
		return &v.FullName
	case FieldCardNumber:
		return &v.CardNumber
	case FieldCardExpiry:
		return &v.CardExpiry
	case FieldCardCVV:
		return &v.CardCVV
	case FieldBillingAddress:
		return &v.BillingAddress
	case FieldCity:
		return &v.City
	case FieldState:
		return &v.State
	case FieldCountry:
		return &v.Country
	case FieldZipCode:
		return &v.ZipCode
	default:
		return nil
	}
}
