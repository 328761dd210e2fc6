package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	expiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
}

var usStateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(usStates))
	for _, s := range usStates {
		m[s] = struct{}{}
	}
	return m
}()

func States() []string {
	out := make([]string, len(usStates))
	copy(out, usStates)
	return out
}

func IsKnownState(s string) bool {
	_, ok := usStateSet[s]
	return ok
}

// Validate checks every field independently against now. An empty result means the form is valid.
func Validate(v FormValues, now time.Time) ValidationErrors {
	errs := ValidationErrors{}

	switch name := strings.TrimSpace(v.FullName); {
	case name == "":
		errs[FieldFullName] = "Full name is required"
	case len([]rune(name)) < 2:
		errs[FieldFullName] = "Full name must be at least 2 characters"
	}

	card := strings.ReplaceAll(v.CardNumber, " ", "")
	switch {
	case card == "":
		errs[FieldCardNumber] = "Card number is required"
	case len(card) < 13 || len(card) > 19:
		errs[FieldCardNumber] = "Card number must be 13-19 digits"
	case !digitsPattern.MatchString(card):
		errs[FieldCardNumber] = "Card number must contain only digits"
	}

	if msg := validateExpiry(v.CardExpiry, now); msg != "" {
		errs[FieldCardExpiry] = msg
	}

	switch {
	case v.CardCVV == "":
		errs[FieldCardCVV] = "CVV is required"
	case len(v.CardCVV) < 3 || len(v.CardCVV) > 4:
		errs[FieldCardCVV] = "CVV must be 3-4 digits"
	}

	switch addr := strings.TrimSpace(v.BillingAddress); {
	case addr == "":
		errs[FieldBillingAddress] = "Billing address is required"
	case len([]rune(addr)) < 5:
		errs[FieldBillingAddress] = "Address must be at least 5 characters"
	}

	switch city := strings.TrimSpace(v.City); {
	case city == "":
		errs[FieldCity] = "City is required"
	case len([]rune(city)) < 2:
		errs[FieldCity] = "City must be at least 2 characters"
	}

	switch {
	case v.State == "":
		errs[FieldState] = "State is required"
	case !IsKnownState(v.State):
		errs[FieldState] = "Please select a valid state"
	}

	switch {
	case v.ZipCode == "":
		errs[FieldZipCode] = "Zip code is required"
	case len(v.ZipCode) != 5:
		errs[FieldZipCode] = "Zip code must be 5 digits"
	}

	return errs
}

func validateExpiry(expiry string, now time.Time) string {
	if expiry == "" {
		return "Expiry date is required"
	}
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return "Invalid format. Use MM/YY"
	}
	month, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[2])
	year := 2000 + yy

	if month < 1 || month > 12 {
		return "Invalid month"
	}
	currentYear, currentMonth := now.Year(), int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return "Card has expired"
	}
	return ""
}
