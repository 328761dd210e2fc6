package checkout

import (
	"regexp"
	"sort"
)

// ValidationErrors maps a field to its message. A missing key means the field is valid.
type ValidationErrors map[Field]string

func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

func (e ValidationErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Merge overlays other onto a copy of e; fields missing from other keep their message.
func (e ValidationErrors) Merge(other ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(e)+len(other))
	for k, v := range e {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func (e ValidationErrors) Clone() ValidationErrors {
	return e.Merge(nil)
}

func (e ValidationErrors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FieldError is one server-reported problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var leadingToken = regexp.MustCompile(`^(\w+)`)

// FieldFromMessage derives the field of a free-form server message from its
// leading word, e.g. "zip_code must be 5 digits". Best effort only.
func FieldFromMessage(msg string) (Field, bool) {
	m := leadingToken.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	f := Field(m[1])
	return f, f.IsValid()
}

// ErrorsFromServer keeps entries that name a known field and drops the rest.
func ErrorsFromServer(entries []FieldError) ValidationErrors {
	out := ValidationErrors{}
	for _, fe := range entries {
		f := Field(fe.Field)
		if fe.Field == "" {
			var ok bool
			if f, ok = FieldFromMessage(fe.Message); !ok {
				continue
			}
		}
		if !f.IsValid() {
			continue
		}
		out[f] = fe.Message
	}
	return out
}
