// internal/domain/homework/homework.go
package homework

import (
	"fmt"

	"homework_status_bot/internal/domain/failure"
)

const (
	keyHomeworks = "homeworks"
	keyName      = "homework_name"
	keyStatus    = "status"
)

// Entry is one raw element of the "homeworks" list as decoded from JSON.
type Entry map[string]any

// Homework is a validated submission record.
type Homework struct {
	Name   string
	Status Status
}

// CheckResponse validates the decoded API payload and returns the first
// (most recent) entry of its "homeworks" list. Ordering is trusted to the API.
func CheckResponse(payload any) (Entry, error) {
	body, ok := payload.(map[string]any)
	if !ok {
		return nil, failure.Wrap(failure.KindParse, fmt.Errorf("API response of type %T: %w", payload, ErrNotObject))
	}

	raw, ok := body[keyHomeworks]
	if !ok || raw == nil {
		return nil, failure.Wrap(failure.KindShape, ErrMissingHomeworks)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, failure.Wrap(failure.KindShape, fmt.Errorf("got %T: %w", raw, ErrHomeworksNotList))
	}
	if len(list) == 0 {
		return nil, failure.Wrap(failure.KindShape, ErrEmptyHomeworks)
	}

	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, failure.Wrap(failure.KindShape, fmt.Errorf("first homework of type %T: %w", list[0], ErrNotObject))
	}
	return Entry(first), nil
}

// Parse turns a raw entry into a Homework, failing on missing keys,
// wrongly typed values and unknown statuses.
func Parse(entry Entry) (Homework, error) {
	name, err := stringField(entry, keyName)
	if err != nil {
		return Homework{}, err
	}
	rawStatus, err := stringField(entry, keyStatus)
	if err != nil {
		return Homework{}, err
	}

	status := Status(rawStatus)
	if !status.Known() {
		return Homework{}, failure.Wrap(failure.KindShape, fmt.Errorf("%w %q for %q", ErrUnknownStatus, rawStatus, name))
	}
	return Homework{Name: name, Status: status}, nil
}

// Message renders the notification text for h.
func (h Homework) Message() string {
	verdict, _ := h.Status.Verdict()
	return fmt.Sprintf("Changed review status for submission \"%s\". %s", h.Name, verdict)
}

// FormatStatus parses entry and renders its notification text.
func FormatStatus(entry Entry) (string, error) {
	hw, err := Parse(entry)
	if err != nil {
		return "", err
	}
	return hw.Message(), nil
}

func stringField(entry Entry, key string) (string, error) {
	v, ok := entry[key]
	if !ok || v == nil {
		return "", failure.Wrap(failure.KindShape, &MissingKeyError{Key: key})
	}
	s, ok := v.(string)
	if !ok {
		return "", failure.Wrap(failure.KindShape, &InvalidKeyError{Key: key, Value: v})
	}
	return s, nil
}
