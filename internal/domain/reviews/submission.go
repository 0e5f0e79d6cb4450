package reviews

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5

	MsgMissingFields = "All fields are required"
	MsgInvalidRating = "rating must be an integer between 1 and 5"
	MsgInvalidText   = "name and review must not contain NUL characters"
)

// ValidationError is returned for submissions the caller can correct.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// Submission is the raw payload of POST /api/reviews/add. Rating stays raw
// because clients send it as a number or as a numeric string.
type Submission struct {
	Name   *string         `json:"name"`
	Review *string         `json:"review"`
	Rating json.RawMessage `json:"rating"`
}

// Parse checks name, review and rating presence in that order, then the
// rating range, and returns the record to insert. Nothing is persisted here.
func (s Submission) Parse(autoApprove bool) (*Review, error) {
	var missing []string

	name := ""
	if s.Name != nil {
		name = strings.TrimSpace(*s.Name)
	}
	if name == "" {
		missing = append(missing, "name")
	}

	body := ""
	if s.Review != nil {
		body = *s.Review
	}
	if strings.TrimSpace(body) == "" {
		missing = append(missing, "review")
	}

	if isAbsent(s.Rating) {
		missing = append(missing, "rating")
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Message: MsgMissingFields, Fields: missing}
	}

	// The store cannot hold U+0000 in text columns.
	var bad []string
	if strings.ContainsRune(name, 0) {
		bad = append(bad, "name")
	}
	if strings.ContainsRune(body, 0) {
		bad = append(bad, "review")
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Message: MsgInvalidText, Fields: bad}
	}

	rating, ok := parseRating(s.Rating)
	if !ok {
		return nil, &ValidationError{Message: MsgInvalidRating, Fields: []string{"rating"}}
	}

	return &Review{
		Name:       name,
		Review:     body,
		Rating:     rating,
		IsApproved: autoApprove,
	}, nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`))
}

// parseRating accepts 4, 4.0 and "4"; rejects fractions, booleans and anything outside [1,5].
func parseRating(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		raw = json.RawMessage(strings.TrimSpace(s))
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < MinRating || f > MaxRating {
		return 0, false
	}
	return int(f), true
}
