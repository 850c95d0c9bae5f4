package domain

import "strings"

// Record is the payload served by the dummy-data endpoint.
//
// It is a value type: the client never mutates a Record, it only replaces the
// one it holds when a newer fetch succeeds.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RecordFields are the JSON keys of Record, in declaration order.
var RecordFields = []string{"id", "name", "description"}

const (
	SampleRecordID          = "sample-001"
	SampleRecordName        = "Sample Data"
	SampleRecordDescription = "This is a sample data instance created for demonstration purposes."
)

// NewRecord builds a Record from explicit values. No validation is applied.
func NewRecord(id, name, description string) Record {
	return Record{ID: id, Name: name, Description: description}
}

// SampleRecord returns the fixed record the backend serves by default.
func SampleRecord() Record {
	return NewRecord(SampleRecordID, SampleRecordName, SampleRecordDescription)
}

// Valid reports whether every field is non-blank after trimming.
func (r Record) Valid() bool {
	return !isBlank(r.ID) && !isBlank(r.Name) && !isBlank(r.Description)
}

// BlankFields lists the JSON names of the blank fields, in declaration order.
func (r Record) BlankFields() []string {
	var blank []string
	if isBlank(r.ID) {
		blank = append(blank, "id")
	}
	if isBlank(r.Name) {
		blank = append(blank, "name")
	}
	if isBlank(r.Description) {
		blank = append(blank, "description")
	}
	return blank
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
