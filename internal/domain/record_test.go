package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordValid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
		blank  []string
	}{
		{
			name:   "sample record",
			record: SampleRecord(),
			want:   true,
		},
		{
			name:   "empty id",
			record: NewRecord("", "name", "desc"),
			want:   false,
			blank:  []string{"id"},
		},
		{
			name:   "whitespace name",
			record: NewRecord("id", " \t\n", "desc"),
			want:   false,
			blank:  []string{"name"},
		},
		{
			name:   "all blank",
			record: Record{},
			want:   false,
			blank:  []string{"id", "name", "description"},
		},
		{
			name:   "padded but not blank",
			record: NewRecord("  a  ", " b", "c "),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
			if diff := cmp.Diff(tt.blank, tt.record.BlankFields()); diff != "" {
				t.Errorf("BlankFields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	records := []Record{
		SampleRecord(),
		NewRecord("ünï-çødé-✓", "名前", "Описание 🚀"),
		NewRecord(`say "hi"`, `back\slash`, "tab\there\nnewline"),
		NewRecord(`\"mixed\"`, "<html>&amp;</html>", " line separator"),
	}

	for _, want := range records {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("json.Marshal(%+v) error = %v", want, err)
		}
		var got Record
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) error = %v", data, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRecordDecodesWireFormat(t *testing.T) {
	body := `{"id":"sample-001","name":"Sample Data","description":"This is a sample data instance created for demonstration purposes."}`

	var got Record
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(SampleRecord(), got); diff != "" {
		t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
	}
}
