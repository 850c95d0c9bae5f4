package client

import (
	"strings"
	"testing"

	"github.com/MrSnakeDoc/restdemo/internal/domain"
)

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "exact", body: `{"id":"a","name":"b","description":"c"}`},
		{name: "missing key", body: `{"id":"a"}`},
		{name: "trailing whitespace", body: "{\"id\":\"a\"}\r\n"},
		{name: "trailing garbage", body: `{"id":"a"} x`, wantErr: "unexpected data after JSON value"},
		{name: "trailing object", body: `{"id":"a"} {"id":"b"}`, wantErr: "unexpected data after JSON value"},
		{name: "case mismatch", body: `{"Id":"a"}`, wantErr: `unexpected field "Id"`},
		{name: "duplicate in other case", body: `{"id":"a","ID":"b"}`, wantErr: `unexpected field "ID"`},
		{name: "empty", body: ``, wantErr: "EOF"},
		{name: "null", body: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec domain.Record
			err := decodeStrict([]byte(tt.body), &rec, domain.RecordFields)
			switch {
			case tt.wantErr == "" && err != nil:
				t.Fatalf("decodeStrict() error = %v, want nil", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Fatalf("decodeStrict() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
