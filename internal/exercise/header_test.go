package exercise

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantErr    Reason
		wantTitle  string
		wantDemand string
		wantEnd    int
		wantFields map[string]string
	}{
		{
			name:       "minimal header",
			text:       "---\ntitle: Add\ndemand: easy\n---\nBody text\n",
			wantTitle:  "Add",
			wantDemand: "easy",
			wantEnd:    3,
		},
		{
			name:       "splits on first colon-space",
			text:       "---\ntitle: Ratio: a: b\ndemand: hard\nsource: http://example.com\n---\n",
			wantTitle:  "Ratio: a: b",
			wantDemand: "hard",
			wantEnd:    4,
			wantFields: map[string]string{"source": "http://example.com"},
		},
		{
			name:       "leading blank lines and padded delimiters",
			text:       "\n\n  ---  \n  title: Swap  \ndemand: medium\r\n---\r\nrest",
			wantTitle:  "Swap",
			wantDemand: "medium",
			wantEnd:    5,
		},
		{
			name:    "no closing delimiter",
			text:    "---\ntitle: Add\ndemand: easy\nBody text\n",
			wantErr: ReasonMalformedField,
		},
		{
			name:    "unterminated block",
			text:    "---\ntitle: Add\ndemand: easy\n\n",
			wantErr: ReasonUnterminated,
		},
		{
			name:    "unterminated after valid fields",
			text:    "---\ntitle: Add\ndemand: easy",
			wantErr: ReasonUnterminated,
		},
		{
			name:    "blank line inside header",
			text:    "---\ntitle: Add\n\ndemand: easy\n---\n",
			wantErr: ReasonMalformedField,
		},
		{
			name:    "colon without space",
			text:    "---\ntitle:Add\ndemand: easy\n---\n",
			wantErr: ReasonMalformedField,
		},
		{
			name:    "empty key",
			text:    "---\n: Add\n---\n",
			wantErr: ReasonMalformedField,
		},
		{
			name:    "missing demand",
			text:    "---\ntitle: Add\n---\nBody",
			wantErr: ReasonMissingField,
		},
		{
			name:    "body before header",
			text:    "Body\n---\ntitle: Add\ndemand: easy\n---\n",
			wantErr: ReasonMissingOpen,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: ReasonMissingOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, err := ParseHeader(tt.text)
			if tt.wantErr != 0 {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseHeader() error = %v, want *ParseError", err)
				}
				if parseErr.Reason != tt.wantErr {
					t.Errorf("Reason = %v, want %v", parseErr.Reason, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}
			if header.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", header.Title, tt.wantTitle)
			}
			if header.Demand != tt.wantDemand {
				t.Errorf("Demand = %q, want %q", header.Demand, tt.wantDemand)
			}
			if header.End != tt.wantEnd {
				t.Errorf("End = %d, want %d", header.End, tt.wantEnd)
			}
			for key, want := range tt.wantFields {
				if got := header.Fields[key]; got != want {
					t.Errorf("Fields[%q] = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestParse_Body(t *testing.T) {
	ex, err := Parse("---\ntitle: Add\ndemand: easy\n---\nBody text\n\n```go\nx := 1\n```\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "Body text\n\n```go\nx := 1\n```\n"
	if ex.Body != want {
		t.Errorf("Body = %q, want %q", ex.Body, want)
	}
}

func TestParse_BodyDoesNotReparseAsHeader(t *testing.T) {
	ex, err := Parse("---\ntitle: Add\ndemand: easy\n---\nSum two numbers.\n\nUse `+`.\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err = ParseHeader(ex.Body)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Reason != ReasonMissingOpen {
		t.Errorf("ParseHeader(body) error = %v, want ReasonMissingOpen", err)
	}
}

func TestLoad_ErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ex1.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Add\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %q, want to mention %s", err.Error(), path)
	}
	if !strings.Contains(err.Error(), "header did not end with ---") {
		t.Errorf("error = %q, want unterminated reason", err.Error())
	}
}
