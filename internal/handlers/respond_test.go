package handlers

import (
	"net/http/httptest"
	"testing"

	"wordtower/internal/models"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name  string
		query string
		def   int
		want  int
	}{
		{name: "missing uses default", query: "", def: 10, want: 10},
		{name: "valid value", query: "limit=25", def: 10, want: 25},
		{name: "zero uses default", query: "limit=0", def: 10, want: 10},
		{name: "negative uses default", query: "limit=-3", def: 10, want: 10},
		{name: "garbage uses default", query: "limit=abc", def: 10, want: 10},
		{name: "capped at 100", query: "limit=5000", def: 10, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/test?"+tt.query, nil)
			if got := parseLimit(r, tt.def); got != tt.want {
				t.Errorf("parseLimit(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestParsePrizeType(t *testing.T) {
	tests := []struct {
		raw    string
		want   models.PrizeType
		wantOK bool
	}{
		{"", models.PrizeTypeAll, true},
		{"parent", models.PrizeTypeParent, true},
		{"teacher", models.PrizeTypeTeacher, true},
		{"all", models.PrizeTypeAll, true},
		{"admin", models.PrizeType("admin"), false},
	}

	for _, tt := range tests {
		got, ok := parsePrizeType(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parsePrizeType(%q) = (%q, %t), want (%q, %t)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
