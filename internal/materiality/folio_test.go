package materiality_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
)

func TestFolio(t *testing.T) {
	date := time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC)

	type testCase struct {
		name string
		rfc  string
		seq  int
		want string
	}

	tests := []testCase{
		{
			name: "PersonRFC",
			rfc:  "MAGV850101XX1",
			seq:  7,
			want: "MAGV-050324-07",
		},
		{
			name: "CompanyRFCWithAmpersand",
			rfc:  "A&B991231AB1",
			seq:  1,
			want: "A&B-050324-01",
		},
		{
			name: "ThreeLetterPrefix",
			rfc:  "ABC920810XY2",
			seq:  12,
			want: "ABC-050324-12",
		},
		{
			name: "EmptyRFCFallsBackToPF",
			rfc:  "",
			seq:  3,
			want: "PF-050324-03",
		},
		{
			name: "MalformedRFCFallsBackToPF",
			rfc:  "12xyz",
			seq:  5,
			want: "PF-050324-05",
		},
		{
			name: "LowercaseRFCFallsBackToPF",
			rfc:  "magv850101xx1",
			seq:  5,
			want: "PF-050324-05",
		},
		{
			name: "AbsentSequenceDefaultsToOne",
			rfc:  "MAGV850101XX1",
			seq:  0,
			want: "MAGV-050324-01",
		},
		{
			name: "SequencePast99WidensNaturally",
			rfc:  "MAGV850101XX1",
			seq:  104,
			want: "MAGV-050324-104",
		},
		{
			name: "SurroundingWhitespaceIgnored",
			rfc:  "  MAGV850101XX1 ",
			seq:  2,
			want: "MAGV-050324-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materiality.Folio(tt.rfc, date, tt.seq))
		})
	}
}

func TestFolio_MalformedAlwaysPFPrefixed(t *testing.T) {
	date := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	for _, rfc := range []string{"", "ab", "9", "  ", "x&y"} {
		assert.True(t, strings.HasPrefix(materiality.Folio(rfc, date, 1), "PF-"), "rfc=%q", rfc)
	}
}

func TestFolio_DateIsDayMonthYear(t *testing.T) {
	// 1 Feb vs 2 Jan must not collide: day comes first.
	feb := materiality.Folio("ABC123", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1)
	jan := materiality.Folio("ABC123", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1)

	assert.Equal(t, "ABC-010224-01", feb)
	assert.Equal(t, "ABC-020124-01", jan)
}
