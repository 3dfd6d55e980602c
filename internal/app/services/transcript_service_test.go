package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

func TestFindCourses(t *testing.T) {
	catalog, err := mathChain().ListAll(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "plain codes", text: "MATH 20A  A\nMATH 20B  B+", want: []string{"20A", "20B"}},
		{name: "case and spacing", text: "math\t\t18 and Math    109", want: []string{"18", "109"}},
		{name: "too much spacing", text: "MATH      18", want: nil},
		{name: "prefix of longer number", text: "MATH 1090", want: nil},
		{name: "suffix letter", text: "MATH 18X", want: nil},
		{name: "nothing", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range FindCourses(tt.text, catalog) {
				got = append(got, c.Number)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestMatchCourses(t *testing.T) {
	svc := NewTranscriptService(mathChain(), 64)

	resp, err := svc.MatchCourses(context.Background(), "MATH 20C A-, MATH 18 B")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalFound)
	assert.Equal(t, []int64{3, 4}, resp.TakenCourseIDs)
	assert.Equal(t, "MATH 20C", resp.TakenCourses[0].Code)

	resp, err = svc.MatchCourses(context.Background(), "no courses here")
	require.NoError(t, err)
	assert.NotNil(t, resp.TakenCourseIDs)
	assert.Zero(t, resp.TotalFound)

	_, err = svc.MatchCourses(context.Background(), strings.Repeat("x", 65))
	assert.ErrorIs(t, err, apperrors.ErrTranscriptTooLarge)
}
