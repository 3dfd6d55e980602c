package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/yigit/roadmap/internal/app/models"
	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

// TranscriptService finds catalog courses mentioned in transcript text
type TranscriptService interface {
	MatchCourses(ctx context.Context, text string) (*dto.TranscriptMatchResponse, error)
}

type transcriptServiceImpl struct {
	courseRepo   CourseStore
	maxTextBytes int
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(courseRepo CourseStore, maxTextBytes int) TranscriptService {
	return &transcriptServiceImpl{
		courseRepo:   courseRepo,
		maxTextBytes: maxTextBytes,
	}
}

// MatchCourses scans text for every catalog course code
func (s *transcriptServiceImpl) MatchCourses(ctx context.Context, text string) (*dto.TranscriptMatchResponse, error) {
	if s.maxTextBytes > 0 && len(text) > s.maxTextBytes {
		return nil, apperrors.ErrTranscriptTooLarge
	}

	catalog, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	matched := FindCourses(text, catalog)
	resp := &dto.TranscriptMatchResponse{
		TakenCourseIDs: make([]int64, 0, len(matched)),
		TakenCourses:   make([]dto.MatchedCourse, 0, len(matched)),
		TotalFound:     len(matched),
	}
	for _, c := range matched {
		resp.TakenCourseIDs = append(resp.TakenCourseIDs, c.ID)
		resp.TakenCourses = append(resp.TakenCourses, dto.MatchedCourse{ID: c.ID, Code: c.Code(), Title: c.Title})
	}
	return resp, nil
}

// coursePattern matches "DEPT NUMBER" as whole words, case-insensitively, with
// one to four whitespace characters between the parts.
func coursePattern(c *models.Course) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(c.Dept) + `\s{1,4}` + regexp.QuoteMeta(c.Number) + `\b`)
}

// FindCourses returns, in catalog order, the courses whose code appears in text.
func FindCourses(text string, catalog []*models.Course) []*models.Course {
	var out []*models.Course
	for _, c := range catalog {
		if coursePattern(c).MatchString(text) {
			out = append(out, c)
		}
	}
	return out
}
