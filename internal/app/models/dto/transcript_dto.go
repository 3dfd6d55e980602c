package dto

// TranscriptMatchRequest carries text already extracted from a transcript
type TranscriptMatchRequest struct {
	Text string `json:"text" binding:"required"`
}

// MatchedCourse is a catalog course found in a transcript
type MatchedCourse struct {
	ID    int64  `json:"id" example:"2"`
	Code  string `json:"code" example:"MATH 20A"`
	Title string `json:"title" example:"Calculus for Science and Engineering"`
}

// TranscriptMatchResponse lists the courses a transcript mentions
type TranscriptMatchResponse struct {
	TakenCourseIDs []int64         `json:"takenCourseIds"`
	TakenCourses   []MatchedCourse `json:"takenCourses"`
	TotalFound     int             `json:"totalFound" example:"2"`
}
