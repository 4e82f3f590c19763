package models

// CourseProgress is the backend's progress record for one user and course.
type CourseProgress struct {
	CourseID         string   `json:"courseId"`
	Completed        bool     `json:"completed"`
	LectureCompleted []string `json:"lectureCompleted"`
}

// IsLectureDone reports whether the lecture id is marked complete
func (p *CourseProgress) IsLectureDone(lectureID string) bool {
	if p == nil {
		return false
	}
	for _, id := range p.LectureCompleted {
		if id == lectureID {
			return true
		}
	}
	return false
}

// EnrollmentProgress pairs an enrolled course with its completion state.
type EnrollmentProgress struct {
	Course           Course  `json:"course"`
	LectureCompleted int     `json:"lecture_completed"`
	TotalLectures    int     `json:"total_lectures"`
	Percent          float64 `json:"percent"`
	IsCompleted      bool    `json:"is_completed"`
}
