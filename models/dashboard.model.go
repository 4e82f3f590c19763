package models

// DashboardData holds the educator's aggregate figures.
type DashboardData struct {
	TotalEarnings        float64           `json:"totalEarnings"`
	TotalCourses         int               `json:"totalCourses"`
	TotalStudents        int               `json:"totalStudents"`
	EnrolledStudentsData []EnrolledStudent `json:"enrolledStudentsData"`
}

type EnrolledStudent struct {
	Student      UserRef `json:"student"`
	CourseTitle  string  `json:"courseTitle"`
	EnrolledDate string  `json:"enrolledDate,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
}

// Date returns the enrollment date, falling back to the purchase date
func (e EnrolledStudent) Date() string {
	if e.EnrolledDate != "" {
		return e.EnrolledDate
	}
	return e.PurchaseDate
}
