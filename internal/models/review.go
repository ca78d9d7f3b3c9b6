package models

// CourseReview is a student-submitted rating for a course.
type CourseReview struct {
	ID         string `json:"id"`
	CourseCode string `json:"courseCode"`
	Rating     int    `json:"rating"` // 1-5
	Comment    string `json:"comment"`
	Author     string `json:"author"`
	Date       string `json:"date"` // "YYYY-MM-DD"
}

type CreateReviewRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=2000"`
}
