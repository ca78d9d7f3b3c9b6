package models

// Material categories.
const (
	MaterialExam     = "EXAM"
	MaterialNote     = "NOTE"
	MaterialSolution = "SOLUTION"
	MaterialOther    = "OTHER"
)

// MaterialTypes lists the allowed category values.
var MaterialTypes = []string{MaterialExam, MaterialNote, MaterialSolution, MaterialOther}

func IsMaterialType(t string) bool {
	for _, m := range MaterialTypes {
		if t == m {
			return true
		}
	}
	return false
}

// StudyMaterial is an uploaded study resource for a course.
type StudyMaterial struct {
	ID         string `json:"id"`
	CourseCode string `json:"courseCode"`
	Title      string `json:"title"`
	Type       string `json:"type"` // EXAM | NOTE | SOLUTION | OTHER
	UploadedBy string `json:"uploadedBy"`
	UploadDate string `json:"uploadDate"` // "YYYY-MM-DD"
	FileURL    string `json:"fileUrl"`
}
