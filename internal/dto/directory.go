package dto

// CreateStudentRequest registers a student. The password is hashed before
// it reaches the model.
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	ID             string `json:"id" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
	MaxCredits     int    `json:"maxCredits" validate:"omitempty,min=0"`
}

// StudentSummary is a directory listing row.
type StudentSummary struct {
	ID         string `json:"id" csv:"id"`
	FirstName  string `json:"firstName" csv:"first_name"`
	LastName   string `json:"lastName" csv:"last_name"`
	Email      string `json:"email" csv:"email"`
	MaxCredits int    `json:"maxCredits" csv:"max_credits"`
}

// CreateFacultyRequest registers a faculty member.
type CreateFacultyRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	ID             string `json:"id" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	RepeatPassword string `json:"repeatPassword" validate:"required"`
	MaxCourses     int    `json:"maxCourses" validate:"required"`
}

// FacultySummary is a faculty directory row.
type FacultySummary struct {
	ID         string `json:"id" csv:"id"`
	FirstName  string `json:"firstName" csv:"first_name"`
	LastName   string `json:"lastName" csv:"last_name"`
	Email      string `json:"email" csv:"email"`
	MaxCourses int    `json:"maxCourses" csv:"max_courses"`
	Courses    int    `json:"courses" csv:"courses"`
	Overloaded bool   `json:"overloaded" csv:"overloaded"`
}
