package dto

// ContactRequest is the body of POST /api/contact
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubscribeRequest is the body of POST /api/subscribe
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// JobApplicationRequest is the body of POST /api/job-application
type JobApplicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Position  string `json:"position" binding:"required"`
	ResumeURL string `json:"resumeUrl" binding:"omitempty,url"`
}
