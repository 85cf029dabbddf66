package model

// Request bodies. Validation is declared with gin binding tags and
// surfaces as 422 at the handler boundary.

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	RoleType    string `json:"role_type" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	BlockFlat   string `json:"blockflat"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	RoleType string `json:"role_type" binding:"required"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ProfileRequest struct {
	ID string `json:"id" binding:"required"`
}

type CreateDepartmentRequest struct {
	Name string `json:"department_name" binding:"required"`
}

type CreateMeetingRequest struct {
	DepartmentIDs []string `json:"departmentIds" binding:"required"`
	Tags          []string `json:"tag" binding:"required"`
	Topic         string   `json:"meetingTopic" binding:"required"`
	Date          string   `json:"selectDate" binding:"required"`
	Time          string   `json:"selectTime" binding:"required"`
	ImageURL      string   `json:"imageUrl"`
}

type CreateTaskRequest struct {
	DepartmentIDs []string `json:"department" binding:"required"`
	Tags          []string `json:"tag" binding:"required"`
	Title         string   `json:"task_title" binding:"required"`
	Description   string   `json:"task_description"`
	TargetDate    string   `json:"target_date" binding:"required"`
}

type PaymentRequest struct {
	Email         string `json:"email" binding:"required,email"`
	UserPaymentID string `json:"userPaymentId" binding:"required"`
	UserID        string `json:"userId" binding:"required"`
	PayFor        string `json:"payFor" binding:"required"`
}
