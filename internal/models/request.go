package models

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required" example:"Casa Alameda"`
	// Code is the external reference code shown next to the project name.
	Code string `json:"code" binding:"required" example:"ALM-2024-07"`
}

type UpdateProjectRequest struct {
	Name   *string `json:"name,omitempty"`
	Code   *string `json:"code,omitempty"`
	Status *string `json:"status,omitempty" enums:"open,pending,completed"`
}

type CreateTodoRequest struct {
	Title      string  `json:"title" binding:"required"`
	Notes      string  `json:"notes,omitempty"`
	Status     string  `json:"status,omitempty" enums:"incomplete,in_progress,complete"`
	Priority   string  `json:"priority,omitempty"`
	DueDate    *Date   `json:"due_date,omitempty" swaggertype:"string" example:"2024-07-15"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

type ReviewRequest struct {
	Status  string `json:"status" binding:"required" enums:"approved,rejected"`
	Comment string `json:"comment,omitempty"`
}

type UpdateReasonRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
