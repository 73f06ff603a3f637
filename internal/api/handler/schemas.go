package handler

import "time"

type createTaskRequest struct {
	ClientID         string    `json:"client_id" validate:"required"`
	ProjectID        string    `json:"project_id"`
	Title            string    `json:"title" validate:"required,min=1"`
	Priority         string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Type             string    `json:"type"`
	AssignedToUserID string    `json:"assigned_to_user_id"`
	DueDate          time.Time `json:"due_date"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=BACKLOG TODO IN_PROGRESS WAITING_CLIENT WAITING_APPROVAL DONE CANCELLED"`
}

type reassignTaskRequest struct {
	AssignedToUserID string `json:"assigned_to_user_id"`
}

type createClientRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type createUserRequest struct {
	Name           string `json:"name" validate:"required,min=1"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Tier           string `json:"tier" validate:"required,oneof=owner admin account_manager team_member"`
	FunctionalRole string `json:"functional_role" validate:"required"`
}

type changeUserRoleRequest struct {
	Tier           string `json:"tier" validate:"required,oneof=owner admin account_manager team_member"`
	FunctionalRole string `json:"functional_role"`
}
