package api

import "time"

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken string `json:"accessToken"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// Task is the wire form of a task. The owner is implied by the caller's
// token and is never sent.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GetTasksRequest struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

type GetTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type GetTaskRequest struct {
	ID string `json:"id"`
}

type GetTaskResponse struct {
	Task *Task `json:"task"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateTaskResponse struct {
	Task *Task `json:"task"`
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateTaskStatusResponse struct {
	Task *Task `json:"task"`
}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type DeleteTaskResponse struct{}
