package apiclient

import (
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v7"
)

// UserPayload is the request body for user creation. Password is accepted
// by the payload for realism but ignored by the mock server.
type UserPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
}

// RandomUser generates a user payload from fake data. Usernames carry the
// "test_" prefix so the cleanup helper can find harness-created rows.
func RandomUser() UserPayload {
	return UserPayload{
		Username:  fmt.Sprintf("test_%s", gofakeit.Username()),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Password:  gofakeit.Password(true, true, true, true, false, 12),
	}
}

// UsersAPI wraps the /users endpoints.
type UsersAPI struct {
	client *Client
}

// NewUsersAPI creates a UsersAPI on top of the given client.
func NewUsersAPI(client *Client) *UsersAPI {
	return &UsersAPI{client: client}
}

// GetAllUsers fetches every user.
func (a *UsersAPI) GetAllUsers() (*http.Response, error) {
	return a.client.Get("/users")
}

// GetUserByID fetches one user by id.
func (a *UsersAPI) GetUserByID(id uint) (*http.Response, error) {
	return a.client.Get(fmt.Sprintf("/users/%d", id))
}

// CreateUser creates a user from the given payload.
func (a *UsersAPI) CreateUser(payload UserPayload) (*http.Response, error) {
	return a.client.Post("/users", payload)
}

// CreateValidUser creates a user from randomized fake data and returns
// both the response and the payload that was sent.
func (a *UsersAPI) CreateValidUser() (*http.Response, UserPayload, error) {
	payload := RandomUser()
	resp, err := a.CreateUser(payload)
	return resp, payload, err
}
