package dto

import (
	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// UserResponse represents the API response for a user account
type UserResponse struct {
	NetID   string `json:"netid"`
	Balance string `json:"balance"`
}

// UserToResponse converts a User entity to its API representation
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		NetID:   user.NetID,
		Balance: user.GetBalance(),
	}
}

// UsersToResponse converts a slice of User entities to API representations
func UsersToResponse(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, UserToResponse(user))
	}
	return responses
}
