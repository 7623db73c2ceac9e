package converter

import (
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:         user.ID,
		Mobile:     user.Mobile,
		Email:      user.Email,
		FullName:   user.FullName,
		Gender:     user.Gender,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return resp
}
