package converter

import (
	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
)

func UserToResponse(user *entity.User) model.UserResponse {
	response := model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
	if user.Phone.Valid {
		response.Phone = user.Phone.String
	}
	if user.Address.Valid {
		response.Address = user.Address.String
	}
	if user.BirthDate.Valid {
		birthDate := user.BirthDate.Time
		response.BirthDate = &birthDate
	}
	return response
}
