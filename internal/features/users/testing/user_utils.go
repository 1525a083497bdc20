package users_testing

import (
	"fmt"

	users_dto "teamhub-backend/internal/features/users/dto"
	users_services "teamhub-backend/internal/features/users/services"

	"github.com/google/uuid"
)

const testUserPassword = "Test123456!"

// CreateTestUser registers a fresh user and returns its credentials
// with a signed access token.
func CreateTestUser() *users_dto.SignInResponseDTO {
	userService := users_services.GetUserService()

	email := fmt.Sprintf("test-%s@example.com", uuid.New().String())

	err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: testUserPassword,
		Name:     "Test User",
	})
	if err != nil {
		panic(err)
	}

	response, err := userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: testUserPassword,
	})
	if err != nil {
		panic(err)
	}

	return response
}
