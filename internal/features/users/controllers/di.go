package users_controllers

import (
	users_services "teamhub-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	users_services.GetUserService(),
	newIPRateLimiter(rate.Limit(3), 3), // 3 rps with 3 burst per client
}

func GetUserController() *UserController {
	return userController
}
