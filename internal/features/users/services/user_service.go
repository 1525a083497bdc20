package users_services

import (
	"fmt"
	"time"

	"teamhub-backend/internal/config"
	users_dto "teamhub-backend/internal/features/users/dto"
	users_interfaces "teamhub-backend/internal/features/users/interfaces"
	users_models "teamhub-backend/internal/features/users/models"
	users_repositories "teamhub-backend/internal/features/users/repositories"
	"teamhub-backend/internal/util/apperrors"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return apperrors.AlreadyExists("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                request.Email,
		Name:                 request.Name,
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User registered with email: %s", user.Email),
			&user.ID,
			nil,
		)
	}

	return nil
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apperrors.Unauthenticated("user with this email does not exist")
	}

	if !user.HasPassword() {
		return nil, apperrors.Unauthenticated("account has no password, use OAuth sign in")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, apperrors.Unauthenticated("password is incorrect")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User signed in with email: %s", user.Email),
			&user.ID,
			nil,
		)
	}

	return response, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv().JwtSecret), nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthenticated, "invalid token", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, apperrors.Unauthenticated("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, apperrors.Unauthenticated("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Unauthenticated("user not found")
	}

	// A token issued before the last password change is no longer valid.
	if passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64); ok {
		tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)

		tokenTimeSeconds := tokenPasswordTime.Truncate(time.Second)
		userTimeSeconds := user.PasswordCreationTime.Truncate(time.Second)

		if !tokenTimeSeconds.Equal(userTimeSeconds) {
			return nil, apperrors.Unauthenticated(
				"password has been changed, please sign in again",
			)
		}
	} else {
		return nil, apperrors.Unauthenticated("invalid token claims")
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(
	user *users_models.User,
) (*users_dto.SignInResponseDTO, error) {
	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.GetEnv().JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog("Password changed", &userID, nil)
	}

	return nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetCurrentUserProfile(
	user *users_models.User,
) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func (s *UserService) UpdateProfile(
	userID uuid.UUID,
	request *users_dto.UpdateProfileRequestDTO,
) error {
	if request.Name != nil && *request.Name == "" {
		return apperrors.InvalidArg("name cannot be empty")
	}

	if err := s.userRepository.UpdateUserInfo(userID, request.Name, request.AvatarURL); err != nil {
		return fmt.Errorf("failed to update user info: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog("User profile updated", &userID, nil)
	}

	return nil
}
