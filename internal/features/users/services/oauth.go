package users_services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"teamhub-backend/internal/config"
	users_dto "teamhub-backend/internal/features/users/dto"
	users_models "teamhub-backend/internal/features/users/models"
	"teamhub-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	githubUserAPIURL       = "https://api.github.com/user"
	githubUserEmailsAPIURL = "https://api.github.com/user/emails"
	googleUserInfoAPIURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type githubUserResponse struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmailResponse struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type googleUserResponse struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (s *UserService) HandleGitHubOAuth(
	ctx context.Context,
	request *users_dto.OAuthCallbackRequestDTO,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	return s.handleGitHubOAuthWithEndpoint(
		ctx,
		request,
		endpoints.GitHub,
		githubUserAPIURL,
		githubUserEmailsAPIURL,
	)
}

func (s *UserService) handleGitHubOAuthWithEndpoint(
	ctx context.Context,
	request *users_dto.OAuthCallbackRequestDTO,
	endpoint oauth2.Endpoint,
	userAPIURL string,
	userEmailsAPIURL string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	env := config.GetEnv()
	if env.GitHubClientID == "" || env.GitHubClientSecret == "" {
		return nil, apperrors.FailedPrecondition("GitHub OAuth is not configured")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     env.GitHubClientID,
		ClientSecret: env.GitHubClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  request.RedirectUri,
		Scopes:       []string{"read:user", "user:email"},
	}

	token, err := oauthConfig.Exchange(ctx, request.Code)
	if err != nil {
		return nil, apperrors.Wrap(
			apperrors.CodeUnauthenticated,
			"failed to exchange GitHub authorization code",
			err,
		)
	}

	client := oauthConfig.Client(ctx, token)

	var githubUser githubUserResponse
	if err := fetchJSON(ctx, client, userAPIURL, &githubUser); err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub user: %w", err)
	}

	email := githubUser.Email
	if email == "" {
		var emails []githubEmailResponse
		if err := fetchJSON(ctx, client, userEmailsAPIURL, &emails); err != nil {
			return nil, fmt.Errorf("failed to fetch GitHub user emails: %w", err)
		}

		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}

	if email == "" {
		return nil, apperrors.Unauthenticated("GitHub account has no verified email")
	}

	name := githubUser.Name
	if name == "" {
		name = githubUser.Login
	}

	var avatarURL *string
	if githubUser.AvatarURL != "" {
		avatarURL = &githubUser.AvatarURL
	}

	return s.getOrCreateUserFromOAuth(email, name, avatarURL)
}

func (s *UserService) HandleGoogleOAuth(
	ctx context.Context,
	request *users_dto.OAuthCallbackRequestDTO,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	return s.handleGoogleOAuthWithEndpoint(ctx, request, endpoints.Google, googleUserInfoAPIURL)
}

func (s *UserService) handleGoogleOAuthWithEndpoint(
	ctx context.Context,
	request *users_dto.OAuthCallbackRequestDTO,
	endpoint oauth2.Endpoint,
	userInfoAPIURL string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	env := config.GetEnv()
	if env.GoogleClientID == "" || env.GoogleClientSecret == "" {
		return nil, apperrors.FailedPrecondition("Google OAuth is not configured")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     env.GoogleClientID,
		ClientSecret: env.GoogleClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  request.RedirectUri,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}

	token, err := oauthConfig.Exchange(ctx, request.Code)
	if err != nil {
		return nil, apperrors.Wrap(
			apperrors.CodeUnauthenticated,
			"failed to exchange Google authorization code",
			err,
		)
	}

	client := oauthConfig.Client(ctx, token)

	var googleUser googleUserResponse
	if err := fetchJSON(ctx, client, userInfoAPIURL, &googleUser); err != nil {
		return nil, fmt.Errorf("failed to fetch Google user info: %w", err)
	}

	if googleUser.Email == "" || !googleUser.VerifiedEmail {
		return nil, apperrors.Unauthenticated("Google account has no verified email")
	}

	name := googleUser.Name
	if name == "" {
		name = googleUser.Email
	}

	var avatarURL *string
	if googleUser.Picture != "" {
		avatarURL = &googleUser.Picture
	}

	return s.getOrCreateUserFromOAuth(googleUser.Email, name, avatarURL)
}

func (s *UserService) getOrCreateUserFromOAuth(
	email string,
	name string,
	avatarURL *string,
) (*users_dto.OAuthCallbackResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	isNewUser := false

	if user == nil {
		user = &users_models.User{
			ID:                   uuid.New(),
			Email:                email,
			Name:                 name,
			AvatarURL:            avatarURL,
			PasswordCreationTime: time.Now().UTC(),
			CreatedAt:            time.Now().UTC(),
		}

		if err := s.userRepository.CreateUser(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		isNewUser = true

		if s.auditLogWriter != nil {
			s.auditLogWriter.WriteAuditLog(
				fmt.Sprintf("User registered via OAuth with email: %s", user.Email),
				&user.ID,
				nil,
			)
		}
	}

	tokenResponse, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &users_dto.OAuthCallbackResponseDTO{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     tokenResponse.Token,
		IsNewUser: isNewUser,
	}, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
