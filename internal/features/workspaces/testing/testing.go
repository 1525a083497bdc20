package workspaces_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	users_dto "teamhub-backend/internal/features/users/dto"
	users_middleware "teamhub-backend/internal/features/users/middleware"
	users_services "teamhub-backend/internal/features/users/services"
	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_models "teamhub-backend/internal/features/workspaces/models"
	workspaces_repositories "teamhub-backend/internal/features/workspaces/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestWorkspace(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *workspaces_dto.WorkspaceResponseDTO {
	request := workspaces_dto.CreateWorkspaceRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/workspaces", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(
			fmt.Sprintf(
				"Failed to create workspace. Status: %d, Body: %s",
				w.Code,
				w.Body.String(),
			),
		)
	}

	var response workspaces_dto.WorkspaceResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

// AddMemberToWorkspace joins a user into a workspace via its join code
// and returns the created member row.
func AddMemberToWorkspace(
	workspace *workspaces_dto.WorkspaceResponseDTO,
	member *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *workspaces_models.Member {
	if workspace.JoinCode == nil {
		panic("workspace join code is not available")
	}

	request := workspaces_dto.JoinWorkspaceRequestDTO{JoinCode: *workspace.JoinCode}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/workspaces/join",
		"Bearer "+member.Token,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to join workspace via API: " + w.Body.String())
	}

	return GetMemberRow(member.UserID, workspace.ID)
}

func GetMemberRow(userID, workspaceID uuid.UUID) *workspaces_models.Member {
	memberRepo := &workspaces_repositories.MemberRepository{}

	member, err := memberRepo.GetMemberByUserAndWorkspace(userID, workspaceID)
	if err != nil {
		panic("Failed to get member row: " + err.Error())
	}

	if member == nil {
		panic("No member row found")
	}

	return member
}

func GetWorkspaceMembers(
	workspaceID uuid.UUID,
	requesterToken string,
	router *gin.Engine,
) *workspaces_dto.GetMembersResponseDTO {
	w := MakeAPIRequest(
		router,
		"GET",
		"/api/v1/workspaces/"+workspaceID.String()+"/members",
		"Bearer "+requesterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to get workspace members via API: " + w.Body.String())
	}

	var response workspaces_dto.GetMembersResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func DeleteWorkspace(
	workspaceID uuid.UUID,
	deleterToken string,
	router *gin.Engine,
) {
	w := MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/workspaces/"+workspaceID.String(),
		"Bearer "+deleterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to delete workspace via API: " + w.Body.String())
	}
}

func MakeAPIRequest(
	router *gin.Engine,
	method, url, authToken string,
	body any,
) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
