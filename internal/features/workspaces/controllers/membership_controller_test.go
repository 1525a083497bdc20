package workspaces_controllers

import (
	"net/http"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_dto "teamhub-backend/internal/features/workspaces/dto"
	workspaces_enums "teamhub-backend/internal/features/workspaces/enums"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetMembers_AsNonMember_ReturnsEmptyList(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Hidden", owner, router)

	var response workspaces_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Members)
}

func Test_ChangeMemberRole_PromotesAndDemotes(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Roles", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	request := workspaces_dto.ChangeMemberRoleRequestDTO{Role: workspaces_enums.MemberRoleAdmin}
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+memberRow.ID.String()+"/role",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
	)

	updated := workspaces_testing.GetMemberRow(member.UserID, workspace.ID)
	assert.Equal(t, workspaces_enums.MemberRoleAdmin, updated.Role)
}

func Test_ChangeMemberRole_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("NoEscalation", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	request := workspaces_dto.ChangeMemberRoleRequestDTO{Role: workspaces_enums.MemberRoleAdmin}
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+memberRow.ID.String()+"/role",
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)
}

func Test_RemoveMember_CannotRemoveWorkspaceOwner(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("OwnerSafe", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	// promote the second member so they can attempt the removal
	request := workspaces_dto.ChangeMemberRoleRequestDTO{Role: workspaces_enums.MemberRoleAdmin}
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+memberRow.ID.String()+"/role",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
	)

	ownerRow := workspaces_testing.GetMemberRow(owner.UserID, workspace.ID)
	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+ownerRow.ID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "owner")
}

func Test_Leave_RemovesOwnMembership(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Leavers", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/leave",
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)

	members := workspaces_testing.GetWorkspaceMembers(workspace.ID, owner.Token, router)
	assert.Len(t, members.Members, 1)
}

func Test_Leave_AsOwner_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Anchored", owner, router)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/leave",
		"Bearer "+owner.Token,
		nil,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "owner cannot leave")
}

func Test_Leave_AsLastAdmin_ReturnsConflict(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("AdminExodus", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+memberRow.ID.String()+"/role",
		"Bearer "+owner.Token,
		workspaces_dto.ChangeMemberRoleRequestDTO{Role: workspaces_enums.MemberRoleAdmin},
		http.StatusOK,
	)

	// the new admin demotes the owner, becoming the only admin left
	ownerRow := workspaces_testing.GetMemberRow(owner.UserID, workspace.ID)
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+ownerRow.ID.String()+"/role",
		"Bearer "+member.Token,
		workspaces_dto.ChangeMemberRoleRequestDTO{Role: workspaces_enums.MemberRoleMember},
		http.StatusOK,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/leave",
		"Bearer "+member.Token,
		nil,
		http.StatusConflict,
	)
	assert.Contains(t, string(resp.Body), "last admin")
}
