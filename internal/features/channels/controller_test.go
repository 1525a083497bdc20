package channels

import (
	"net/http"
	"net/http/httptest"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_controllers "teamhub-backend/internal/features/workspaces/controllers"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_CreateChannel_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetChannelController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("ChannelPerms", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	request := CreateChannelRequestDTO{Name: "general"}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)
}

func Test_GetChannels_SortedByCreation_NonMembersGetEmptyList(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetChannelController(),
	)
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("ChannelList", owner, router)

	for _, name := range []string{"general", "random", "announcements"} {
		request := CreateChannelRequestDTO{Name: name}
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
			"Bearer "+owner.Token,
			request,
			http.StatusOK,
		)
	}

	var response ListChannelsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Channels, 3)
	assert.Equal(t, "general", response.Channels[0].Name)
	assert.Equal(t, "announcements", response.Channels[2].Name)

	var outsiderResponse ListChannelsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&outsiderResponse,
	)

	assert.Empty(t, outsiderResponse.Channels)
}

func Test_GetChannels_ETagAllowsNotModifiedPolling(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetChannelController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("ChannelPolling", owner, router)
	url := "/api/v1/workspaces/" + workspace.ID.String() + "/channels"

	first := workspaces_testing.MakeAPIRequest(router, "GET", url, "Bearer "+owner.Token, nil)
	assert.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	assert.NotEmpty(t, etag)

	// unchanged revision answers 304 to a conditional request
	req, err := http.NewRequest("GET", url, nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+owner.Token)
	req.Header.Set("If-None-Match", etag)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)

	// a write bumps the revision and the conditional request hits again
	test_utils.MakePostRequest(
		t,
		router,
		url,
		"Bearer "+owner.Token,
		CreateChannelRequestDTO{Name: "fresh"},
		http.StatusOK,
	)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, etag, w.Header().Get("ETag"))
}

func Test_DeleteChannel_RemovesItFromListing(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetChannelController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("ChannelDelete", owner, router)

	var channel Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		CreateChannelRequestDTO{Name: "ephemeral"},
		http.StatusOK,
		&channel,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/channels/"+channel.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	var response ListChannelsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Channels)
}
