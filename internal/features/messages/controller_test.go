package messages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teamhub-backend/internal/features/channels"
	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_controllers "teamhub-backend/internal/features/workspaces/controllers"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SendMessage_ToChannel_AppearsInChronologicalOrder(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		channels.GetChannelController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Messaging", owner, router)

	var channel channels.Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		channels.CreateChannelRequestDTO{Name: "general"},
		http.StatusOK,
		&channel,
	)

	for _, body := range []string{"first", "second", "third"} {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/messages",
			"Bearer "+owner.Token,
			SendMessageRequestDTO{Body: body, ChannelID: &channel.ID},
			http.StatusOK,
		)
	}

	var response ListMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/channels/"+channel.ID.String()+"/messages",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Messages, 3)
	assert.Equal(t, "first", response.Messages[0].Body)
	assert.Equal(t, "third", response.Messages[2].Body)
}

func Test_ThreadReplies_CountedOnParentAndExcludedFromTopLevel(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		channels.GetChannelController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Threads", owner, router)

	var channel channels.Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		channels.CreateChannelRequestDTO{Name: "general"},
		http.StatusOK,
		&channel,
	)

	var parent Message
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/messages",
		"Bearer "+owner.Token,
		SendMessageRequestDTO{Body: "root", ChannelID: &channel.ID},
		http.StatusOK,
		&parent,
	)

	for _, body := range []string{"reply one", "reply two"} {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/messages",
			"Bearer "+owner.Token,
			SendMessageRequestDTO{Body: body, ParentMessageID: &parent.ID},
			http.StatusOK,
		)
	}

	var topLevel ListMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/channels/"+channel.ID.String()+"/messages",
		"Bearer "+owner.Token,
		http.StatusOK,
		&topLevel,
	)

	require.Len(t, topLevel.Messages, 1)
	assert.Equal(t, int64(2), topLevel.Messages[0].ReplyCount)

	var thread ListMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/messages/"+parent.ID.String()+"/thread",
		"Bearer "+owner.Token,
		http.StatusOK,
		&thread,
	)

	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "reply one", thread.Messages[0].Body)
}

func Test_SendMessage_WithBothChannelAndConversation_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		channels.GetChannelController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("ExactlyOne", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var channel channels.Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		channels.CreateChannelRequestDTO{Name: "general"},
		http.StatusOK,
		&channel,
	)

	var conversation Conversation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/conversations",
		"Bearer "+owner.Token,
		CreateConversationRequestDTO{WorkspaceID: workspace.ID, MemberID: memberRow.ID},
		http.StatusOK,
		&conversation,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/messages",
		"Bearer "+owner.Token,
		SendMessageRequestDTO{
			Body:           "lost",
			ChannelID:      &channel.ID,
			ConversationID: &conversation.ID,
		},
		http.StatusBadRequest,
	)
}

func Test_UpdateMessage_ByOtherMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		channels.GetChannelController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Editing", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var channel channels.Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		channels.CreateChannelRequestDTO{Name: "general"},
		http.StatusOK,
		&channel,
	)

	var message Message
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/messages",
		"Bearer "+owner.Token,
		SendMessageRequestDTO{Body: "original", ChannelID: &channel.ID},
		http.StatusOK,
		&message,
	)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/messages/"+message.ID.String(),
		"Bearer "+member.Token,
		UpdateMessageRequestDTO{Body: "hijacked"},
		http.StatusForbidden,
	)
}

func Test_CreateConversation_IsIdempotentPerMemberPair(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("DMs", owner, router)
	memberRow := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	request := CreateConversationRequestDTO{WorkspaceID: workspace.ID, MemberID: memberRow.ID}

	var first Conversation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/conversations",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&first,
	)

	var second Conversation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/conversations",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&second,
	)

	assert.Equal(t, first.ID, second.ID)
}

func Test_GetChannelMessages_ETagAllowsNotModifiedPolling(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		channels.GetChannelController(),
		GetMessageController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("MessagePolling", owner, router)

	var channel channels.Channel
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/channels",
		"Bearer "+owner.Token,
		channels.CreateChannelRequestDTO{Name: "general"},
		http.StatusOK,
		&channel,
	)

	url := "/api/v1/channels/" + channel.ID.String() + "/messages"

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

	// a new message bumps the revision and the conditional request hits again
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/messages",
		"Bearer "+owner.Token,
		SendMessageRequestDTO{Body: "fresh", ChannelID: &channel.ID},
		http.StatusOK,
	)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, etag, w.Header().Get("ETag"))
}
