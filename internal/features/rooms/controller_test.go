package rooms

import (
	"net/http"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_controllers "teamhub-backend/internal/features/workspaces/controllers"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateRoom_CreatorBecomesRoomAdmin(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomCreation", owner, router)

	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{
			WorkspaceID: workspace.ID,
			Name:        "Architecture",
			Topic:       "design",
		},
		http.StatusOK,
		&room,
	)

	var members ListRoomMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&members,
	)

	require.Len(t, members.Members, 1)
	assert.Equal(t, RoomRoleAdmin, members.Members[0].Role)
	assert.False(t, members.Members[0].IsMuted)
}

func Test_JoinRoom_TwiceReturnsConflict(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomJoining", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "General", Topic: "chat"},
		http.StatusOK,
		&room,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/join",
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)

	response := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/join",
		"Bearer "+member.Token,
		nil,
		http.StatusConflict,
	)
	assert.Contains(t, string(response.Body), "already a member")
}

func Test_JoinRoom_AtCapacityReturnsConflict(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	second := users_testing.CreateTestUser()
	third := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomCapacity", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, second, router)
	workspaces_testing.AddMemberToWorkspace(workspace, third, router)

	maxMembers := 2
	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{
			WorkspaceID: workspace.ID,
			Name:        "Small",
			Topic:       "standup",
			MaxMembers:  &maxMembers,
		},
		http.StatusOK,
		&room,
	)

	// the creator already holds one of the two seats
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/join",
		"Bearer "+second.Token,
		nil,
		http.StatusOK,
	)

	response := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/join",
		"Bearer "+third.Token,
		nil,
		http.StatusConflict,
	)
	assert.Contains(t, string(response.Body), "room is full")
}

func Test_GetRooms_PrivateRoomHiddenFromNonMembers(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomVisibility", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "Open", Topic: "chat"},
		http.StatusOK,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{
			WorkspaceID: workspace.ID,
			Name:        "Leads only",
			Topic:       "planning",
			IsPrivate:   true,
		},
		http.StatusOK,
	)

	var forMember ListRoomsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/rooms",
		"Bearer "+member.Token,
		http.StatusOK,
		&forMember,
	)

	require.Len(t, forMember.Rooms, 1)
	assert.Equal(t, "Open", forMember.Rooms[0].Name)
	assert.False(t, forMember.Rooms[0].IsMember)
	assert.False(t, forMember.Rooms[0].IsMuted)
	assert.Nil(t, forMember.Rooms[0].UserRole)

	var forCreator ListRoomsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/rooms",
		"Bearer "+owner.Token,
		http.StatusOK,
		&forCreator,
	)

	require.Len(t, forCreator.Rooms, 2)
	for _, room := range forCreator.Rooms {
		assert.True(t, room.IsMember)
		assert.Equal(t, 1, room.MemberCount)
		require.NotNil(t, room.UserRole)
		assert.Equal(t, RoomRoleAdmin, *room.UserRole)
	}
}

func Test_RoomMessages_RepliesCountedAndListedSeparately(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomThreads", owner, router)

	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "Debate", Topic: "api"},
		http.StatusOK,
		&room,
	)

	sendMessage := func(body string, parentID *uuid.UUID) RoomMessage {
		var message RoomMessage
		test_utils.MakePostRequestAndUnmarshal(
			t,
			router,
			"/api/v1/rooms/"+room.ID.String()+"/messages",
			"Bearer "+owner.Token,
			SendRoomMessageRequestDTO{Body: body, ParentMessageID: parentID},
			http.StatusOK,
			&message,
		)
		return message
	}

	parent := sendMessage("should we version the api?", nil)
	sendMessage("yes, in the path", &parent.ID)
	sendMessage("headers are cleaner", &parent.ID)

	var topLevel ListRoomMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages",
		"Bearer "+owner.Token,
		http.StatusOK,
		&topLevel,
	)

	require.Len(t, topLevel.Messages, 1)
	assert.Equal(t, parent.ID, topLevel.Messages[0].ID)
	assert.Equal(t, 2, topLevel.Messages[0].ReplyCount)

	var thread ListRoomMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages?parentMessageId="+parent.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
		&thread,
	)

	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "yes, in the path", thread.Messages[0].Body)
	assert.Equal(t, "headers are cleaner", thread.Messages[1].Body)
}

func Test_DeleteRoom_RequiresWorkspaceAdmin(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomDeletion", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	// the plain member creates the room, which makes them its room admin
	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+member.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "Temp", Topic: "misc"},
		http.StatusOK,
		&room,
	)

	// room admin or not, a plain workspace member cannot delete
	response := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, string(response.Body), "admin role required")

	// the workspace owner never joined the room and can still delete
	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	var rooms ListRoomsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/rooms",
		"Bearer "+owner.Token,
		http.StatusOK,
		&rooms,
	)
	assert.Empty(t, rooms.Rooms)
}

func Test_GetRoomMessages_NonRoomMemberGetsEmptyList(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomReads", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, outsider, router)

	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "Reading", Topic: "chat"},
		http.StatusOK,
		&room,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages",
		"Bearer "+owner.Token,
		SendRoomMessageRequestDTO{Body: "members only"},
		http.StatusOK,
	)

	// a workspace member outside the room reads an empty list, not an error
	var messages ListRoomMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&messages,
	)
	assert.Empty(t, messages.Messages)

	var members ListRoomMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/members",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&members,
	)
	assert.Empty(t, members.Members)

	// a missing room reads the same way
	var missing ListRoomMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+uuid.New().String()+"/messages",
		"Bearer "+outsider.Token,
		http.StatusOK,
		&missing,
	)
	assert.Empty(t, missing.Messages)
}

func Test_RemoveWorkspaceMember_CascadesRoomSeatKeepsMessages(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetRoomController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("RoomCascade", owner, router)
	membership := workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var room DiscussionRoom
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms",
		"Bearer "+owner.Token,
		CreateRoomRequestDTO{WorkspaceID: workspace.ID, Name: "History", Topic: "chat"},
		http.StatusOK,
		&room,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/join",
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages",
		"Bearer "+member.Token,
		SendRoomMessageRequestDTO{Body: "for the record"},
		http.StatusOK,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+membership.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	// the seat is gone but the message stays, with no resolvable author
	var members ListRoomMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&members,
	)
	require.Len(t, members.Members, 1)

	var messages ListRoomMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/rooms/"+room.ID.String()+"/messages",
		"Bearer "+owner.Token,
		http.StatusOK,
		&messages,
	)
	require.Len(t, messages.Messages, 1)
	assert.Equal(t, "for the record", messages.Messages[0].Body)
	assert.Nil(t, messages.Messages[0].AuthorName)
}
