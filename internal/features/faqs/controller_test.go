package faqs

import (
	"net/http"
	"testing"

	users_testing "teamhub-backend/internal/features/users/testing"
	workspaces_controllers "teamhub-backend/internal/features/workspaces/controllers"
	workspaces_testing "teamhub-backend/internal/features/workspaces/testing"
	test_utils "teamhub-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateFaq_StartsUnpinnedWithZeroUpvotes(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetFaqController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("FaqDefaults", owner, router)

	var faq Faq
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/faqs",
		"Bearer "+owner.Token,
		CreateFaqRequestDTO{
			WorkspaceID: workspace.ID,
			Question:    "How do I reset my password?",
			Answer:      "Use the profile settings page.",
		},
		http.StatusOK,
		&faq,
	)

	assert.False(t, faq.IsPinned)
	assert.Equal(t, 0, faq.Upvotes)
}

func Test_Upvote_AddsExactlyOnePerCall(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetFaqController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("FaqVoting", owner, router)

	var faq Faq
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/faqs",
		"Bearer "+owner.Token,
		CreateFaqRequestDTO{
			WorkspaceID: workspace.ID,
			Question:    "Popular?",
			Answer:      "Yes.",
		},
		http.StatusOK,
		&faq,
	)

	// repeat votes from the same member keep counting, there is no dedup
	var voted Faq
	for i := 0; i < 3; i++ {
		test_utils.MakePostRequestAndUnmarshal(
			t,
			router,
			"/api/v1/faqs/"+faq.ID.String()+"/upvote",
			"Bearer "+owner.Token,
			nil,
			http.StatusOK,
			&voted,
		)
	}

	assert.Equal(t, 3, voted.Upvotes)
}

func Test_GetFaqs_PinnedFirstThenMostUpvoted(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetFaqController(),
	)
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("FaqOrdering", owner, router)

	createFaq := func(question string) Faq {
		var faq Faq
		test_utils.MakePostRequestAndUnmarshal(
			t,
			router,
			"/api/v1/faqs",
			"Bearer "+owner.Token,
			CreateFaqRequestDTO{WorkspaceID: workspace.ID, Question: question, Answer: "a"},
			http.StatusOK,
			&faq,
		)
		return faq
	}
	upvote := func(faq Faq, times int) {
		for i := 0; i < times; i++ {
			test_utils.MakePostRequest(
				t,
				router,
				"/api/v1/faqs/"+faq.ID.String()+"/upvote",
				"Bearer "+owner.Token,
				nil,
				http.StatusOK,
			)
		}
	}

	popular := createFaq("popular unpinned")
	pinnedQuiet := createFaq("pinned but quiet")
	niche := createFaq("niche")

	upvote(popular, 5)
	upvote(niche, 2)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/faqs/"+pinnedQuiet.ID.String()+"/pin",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
	)

	var response ListFaqsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/faqs",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Faqs, 3)
	assert.Equal(t, "pinned but quiet", response.Faqs[0].Question)
	assert.Equal(t, "popular unpinned", response.Faqs[1].Question)
	assert.Equal(t, "niche", response.Faqs[2].Question)
}

func Test_DeleteFaq_AnyMemberAllowed(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetFaqController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("FaqDeletion", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace, member, router)

	var faq Faq
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/faqs",
		"Bearer "+owner.Token,
		CreateFaqRequestDTO{WorkspaceID: workspace.ID, Question: "q", Answer: "a"},
		http.StatusOK,
		&faq,
	)

	// members other than the author may remove entries
	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/faqs/"+faq.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
	)

	var response ListFaqsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/faqs",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Faqs)
}
