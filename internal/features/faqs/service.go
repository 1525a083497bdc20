package faqs

import (
	"fmt"
	"time"

	users_models "teamhub-backend/internal/features/users/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type FaqService struct {
	faqRepository    *FaqRepository
	workspaceService *workspaces_services.WorkspaceService
	revisionTracker  *revisions.Tracker
}

func (s *FaqService) CreateFaq(
	request *CreateFaqRequestDTO,
	user *users_models.User,
) (*Faq, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	faq := &Faq{
		ID:                uuid.New(),
		WorkspaceID:       request.WorkspaceID,
		ChannelID:         request.ChannelID,
		Question:          request.Question,
		Answer:            request.Answer,
		CreatedByMemberID: member.ID,
		IsPinned:          false,
		Upvotes:           0,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	if err := faq.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.faqRepository.Save(faq); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	s.revisionTracker.Bump("faqs", faq.WorkspaceID)

	return faq, nil
}

func (s *FaqService) GetFaqs(
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
	user *users_models.User,
) (*ListFaqsResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListFaqsResponseDTO{Faqs: []*Faq{}}, nil
	}

	faqsList, err := s.faqRepository.FindByWorkspaceID(workspaceID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get faqs: %w", err)
	}

	return &ListFaqsResponseDTO{Faqs: faqsList}, nil
}

// UpdateFaq lets any workspace member edit any faq.
func (s *FaqService) UpdateFaq(
	faqID uuid.UUID,
	request *UpdateFaqRequestDTO,
	user *users_models.User,
) (*Faq, error) {
	faq, err := s.getFaqForMember(faqID, user)
	if err != nil {
		return nil, err
	}

	if request.Question != nil {
		faq.Question = *request.Question
	}
	if request.Answer != nil {
		faq.Answer = *request.Answer
	}
	faq.UpdatedAt = time.Now().UTC()

	if err := faq.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.faqRepository.Save(faq); err != nil {
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	s.revisionTracker.Bump("faqs", faq.WorkspaceID)

	return faq, nil
}

func (s *FaqService) TogglePin(faqID uuid.UUID, user *users_models.User) (*Faq, error) {
	faq, err := s.getFaqForMember(faqID, user)
	if err != nil {
		return nil, err
	}

	faq.IsPinned = !faq.IsPinned
	faq.UpdatedAt = time.Now().UTC()

	if err := s.faqRepository.Save(faq); err != nil {
		return nil, fmt.Errorf("failed to toggle pin: %w", err)
	}

	s.revisionTracker.Bump("faqs", faq.WorkspaceID)

	return faq, nil
}

// Upvote adds exactly one upvote per call, there is no per-member
// deduplication.
func (s *FaqService) Upvote(faqID uuid.UUID, user *users_models.User) (*Faq, error) {
	faq, err := s.getFaqForMember(faqID, user)
	if err != nil {
		return nil, err
	}

	if err := s.faqRepository.IncrementUpvotes(faqID); err != nil {
		return nil, fmt.Errorf("failed to upvote faq: %w", err)
	}

	s.revisionTracker.Bump("faqs", faq.WorkspaceID)

	return s.faqRepository.FindByID(faqID)
}

// DeleteFaq requires membership only, any member may delete any faq.
func (s *FaqService) DeleteFaq(faqID uuid.UUID, user *users_models.User) error {
	faq, err := s.getFaqForMember(faqID, user)
	if err != nil {
		return err
	}

	if err := s.faqRepository.DeleteByID(faqID); err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	s.revisionTracker.Bump("faqs", faq.WorkspaceID)

	return nil
}

func (s *FaqService) getFaqForMember(
	faqID uuid.UUID,
	user *users_models.User,
) (*Faq, error) {
	faq, err := s.faqRepository.FindByID(faqID)
	if err != nil {
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	if faq == nil {
		return nil, apperrors.NotFound("faq not found")
	}

	if _, err := s.workspaceService.RequireMember(user.ID, faq.WorkspaceID); err != nil {
		return nil, err
	}

	return faq, nil
}

func (s *FaqService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.faqRepository.DeleteByWorkspaceID(workspaceID)
}
