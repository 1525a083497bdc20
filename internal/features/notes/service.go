package notes

import (
	"fmt"
	"time"

	users_models "teamhub-backend/internal/features/users/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type NoteService struct {
	noteRepository   *NoteRepository
	workspaceService *workspaces_services.WorkspaceService
	revisionTracker  *revisions.Tracker
}

func (s *NoteService) CreateNote(
	request *CreateNoteRequestDTO,
	user *users_models.User,
) (*Note, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	note := &Note{
		ID:                uuid.New(),
		WorkspaceID:       request.WorkspaceID,
		ChannelID:         request.ChannelID,
		Title:             request.Title,
		Content:           request.Content,
		CreatedByMemberID: member.ID,
		IsPinned:          false,
		Tags:              request.Tags,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	if err := note.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.noteRepository.Save(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.revisionTracker.Bump("notes", note.WorkspaceID)

	return note, nil
}

func (s *NoteService) GetNotes(
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
	user *users_models.User,
) (*ListNotesResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListNotesResponseDTO{Notes: []*Note{}}, nil
	}

	notesList, err := s.noteRepository.FindByWorkspaceID(workspaceID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return &ListNotesResponseDTO{Notes: notesList}, nil
}

func (s *NoteService) UpdateNote(
	noteID uuid.UUID,
	request *UpdateNoteRequestDTO,
	user *users_models.User,
) (*Note, error) {
	note, err := s.getNoteForMember(noteID, user)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		note.Title = *request.Title
	}
	if request.Content != nil {
		note.Content = *request.Content
	}
	if request.Tags != nil {
		note.Tags = *request.Tags
	}
	note.UpdatedAt = time.Now().UTC()

	if err := note.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.noteRepository.Save(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	s.revisionTracker.Bump("notes", note.WorkspaceID)

	return note, nil
}

func (s *NoteService) TogglePin(noteID uuid.UUID, user *users_models.User) (*Note, error) {
	note, err := s.getNoteForMember(noteID, user)
	if err != nil {
		return nil, err
	}

	note.IsPinned = !note.IsPinned
	note.UpdatedAt = time.Now().UTC()

	if err := s.noteRepository.Save(note); err != nil {
		return nil, fmt.Errorf("failed to toggle pin: %w", err)
	}

	s.revisionTracker.Bump("notes", note.WorkspaceID)

	return note, nil
}

// DeleteNote is restricted to the note's creator or a workspace admin.
func (s *NoteService) DeleteNote(noteID uuid.UUID, user *users_models.User) error {
	note, err := s.noteRepository.FindByID(noteID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	if note == nil {
		return apperrors.NotFound("note not found")
	}

	member, err := s.workspaceService.RequireMember(user.ID, note.WorkspaceID)
	if err != nil {
		return err
	}

	if err := s.workspaceService.RequireOwnerOrAdmin(member, note.CreatedByMemberID); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteByID(noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.revisionTracker.Bump("notes", note.WorkspaceID)

	return nil
}

func (s *NoteService) getNoteForMember(
	noteID uuid.UUID,
	user *users_models.User,
) (*Note, error) {
	note, err := s.noteRepository.FindByID(noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	if note == nil {
		return nil, apperrors.NotFound("note not found")
	}

	if _, err := s.workspaceService.RequireMember(user.ID, note.WorkspaceID); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.noteRepository.DeleteByWorkspaceID(workspaceID)
}
