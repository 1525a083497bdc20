package documents

import (
	"context"
	"fmt"
	"time"

	audit_logs "teamhub-backend/internal/features/audit_logs"
	"teamhub-backend/internal/features/storages"
	users_models "teamhub-backend/internal/features/users/models"
	workspaces_services "teamhub-backend/internal/features/workspaces/services"
	"teamhub-backend/internal/util/apperrors"
	"teamhub-backend/internal/util/revisions"

	"github.com/google/uuid"
)

type DocumentService struct {
	documentRepository *DocumentRepository
	workspaceService   *workspaces_services.WorkspaceService
	fileService        *storages.FileService
	auditLogService    *audit_logs.AuditLogService
	revisionTracker    *revisions.Tracker
}

func (s *DocumentService) CreateDocument(
	ctx context.Context,
	request *CreateDocumentRequestDTO,
	user *users_models.User,
) (*Document, error) {
	member, err := s.workspaceService.RequireMember(user.ID, request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	// The file id must point at an already uploaded blob.
	if err := s.fileService.StatFile(ctx, request.FileID); err != nil {
		return nil, apperrors.InvalidArg("file id does not reference an uploaded file")
	}

	document := &Document{
		ID:                 uuid.New(),
		WorkspaceID:        request.WorkspaceID,
		ChannelID:          request.ChannelID,
		Name:               request.Name,
		FileID:             request.FileID,
		FileType:           request.FileType,
		FileSize:           request.FileSize,
		UploadedByMemberID: member.ID,
		Description:        request.Description,
		Tags:               request.Tags,
		CreatedAt:          time.Now().UTC(),
	}

	if err := document.Validate(); err != nil {
		return nil, apperrors.InvalidArg(err.Error())
	}

	if err := s.documentRepository.Save(document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.revisionTracker.Bump("documents", document.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Document uploaded: %s", document.Name),
		&user.ID,
		&document.WorkspaceID,
	)

	return document, nil
}

// GetDocuments annotates each document with a time limited download URL.
func (s *DocumentService) GetDocuments(
	ctx context.Context,
	workspaceID uuid.UUID,
	channelID *uuid.UUID,
	user *users_models.User,
) (*ListDocumentsResponseDTO, error) {
	member, err := s.workspaceService.ResolveMember(user.ID, workspaceID)
	if err != nil {
		return nil, err
	}

	if member == nil {
		return &ListDocumentsResponseDTO{Documents: []*Document{}}, nil
	}

	documentsList, err := s.documentRepository.FindByWorkspaceID(workspaceID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	for _, document := range documentsList {
		url, err := s.fileService.GetDownloadURL(ctx, document.FileID, document.Name)
		if err != nil {
			continue
		}
		document.DownloadURL = url
	}

	return &ListDocumentsResponseDTO{Documents: documentsList}, nil
}

// DeleteDocument removes the blob before the row so a failed blob delete
// never leaves an unreachable orphan on disk.
func (s *DocumentService) DeleteDocument(
	ctx context.Context,
	documentID uuid.UUID,
	user *users_models.User,
) error {
	document, err := s.documentRepository.FindByID(documentID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if document == nil {
		return apperrors.NotFound("document not found")
	}

	member, err := s.workspaceService.RequireMember(user.ID, document.WorkspaceID)
	if err != nil {
		return err
	}

	if err := s.workspaceService.RequireOwnerOrAdmin(member, document.UploadedByMemberID); err != nil {
		return err
	}

	if err := s.fileService.DeleteFile(ctx, document.FileID); err != nil {
		return fmt.Errorf("failed to delete document file: %w", err)
	}

	if err := s.documentRepository.DeleteByID(documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.revisionTracker.Bump("documents", document.WorkspaceID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Document deleted: %s", document.Name),
		&user.ID,
		&document.WorkspaceID,
	)

	return nil
}

func (s *DocumentService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	documentsList, err := s.documentRepository.FindByWorkspaceID(workspaceID, nil)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	ctx := context.Background()
	for _, document := range documentsList {
		_ = s.fileService.DeleteFile(ctx, document.FileID)
	}

	return s.documentRepository.DeleteByWorkspaceID(workspaceID)
}
