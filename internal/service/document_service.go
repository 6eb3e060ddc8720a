package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/audit"
	"traderhub-be/pkg/storage"

	"github.com/google/uuid"
)

// allowedDocumentTypes is checked before anything reaches the object store.
var allowedDocumentTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"application/pdf": "pdf",
}

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, kind string, file io.Reader, contentType string) (*dto.UploadDocumentResponse, error)
	ListUserDocuments(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error)
	Review(ctx context.Context, adminId uuid.UUID, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error)
	View(ctx context.Context, callerId uuid.UUID, isAdmin bool, documentId uuid.UUID) (*dto.AttachmentResponse, error)
	Delete(ctx context.Context, callerId uuid.UUID, isAdmin bool, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory    unitofwork.RepositoryFactory
	storageDriver storage.Driver
	resolver      *storage.Resolver
	auditRecorder *audit.Recorder
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	storageDriver storage.Driver,
	resolver *storage.Resolver,
	auditRecorder *audit.Recorder,
) IDocumentService {
	return &documentService{
		uowFactory:    uowFactory,
		storageDriver: storageDriver,
		resolver:      resolver,
		auditRecorder: auditRecorder,
	}
}

func toDocumentResponse(d *entity.UserDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:        d.Id,
		UserId:    d.UserId,
		Kind:      string(d.Kind),
		FileURL:   d.StoragePath,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, kind string, file io.Reader, contentType string) (*dto.UploadDocumentResponse, error) {
	documentKind := entity.DocumentKind(kind)
	if documentKind != entity.DocumentKindIdentity && documentKind != entity.DocumentKindSelfie {
		return nil, errors.New("unknown document kind")
	}

	ext, ok := allowedDocumentTypes[contentType]
	if !ok {
		return nil, errors.New("unsupported file type: documents must be jpeg, png, webp or pdf")
	}

	path := fmt.Sprintf("documentos/%s/%s-%s.%s", userId, kind, uuid.New(), ext)
	storedPath, err := s.storageDriver.Upload(ctx, file, path, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &entity.UserDocument{
		Id:          uuid.New(),
		UserId:      userId,
		Kind:        documentKind,
		StoragePath: storedPath,
		Status:      entity.DocumentStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogDocumentUpload(userId, doc.Id, kind)
	}

	return &dto.UploadDocumentResponse{Id: doc.Id, FileURL: storedPath}, nil
}

func (s *documentService) ListUserDocuments(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = toDocumentResponse(d)
	}
	return res, nil
}

// hasApprovedKind reports whether any document of the kind is approved.
func hasApprovedKind(docs []*entity.UserDocument, kind entity.DocumentKind) bool {
	for _, d := range docs {
		if d.Kind == kind && d.Status == entity.DocumentStatusApproved {
			return true
		}
	}
	return false
}

func (s *documentService) Review(ctx context.Context, adminId uuid.UUID, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document not found")
	}

	doc.Status = entity.DocumentStatus(req.Status)
	doc.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	// Approving the second kind completes the trader's verification.
	docs, err := uow.DocumentRepository().FindAll(ctx, specification.ByUserID{UserID: doc.UserId})
	if err != nil {
		return nil, err
	}
	complete := hasApprovedKind(docs, entity.DocumentKindIdentity) && hasApprovedKind(docs, entity.DocumentKindSelfie)
	if err := uow.ProfileRepository().SetDocumentsComplete(ctx, doc.UserId, complete); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.auditRecorder != nil {
		s.auditRecorder.LogDocumentReview(adminId, doc.Id, req.Status)
	}

	return toDocumentResponse(doc), nil
}

func (s *documentService) View(ctx context.Context, callerId uuid.UUID, isAdmin bool, documentId uuid.UUID) (*dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil || (!isAdmin && doc.UserId != callerId) {
		return nil, errors.New("document not found")
	}

	resolution := s.resolver.Resolve(ctx, doc.StoragePath)
	return &dto.AttachmentResponse{
		Kind:      resolution.Kind,
		URL:       resolution.URL,
		Available: resolution.Available,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, callerId uuid.UUID, isAdmin bool, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil || (!isAdmin && doc.UserId != callerId) {
		return errors.New("document not found")
	}

	if err := uow.DocumentRepository().Delete(ctx, documentId); err != nil {
		return err
	}

	// Removing the stored object is best-effort; a dangling object is
	// preferable to a row pointing nowhere.
	if err := s.storageDriver.Delete(ctx, storage.NormalizePath(doc.StoragePath)); err != nil {
		fmt.Printf("Warning: failed to delete stored object %s: %v\n", doc.StoragePath, err)
	}
	return nil
}
