package service

import (
	"context"
	"strings"
	"testing"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentServiceForTest() (IDocumentService, *fakeUnitOfWork, *fakeStorageDriver) {
	uow := newFakeUnitOfWork()
	driver := &fakeStorageDriver{}
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, driver, nil, nil)
	return svc, uow, driver
}

func TestUploadRejectsUnsupportedTypeBeforeStorage(t *testing.T) {
	svc, uow, driver := newDocumentServiceForTest()

	_, err := svc.Upload(context.Background(), uuid.New(), "documento_identidade",
		strings.NewReader("GIF89a"), "image/gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	// rejection happens before anything touches the object store
	assert.Empty(t, driver.uploads)
	assert.Empty(t, uow.documentRepo.docs)
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	svc, uow, driver := newDocumentServiceForTest()

	_, err := svc.Upload(context.Background(), uuid.New(), "comprovante_endereco",
		strings.NewReader("%PDF"), "application/pdf")
	require.EqualError(t, err, "unknown document kind")
	assert.Empty(t, driver.uploads)
	assert.Empty(t, uow.documentRepo.docs)
}

func TestUploadStoresDocumentPending(t *testing.T) {
	svc, uow, driver := newDocumentServiceForTest()
	userId := uuid.New()

	res, err := svc.Upload(context.Background(), userId, "selfie_documento",
		strings.NewReader("\x89PNG"), "image/png")
	require.NoError(t, err)

	require.Len(t, driver.uploads, 1)
	assert.True(t, strings.HasPrefix(driver.uploads[0], "documentos/"+userId.String()+"/"))
	assert.True(t, strings.HasSuffix(driver.uploads[0], ".png"))

	doc := uow.documentRepo.docs[res.Id]
	require.NotNil(t, doc)
	assert.Equal(t, entity.DocumentKindSelfie, doc.Kind)
	assert.Equal(t, entity.DocumentStatusPending, doc.Status)
	assert.Equal(t, res.FileURL, doc.StoragePath)
}

func TestReviewApprovingBothKindsCompletesProfile(t *testing.T) {
	svc, uow, _ := newDocumentServiceForTest()
	userId := uuid.New()
	uow.profileRepo.profiles[userId] = &entity.Profile{Id: userId, Email: "t@example.com", Name: "Trader"}

	identity := &entity.UserDocument{
		Id:     uuid.New(),
		UserId: userId,
		Kind:   entity.DocumentKindIdentity,
		Status: entity.DocumentStatusApproved,
	}
	selfie := &entity.UserDocument{
		Id:     uuid.New(),
		UserId: userId,
		Kind:   entity.DocumentKindSelfie,
		Status: entity.DocumentStatusPending,
	}
	uow.documentRepo.docs[identity.Id] = identity
	uow.documentRepo.docs[selfie.Id] = selfie

	res, err := svc.Review(context.Background(), uuid.New(), &dto.ReviewDocumentRequest{
		Id:     selfie.Id,
		Status: "aprovado",
	})
	require.NoError(t, err)
	assert.Equal(t, "aprovado", res.Status)
	assert.True(t, uow.profileRepo.profiles[userId].DocumentsComplete)
}
