package service

import (
	"context"
	"io"
	"time"

	"traderhub-be/internal/entity"
	"traderhub-be/internal/repository/contract"
	"traderhub-be/internal/repository/specification"
	"traderhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// specID digs the ByID filter out of a spec list.
func specID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			return byId.ID, true
		}
	}
	return uuid.Nil, false
}

type fakeRequestRepo struct {
	requests map[uuid.UUID]*entity.ServiceRequest
	updated  []*entity.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[uuid.UUID]*entity.ServiceRequest{}}
}

func (r *fakeRequestRepo) Create(_ context.Context, req *entity.ServiceRequest) error {
	r.requests[req.Id] = req
	return nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req *entity.ServiceRequest) error {
	r.requests[req.Id] = req
	r.updated = append(r.updated, req)
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	if id, ok := specID(specs); ok {
		return r.requests[id], nil
	}
	return nil, nil
}

func (r *fakeRequestRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ServiceRequest, error) {
	all := make([]*entity.ServiceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		all = append(all, req)
	}
	return all, nil
}

func (r *fakeRequestRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.requests)), nil
}

func (r *fakeRequestRepo) FindListings(_ context.Context, _, _ string, _, _ int) ([]*entity.ServiceRequestListing, error) {
	return nil, nil
}

type fakeHistoryRepo struct {
	entries []*entity.HistoryEntry
}

func (r *fakeHistoryRepo) Create(_ context.Context, entry *entity.HistoryEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeHistoryRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.HistoryEntry, error) {
	return r.entries, nil
}

func (r *fakeHistoryRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.entries)), nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*entity.UserDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uuid.UUID]*entity.UserDocument{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *entity.UserDocument) error {
	r.docs[doc.Id] = doc
	return nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, doc *entity.UserDocument) error {
	r.docs[doc.Id] = doc
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.UserDocument, error) {
	if id, ok := specID(specs); ok {
		return r.docs[id], nil
	}
	return nil, nil
}

func (r *fakeDocumentRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.UserDocument, error) {
	all := make([]*entity.UserDocument, 0, len(r.docs))
	for _, d := range r.docs {
		all = append(all, d)
	}
	return all, nil
}

func (r *fakeDocumentRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.docs)), nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.profiles[p.Id] = p
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.profiles[p.Id] = p
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	if id, ok := specID(specs); ok {
		return r.profiles[id], nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Profile, error) {
	all := make([]*entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		all = append(all, p)
	}
	return all, nil
}

func (r *fakeProfileRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *fakeProfileRepo) SetDocumentsComplete(_ context.Context, userId uuid.UUID, complete bool) error {
	if p, ok := r.profiles[userId]; ok {
		p.DocumentsComplete = complete
	}
	return nil
}

func (r *fakeProfileRepo) UpdateProfilePicture(_ context.Context, userId uuid.UUID, path string) error {
	if p, ok := r.profiles[userId]; ok {
		p.ProfilePicture = &path
	}
	return nil
}

type fakeAcquiredPlanRepo struct {
	plans      map[uuid.UUID]*entity.AcquiredPlan
	nextWallet int
}

func newFakeAcquiredPlanRepo() *fakeAcquiredPlanRepo {
	return &fakeAcquiredPlanRepo{plans: map[uuid.UUID]*entity.AcquiredPlan{}}
}

func (r *fakeAcquiredPlanRepo) Create(_ context.Context, a *entity.AcquiredPlan) error {
	r.plans[a.Id] = a
	return nil
}

func (r *fakeAcquiredPlanRepo) Update(_ context.Context, a *entity.AcquiredPlan) error {
	r.plans[a.Id] = a
	return nil
}

func (r *fakeAcquiredPlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.plans, id)
	return nil
}

func (r *fakeAcquiredPlanRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.AcquiredPlan, error) {
	if id, ok := specID(specs); ok {
		return r.plans[id], nil
	}
	return nil, nil
}

func (r *fakeAcquiredPlanRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.AcquiredPlan, error) {
	all := make([]*entity.AcquiredPlan, 0, len(r.plans))
	for _, a := range r.plans {
		all = append(all, a)
	}
	return all, nil
}

func (r *fakeAcquiredPlanRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.plans)), nil
}

func (r *fakeAcquiredPlanRepo) FindListings(_ context.Context, _ ...specification.Specification) ([]*entity.AcquiredPlanListing, error) {
	return nil, nil
}

func (r *fakeAcquiredPlanRepo) NextWalletValue(_ context.Context, _ uuid.UUID) (int, error) {
	r.nextWallet++
	return r.nextWallet, nil
}

type fakeConfigRepo struct {
	configs map[string]*entity.PlatformConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[string]*entity.PlatformConfig{}}
}

func (r *fakeConfigRepo) Upsert(_ context.Context, key, value string) (*entity.PlatformConfig, error) {
	cfg, ok := r.configs[key]
	if !ok {
		cfg = &entity.PlatformConfig{Id: uuid.New(), Key: key}
		r.configs[key] = cfg
	}
	cfg.Value = value
	return cfg, nil
}

func (r *fakeConfigRepo) Delete(_ context.Context, id uuid.UUID) error {
	for key, cfg := range r.configs {
		if cfg.Id == id {
			delete(r.configs, key)
		}
	}
	return nil
}

func (r *fakeConfigRepo) FindByKey(_ context.Context, key string) (*entity.PlatformConfig, error) {
	return r.configs[key], nil
}

func (r *fakeConfigRepo) FindAll(_ context.Context) ([]*entity.PlatformConfig, error) {
	all := make([]*entity.PlatformConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		all = append(all, cfg)
	}
	return all, nil
}

// fakeUnitOfWork hands out the fake repositories and counts the
// transaction calls flowing through it.
type fakeUnitOfWork struct {
	requestRepo  *fakeRequestRepo
	historyRepo  *fakeHistoryRepo
	documentRepo *fakeDocumentRepo
	profileRepo  *fakeProfileRepo
	acquiredRepo *fakeAcquiredPlanRepo
	configRepo   *fakeConfigRepo

	began      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		requestRepo:  newFakeRequestRepo(),
		historyRepo:  &fakeHistoryRepo{},
		documentRepo: newFakeDocumentRepo(),
		profileRepo:  newFakeProfileRepo(),
		acquiredRepo: newFakeAcquiredPlanRepo(),
		configRepo:   newFakeConfigRepo(),
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error { u.began++; return nil }
func (u *fakeUnitOfWork) Commit() error               { u.committed++; return nil }

func (u *fakeUnitOfWork) Rollback() error {
	if u.committed < u.began {
		u.rolledBack++
	}
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }

func (u *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository { return u.profileRepo }

func (u *fakeUnitOfWork) PlanRepository() contract.PlanRepository { return nil }

func (u *fakeUnitOfWork) AcquiredPlanRepository() contract.AcquiredPlanRepository {
	return u.acquiredRepo
}

func (u *fakeUnitOfWork) RequestRepository() contract.RequestRepository { return u.requestRepo }

func (u *fakeUnitOfWork) HistoryRepository() contract.HistoryRepository { return u.historyRepo }

func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return u.documentRepo }

func (u *fakeUnitOfWork) ConfigRepository() contract.ConfigRepository { return u.configRepo }

func (u *fakeUnitOfWork) SystemLogRepository() contract.SystemLogRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeEmailService struct{}

func (fakeEmailService) SendWelcome(string, string) error { return nil }

func (fakeEmailService) SendResetToken(string, string) error { return nil }

func (fakeEmailService) SendRequestAnswered(string, string, string, string, string) error {
	return nil
}

// fakeStorageDriver records uploads so tests can assert whether the
// object store was touched at all.
type fakeStorageDriver struct {
	uploads []string
	deletes []string
}

func (d *fakeStorageDriver) Upload(_ context.Context, _ io.Reader, path, _ string) (string, error) {
	d.uploads = append(d.uploads, path)
	return path, nil
}

func (d *fakeStorageDriver) Delete(_ context.Context, path string) error {
	d.deletes = append(d.deletes, path)
	return nil
}

func (d *fakeStorageDriver) CreateSignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://signed.example/" + path, nil
}

func (d *fakeStorageDriver) PublicURL(path string) string {
	return "https://public.example/" + path
}

func (d *fakeStorageDriver) Exists(context.Context, string) (bool, error) { return true, nil }
