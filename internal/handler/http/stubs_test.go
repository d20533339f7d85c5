package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/models"
)

// ─────────────────────────────────────────────
// Service stubs
// ─────────────────────────────────────────────

type stubBindingSvc struct {
	fetchFn   func(ctx context.Context) (models.BindingState, error)
	previewFn func(ctx context.Context) (models.SwitchPreview, error)
	switchFn  func(ctx context.Context) (models.SwitchPreview, error)
}

func (s *stubBindingSvc) FetchBindingState(ctx context.Context) (models.BindingState, error) {
	if s.fetchFn != nil {
		return s.fetchFn(ctx)
	}
	return models.BindingState{}, nil
}

func (s *stubBindingSvc) PreviewSwitchToCurrentAccount(ctx context.Context) (models.SwitchPreview, error) {
	if s.previewFn != nil {
		return s.previewFn(ctx)
	}
	return models.SwitchPreview{}, nil
}

func (s *stubBindingSvc) SwitchBindingToCurrentAccount(ctx context.Context) (models.SwitchPreview, error) {
	if s.switchFn != nil {
		return s.switchFn(ctx)
	}
	return models.SwitchPreview{}, nil
}

type stubImportSvc struct {
	templateFn func(ctx context.Context, data []byte, format codec.Format) (models.ImportResult, error)
	snapshotFn func(ctx context.Context, data []byte) (models.ImportResult, error)
	restoreFn  func(ctx context.Context, data []byte) (models.ImportResult, error)
}

func (s *stubImportSvc) ImportTemplate(ctx context.Context, data []byte, format codec.Format) (models.ImportResult, error) {
	if s.templateFn != nil {
		return s.templateFn(ctx, data, format)
	}
	return models.ImportResult{}, nil
}

func (s *stubImportSvc) ImportSnapshot(ctx context.Context, data []byte) (models.ImportResult, error) {
	if s.snapshotFn != nil {
		return s.snapshotFn(ctx, data)
	}
	return models.ImportResult{}, nil
}

func (s *stubImportSvc) RestoreBackup(ctx context.Context, data []byte) (models.ImportResult, error) {
	if s.restoreFn != nil {
		return s.restoreFn(ctx, data)
	}
	return models.ImportResult{}, nil
}

type stubExportSvc struct {
	templateFn func(ctx context.Context, id string) (models.TemplateDocument, error)
	snapshotFn func(ctx context.Context, id string) (models.SnapshotDocument, error)
	backupFn   func(ctx context.Context) (models.BackupDocument, error)
}

func (s *stubExportSvc) ExportTemplate(ctx context.Context, id string) (models.TemplateDocument, error) {
	if s.templateFn != nil {
		return s.templateFn(ctx, id)
	}
	return models.TemplateDocument{}, nil
}

func (s *stubExportSvc) ExportSnapshot(ctx context.Context, id string) (models.SnapshotDocument, error) {
	if s.snapshotFn != nil {
		return s.snapshotFn(ctx, id)
	}
	return models.SnapshotDocument{}, nil
}

func (s *stubExportSvc) ExportBackup(ctx context.Context) (models.BackupDocument, error) {
	if s.backupFn != nil {
		return s.backupFn(ctx)
	}
	return models.BackupDocument{}, nil
}

type stubCollectionSvc struct {
	fromTemplateFn func(ctx context.Context, doc models.TemplateDocument) (string, error)
	fromLibraryFn  func(ctx context.Context, index int) (string, error)
	listFn         func(ctx context.Context) ([]models.CollectionOverview, error)
	deleteFn       func(ctx context.Context, id string) error
	clearFn        func(ctx context.Context) error
}

func (s *stubCollectionSvc) CreateFromTemplate(ctx context.Context, doc models.TemplateDocument) (string, error) {
	if s.fromTemplateFn != nil {
		return s.fromTemplateFn(ctx, doc)
	}
	return "", nil
}

func (s *stubCollectionSvc) CreateFromLibrary(ctx context.Context, index int) (string, error) {
	if s.fromLibraryFn != nil {
		return s.fromLibraryFn(ctx, index)
	}
	return "", nil
}

func (s *stubCollectionSvc) List(ctx context.Context) ([]models.CollectionOverview, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubCollectionSvc) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubCollectionSvc) ClearAll(ctx context.Context) error {
	if s.clearFn != nil {
		return s.clearFn(ctx)
	}
	return nil
}

type stubConsistencySvc struct {
	report models.ConsistencyReport
	err    error
}

func (s *stubConsistencySvc) Check(context.Context) (models.ConsistencyReport, error) {
	return s.report, s.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubServices returns services where every method succeeds with zero values.
func stubServices() *service.ClientServices {
	return &service.ClientServices{
		BindingService:     &stubBindingSvc{},
		ImportService:      &stubImportSvc{},
		ExportService:      &stubExportSvc{},
		CollectionService:  &stubCollectionSvc{},
		ConsistencyService: &stubConsistencySvc{},
	}
}

func newTestHandler(t *testing.T, svcs *service.ClientServices) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = stubServices()
	}
	return NewHandler(svcs, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
}

func strPtr(s string) *string { return &s }
