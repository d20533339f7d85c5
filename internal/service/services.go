package service

import (
	"github.com/MKhiriev/anything-list/internal/adapter"
	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/internal/utils"
	"github.com/MKhiriev/anything-list/internal/validators"
)

type ClientServices struct {
	BindingService     AccountBindingService
	ImportService      ImportService
	ExportService      ExportService
	CollectionService  CollectionService
	ConsistencyService ConsistencyService
}

func NewClientServices(containerID string, storages *store.Storages, accounts adapter.AccountStatusSource) *ClientServices {
	validator := validators.NewListDataValidator()
	reconciler := NewReconciler(utils.NewRecordIDs(), validator)

	return &ClientServices{
		BindingService: NewAccountBindingService(
			containerID,
			storages.Settings.LoadBoundAccountID,
			storages.Settings.SaveBoundAccountID,
			accounts,
		),
		ImportService:      NewImportService(storages.Dataset, reconciler),
		ExportService:      NewExportService(storages.Dataset),
		CollectionService:  NewCollectionService(storages.Dataset, reconciler),
		ConsistencyService: NewConsistencyService(storages.Dataset, validator),
	}
}
