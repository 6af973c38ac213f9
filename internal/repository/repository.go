package repository

import (
	"errors"

	"github.com/careform/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	Count() (int64, error)
}

type PatientRepository interface {
	Create(patient *model.Patient) error
	List() ([]model.Patient, error)
	GetByID(id uint) (*model.Patient, error)
	Update(patient *model.Patient) error
	Delete(id uint) error
	LinkProvider(link *model.PatientProvider) error
	UnlinkProvider(patientID, providerID uint) error
}

type ProviderRepository interface {
	Create(provider *model.Provider) error
	List() ([]model.Provider, error)
	GetByID(id uint) (*model.Provider, error)
	Update(provider *model.Provider) error
	Delete(id uint) error
}
