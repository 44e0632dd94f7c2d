package ue

import (
	"errors"

	"github.com/trezcool/scolarite/core/parcours"
)

var (
	// errors
	ErrNotFound = errors.New("ue not found")
)

type (
	Repository interface {
		CreateUE(u UE) (UE, error)
		QueryUEs(filter *QueryFilter) ([]UE, error)
		GetUEByID(id int) (UE, error)
		DeleteUEsByID(ids ...int) error
	}

	Service struct {
		repo        Repository
		parcoursSvc *parcours.Service
	}
)

func NewService(repo Repository, parcoursSvc *parcours.Service) *Service {
	return &Service{repo: repo, parcoursSvc: parcoursSvc}
}

func (svc *Service) Create(nu NewUE) (UE, error) {
	refs, err := svc.parcoursSvc.ResolveAll(nu.Parcours, "Parcours")
	if err != nil {
		return UE{}, err
	}
	u, err := svc.repo.CreateUE(UE{
		NumeroUe:     nu.NumeroUe,
		Intitule:     nu.Intitule,
		NombreHeures: nu.NombreHeures,
		Parcours:     refs,
	})
	if err != nil {
		return UE{}, parcours.AsFieldError(err, "Parcours")
	}
	return u, nil
}

func (svc *Service) Query(filter *QueryFilter) ([]UE, error) {
	return svc.repo.QueryUEs(filter)
}

func (svc *Service) GetByID(id int) (UE, error) {
	return svc.repo.GetUEByID(id)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteUEsByID(ids...)
}
