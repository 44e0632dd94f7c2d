package etudiant

import (
	"errors"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/parcours"
)

var (
	// errors
	ErrNotFound = errors.New("etudiant not found")
)

type (
	Repository interface {
		CreateEtudiant(e Etudiant) (Etudiant, error)
		QueryEtudiants(filter *QueryFilter, ordering []core.DBOrdering) ([]Etudiant, error)
		GetEtudiantByID(id int) (Etudiant, error)
		UpdateEtudiant(e Etudiant) (Etudiant, error)
		DeleteEtudiantsByID(ids ...int) error
	}

	Service struct {
		repo        Repository
		parcoursSvc *parcours.Service
	}
)

func NewService(repo Repository, parcoursSvc *parcours.Service) *Service {
	return &Service{repo: repo, parcoursSvc: parcoursSvc}
}

func (svc *Service) Create(ne NewEtudiant) (Etudiant, error) {
	p, err := svc.parcoursSvc.Resolve(ne.Parcours, "Parcours")
	if err != nil {
		return Etudiant{}, err
	}
	e, err := svc.repo.CreateEtudiant(*New(null.Int{}, ne.Nom, ne.Prenom, p))
	if err != nil {
		// the Parcours may have been deleted since it was resolved
		return Etudiant{}, parcours.AsFieldError(err, "Parcours")
	}
	return e, nil
}

func (svc *Service) Query(filter *QueryFilter, ordering []core.DBOrdering) ([]Etudiant, error) {
	return svc.repo.QueryEtudiants(filter, ordering)
}

func (svc *Service) GetByID(id int) (Etudiant, error) {
	return svc.repo.GetEtudiantByID(id)
}

func (svc *Service) Update(id int, ue UpdateEtudiant) (Etudiant, error) {
	p, err := svc.parcoursSvc.Resolve(ue.Parcours, "Parcours")
	if err != nil {
		return Etudiant{}, err
	}
	e, err := svc.repo.UpdateEtudiant(Etudiant{
		ID:       null.IntFrom(id),
		Nom:      ue.Nom,
		Prenom:   ue.Prenom,
		Parcours: p,
	})
	if err != nil {
		return Etudiant{}, parcours.AsFieldError(err, "Parcours")
	}
	return e, nil
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteEtudiantsByID(ids...)
}
