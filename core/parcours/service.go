package parcours

import (
	"errors"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
)

var (
	// errors
	ErrNotFound = errors.New("parcours not found")
)

type (
	Repository interface {
		CreateParcours(p Parcours) (*Parcours, error)
		QueryParcours(filter *QueryFilter, ordering []core.DBOrdering) ([]*Parcours, error)
		GetParcoursByID(id int) (*Parcours, error)
		// DeleteParcoursByID also detaches the deleted Parcours from whoever references it.
		DeleteParcoursByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(np NewParcours) (*Parcours, error) {
	return svc.repo.CreateParcours(Parcours{
		NomParcours:    np.NomParcours,
		AnneeFormation: np.AnneeFormation,
	})
}

func (svc *Service) Query(filter *QueryFilter, ordering []core.DBOrdering) ([]*Parcours, error) {
	return svc.repo.QueryParcours(filter, ordering)
}

func (svc *Service) GetByID(id int) (*Parcours, error) {
	return svc.repo.GetParcoursByID(id)
}

// Resolve finds the Parcours referenced by id. An unset id resolves to no Parcours.
// An unknown id is reported as a validation error on `field`.
func (svc *Service) Resolve(id null.Int, field string) (*Parcours, error) {
	if !id.Valid {
		return nil, nil
	}
	p, err := svc.repo.GetParcoursByID(id.Int)
	if err != nil {
		return nil, AsFieldError(err, field)
	}
	return p, nil
}

// AsFieldError reports ErrNotFound as a validation error on `field`; other errors are returned as is.
func AsFieldError(err error, field string) error {
	if err == ErrNotFound {
		return core.NewFieldError(field, err)
	}
	return err
}

// ResolveAll resolves every id, failing on the first unknown one.
func (svc *Service) ResolveAll(ids []int, field string) ([]*Parcours, error) {
	refs := make([]*Parcours, 0, len(ids))
	for _, id := range ids {
		p, err := svc.Resolve(null.IntFrom(id), field)
		if err != nil {
			return nil, err
		}
		refs = append(refs, p)
	}
	return refs, nil
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteParcoursByID(ids...)
}
