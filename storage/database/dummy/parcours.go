package dummydb

import (
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/parcours"
)

type parcoursRepository struct {
	db *DB
}

var _ parcours.Repository = (*parcoursRepository)(nil) // interface compliance check

func NewParcoursRepository(db *DB) parcours.Repository {
	return &parcoursRepository{db: db}
}

func (repo *parcoursRepository) query() []*parcours.Parcours {
	list := make([]*parcours.Parcours, 0, len(repo.db.parcours.table))
	for _, p := range repo.db.parcours.table {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID.Int < list[j].ID.Int })
	return list
}

// CreateParcours stores p under a new ID. The stored Parcours is never modified afterwards,
// so the returned pointer can be shared freely.
func (repo *parcoursRepository) CreateParcours(p parcours.Parcours) (*parcours.Parcours, error) {
	repo.db.parcours.Lock()
	defer repo.db.parcours.Unlock()

	repo.db.parcours.pkCount++
	p.ID = null.IntFrom(repo.db.parcours.pkCount)
	repo.db.parcours.table[p.ID.Int] = &p
	return &p, nil
}

func (repo *parcoursRepository) QueryParcours(filter *parcours.QueryFilter, ordering []core.DBOrdering) ([]*parcours.Parcours, error) {
	repo.db.parcours.RLock()
	defer repo.db.parcours.RUnlock()

	list := repo.query()

	if filter != nil {
		// Parcours with search keyword matching NomParcours ?
		if filter.Search != "" {
			var filtered []*parcours.Parcours
			for _, p := range list {
				if p.NomParcours.Valid && core.ContainsFold(p.NomParcours.String, filter.Search) {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
		if list != nil && filter.AnneeFormation != 0 {
			var filtered []*parcours.Parcours
			for _, p := range list {
				if p.AnneeFormation.Valid && p.AnneeFormation.Int == filter.AnneeFormation {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
	}

	if len(ordering) > 0 {
		less, err := lessFunc(ordering, map[string]fieldCompare{
			"ID":             func(i, j int) int { return compareInt(list[i].ID, list[j].ID) },
			"NomParcours":    func(i, j int) int { return compareString(list[i].NomParcours, list[j].NomParcours) },
			"AnneeFormation": func(i, j int) int { return compareInt(list[i].AnneeFormation, list[j].AnneeFormation) },
		})
		if err != nil {
			return nil, err
		}
		sort.SliceStable(list, less)
	}
	return list, nil
}

func (repo *parcoursRepository) GetParcoursByID(id int) (*parcours.Parcours, error) {
	repo.db.parcours.RLock()
	defer repo.db.parcours.RUnlock()

	if p, ok := repo.db.parcours.table[id]; ok {
		return p, nil
	}
	return nil, parcours.ErrNotFound
}

func (repo *parcoursRepository) DeleteParcoursByID(ids ...int) error {
	repo.db.parcours.Lock()
	defer repo.db.parcours.Unlock()
	repo.db.etudiant.Lock()
	defer repo.db.etudiant.Unlock()
	repo.db.ue.Lock()
	defer repo.db.ue.Unlock()

	for _, id := range ids {
		p, ok := repo.db.parcours.table[id]
		if !ok {
			continue
		}
		delete(repo.db.parcours.table, id)

		// set null on whoever references it
		for eid, e := range repo.db.etudiant.table {
			if e.Parcours == p {
				detached := *e
				detached.Parcours = nil
				repo.db.etudiant.table[eid] = &detached
			}
		}
		for uid, u := range repo.db.ue.table {
			if u.TaughtIn(id) {
				detached := *u
				detached.Parcours = make([]*parcours.Parcours, 0, len(u.Parcours))
				for _, ref := range u.Parcours {
					if ref != p {
						detached.Parcours = append(detached.Parcours, ref)
					}
				}
				repo.db.ue.table[uid] = &detached
			}
		}
	}
	return nil
}
