package dummydb

import (
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
)

type etudiantRepository struct {
	db *DB
}

var _ etudiant.Repository = (*etudiantRepository)(nil) // interface compliance check

func NewEtudiantRepository(db *DB) etudiant.Repository {
	return &etudiantRepository{db: db}
}

func (repo *etudiantRepository) query() []etudiant.Etudiant {
	list := make([]etudiant.Etudiant, 0, len(repo.db.etudiant.table))
	for _, e := range repo.db.etudiant.table {
		list = append(list, *e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID.Int < list[j].ID.Int })
	return list
}

func (repo *etudiantRepository) CreateEtudiant(e etudiant.Etudiant) (etudiant.Etudiant, error) {
	repo.db.parcours.RLock()
	defer repo.db.parcours.RUnlock()
	repo.db.etudiant.Lock()
	defer repo.db.etudiant.Unlock()

	if !repo.db.stored(e.Parcours) {
		return etudiant.Etudiant{}, parcours.ErrNotFound
	}

	repo.db.etudiant.pkCount++
	e.ID = null.IntFrom(repo.db.etudiant.pkCount)
	repo.db.etudiant.table[e.ID.Int] = &e
	return e, nil
}

func (repo *etudiantRepository) QueryEtudiants(filter *etudiant.QueryFilter, ordering []core.DBOrdering) ([]etudiant.Etudiant, error) {
	repo.db.etudiant.RLock()
	defer repo.db.etudiant.RUnlock()

	list := repo.query()

	if filter != nil {
		// students with search keyword matching any Nom or Prenom ?
		if filter.Search != "" {
			var filtered []etudiant.Etudiant
			for _, e := range list {
				if (e.Nom.Valid && core.ContainsFold(e.Nom.String, filter.Search)) ||
					(e.Prenom.Valid && core.ContainsFold(e.Prenom.String, filter.Search)) {
					filtered = append(filtered, e)
				}
			}
			list = filtered
		}
		// students following the given Parcours
		if list != nil && filter.Parcours != 0 {
			var filtered []etudiant.Etudiant
			for _, e := range list {
				if e.Parcours != nil && e.Parcours.ID.Valid && e.Parcours.ID.Int == filter.Parcours {
					filtered = append(filtered, e)
				}
			}
			list = filtered
		}
	}

	if len(ordering) > 0 {
		less, err := lessFunc(ordering, map[string]fieldCompare{
			"ID":     func(i, j int) int { return compareInt(list[i].ID, list[j].ID) },
			"Nom":    func(i, j int) int { return compareString(list[i].Nom, list[j].Nom) },
			"Prenom": func(i, j int) int { return compareString(list[i].Prenom, list[j].Prenom) },
		})
		if err != nil {
			return nil, err
		}
		sort.SliceStable(list, less)
	}
	return list, nil
}

func (repo *etudiantRepository) GetEtudiantByID(id int) (etudiant.Etudiant, error) {
	repo.db.etudiant.RLock()
	defer repo.db.etudiant.RUnlock()

	if e, ok := repo.db.etudiant.table[id]; ok {
		return *e, nil
	}
	return etudiant.Etudiant{}, etudiant.ErrNotFound
}

func (repo *etudiantRepository) UpdateEtudiant(e etudiant.Etudiant) (etudiant.Etudiant, error) {
	repo.db.parcours.RLock()
	defer repo.db.parcours.RUnlock()
	repo.db.etudiant.Lock()
	defer repo.db.etudiant.Unlock()

	if !e.ID.Valid {
		return etudiant.Etudiant{}, etudiant.ErrNotFound
	}
	if _, ok := repo.db.etudiant.table[e.ID.Int]; !ok {
		return etudiant.Etudiant{}, etudiant.ErrNotFound
	}
	if !repo.db.stored(e.Parcours) {
		return etudiant.Etudiant{}, parcours.ErrNotFound
	}

	repo.db.etudiant.table[e.ID.Int] = &e
	return e, nil
}

func (repo *etudiantRepository) DeleteEtudiantsByID(ids ...int) error {
	repo.db.etudiant.Lock()
	defer repo.db.etudiant.Unlock()
	for _, id := range ids {
		delete(repo.db.etudiant.table, id)
	}
	return nil
}
