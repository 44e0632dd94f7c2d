package dummydb

import (
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
)

type ueRepository struct {
	db *DB
}

var _ ue.Repository = (*ueRepository)(nil) // interface compliance check

func NewUERepository(db *DB) ue.Repository {
	return &ueRepository{db: db}
}

func (repo *ueRepository) CreateUE(u ue.UE) (ue.UE, error) {
	repo.db.parcours.RLock()
	defer repo.db.parcours.RUnlock()
	repo.db.ue.Lock()
	defer repo.db.ue.Unlock()

	for _, p := range u.Parcours {
		if p == nil || !repo.db.stored(p) {
			return ue.UE{}, parcours.ErrNotFound
		}
	}

	repo.db.ue.pkCount++
	u.ID = null.IntFrom(repo.db.ue.pkCount)
	repo.db.ue.table[u.ID.Int] = &u
	return u, nil
}

func (repo *ueRepository) QueryUEs(filter *ue.QueryFilter) ([]ue.UE, error) {
	repo.db.ue.RLock()
	defer repo.db.ue.RUnlock()

	list := make([]ue.UE, 0, len(repo.db.ue.table))
	for _, u := range repo.db.ue.table {
		if filter != nil {
			if filter.Search != "" &&
				!(u.NumeroUe.Valid && core.ContainsFold(u.NumeroUe.String, filter.Search)) &&
				!(u.Intitule.Valid && core.ContainsFold(u.Intitule.String, filter.Search)) {
				continue
			}
			if filter.Parcours != 0 && !u.TaughtIn(filter.Parcours) {
				continue
			}
		}
		list = append(list, *u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID.Int < list[j].ID.Int })
	return list, nil
}

func (repo *ueRepository) GetUEByID(id int) (ue.UE, error) {
	repo.db.ue.RLock()
	defer repo.db.ue.RUnlock()

	if u, ok := repo.db.ue.table[id]; ok {
		return *u, nil
	}
	return ue.UE{}, ue.ErrNotFound
}

func (repo *ueRepository) DeleteUEsByID(ids ...int) error {
	repo.db.ue.Lock()
	defer repo.db.ue.Unlock()
	for _, id := range ids {
		delete(repo.db.ue.table, id)
	}
	return nil
}
