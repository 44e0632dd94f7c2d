package dummydb

import (
	"sync"

	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
)

// Tables are always locked in this order: parcours, etudiant, ue.
type (
	DB struct {
		parcours *parcoursTable
		etudiant *etudiantTable
		ue       *ueTable
	}

	parcoursTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*parcours.Parcours
	}

	etudiantTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*etudiant.Etudiant
	}

	ueTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*ue.UE
	}
)

func Open() (*DB, error) {
	db := &DB{
		parcours: &parcoursTable{table: make(map[int]*parcours.Parcours)},
		etudiant: &etudiantTable{table: make(map[int]*etudiant.Etudiant)},
		ue:       &ueTable{table: make(map[int]*ue.UE)},
	}
	return db, nil
}

// stored reports whether p is nil or is the very Parcours registered under its ID.
// The caller must hold the parcours table lock.
func (db *DB) stored(p *parcours.Parcours) bool {
	if p == nil {
		return true
	}
	if !p.ID.Valid {
		return false
	}
	return db.parcours.table[p.ID.Int] == p
}
