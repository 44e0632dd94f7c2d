package dummydb

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
)

// Fixture is the seed file format. Students and teaching units refer to tracks by their fixture ID.
type Fixture struct {
	Parcours []struct {
		ID             int         `json:"ID"`
		NomParcours    null.String `json:"NomParcours"`
		AnneeFormation null.Int    `json:"AnneeFormation"`
	} `json:"parcours"`
	UE []struct {
		NumeroUe     null.String `json:"NumeroUe"`
		Intitule     null.String `json:"Intitule"`
		NombreHeures null.Int    `json:"NombreHeures"`
		Parcours     []int       `json:"Parcours"`
	} `json:"ue"`
	Etudiants []struct {
		Nom      null.String `json:"Nom"`
		Prenom   null.String `json:"Prenom"`
		Parcours null.Int    `json:"Parcours"`
	} `json:"etudiants"`
}

type SeedResult struct {
	Parcours  int
	UE        int
	Etudiants int
}

// Seed loads the JSON fixture read from r into db. IDs are assigned by db, not taken from the fixture.
func Seed(db *DB, r io.Reader) (SeedResult, error) {
	var fx Fixture
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return SeedResult{}, errors.Wrap(err, "decoding fixture")
	}

	var res SeedResult
	parcoursRepo := NewParcoursRepository(db)
	refs := make(map[int]*parcours.Parcours, len(fx.Parcours))
	for _, fp := range fx.Parcours {
		if _, ok := refs[fp.ID]; ok {
			return res, errors.Errorf("duplicate parcours %d in fixture", fp.ID)
		}
		p, err := parcoursRepo.CreateParcours(parcours.Parcours{
			NomParcours:    fp.NomParcours,
			AnneeFormation: fp.AnneeFormation,
		})
		if err != nil {
			return res, errors.Wrap(err, "creating parcours")
		}
		refs[fp.ID] = p
		res.Parcours++
	}
	lookup := func(id int) (*parcours.Parcours, error) {
		p, ok := refs[id]
		if !ok {
			return nil, errors.Errorf("unknown parcours %d in fixture", id)
		}
		return p, nil
	}

	ueRepo := NewUERepository(db)
	for _, fu := range fx.UE {
		u := ue.UE{
			NumeroUe:     fu.NumeroUe,
			Intitule:     fu.Intitule,
			NombreHeures: fu.NombreHeures,
		}
		for _, id := range fu.Parcours {
			p, err := lookup(id)
			if err != nil {
				return res, err
			}
			u.Parcours = append(u.Parcours, p)
		}
		if _, err := ueRepo.CreateUE(u); err != nil {
			return res, errors.Wrap(err, "creating ue")
		}
		res.UE++
	}

	etudiantRepo := NewEtudiantRepository(db)
	for _, fe := range fx.Etudiants {
		var p *parcours.Parcours
		if fe.Parcours.Valid {
			var err error
			if p, err = lookup(fe.Parcours.Int); err != nil {
				return res, err
			}
		}
		if _, err := etudiantRepo.CreateEtudiant(*etudiant.New(null.Int{}, fe.Nom, fe.Prenom, p)); err != nil {
			return res, errors.Wrap(err, "creating etudiant")
		}
		res.Etudiants++
	}
	return res, nil
}
