package ue

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/parcours"
)

// UE (unité d'enseignement) is a teaching unit, taught in any number of Parcours.
type UE struct {
	ID           null.Int
	NumeroUe     null.String
	Intitule     null.String
	NombreHeures null.Int
	Parcours     []*parcours.Parcours
}

var _ core.Serializable = UE{}

// ToJSON flattens the UE. Its Parcours are reduced to their IDs.
func (u UE) ToJSON() core.Map {
	ids := make([]interface{}, 0, len(u.Parcours))
	for _, p := range u.Parcours {
		ids = append(ids, parcours.RefID(p))
	}
	return core.Map{
		"ID":           core.Nullable(u.ID),
		"NumeroUe":     core.Nullable(u.NumeroUe),
		"Intitule":     core.Nullable(u.Intitule),
		"NombreHeures": core.Nullable(u.NombreHeures),
		"Parcours":     ids,
	}
}

func (u UE) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToJSON())
}

func (u UE) TaughtIn(parcoursID int) bool {
	for _, p := range u.Parcours {
		if p != nil && p.ID.Valid && p.ID.Int == parcoursID {
			return true
		}
	}
	return false
}

// NewUE contains information needed to create a new UE.
type NewUE struct {
	NumeroUe     null.String `json:"NumeroUe" validate:"required,notblank,max=20"`
	Intitule     null.String `json:"Intitule" validate:"required,notblank,max=100"`
	NombreHeures null.Int    `json:"NombreHeures" validate:"omitempty,min=1"`
	Parcours     []int       `json:"Parcours" validate:"omitempty,unique,dive,min=1"`
}

func (nu *NewUE) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nu); err != nil {
		return err
	}
	nu.NumeroUe.String = core.CleanString(nu.NumeroUe.String)
	nu.Intitule.String = core.CleanString(nu.Intitule.String)
	return nil
}

type QueryFilter struct {
	Search   string `query:"search"`
	Parcours int    `query:"parcours"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
