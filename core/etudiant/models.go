package etudiant

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/parcours"
)

// Etudiant is a student. Every field is optional; ID stays null until the registry assigns one.
// Parcours is a reference to a shared Parcours, the Etudiant does not own it.
type Etudiant struct {
	ID       null.Int
	Nom      null.String
	Prenom   null.String
	Parcours *parcours.Parcours
}

var _ core.Serializable = Etudiant{}

// New builds an Etudiant from its four fields, any of which may be null.
func New(id null.Int, nom, prenom null.String, p *parcours.Parcours) *Etudiant {
	return &Etudiant{
		ID:       id,
		Nom:      nom,
		Prenom:   prenom,
		Parcours: p,
	}
}

// ToJSON flattens the Etudiant. Only the ID of its Parcours is kept.
func (e Etudiant) ToJSON() core.Map {
	return core.Map{
		"ID":       core.Nullable(e.ID),
		"Nom":      core.Nullable(e.Nom),
		"Prenom":   core.Nullable(e.Prenom),
		"Parcours": parcours.RefID(e.Parcours),
	}
}

func (e Etudiant) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}

// NewEtudiant contains information needed to create a new Etudiant.
// Parcours is given by ID, as in the serialized form.
type NewEtudiant struct {
	Nom      null.String `json:"Nom" validate:"omitempty,max=100"`
	Prenom   null.String `json:"Prenom" validate:"omitempty,max=100"`
	Parcours null.Int    `json:"Parcours" validate:"omitempty,min=1"`
}

func (ne *NewEtudiant) Validate(validate *validator.Validate) error {
	ne.Nom = cleanName(ne.Nom)
	ne.Prenom = cleanName(ne.Prenom)
	return validate.Struct(ne)
}

// UpdateEtudiant defines what information may be provided to modify an existing Etudiant.
// The body replaces the Etudiant: omitted fields become null.
type UpdateEtudiant struct {
	Nom      null.String `json:"Nom" validate:"omitempty,max=100"`
	Prenom   null.String `json:"Prenom" validate:"omitempty,max=100"`
	Parcours null.Int    `json:"Parcours" validate:"omitempty,min=1"`
}

func (ue *UpdateEtudiant) Validate(validate *validator.Validate) error {
	ue.Nom = cleanName(ue.Nom)
	ue.Prenom = cleanName(ue.Prenom)
	return validate.Struct(ue)
}

type QueryFilter struct {
	Search   string `query:"search"`
	Parcours int    `query:"parcours"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// cleanName trims s, a blank name is no name.
func cleanName(s null.String) null.String {
	if !s.Valid {
		return s
	}
	name := core.CleanString(s.String)
	return null.NewString(name, name != "")
}
