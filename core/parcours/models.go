package parcours

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
)

// Parcours is a course of study students and teaching units can be attached to.
// It is shared: other entities hold a pointer to it and never copy it.
type Parcours struct {
	ID             null.Int
	NomParcours    null.String
	AnneeFormation null.Int
}

var _ core.Serializable = Parcours{}

func (p Parcours) ToJSON() core.Map {
	return core.Map{
		"ID":             core.Nullable(p.ID),
		"NomParcours":    core.Nullable(p.NomParcours),
		"AnneeFormation": core.Nullable(p.AnneeFormation),
	}
}

func (p Parcours) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToJSON())
}

// RefID returns the ID of the referenced Parcours, nil if there is none or it is not saved yet.
func RefID(p *Parcours) interface{} {
	if p == nil {
		return nil
	}
	return core.Nullable(p.ID)
}

// NewParcours contains information needed to create a new Parcours.
type NewParcours struct {
	NomParcours    null.String `json:"NomParcours" validate:"required,notblank,max=100"`
	AnneeFormation null.Int    `json:"AnneeFormation" validate:"omitempty,min=1,max=8"`
}

func (np *NewParcours) Validate(validate *validator.Validate) error {
	if err := validate.Struct(np); err != nil {
		return err
	}
	np.NomParcours.String = core.CleanString(np.NomParcours.String)
	return nil
}

type QueryFilter struct {
	Search         string `query:"search"`
	AnneeFormation int    `query:"annee"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
