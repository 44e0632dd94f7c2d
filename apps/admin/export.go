package main

import (
	"encoding/json"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/etudiant"
	dummydb "github.com/trezcool/scolarite/storage/database/dummy"
)

// export prints the serialized students of the fixture, one JSON array.
func (cli *commandLine) export(fixture string, parcoursID int) error {
	db, _, err := cli.load(fixture)
	if err != nil {
		return err
	}

	list, err := dummydb.NewEtudiantRepository(db).QueryEtudiants(
		&etudiant.QueryFilter{Parcours: parcoursID},
		[]core.DBOrdering{{Field: "Nom", Ascending: true}, {Field: "Prenom", Ascending: true}},
	)
	if err != nil {
		return err
	}

	out := make([]core.Map, 0, len(list))
	for _, e := range list {
		out = append(out, e.ToJSON())
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
