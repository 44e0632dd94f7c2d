package testutil

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
	logsvc "github.com/trezcool/scolarite/services/logger"
	dummydb "github.com/trezcool/scolarite/storage/database/dummy"
)

func PrepareDB(t *testing.T) *dummydb.DB {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

func NewConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		Build:    "test",
		TestMode: true,
		AppName:  "Scolarite",
		Server: core.ServerConfig{
			Address:        ":0",
			Host:           "localhost",
			DisableReqLogs: true,
		},
	}
}

// NewLogger returns a disabled logger writing nowhere.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

func CreateParcours(t *testing.T, repo parcours.Repository, nom string, annee int) *parcours.Parcours {
	p, err := repo.CreateParcours(parcours.Parcours{
		NomParcours:    null.StringFrom(nom),
		AnneeFormation: null.NewInt(annee, annee != 0),
	})
	if err != nil {
		t.Fatalf("CreateParcours() failed: %v", err)
	}
	return p
}

func CreateEtudiant(t *testing.T, repo etudiant.Repository, nom, prenom string, p *parcours.Parcours) etudiant.Etudiant {
	e, err := repo.CreateEtudiant(*etudiant.New(
		null.Int{},
		null.NewString(nom, nom != ""),
		null.NewString(prenom, prenom != ""),
		p,
	))
	if err != nil {
		t.Fatalf("CreateEtudiant() failed: %v", err)
	}
	return e
}

func CreateUE(t *testing.T, repo ue.Repository, numero, intitule string, heures int, ps ...*parcours.Parcours) ue.UE {
	u, err := repo.CreateUE(ue.UE{
		NumeroUe:     null.StringFrom(numero),
		Intitule:     null.StringFrom(intitule),
		NombreHeures: null.NewInt(heures, heures != 0),
		Parcours:     ps,
	})
	if err != nil {
		t.Fatalf("CreateUE() failed: %v", err)
	}
	return u
}
