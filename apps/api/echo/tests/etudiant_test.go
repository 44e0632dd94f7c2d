package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/tests"
)

func Test_etudiantApi_create(t *testing.T) {
	env := setup(t)

	testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "unknown parcours",
			method:   http.MethodPost,
			path:     "/v1/etudiants",
			body:     []byte(`{"Nom": "Durand", "Prenom": "Alice", "Parcours": 42}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"Parcours": "parcours not found"}`),
		},
		{
			name:     "all fields",
			method:   http.MethodPost,
			path:     "/v1/etudiants",
			body:     []byte(`{"Nom": " Durand ", "Prenom": "Alice", "Parcours": 1}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 1, "Nom": "Durand", "Prenom": "Alice", "Parcours": 1}`),
		},
		{
			name:     "all null",
			method:   http.MethodPost,
			path:     "/v1/etudiants",
			body:     []byte(`{"Nom": null, "Prenom": null, "Parcours": null}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 2, "Nom": null, "Prenom": null, "Parcours": null}`),
		},
		{
			name:     "blank names are null",
			method:   http.MethodPost,
			path:     "/v1/etudiants",
			body:     []byte(`{"Nom": "  ", "Prenom": ""}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 3, "Nom": null, "Prenom": null, "Parcours": null}`),
		},
	})
}

func Test_etudiantApi_query(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	math := testutil.CreateParcours(t, env.parcoursRepo, "Mathematiques", 1)
	alice := testutil.CreateEtudiant(t, env.etudiantRepo, "Durand", "Alice", info)
	paul := testutil.CreateEtudiant(t, env.etudiantRepo, "Martin", "Paul", math)
	anon := testutil.CreateEtudiant(t, env.etudiantRepo, "", "", nil)
	bob := testutil.CreateEtudiant(t, env.etudiantRepo, "durand", "Bob", info)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "all",
			method:   http.MethodGet,
			path:     "/v1/etudiants",
			wantCode: http.StatusOK,
			wantData: marchallList(t, alice, paul, anon, bob),
		},
		{
			name:     "search matches Nom or Prenom",
			method:   http.MethodGet,
			path:     "/v1/etudiants?search=%20PAU%20",
			wantCode: http.StatusOK,
			wantData: marchallList(t, paul),
		},
		{
			name:     "by parcours",
			method:   http.MethodGet,
			path:     "/v1/etudiants?parcours=1",
			wantCode: http.StatusOK,
			wantData: marchallList(t, alice, bob),
		},
		{
			name:     "search and parcours",
			method:   http.MethodGet,
			path:     "/v1/etudiants?search=bob&parcours=1",
			wantCode: http.StatusOK,
			wantData: marchallList(t, bob),
		},
		{
			name:     "search and parcours, no match",
			method:   http.MethodGet,
			path:     "/v1/etudiants?search=paul&parcours=1",
			wantCode: http.StatusOK,
			wantData: marchallList(t),
		},
		{
			name:     "ordering, nulls first",
			method:   http.MethodGet,
			path:     "/v1/etudiants?ordering=Nom,-Prenom",
			wantCode: http.StatusOK,
			wantData: marchallList(t, anon, bob, alice, paul),
		},
		{
			name:     "unknown ordering field",
			method:   http.MethodGet,
			path:     "/v1/etudiants?ordering=Parcours",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"ordering": "unknown ordering field: Parcours"}`),
		},
	})
}

func Test_etudiantApi_retrieve(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	alice := testutil.CreateEtudiant(t, env.etudiantRepo, "Durand", "Alice", info)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "negative ID",
			method:   http.MethodGet,
			path:     "/v1/etudiants/-1",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "unknown ID",
			method:   http.MethodGet,
			path:     "/v1/etudiants/2",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "found, parcours reduced to its ID",
			method:   http.MethodGet,
			path:     "/v1/etudiants/1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, alice),
		},
	})
}

func Test_etudiantApi_update(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	math := testutil.CreateParcours(t, env.parcoursRepo, "Mathematiques", 1)
	testutil.CreateEtudiant(t, env.etudiantRepo, "Durand", "Alice", info)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "unknown ID",
			method:   http.MethodPut,
			path:     "/v1/etudiants/42",
			body:     []byte(`{"Nom": "Durand"}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "unknown parcours",
			method:   http.MethodPut,
			path:     "/v1/etudiants/1",
			body:     []byte(`{"Nom": "Durand", "Prenom": "Alice", "Parcours": 42}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"Parcours": "parcours not found"}`),
		},
		{
			name:     "change parcours",
			method:   http.MethodPut,
			path:     "/v1/etudiants/1",
			body:     []byte(`{"Nom": "Durand", "Prenom": "Alice", "Parcours": 2}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"ID": 1, "Nom": "Durand", "Prenom": "Alice", "Parcours": 2}`),
		},
		{
			name:     "omitted fields become null",
			method:   http.MethodPut,
			path:     "/v1/etudiants/1",
			body:     []byte(`{"Prenom": "Alicia"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"ID": 1, "Nom": null, "Prenom": "Alicia", "Parcours": null}`),
		},
	})

	e, err := env.etudiantRepo.GetEtudiantByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", e.Prenom.String)
	assert.Nil(t, e.Parcours)
	assert.Equal(t, "Mathematiques", math.NomParcours.String) // shared parcours are never modified
}

func Test_etudiantApi_destroy(t *testing.T) {
	env := setup(t)

	for _, nom := range []string{"A", "B", "C", "D"} {
		testutil.CreateEtudiant(t, env.etudiantRepo, nom, "", nil)
	}

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "unknown ID",
			method:   http.MethodDelete,
			path:     "/v1/etudiants/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "delete one",
			method:   http.MethodDelete,
			path:     "/v1/etudiants/1",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "delete multiple, unknown IDs ignored",
			method:   http.MethodDelete,
			path:     "/v1/etudiants?id=2&id=3&id=42",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "delete multiple, no IDs",
			method:   http.MethodDelete,
			path:     "/v1/etudiants",
			wantCode: http.StatusNoContent,
		},
	})

	list, err := env.etudiantRepo.QueryEtudiants(nil, nil)
	require.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, etudiant.Etudiant{ID: list[0].ID, Nom: list[0].Nom}, list[0])
		assert.Equal(t, 4, list[0].ID.Int)
	}
}
