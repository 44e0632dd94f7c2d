package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scolarite/tests"
)

func Test_parcoursApi_create(t *testing.T) {
	env := setup(t)

	tests := []httpTest{
		{
			name:     "empty body",
			method:   http.MethodPost,
			path:     "/v1/parcours",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"NomParcours": "this field is required"}`),
		},
		{
			name:     "blank name",
			method:   http.MethodPost,
			path:     "/v1/parcours",
			body:     []byte(`{"NomParcours": "   "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"NomParcours": "this field cannot be blank"}`),
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/v1/parcours",
			body:     []byte(`{"NomParcours": 12}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "name only",
			method:   http.MethodPost,
			path:     "/v1/parcours",
			body:     []byte(`{"NomParcours": " Informatique "}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 1, "NomParcours": "Informatique", "AnneeFormation": null}`),
		},
		{
			name:     "name and year",
			method:   http.MethodPost,
			path:     "/v1/parcours/",
			body:     []byte(`{"NomParcours": "Mathematiques", "AnneeFormation": 2}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 2, "NomParcours": "Mathematiques", "AnneeFormation": 2}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			env.app.ServeHTTP(rec, req)
			if tt.wantData == nil {
				assert.Equal(t, tt.wantCode, rec.Code)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_parcoursApi_query(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	math := testutil.CreateParcours(t, env.parcoursRepo, "Mathematiques", 1)
	miage := testutil.CreateParcours(t, env.parcoursRepo, "MIAGE", 3)
	noYear := testutil.CreateParcours(t, env.parcoursRepo, "Sans annee", 0)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "all",
			method:   http.MethodGet,
			path:     "/v1/parcours",
			wantCode: http.StatusOK,
			wantData: marchallList(t, info, math, miage, noYear),
		},
		{
			name:     "search",
			method:   http.MethodGet,
			path:     "/v1/parcours?search=MATIQ",
			wantCode: http.StatusOK,
			wantData: marchallList(t, info, math),
		},
		{
			name:     "year",
			method:   http.MethodGet,
			path:     "/v1/parcours?annee=3",
			wantCode: http.StatusOK,
			wantData: marchallList(t, info, miage),
		},
		{
			name:     "search and year",
			method:   http.MethodGet,
			path:     "/v1/parcours?search=i&annee=1",
			wantCode: http.StatusOK,
			wantData: marchallList(t, math),
		},
		{
			name:     "no match",
			method:   http.MethodGet,
			path:     "/v1/parcours?search=lol",
			wantCode: http.StatusOK,
			wantData: marchallList(t),
		},
		{
			name:     "ordering by name, case insensitive",
			method:   http.MethodGet,
			path:     "/v1/parcours?ordering=NomParcours",
			wantCode: http.StatusOK,
			wantData: marchallList(t, info, math, miage, noYear),
		},
		{
			name:     "ordering by year desc, then ID desc",
			method:   http.MethodGet,
			path:     "/v1/parcours?ordering=-AnneeFormation,-ID",
			wantCode: http.StatusOK,
			wantData: marchallList(t, miage, info, math, noYear),
		},
		{
			name:     "unknown ordering field",
			method:   http.MethodGet,
			path:     "/v1/parcours?ordering=Foo",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"ordering": "unknown ordering field: Foo"}`),
		},
	})
}

func Test_parcoursApi_retrieve(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "non-int ID",
			method:   http.MethodGet,
			path:     "/v1/parcours/lol",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "unknown ID",
			method:   http.MethodGet,
			path:     "/v1/parcours/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "found",
			method:   http.MethodGet,
			path:     "/v1/parcours/1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, info),
		},
	})
}

func Test_parcoursApi_destroy(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	math := testutil.CreateParcours(t, env.parcoursRepo, "Mathematiques", 1)
	alice := testutil.CreateEtudiant(t, env.etudiantRepo, "Durand", "Alice", info)
	paul := testutil.CreateEtudiant(t, env.etudiantRepo, "Martin", "Paul", math)
	compil := testutil.CreateUE(t, env.ueRepo, "INF301", "Compilation", 40, info, math)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "unknown ID",
			method:   http.MethodDelete,
			path:     "/v1/parcours/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "delete",
			method:   http.MethodDelete,
			path:     "/v1/parcours/1",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "gone",
			method:   http.MethodGet,
			path:     "/v1/parcours/1",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "student detached",
			method:   http.MethodGet,
			path:     "/v1/etudiants/1",
			wantCode: http.StatusOK,
			wantData: []byte(`{"ID": 1, "Nom": "Durand", "Prenom": "Alice", "Parcours": null}`),
		},
		{
			name:     "other student untouched",
			method:   http.MethodGet,
			path:     "/v1/etudiants/2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, paul),
		},
		{
			name:     "teaching unit detached",
			method:   http.MethodGet,
			path:     "/v1/ue/1",
			wantCode: http.StatusOK,
			wantData: []byte(`{"ID": 1, "NumeroUe": "INF301", "Intitule": "Compilation", "NombreHeures": 40, "Parcours": [2]}`),
		},
	})

	// values handed out before the delete are left as they were
	assert.Equal(t, int64(1), alice.ToJSON()["Parcours"])
	assert.Len(t, compil.Parcours, 2)
}
