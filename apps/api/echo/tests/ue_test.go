package tests

import (
	"net/http"
	"testing"

	"github.com/trezcool/scolarite/tests"
)

func Test_ueApi_create(t *testing.T) {
	env := setup(t)

	testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	testutil.CreateParcours(t, env.parcoursRepo, "MIAGE", 3)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "missing fields",
			method:   http.MethodPost,
			path:     "/v1/ue",
			body:     []byte(`{"NombreHeures": 20}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"NumeroUe": "this field is required", "Intitule": "this field is required"}`),
		},
		{
			name:     "blank intitule",
			method:   http.MethodPost,
			path:     "/v1/ue",
			body:     []byte(`{"NumeroUe": "INF301", "Intitule": " "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"Intitule": "this field cannot be blank"}`),
		},
		{
			name:     "unknown parcours",
			method:   http.MethodPost,
			path:     "/v1/ue",
			body:     []byte(`{"NumeroUe": "INF301", "Intitule": "Compilation", "Parcours": [1, 42]}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"Parcours": "parcours not found"}`),
		},
		{
			name:     "no parcours",
			method:   http.MethodPost,
			path:     "/v1/ue",
			body:     []byte(`{"NumeroUe": "LV101", "Intitule": "Anglais"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 1, "NumeroUe": "LV101", "Intitule": "Anglais", "NombreHeures": null, "Parcours": []}`),
		},
		{
			name:     "several parcours",
			method:   http.MethodPost,
			path:     "/v1/ue",
			body:     []byte(`{"NumeroUe": " INF301 ", "Intitule": "Compilation", "NombreHeures": 40, "Parcours": [2, 1]}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"ID": 2, "NumeroUe": "INF301", "Intitule": "Compilation", "NombreHeures": 40, "Parcours": [2, 1]}`),
		},
	})
}

func Test_ueApi_query(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	miage := testutil.CreateParcours(t, env.parcoursRepo, "MIAGE", 3)
	compil := testutil.CreateUE(t, env.ueRepo, "INF301", "Compilation", 40, info, miage)
	reseaux := testutil.CreateUE(t, env.ueRepo, "INF302", "Reseaux", 30, info)
	anglais := testutil.CreateUE(t, env.ueRepo, "LV101", "Anglais", 0)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "all",
			method:   http.MethodGet,
			path:     "/v1/ue",
			wantCode: http.StatusOK,
			wantData: marchallList(t, compil, reseaux, anglais),
		},
		{
			name:     "search matches NumeroUe",
			method:   http.MethodGet,
			path:     "/v1/ue?search=inf",
			wantCode: http.StatusOK,
			wantData: marchallList(t, compil, reseaux),
		},
		{
			name:     "search matches Intitule",
			method:   http.MethodGet,
			path:     "/v1/ue?search=glais",
			wantCode: http.StatusOK,
			wantData: marchallList(t, anglais),
		},
		{
			name:     "by parcours",
			method:   http.MethodGet,
			path:     "/v1/ue?parcours=2",
			wantCode: http.StatusOK,
			wantData: marchallList(t, compil),
		},
		{
			name:     "no match",
			method:   http.MethodGet,
			path:     "/v1/ue?search=inf&parcours=42",
			wantCode: http.StatusOK,
			wantData: marchallList(t),
		},
	})
}

func Test_ueApi_retrieveAndDestroy(t *testing.T) {
	env := setup(t)

	info := testutil.CreateParcours(t, env.parcoursRepo, "Informatique", 3)
	compil := testutil.CreateUE(t, env.ueRepo, "INF301", "Compilation", 40, info)

	runHTTPTests(t, env.app, []httpTest{
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/ue/42",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/ue/1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, compil),
		},
		{
			name:     "destroy unknown",
			method:   http.MethodDelete,
			path:     "/v1/ue/lol",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "destroy",
			method:   http.MethodDelete,
			path:     "/v1/ue/1",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "destroyed",
			method:   http.MethodGet,
			path:     "/v1/ue/1",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "parcours kept",
			method:   http.MethodGet,
			path:     "/v1/parcours/1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, info),
		},
	})
}
