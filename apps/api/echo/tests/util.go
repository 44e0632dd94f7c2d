package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	. "github.com/trezcool/scolarite/apps/api/echo"
	"github.com/trezcool/scolarite/core"
	"github.com/trezcool/scolarite/core/etudiant"
	"github.com/trezcool/scolarite/core/parcours"
	"github.com/trezcool/scolarite/core/ue"
	dummydb "github.com/trezcool/scolarite/storage/database/dummy"
	"github.com/trezcool/scolarite/tests"
)

var errNotFound = httpErr{Error: "not found"}

type testEnv struct {
	app          *Server
	parcoursRepo parcours.Repository
	etudiantRepo etudiant.Repository
	ueRepo       ue.Repository
}

// setup returns a Server over a fresh, empty registry.
func setup(t *testing.T) testEnv {
	// set up DB & repos
	db := testutil.PrepareDB(t)
	env := testEnv{
		parcoursRepo: dummydb.NewParcoursRepository(db),
		etudiantRepo: dummydb.NewEtudiantRepository(db),
		ueRepo:       dummydb.NewUERepository(db),
	}

	// set up services
	parcoursSvc := parcours.NewService(env.parcoursRepo)
	conf := testutil.NewConfig()
	validate, translator := core.NewValidator()

	// set up server
	env.app = NewServer(
		ServerDeps{
			Conf:        conf,
			Logger:      testutil.NewLogger(conf),
			ParcoursSvc: parcoursSvc,
			EtudiantSvc: etudiant.NewService(env.etudiantRepo, parcoursSvc),
			UESvc:       ue.NewService(env.ueRepo, parcoursSvc),
			Validate:    validate,
			Translator:  translator,
		},
	)
	return env
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		if rec.Body.Len() != 0 {
			t.Errorf("failed! data = %v; want no data", rec.Body.String())
		}
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app *Server, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
