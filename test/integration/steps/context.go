//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/infra/dependency"
	"github.com/driver-ledger/backend/internal/integration/adapters"
	"github.com/driver-ledger/backend/internal/integration/persistence"
	"github.com/driver-ledger/backend/internal/integration/persistence/model"
	"github.com/driver-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverInit sync.Once
	server     *httptest.Server
	testDB     *mock.Db
	testRedis  *mock.Redis
)

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	redis        *mock.Redis
	tokenService adapter.TokenService

	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	ids           map[string]uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		testDB = mock.NewDb("driver_ledger", model.All())
		testRedis = mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if testRedis != nil {
			testRedis.Server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Ledger setup steps
	ctx.Given(`^an entry from "([^"]*)" worth "([^"]*)" exists on "([^"]*)"$`, test.anEntryExists)
	ctx.Given(`^a trip on "([^"]*)" worth "([^"]*)" lasting (\d+) minutes exists on "([^"]*)"$`, test.aTripExists)
	ctx.Given(`^a "([^"]*)" expense of "([^"]*)" in "([^"]*)" exists on "([^"]*)"$`, test.anExpenseExists)
	ctx.Given(`^a goal of "([^"]*)" exists for (\d+)-(\d+)$`, test.aGoalExists)
	ctx.Given(`^a goal of "([^"]*)" working (\d+) days a week exists for (\d+)-(\d+)$`, test.aGoalWithWorkingDaysExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.db = testDB
	t.redis = testRedis
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.ids = make(map[string]uuid.UUID)

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

// startServer serves the fully wired application over the shared test database.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Metrics.Enabled = true

		injector := dependency.NewInjector(cfg, testDB.Database, testRedis.Client, "test")
		server = httptest.NewServer(injector.Router.Setup(cfg.Server, cfg.Metrics))
	})

	t.uri = server.URL
	t.tokenService = adapters.NewTokenService(testJWTSecret, adapters.TokenDurations{
		Access:  15 * time.Minute,
		Refresh: 7 * 24 * time.Hour,
	}, persistence.NewTokenRepository(testDB.DbConn))
}
