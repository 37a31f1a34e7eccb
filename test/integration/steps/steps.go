//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/domain/entity"
	"github.com/driver-ledger/backend/internal/integration/adapters"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/driver-ledger/backend/internal/integration/persistence"
)

const defaultPassword = "DefaultPass123!"

// passwordService hashes fixture passwords the same way the API verifies them.
var passwordService = adapters.NewPasswordService(4)

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()

	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server is not healthy: status %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPassword)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	hash, err := passwordService.HashPassword(password)
	if err != nil {
		return err
	}

	user := entity.NewUser(email, "Test User", hash)
	if err := persistence.NewUserRepository(t.db.DbConn).Create(context.Background(), user); err != nil {
		return err
	}
	t.currentUserID = user.ID
	return nil
}

// iAmLoggedInAs switches the session to email, creating the user when missing.
func (t *testContext) iAmLoggedInAs(email string) error {
	users := persistence.NewUserRepository(t.db.DbConn)
	user, err := users.FindByEmail(context.Background(), email)
	if err != nil {
		if err := t.createUser(email, defaultPassword); err != nil {
			return err
		}
		if user, err = users.FindByEmail(context.Background(), email); err != nil {
			return err
		}
	}

	pair, err := t.tokenService.GenerateTokenPair(context.Background(), user.ID, user.Email, false)
	if err != nil {
		return fmt.Errorf("failed to generate tokens: %w", err)
	}

	t.currentUserID = user.ID
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) anEntryExists(source, value, date string) error {
	day, amount, err := parseFixture(date, value)
	if err != nil {
		return err
	}

	e := entity.NewEntry(t.currentUserID, day, source, amount, 1, decimal.Zero, "", nil)
	if err := persistence.NewEntryRepository(t.db.DbConn).Create(context.Background(), e); err != nil {
		return err
	}
	t.ids["entry_id"] = e.ID
	return nil
}

func (t *testContext) aTripExists(platform, amount string, minutes int, date string) error {
	day, value, err := parseFixture(date, amount)
	if err != nil {
		return err
	}

	trip := entity.NewTrip(t.currentUserID, platform, value, decimal.Zero, minutes, day)
	if err := persistence.NewTripRepository(t.db.DbConn).Create(context.Background(), trip); err != nil {
		return err
	}
	t.ids["trip_id"] = trip.ID
	return nil
}

func (t *testContext) anExpenseExists(scope, amount, category, date string) error {
	day, value, err := parseFixture(date, amount)
	if err != nil {
		return err
	}

	e := entity.NewExpense(t.currentUserID, entity.ExpenseScope(scope), category, "", value, day)
	if err := persistence.NewExpenseRepository(t.db.DbConn).Create(context.Background(), e); err != nil {
		return err
	}
	t.ids["expense_id"] = e.ID
	return nil
}

func (t *testContext) aGoalExists(revenue string, year, month int) error {
	return t.createGoal(revenue, nil, year, month)
}

func (t *testContext) aGoalWithWorkingDaysExists(revenue string, days, year, month int) error {
	return t.createGoal(revenue, &days, year, month)
}

func (t *testContext) createGoal(revenue string, days *int, year, month int) error {
	amount, err := decimal.NewFromString(revenue)
	if err != nil {
		return fmt.Errorf("invalid revenue %q: %w", revenue, err)
	}

	g := entity.NewGoal(t.currentUserID, year, month, days, amount, decimal.Zero, decimal.Zero)
	if err := persistence.NewGoalRepository(t.db.DbConn).Create(context.Background(), g); err != nil {
		return err
	}
	t.ids["goal_id"] = g.ID
	return nil
}

func parseFixture(date, amount string) (time.Time, decimal.Decimal, error) {
	day, err := dto.ParseDate(date)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid date %q: %w", date, err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return day, value, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	for key, id := range t.ids {
		content = strings.ReplaceAll(content, "{{"+key+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.ids["last_id"] = id
		}
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.responseObject()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

// countRows counts rows of table matching criteria, soft-deleted rows included.
func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	model, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	modelType := reflect.TypeOf(model).Elem()
	rows := reflect.New(reflect.SliceOf(modelType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(rows.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if count := rows.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object map[string]any, dotSeparatedField string) any {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
