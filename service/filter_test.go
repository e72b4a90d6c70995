package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"careerlog-backend/apperr"
)

func TestParseFiltersOwnerOnly(t *testing.T) {
	filter, err := parseFilters("", "user-123", jobFilterFields)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"userId": "user-123"}, filter)
}

func TestParseFiltersScalarEquality(t *testing.T) {
	filter, err := parseFilters(`{"status": "applied", "salaryTarget": 90000}`, "user-123", jobFilterFields)
	require.NoError(t, err)

	assert.Equal(t, "user-123", filter["userId"])
	assert.Equal(t, "applied", filter["status"])
	assert.Equal(t, float64(90000), filter["salaryTarget"])
}

func TestParseFiltersOperators(t *testing.T) {
	raw := `{"salaryTarget": {"$gte": 50000, "$lt": 100000}, "status": {"$in": ["applied", "offer"]}}`
	filter, err := parseFilters(raw, "user-123", jobFilterFields)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gte": float64(50000), "$lt": float64(100000)}, filter["salaryTarget"])
	assert.Equal(t, bson.M{"$in": []interface{}{"applied", "offer"}}, filter["status"])
}

func TestParseFiltersMalformedJSON(t *testing.T) {
	_, err := parseFilters(`{"status":`, "user-123", jobFilterFields)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
}

func TestParseFiltersNonObject(t *testing.T) {
	_, err := parseFilters(`["status"]`, "user-123", jobFilterFields)
	assert.Error(t, err)

	_, err = parseFilters(`"status"`, "user-123", jobFilterFields)
	assert.Error(t, err)
}

func TestParseFiltersDisallowedField(t *testing.T) {
	_, err := parseFilters(`{"passwordHash": "x"}`, "user-123", jobFilterFields)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
}

func TestParseFiltersOwnerNotOverridable(t *testing.T) {
	// userId is not in any allow-list, so an attempt to widen the scope fails
	// outright instead of being silently merged.
	_, err := parseFilters(`{"userId": "someone-else"}`, "user-123", jobFilterFields)
	assert.Error(t, err)
}

func TestParseFiltersUnsupportedOperator(t *testing.T) {
	_, err := parseFilters(`{"status": {"$where": "1 == 1"}}`, "user-123", jobFilterFields)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)

	_, err = parseFilters(`{"status": {"$regex": ".*"}}`, "user-123", jobFilterFields)
	assert.Error(t, err)
}

func TestParseFiltersNonScalarValues(t *testing.T) {
	_, err := parseFilters(`{"status": ["applied"]}`, "user-123", jobFilterFields)
	assert.Error(t, err)

	_, err = parseFilters(`{"salaryTarget": {"$gte": {"nested": true}}}`, "user-123", jobFilterFields)
	assert.Error(t, err)

	_, err = parseFilters(`{"status": {"$in": [["nested"]]}}`, "user-123", jobFilterFields)
	assert.Error(t, err)
}

func TestParseFiltersEmptyExpression(t *testing.T) {
	_, err := parseFilters(`{"status": {}}`, "user-123", jobFilterFields)
	assert.Error(t, err)
}

func TestParseFiltersAlertFields(t *testing.T) {
	filter, err := parseFilters(`{"smsOrEmail": "sms"}`, "user-123", alertFilterFields)
	require.NoError(t, err)
	assert.Equal(t, "sms", filter["smsOrEmail"])

	// job-only fields are rejected for alerts
	_, err = parseFilters(`{"company": "Acme"}`, "user-123", alertFilterFields)
	assert.Error(t, err)
}

func TestValidateSort(t *testing.T) {
	assert.NoError(t, validateSort("createdAt", jobFilterFields))
	assert.NoError(t, validateSort("scheduledAlert", alertFilterFields))
	assert.Error(t, validateSort("passwordHash", jobFilterFields))
	assert.Error(t, validateSort("", jobFilterFields))
	// No trimming: a padded field name is not the field.
	assert.Error(t, validateSort(" createdAt", jobFilterFields))
}

func TestListParamsSkip(t *testing.T) {
	params := ListParams{Page: 1, PageSize: 25}
	assert.Equal(t, int64(0), params.skip())

	params = ListParams{Page: 3, PageSize: 10}
	assert.Equal(t, int64(20), params.skip())
}

func TestListParamsSortDoc(t *testing.T) {
	params := ListParams{SortBy: "createdAt", SortOrder: "asc"}
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, params.sortDoc())

	params.SortOrder = "desc"
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, params.sortDoc())
}
