package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobUpdateFieldsEmpty(t *testing.T) {
	assert.Empty(t, jobUpdateFields(UpdateJobRequest{}))
}

func TestJobUpdateFieldsOnlySetFields(t *testing.T) {
	title := "Backend Engineer"
	target := 95000.0
	req := UpdateJobRequest{JobTitle: &title, SalaryTarget: &target}

	fields := jobUpdateFields(req)
	assert.Len(t, fields, 2)
	assert.Equal(t, "Backend Engineer", fields["jobTitle"])
	assert.Equal(t, 95000.0, fields["salaryTarget"])
	assert.NotContains(t, fields, "status")
}

func TestJobUpdateFieldsZeroValuesKept(t *testing.T) {
	// A pointer to the zero value is an explicit update, not an omission.
	target := 0.0
	empty := ""
	req := UpdateJobRequest{SalaryTarget: &target, Resume: &empty}

	fields := jobUpdateFields(req)
	assert.Equal(t, 0.0, fields["salaryTarget"])
	assert.Equal(t, "", fields["resume"])
}

func TestAlertUpdateFields(t *testing.T) {
	assert.Empty(t, alertUpdateFields(UpdateAlertRequest{}))

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	channel := "email"
	req := UpdateAlertRequest{ScheduledAlert: &at, SmsOrEmail: &channel}

	fields := alertUpdateFields(req)
	assert.Len(t, fields, 2)
	assert.Equal(t, at, fields["scheduledAlert"])
	assert.Equal(t, "email", fields["smsOrEmail"])
}
