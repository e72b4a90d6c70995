package service

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"

	"careerlog-backend/apperr"
)

// ListParams are the pagination, sorting and filtering inputs for list
// operations. Filters is the raw JSON filter expression from the query
// string, empty for none.
type ListParams struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Filters   string
}

func (p ListParams) skip() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

func (p ListParams) sortDoc() bson.D {
	direction := 1
	if p.SortOrder == "desc" {
		direction = -1
	}
	return bson.D{{Key: p.SortBy, Value: direction}}
}

// Fields clients may filter and sort jobs on.
var jobFilterFields = map[string]bool{
	"jobId":          true,
	"url":            true,
	"jobTitle":       true,
	"company":        true,
	"salaryTarget":   true,
	"salaryRange":    true,
	"status":         true,
	"resume":         true,
	"location":       true,
	"employmentType": true,
	"createdAt":      true,
	"updatedAt":      true,
}

// Fields clients may filter and sort alerts on.
var alertFilterFields = map[string]bool{
	"scheduledAlert": true,
	"smsOrEmail":     true,
	"message":        true,
	"lastAlertAt":    true,
	"createdAt":      true,
	"updatedAt":      true,
}

var allowedOperators = map[string]bool{
	"$eq":  true,
	"$ne":  true,
	"$gt":  true,
	"$gte": true,
	"$lt":  true,
	"$lte": true,
	"$in":  true,
}

// parseFilters builds the query filter for a list operation: the mandatory
// owner filter, with the client's filter expression merged on top. Fields are
// restricted to the resource's allow-list and operators to a closed set, so
// arbitrary query documents never reach the store. The owner filter cannot
// be overridden.
func parseFilters(raw, userID string, allowed map[string]bool) (bson.M, error) {
	filter := bson.M{"userId": userID}

	if raw == "" {
		return filter, nil
	}

	var expr map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &expr); err != nil {
		return nil, apperr.Validation("Invalid filters format")
	}

	for field, value := range expr {
		if !allowed[field] {
			return nil, apperr.Validation("Field is not filterable: " + field)
		}

		switch v := value.(type) {
		case map[string]interface{}:
			cond := bson.M{}
			for op, operand := range v {
				if !allowedOperators[op] {
					return nil, apperr.Validation("Unsupported filter operator: " + op)
				}
				if !validOperand(op, operand) {
					return nil, apperr.Validation("Invalid value for filter operator: " + op)
				}
				cond[op] = operand
			}
			if len(cond) == 0 {
				return nil, apperr.Validation("Empty filter expression for field: " + field)
			}
			filter[field] = cond
		default:
			if !scalar(value) {
				return nil, apperr.Validation("Invalid filter value for field: " + field)
			}
			filter[field] = value
		}
	}

	return filter, nil
}

func validOperand(op string, operand interface{}) bool {
	if op == "$in" {
		values, ok := operand.([]interface{})
		if !ok {
			return false
		}
		for _, v := range values {
			if !scalar(v) {
				return false
			}
		}
		return true
	}
	return scalar(operand)
}

// scalar reports whether a decoded JSON value is a plain comparable value.
func scalar(v interface{}) bool {
	switch v.(type) {
	case string, float64, bool, nil:
		return true
	default:
		return false
	}
}

func validateSort(sortBy string, allowed map[string]bool) error {
	if !allowed[sortBy] {
		return apperr.Validation("Field is not sortable: " + sortBy)
	}
	return nil
}
