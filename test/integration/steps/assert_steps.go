package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
}

func registerDatabaseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the "([^"]*)" table should have (\d+) rows?$`, theTableShouldHaveRows)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s",
			expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, fragment string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), fragment) {
		return fmt.Errorf("response does not contain %q:\n%s", fragment, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expected = tc.expand(expected)

	actual, err := tc.responseField(path)
	if err != nil {
		return err
	}
	if !valueMatches(actual, expected) {
		return fmt.Errorf("field %q = %v, want %q", path, actual, expected)
	}
	return nil
}

func theResponseFieldShouldBeNull(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	actual, err := tc.responseField(path)
	if err != nil {
		return err
	}
	if actual != nil {
		return fmt.Errorf("field %q = %v, want null", path, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.responseField(path)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, path string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.responseField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", path, value)
	}
	if len(list) != count {
		return fmt.Errorf("field %q has %d items, want %d:\n%s",
			path, len(list), count, string(tc.responseBody))
	}
	return nil
}

func theTableShouldHaveRows(table string, expected int) error {
	count, err := suite.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("table %q has %d rows, want %d", table, count, expected)
	}
	return nil
}

// responseField parses the recorded response body and walks a
// dot-separated path. Numeric segments index into arrays, so
// "data.0.label" reaches the first row's label.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	if tc.response == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var root interface{}
	if err := json.Unmarshal(tc.responseBody, &root); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := root
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in %q", part, path)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("segment %q in %q is not an array index", part, path)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d out of range in %q (len %d)", index, path, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q", path, part)
		}
	}
	return current, nil
}

// valueMatches compares a decoded JSON value against its feature-file
// representation. Numbers compare numerically so "1500" matches 1500.0.
func valueMatches(actual interface{}, expected string) bool {
	switch v := actual.(type) {
	case string:
		return v == expected
	case float64:
		want, err := strconv.ParseFloat(expected, 64)
		if err != nil {
			return false
		}
		return math.Abs(v-want) < 1e-6
	case bool:
		return strconv.FormatBool(v) == expected
	case nil:
		return expected == "null"
	default:
		return fmt.Sprintf("%v", v) == expected
	}
}
