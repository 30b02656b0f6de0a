package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/test/integration/mock"
)

func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am authenticated as user "([^"]*)"$`, iAmAuthenticatedAsUser)
	ctx.Step(`^I use the token "([^"]*)"$`, iUseTheToken)
	ctx.Step(`^my session has been revoked$`, mySessionHasBeenRevoked)
}

func registerRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

func registerAISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the AI service responds with "([^"]*)"$`, theAIServiceRespondsWith)
	ctx.Step(`^the AI service is unavailable$`, theAIServiceIsUnavailable)
	ctx.Step(`^the insight prompt should contain "([^"]*)"$`, theInsightPromptShouldContain)
}

func theAPIServerIsRunning() error {
	if suite == nil || suite.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	return iAmAuthenticatedAsUser(ctx, defaultUserID)
}

func iAmAuthenticatedAsUser(ctx context.Context, userID string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	jti := uuid.NewString()
	claims := adapters.SessionClaims{
		UserID: userID,
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	tc.token = token
	tc.jti = jti
	return nil
}

func iUseTheToken(ctx context.Context, token string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.token = token
	tc.jti = ""
	return nil
}

func mySessionHasBeenRevoked(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.jti == "" {
		return fmt.Errorf("no session to revoke; authenticate first")
	}
	return mock.NewRedis().Set(ctx, "session:revoked:"+tc.jti, "1", time.Hour).Err()
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return doRequest(ctx, method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return doRequest(ctx, method, endpoint, body.Content)
}

func doRequest(ctx context.Context, method, endpoint, body string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	endpoint = tc.expand(endpoint)
	body = tc.expand(body)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, suite.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iStoreTheResponseFieldAs(ctx context.Context, path, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(path)
	if err != nil {
		return err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

// expand replaces {name} placeholders with values stored by earlier steps.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func theAIServiceRespondsWith(response string) error {
	suite.ai.SetResponse(response)
	return nil
}

func theAIServiceIsUnavailable() error {
	suite.ai.SetUnavailable()
	return nil
}

func theInsightPromptShouldContain(fragment string) error {
	prompt := suite.ai.LastPrompt()
	if prompt == "" {
		return fmt.Errorf("no insight prompt was sent")
	}
	if !strings.Contains(prompt, fragment) {
		return fmt.Errorf("prompt does not contain %q:\n%s", fragment, prompt)
	}
	return nil
}
