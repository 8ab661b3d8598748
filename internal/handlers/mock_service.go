package handlers

import (
	"context"
	"net/http"

	"reliability_calc/internal/models"
	"reliability_calc/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockCalculator runs the real pipeline but records its input and lets
// tests inject an audit failure.
type mockCalculator struct {
	auditErr error

	calls     int
	lastInput service.CalculationInput
}

func (m *mockCalculator) Validate(startText, endText string) service.ParseResult {
	return service.SubmitManualInterval(0, startText, endText)
}

func (m *mockCalculator) Calculate(ctx context.Context, in service.CalculationInput) (models.Report, error) {
	m.calls++
	m.lastInput = in
	r := service.BuildReport(in)
	r.CalculationID = "test-calc"
	return r, m.auditErr
}

type mockHistory struct {
	resp       []models.Calculation
	err        error
	lastFilter service.HistoryFilter
	calls      int
}

func (m *mockHistory) List(ctx context.Context, f service.HistoryFilter) ([]models.Calculation, error) {
	m.calls++
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
