package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/spendcheck/internal/handlers"
	"github.com/SscSPs/spendcheck/internal/middleware"
	"github.com/SscSPs/spendcheck/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testUserID = "user-1"
)

// handlerSuite wires the real auth middleware in front of a per-user group.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	user   *gin.RouterGroup
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()
	s.router = gin.New()
	s.user = s.router.Group("/api/users/:userId",
		middleware.AuthMiddleware(middleware.JWTVerifier{Secret: testSecret}),
		middleware.RequireSelf("userId"),
	)
}

func (s *handlerSuite) token(userID string) string {
	token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "spendcheck-test")
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// do sends an authenticated request as testUserID.
func (s *handlerSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+s.token(testUserID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// doAnonymous sends a request without credentials.
func (s *handlerSuite) doAnonymous(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
