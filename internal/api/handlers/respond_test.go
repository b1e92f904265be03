package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// RespondTestSuite tests the shared response helpers
type RespondTestSuite struct {
	suite.Suite
}

func (suite *RespondTestSuite) respond(err error) *httptest.ResponseRecorder {
	ctx, recorder := testutils.CreateTestGinContext()
	respondError(ctx, err)
	return recorder
}

// TestInvalidTransitionIsBadRequest tests that transition rejections keep
// their specific reason on a 400
func (suite *RespondTestSuite) TestInvalidTransitionIsBadRequest() {
	err := apperrors.NewInvalidTransitionError("accept_invitation", "invitation_declined", "you already declined this invitation")
	recorder := suite.respond(err)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "you already declined this invitation")
}

// TestValidationIsBadRequest tests the 400 mapping for validation errors
func (suite *RespondTestSuite) TestValidationIsBadRequest() {
	recorder := suite.respond(apperrors.NewValidationError("questions", "quiz has no questions"))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "quiz has no questions")
}

// TestConflictSentinels tests the 409 mapping for duplicate accounts and
// concurrent transitions
func (suite *RespondTestSuite) TestConflictSentinels() {
	recorder := suite.respond(apperrors.ErrAccountExists)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "account already exists")

	recorder = suite.respond(apperrors.ErrTransitionConflict)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "changed concurrently")
}

// TestNotFoundIsNotFound tests the 404 mapping
func (suite *RespondTestSuite) TestNotFoundIsNotFound() {
	recorder := suite.respond(apperrors.ErrQuizNotFound)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "quiz not found")
}

// TestForbiddenIsForbidden tests the 403 mapping
func (suite *RespondTestSuite) TestForbiddenIsForbidden() {
	recorder := suite.respond(apperrors.ErrNotOwnerOrAdmin)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not an owner or admin")
}

// TestAuthenticationIsUnauthorized tests the 401 mapping
func (suite *RespondTestSuite) TestAuthenticationIsUnauthorized() {
	recorder := suite.respond(apperrors.ErrInvalidToken)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid or expired token")
}

// TestUnknownErrorIsInternal tests that unexpected errors never leak details
func (suite *RespondTestSuite) TestUnknownErrorIsInternal() {
	recorder := suite.respond(errors.New("pq: connection refused"))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
}

// TestUUIDParam tests path parameter parsing
func (suite *RespondTestSuite) TestUUIDParam() {
	ctx, _ := testutils.CreateTestGinContext()
	ctx.Params = gin.Params{{Key: "id", Value: "0c9a1f2e-8a4d-4c4b-9e2a-5f6d7c8b9a0e"}}

	id, ok := uuidParam(ctx, "id")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "0c9a1f2e-8a4d-4c4b-9e2a-5f6d7c8b9a0e", id.String())
}

// TestUUIDParamInvalid tests that a malformed id responds 400 directly
func (suite *RespondTestSuite) TestUUIDParamInvalid() {
	ctx, recorder := testutils.CreateTestGinContext()
	ctx.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, ok := uuidParam(ctx, "id")
	assert.False(suite.T(), ok)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

// TestPaginationDefaults tests limit/offset bounds
func (suite *RespondTestSuite) TestPaginationDefaults() {
	ctx, _ := testutils.CreateTestGinContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?limit=0&offset=-5", nil)

	limit, offset := pagination(ctx)
	assert.Equal(suite.T(), defaultLimit, limit)
	assert.Equal(suite.T(), 0, offset)
}

// TestPaginationCapped tests that oversized limits fall back to the default
func (suite *RespondTestSuite) TestPaginationCapped() {
	ctx, _ := testutils.CreateTestGinContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?limit=500&offset=40", nil)

	limit, offset := pagination(ctx)
	assert.Equal(suite.T(), defaultLimit, limit)
	assert.Equal(suite.T(), 40, offset)
}

// TestRespondTestSuite runs the test suite
func TestRespondTestSuite(t *testing.T) {
	suite.Run(t, new(RespondTestSuite))
}
