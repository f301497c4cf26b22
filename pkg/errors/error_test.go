package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeAlreadyHeld, "position already held")
	suite.NotNil(err)
	suite.Equal(ErrCodeAlreadyHeld, err.Code)
	suite.Equal("position already held", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeMinimumNotReached, "notional %s below minimum", "4.99")
	suite.Equal(ErrCodeMinimumNotReached, err.Code)
	suite.Equal("notional 4.99 below minimum", err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("connection reset")
	err := Wrap(ErrCodeOrderFailed, "failed to place order", cause)
	suite.Equal(ErrCodeOrderFailed, err.Code)
	suite.Equal(cause, err.Cause)
	suite.Equal("[302] failed to place order: connection reset", err.Error())
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("bad payload")
	err := Wrapf(ErrCodePrecisionConversion, cause, "cannot convert %q", "abc")
	suite.Equal("cannot convert \"abc\"", err.Message)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeNothingHeld, "nothing held")
	suite.Equal("[201] nothing held", err.Error())
}

func (suite *ErrorTestSuite) TestUpstream() {
	tests := []struct {
		name         string
		err          error
		expectedCode ErrorCode
		expectNil    bool
	}{
		{name: "nil stays nil", err: nil, expectedCode: ErrCodeUnknown, expectNil: true},
		{name: "plain error is wrapped", err: errors.New("timeout"), expectedCode: ErrCodeUpstreamFailure, expectNil: false},
		{name: "coded error kept verbatim", err: New(ErrCodeMinimumNotReached, "too small"), expectedCode: ErrCodeMinimumNotReached, expectNil: false},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			result := Upstream(tc.err, "executor failed")
			if tc.expectNil {
				suite.Nil(result)

				return
			}

			suite.Equal(tc.expectedCode, GetCode(result))
			suite.True(Is(result, tc.err))
		})
	}
}

func (suite *ErrorTestSuite) TestUpstreamKeepsSameInstance() {
	original := New(ErrCodeOrderFailed, "rejected")
	suite.Same(original, Upstream(original, "ignored"))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	cause := New(ErrCodeNothingHeld, "nothing held")
	err := Wrap(ErrCodeUpstreamFailure, "sell failed", cause)
	suite.Equal(ErrCodeUpstreamFailure, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromNonCodedError() {
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("standard error")))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeAlreadyHeld, "held")
	suite.True(HasCode(err, ErrCodeAlreadyHeld))
	suite.False(HasCode(err, ErrCodeNothingHeld))
}

func (suite *ErrorTestSuite) TestIsRace() {
	suite.True(IsRace(New(ErrCodeAlreadyHeld, "held")))
	suite.True(IsRace(New(ErrCodeNothingHeld, "flat")))
	suite.False(IsRace(New(ErrCodeUpstreamFailure, "down")))
	suite.False(IsRace(errors.New("plain")))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := Upstream(errors.New("boom"), "price failed")
	var coded *Error
	suite.True(As(err, &coded))
	suite.Equal(ErrCodeUpstreamFailure, coded.Code)
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeAlreadyHeld)
	suite.Equal(ErrorCode(300), ErrCodeMinimumNotReached)
	suite.Equal(ErrorCode(400), ErrCodePrecisionConversion)
	suite.Equal(ErrorCode(500), ErrCodeLedgerFailed)
}
