package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: these primitives carry the rejected/ambiguous distinction the
// issuance path depends on; losing a code during wrapping would let a caller
// retry a submission whose outcome is unknown.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "account not found"}
		s.Equal("account not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeAmbiguousOutcome}
		s.Equal("ambiguous_outcome", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("connection reset")
		err := &Error{Code: CodeLedgerUnavailable, Message: "horizon unreachable", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeNotFound, Message: "not found"}
		s.Nil(err.Unwrap())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeLedgerRejected, Message: "bad sequence"}
		err2 := &Error{Code: CodeLedgerRejected, Message: "insufficient fee"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeLedgerRejected}
		err2 := &Error{Code: CodeAmbiguousOutcome}
		s.False(err1.Is(err2))
	})
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	inner := New(CodeAmbiguousOutcome, "submit timed out")
	wrapped := Wrap(inner, CodeInternal, "issue failed")

	s.True(HasCode(wrapped, CodeAmbiguousOutcome), "wrapping must not downgrade ambiguous to internal")
	s.True(errors.Is(wrapped, inner.(*Error)))
}

func (s *DomainErrorsSuite) TestWrapPlainError() {
	inner := errors.New("dial tcp: i/o timeout")
	wrapped := Wrap(inner, CodeLedgerUnavailable, "account load failed")

	s.True(HasCode(wrapped, CodeLedgerUnavailable))
	s.True(errors.Is(wrapped, inner))
}

func (s *DomainErrorsSuite) TestCodeOf() {
	s.Equal(CodeValidation, CodeOf(New(CodeValidation, "title has no alphanumeric characters")))
	s.Equal(CodeInternal, CodeOf(errors.New("plain")))
	s.Equal(CodeInternal, CodeOf(nil))
}
