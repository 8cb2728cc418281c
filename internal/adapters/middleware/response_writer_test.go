package middleware

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type (
	ResponseWriterTestSuite struct {
		suite.Suite
		recorder *httptest.ResponseRecorder
		wrapped  *ResponseWriter
	}

	mockFlusher struct {
		http.ResponseWriter
		flushed bool
	}

	mockHijacker struct {
		http.ResponseWriter
		hijacked bool
	}
)

func (m *mockFlusher) Flush() {
	m.flushed = true
}

func (m *mockHijacker) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	m.hijacked = true

	return nil, nil, nil
}

func TestResponseWriterTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResponseWriterTestSuite))
}

func (s *ResponseWriterTestSuite) SetupTest() {
	s.recorder = httptest.NewRecorder()
	s.wrapped = NewResponseWriter(s.recorder)
}

func (s *ResponseWriterTestSuite) TestDefaultsToStatusOK() {
	s.Require().Equal(http.StatusOK, s.wrapped.StatusCode())
	s.Require().Zero(s.wrapped.BytesWritten())
}

func (s *ResponseWriterTestSuite) TestRecordsStatusCode() {
	s.wrapped.WriteHeader(http.StatusTeapot)

	s.Require().Equal(http.StatusTeapot, s.wrapped.StatusCode())
	s.Require().Equal(http.StatusTeapot, s.recorder.Code)
}

func (s *ResponseWriterTestSuite) TestAccumulatesBytesWritten() {
	_, err := s.wrapped.Write([]byte("hello"))
	s.Require().NoError(err)

	_, err = s.wrapped.Write([]byte(", world"))
	s.Require().NoError(err)

	s.Require().Equal(int64(12), s.wrapped.BytesWritten())
	s.Require().Equal("hello, world", s.recorder.Body.String())
}

func (s *ResponseWriterTestSuite) TestFlushDelegatesWhenSupported() {
	flusher := &mockFlusher{ResponseWriter: s.recorder}
	wrapped := NewResponseWriter(flusher)

	wrapped.Flush()

	s.Require().True(flusher.flushed)
}

func (s *ResponseWriterTestSuite) TestHijackDelegatesWhenSupported() {
	hijacker := &mockHijacker{ResponseWriter: s.recorder}
	wrapped := NewResponseWriter(hijacker)

	_, _, err := wrapped.Hijack()

	s.Require().NoError(err)
	s.Require().True(hijacker.hijacked)
}

func (s *ResponseWriterTestSuite) TestHijackFailsWhenUnsupported() {
	_, _, err := s.wrapped.Hijack()

	s.Require().ErrorIs(err, http.ErrNotSupported)
}

func (s *ResponseWriterTestSuite) TestUnwrapExposesUnderlyingWriter() {
	s.Require().Same(http.ResponseWriter(s.recorder), s.wrapped.Unwrap())
}
