package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/testutil"
)

type RemoteSuite struct {
	suite.Suite
	server *httptest.Server
	calls  atomic.Int32
	remote *Remote
}

func TestRemoteSuite(t *testing.T) {
	suite.Run(t, new(RemoteSuite))
}

func (s *RemoteSuite) SetupTest() {
	s.calls.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		switch strings.TrimPrefix(r.URL.Path, "/validate/") {
		case "cat", "dog":
			w.WriteHeader(http.StatusOK)
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	s.remote = NewRemote(s.server.URL+"/", testutil.NopLogger())
}

func (s *RemoteSuite) TearDownTest() {
	s.server.Close()
}

func (s *RemoteSuite) TestContains() {
	s.True(s.remote.Contains("CAT"))
	s.True(s.remote.Contains("dog"))
	s.False(s.remote.Contains("zzz"))
}

func (s *RemoteSuite) TestShortWordsSkipLookup() {
	s.False(s.remote.Contains("a"))
	s.Equal(int32(0), s.calls.Load())
}

func (s *RemoteSuite) TestAnswersAreCached() {
	s.True(s.remote.Contains("cat"))
	s.True(s.remote.Contains("Cat"))
	s.False(s.remote.Contains("zzz"))
	s.False(s.remote.Contains("zzz"))
	s.Equal(int32(2), s.calls.Load())
}

func (s *RemoteSuite) TestServerErrorIsNotAWord() {
	_, err := s.remote.Lookup(context.Background(), "boom")
	s.Error(err)
	s.False(s.remote.Contains("boom"))
	s.Equal(int32(2), s.calls.Load())
}

func (s *RemoteSuite) TestUnreachableServer() {
	s.server.Close()
	s.False(s.remote.Contains("cat"))
}
