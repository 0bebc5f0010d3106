package minion

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCountsSteps(t *testing.T) {
	calls := 0
	err := Run(RunnerFunc(func() (LoopState, error) {
		calls++
		if calls < 3 {
			return Continue, nil
		}
		return Break, nil
	}))
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Run(RunnerFunc(func() (LoopState, error) {
		calls++
		return Continue, boom
	}))
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestRunBreakWithoutWork(t *testing.T) {
	err := Run(RunnerFunc(func() (LoopState, error) {
		return Break, nil
	}))
	assert.NoError(t, err)
}

func TestRunServesConnections(t *testing.T) {
	s := newHelloService(t)
	go func() {
		Run(s)
	}()

	connectAssert(t, s.addr())
	connectAssert(t, s.addr())
}

func TestLoopStateString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "Break", Break.String())
	assert.Equal(t, "7", LoopState(7).String())
}

// helloService is a minimal accept loop: accept one connection, greet
// it, hang up.
type helloService struct {
	listener net.Listener
}

func newHelloService(t *testing.T) *helloService {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	return &helloService{listener: listener}
}

func (s *helloService) ForEach() (LoopState, error) {
	conn, err := s.listener.Accept()
	if err != nil {
		return Break, err
	}
	_, err = conn.Write([]byte("hello!"))
	conn.Close()
	if err != nil {
		return Break, err
	}
	return Continue, nil
}

func (s *helloService) addr() string {
	return s.listener.Addr().String()
}

func connectAssert(t *testing.T, addr string) {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	buf := make([]byte, 32)
	n, _ := conn.Read(buf)
	assert.Equal(t, "hello!", string(buf[:n]))
}
