package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestId", "req-1")
	ts.Equal("req-1", ctx.Value("requestId"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"requestId": "req-1",
		"caller":    "0x5409ed021d9299bf6814279a6a1411a7e866a631",
	})
	ts.Equal("req-1", ctx.Value("requestId"))
	ts.Equal("0x5409ed021d9299bf6814279a6a1411a7e866a631", ctx.Value("caller"))
}

// doneBefore reports whether ctx ends within the given wait.
func doneBefore(ctx context.Context, wait time.Duration) bool {
	select {
	case <-ctx.Done():
		return true
	case <-time.After(wait):
		return false
	}
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.True(doneBefore(ctx, 100*time.Millisecond))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()

	ts.True(doneBefore(ctx, 100*time.Millisecond))
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}
