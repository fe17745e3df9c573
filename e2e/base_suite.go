package e2e

import (
	"chat-relay/rpc"
	"chat-relay/transport/amqp"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// BaseSuite runs against a live relay. It is skipped when AMQP_URL is not set.
type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.AMQPURL == "" {
		s.T().Skip("AMQP_URL not set, skipping end-to-end suite")
	}
}

func (s *BaseSuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// healthConn dials the health endpoint. Each check is logged with its status code
// and, when DebugJSON is set, the health response as JSON.
func (s *BaseSuite) healthConn(t *testing.T, name string) *grpc.ClientConn {
	s.header(t, name)

	conn, err := grpc.NewClient(s.Config.HealthAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any,
			cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)
			t.Logf("GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if resp, ok := reply.(*healthpb.HealthCheckResponse); ok && err == nil && s.Config.DebugJSON {
				t.Log(protojson.Format(resp))
			}
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to health server at "+s.Config.HealthAddr)
	return conn
}

// WithHealth provides a health client within a contextual test step
func (s *BaseSuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	conn := s.healthConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fn(ctx, healthpb.NewHealthClient(conn))
}

// WithRelay provides a relay client over its own broker connection
func (s *BaseSuite) WithRelay(name string, fn func(ctx context.Context, client *rpc.Client, transport *amqp.Client)) {
	s.header(s.T(), name)
	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	transport, err := amqp.DialClient(log, amqp.Config{
		URL:      s.Config.AMQPURL,
		RPCQueue: s.Config.RPCQueue,
		Exchange: s.Config.Exchange,
	})
	s.Require().NoError(err, "Failed to connect to broker")
	defer transport.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, rpc.NewClient(log, transport, 5*time.Second), transport)
}
