//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session.go -package=mocks
package client

import (
	"bufio"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Caller performs one request/reply exchange with the server.
type Caller interface {
	Call(ctx context.Context, request domain.Request) (domain.Response, error)
}

// Subscriber manages the queue pushed messages arrive on.
type Subscriber interface {
	Subscribe(ctx context.Context, routingKey string) (<-chan []byte, error)
	Unsubscribe(routingKey string) error
}

// Session is the client state machine: logged out, or logged in as one nickname.
// Preconditions the client can check alone are checked before calling the server.
type Session struct {
	log        *slog.Logger
	caller     Caller
	subscriber Subscriber
	renderer   *Renderer

	mu         sync.Mutex
	nickname   string
	loggedIn   bool
	subscribed bool
}

func NewSession(log *slog.Logger, caller Caller, subscriber Subscriber, renderer *Renderer) *Session {
	return &Session{log: log, caller: caller, subscriber: subscriber, renderer: renderer}
}

func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nickname
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Run reads commands line by line until EXIT, end of input, ctx cancellation
// or a fatal error. End of input and cancellation behave like EXIT.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.renderer.Info("Client started")
	lines, readErr := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return s.quit(ctx)
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("unable to read input: %w", err)
				}
				return s.quit(ctx)
			}
			exit, err := s.Execute(ctx, line)
			if err != nil || exit {
				return err
			}
		}
	}
}

func (s *Session) quit(ctx context.Context) error {
	_, err := s.Execute(context.WithoutCancel(ctx), string(domain.TagExit))
	return err
}

// readLines never blocks the caller on a terminal read.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// Execute runs one input line. It reports whether the session is over.
// Only transport failures are returned; everything else is rendered.
func (s *Session) Execute(ctx context.Context, line string) (bool, error) {
	cmd, err := ParseLine(line)
	if err != nil {
		s.renderer.Failure(err.Error())
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case domain.Nick:
		if s.loggedIn {
			s.renderer.Failure(errors.ErrAlreadyLoggedIn.Error())
			return false, nil
		}
		return false, s.login(ctx, c)
	case domain.Exit:
		if s.loggedIn {
			if err = s.logout(ctx, domain.Exit{Nickname: s.nickname}); err != nil {
				return true, err
			}
		}
		s.renderer.Info("Program exited")
		return true, nil
	}

	if !s.loggedIn {
		s.renderer.Failure(errors.ErrNotLoggedIn.Error())
		return false, nil
	}

	switch c := cmd.(type) {
	case domain.Join:
		c.Nickname = s.nickname
		return false, s.join(ctx, c)
	case domain.Leave:
		c.Nickname = s.nickname
		_, err = s.call(ctx, c, true)
	case domain.Logout:
		err = s.logout(ctx, domain.Logout{Nickname: s.nickname})
	case domain.Send:
		c.Nickname = s.nickname
		_, err = s.call(ctx, c, true)
	case domain.Broadcast:
		c.Nickname = s.nickname
		_, err = s.call(ctx, c, true)
	}
	return false, err
}

func (s *Session) login(ctx context.Context, cmd domain.Nick) error {
	resp, err := s.call(ctx, cmd, true)
	if err != nil || !resp.Status {
		return err
	}
	s.nickname = resp.Nickname
	s.loggedIn = true
	s.log.Debug("Logged in", "nickname", s.nickname)
	return nil
}

// join subscribes to the nickname routing key after the first successful join.
func (s *Session) join(ctx context.Context, cmd domain.Join) error {
	resp, err := s.call(ctx, cmd, false)
	if err != nil || !resp.Status {
		return err
	}
	if !s.subscribed {
		pushed, err := s.subscriber.Subscribe(ctx, s.nickname)
		if err != nil {
			return fmt.Errorf("unable to subscribe as %s: %w", s.nickname, err)
		}
		s.subscribed = true
		go s.relay(pushed)
	}
	s.renderer.Success(resp.Message)
	return nil
}

// logout handles both LOGOUT and EXIT, the server logs out on either.
// A server that no longer knows the nickname, after a restart for instance,
// also ends the local session.
func (s *Session) logout(ctx context.Context, cmd domain.Command) error {
	resp, err := s.call(ctx, cmd, false)
	if err != nil {
		return err
	}
	if !resp.Status {
		if resp.Message == errors.ErrNotLoggedIn.Error() {
			return s.endSession()
		}
		return nil
	}
	if err = s.endSession(); err != nil {
		return err
	}
	s.renderer.Success(resp.Message)
	return nil
}

func (s *Session) endSession() error {
	if s.subscribed {
		if err := s.subscriber.Unsubscribe(s.nickname); err != nil {
			return fmt.Errorf("unable to unsubscribe %s: %w", s.nickname, err)
		}
		s.subscribed = false
	}
	s.log.Debug("Logged out", "nickname", s.nickname)
	s.nickname = ""
	s.loggedIn = false
	return nil
}

// call renders failures itself. Successes are rendered only when render is set.
// A timed out call is reported and the session goes on.
func (s *Session) call(ctx context.Context, cmd domain.Command, render bool) (domain.Response, error) {
	resp, err := s.caller.Call(ctx, domain.ToRequest(cmd))
	if err != nil {
		if stderrors.Is(err, errors.ErrCallTimeout) {
			s.renderer.Failure(err.Error())
			return domain.Response{}, nil
		}
		return domain.Response{}, err
	}
	if !resp.Status {
		s.renderer.Failure(resp.Message)
		return resp, nil
	}
	if render {
		s.renderer.Success(resp.Message)
	}
	return resp, nil
}

func (s *Session) relay(pushed <-chan []byte) {
	for body := range pushed {
		s.renderer.Push(string(body))
	}
}
