// internal/app/status_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/homework"
)

const malfunctionPrefix = "Program malfunction: "

// StatusPoller defines one poll cycle and its failure path.
type StatusPoller interface {
	// RunCycle fetches the latest submission, and notifies the chat if its
	// rendered status differs from the last one sent.
	RunCycle(ctx context.Context) error
	// ReportFailure logs err and makes a best-effort attempt to tell the chat about it.
	ReportFailure(ctx context.Context, err error)
}

// HomeworkAPI fetches the raw homework statuses payload.
type HomeworkAPI interface {
	FetchStatuses(ctx context.Context, from time.Time) (any, error)
}

// MessageSender delivers a text to the configured chat.
type MessageSender interface {
	Send(ctx context.Context, text string) error
}

// StatusService implements the StatusPoller interface.
// It is not safe for concurrent use; the poll loop is its only caller.
type StatusService struct {
	api      HomeworkAPI
	notifier MessageSender
	logger   *logrus.Entry
	now      func() time.Time

	lastSent string
}

func NewStatusService(api HomeworkAPI, notifier MessageSender, logger *logrus.Entry) *StatusService {
	return &StatusService{
		api:      api,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// RunCycle implements StatusPoller.
func (s *StatusService) RunCycle(ctx context.Context) error {
	timestamp := s.now()

	payload, err := s.api.FetchStatuses(ctx, timestamp)
	if err != nil {
		return err
	}

	entry, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}

	message, err := homework.FormatStatus(entry)
	if err != nil {
		return err
	}

	if message == s.lastSent {
		s.logger.Debug("Homework status unchanged, nothing to send")
		return nil
	}

	if err := s.notifier.Send(ctx, message); err != nil {
		return err
	}
	s.lastSent = message
	s.logger.WithField("homework_name", entry["homework_name"]).Info("Status change notification sent")
	return nil
}

// ReportFailure implements StatusPoller.
func (s *StatusService) ReportFailure(ctx context.Context, err error) {
	logCtx := s.logger.WithError(err)
	if kind, ok := failure.KindOf(err); ok {
		logCtx = logCtx.WithField("kind", kind.String())
	}
	logCtx.Error("Poll cycle failed")

	if sendErr := s.notifier.Send(ctx, FailureMessage(err)); sendErr != nil {
		logCtx.WithField("send_error", sendErr.Error()).Error("Could not report failure to chat")
	}
}

// LastSent returns the most recently delivered status text, or "" before the first one.
func (s *StatusService) LastSent() string {
	return s.lastSent
}

// FailureMessage renders the chat text for a failed cycle.
func FailureMessage(err error) string {
	return fmt.Sprintf("%s%v", malfunctionPrefix, err)
}
