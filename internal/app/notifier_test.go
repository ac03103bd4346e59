package app

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"homework_status_bot/internal/domain/failure"
)

type fakeTelegramClient struct {
	sendFn func(chatID int64, text string) error
}

func (f *fakeTelegramClient) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.sendFn == nil {
		return errors.New("SendMessage not implemented")
	}
	return f.sendFn(chatID, text)
}

func TestNotifierSend(t *testing.T) {
	var gotChat int64
	var gotText string
	client := &fakeTelegramClient{sendFn: func(chatID int64, text string) error {
		gotChat, gotText = chatID, text
		return nil
	}}
	log, _ := logtest.NewNullLogger()

	n := NewNotifier(client, 777, logrus.NewEntry(log))
	if err := n.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() unexpected error: %v", err)
	}
	if gotChat != 777 || gotText != "hello" {
		t.Errorf("SendMessage(%d, %q), want (777, %q)", gotChat, gotText, "hello")
	}
}

func TestNotifierSendFailure(t *testing.T) {
	transportErr := errors.New("connection reset")
	client := &fakeTelegramClient{sendFn: func(int64, string) error { return transportErr }}
	log, hook := logtest.NewNullLogger()

	err := NewNotifier(client, 777, logrus.NewEntry(log)).Send(context.Background(), "hello")
	if !errors.Is(err, transportErr) {
		t.Fatalf("Send() error = %v, want wrapped transport error", err)
	}
	if kind, _ := failure.KindOf(err); kind != failure.KindDelivery {
		t.Errorf("error kind = %v, want %v", kind, failure.KindDelivery)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.ErrorLevel {
		t.Errorf("expected an error log entry, got %+v", entry)
	}
}
