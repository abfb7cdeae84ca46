package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"solana_advisor/internal/domain/entity"
)

type messageCollector struct {
	messages []entity.OutboundMessage
}

func (c *messageCollector) Send(ctx context.Context, msg entity.OutboundMessage) error {
	c.messages = append(c.messages, msg)
	return nil
}

type stubAdvisor struct {
	analysis *entity.WalletAnalysis
	err      error
	address  string
	calls    int
}

func (s *stubAdvisor) AnalyzeWallet(ctx context.Context, address string) (*entity.WalletAnalysis, error) {
	s.calls++
	s.address = address
	return s.analysis, s.err
}

type stubRenderer struct{ text string }

func (r stubRenderer) Render(analysis *entity.WalletAnalysis) string { return r.text }

func newInbound(msgType entity.InboundMessageType, text string) entity.InboundMessage {
	return entity.InboundMessage{
		ID:        "msg-1",
		Sender:    "user-1",
		Timestamp: time.Now().UTC(),
		Type:      msgType,
		Text:      text,
	}
}

func TestHandleAcksEveryMessage(t *testing.T) {
	advisor := &stubAdvisor{}
	chat := NewChatService(advisor, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound("reaction", ""), out)

	if len(out.messages) != 1 {
		t.Fatalf("expected only the acknowledgement, got %d messages", len(out.messages))
	}
	ack := out.messages[0]
	if ack.Type != entity.ReplyAck || ack.AckFor != "msg-1" {
		t.Fatalf("unexpected acknowledgement: %+v", ack)
	}
	if advisor.calls != 0 {
		t.Fatalf("expected no analysis for unsupported types, got %d calls", advisor.calls)
	}
}

func TestHandleStartSession(t *testing.T) {
	chat := NewChatService(&stubAdvisor{}, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageStartSession, ""), out)

	if len(out.messages) != 2 {
		t.Fatalf("expected ack plus welcome, got %d messages", len(out.messages))
	}
	if out.messages[0].Type != entity.ReplyAck {
		t.Fatalf("expected the ack first, got %+v", out.messages[0])
	}
	welcome := out.messages[1]
	if welcome.Type != entity.ReplyText || !strings.Contains(welcome.Text, "Solana Investment Advisor") {
		t.Fatalf("unexpected welcome message: %+v", welcome)
	}
}

func TestHandleEndSession(t *testing.T) {
	chat := NewChatService(&stubAdvisor{}, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageEndSession, ""), out)

	if len(out.messages) != 1 || out.messages[0].Type != entity.ReplyAck {
		t.Fatalf("expected only the acknowledgement, got %+v", out.messages)
	}
}

func TestHandleTextWithoutAddress(t *testing.T) {
	advisor := &stubAdvisor{}
	chat := NewChatService(advisor, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageText, "hello, what can you do?"), out)

	if len(out.messages) != 2 {
		t.Fatalf("expected ack plus help, got %d messages", len(out.messages))
	}
	help := out.messages[1]
	if !strings.Contains(help.Text, "I need a Solana wallet address") {
		t.Fatalf("unexpected help message: %q", help.Text)
	}
	if !strings.Contains(help.Text, exampleAddress) {
		t.Fatalf("expected the example address in the help text, got %q", help.Text)
	}
	if advisor.calls != 0 {
		t.Fatalf("expected no analysis without an address, got %d calls", advisor.calls)
	}
}

func TestHandleTextRejectsMalformedAddress(t *testing.T) {
	advisor := &stubAdvisor{}
	chat := NewChatService(advisor, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	// Address-length input made of characters outside the base58 alphabet.
	chat.Handle(context.Background(), newInbound(entity.MessageText, strings.Repeat("0", 40)), out)

	if len(out.messages) != 2 {
		t.Fatalf("expected ack plus rejection, got %d messages", len(out.messages))
	}
	if !strings.Contains(out.messages[1].Text, "Invalid Wallet Address") {
		t.Fatalf("unexpected rejection message: %q", out.messages[1].Text)
	}
	if advisor.calls != 0 {
		t.Fatalf("expected no analysis for malformed input, got %d calls", advisor.calls)
	}
}

func TestHandleTextAnalyzesEmbeddedAddress(t *testing.T) {
	advisor := &stubAdvisor{analysis: &entity.WalletAnalysis{
		Address:  exampleAddress,
		Snapshot: &entity.WalletSnapshot{Address: exampleAddress, NativeBalance: 2, DataSource: "rpc"},
		Market:   entity.FallbackMarketContext(),
	}}
	chat := NewChatService(advisor, stubRenderer{text: "FULL REPORT"}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageText,
		"can you check "+exampleAddress+" for me?"), out)

	if len(out.messages) != 3 {
		t.Fatalf("expected ack, working notice and report, got %d messages", len(out.messages))
	}
	if out.messages[0].Type != entity.ReplyAck {
		t.Fatalf("expected the ack first, got %+v", out.messages[0])
	}
	working := out.messages[1]
	if !strings.Contains(working.Text, "Analyzing wallet") || !strings.Contains(working.Text, "7pQHLgaT...YLHsSXtk") {
		t.Fatalf("unexpected working notice: %q", working.Text)
	}
	report := out.messages[2]
	if report.Text != "**Wallet Analysis Complete!**\n\nFULL REPORT" {
		t.Fatalf("unexpected report message: %q", report.Text)
	}
	if advisor.address != exampleAddress {
		t.Fatalf("expected the embedded address extracted, got %q", advisor.address)
	}
}

func TestHandleTextRendersFailureReport(t *testing.T) {
	advisor := &stubAdvisor{
		analysis: &entity.WalletAnalysis{Address: exampleAddress, Market: entity.FallbackMarketContext()},
		err:      entity.ErrAllSourcesExhausted,
	}
	chat := NewChatService(advisor, stubRenderer{text: "FAILURE REPORT"}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageText, exampleAddress), out)

	if len(out.messages) != 3 {
		t.Fatalf("expected ack, working notice and failure report, got %d messages", len(out.messages))
	}
	report := out.messages[2]
	if report.Text != "FAILURE REPORT" {
		t.Fatalf("expected the failure report without the success banner, got %q", report.Text)
	}
}

func TestHandleTextValidationErrorFromAdvisor(t *testing.T) {
	advisor := &stubAdvisor{err: entity.NewValidationError(exampleAddress)}
	chat := NewChatService(advisor, stubRenderer{}, nopLogger{})
	out := &messageCollector{}

	chat.Handle(context.Background(), newInbound(entity.MessageText, exampleAddress), out)

	last := out.messages[len(out.messages)-1]
	if !strings.Contains(last.Text, "Invalid Wallet Address") {
		t.Fatalf("expected the rejection message, got %q", last.Text)
	}
}
