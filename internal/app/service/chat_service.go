package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/metrics"
	"solana_advisor/internal/pkg/utils"
)

// exampleAddress is shown in help texts so users know what a well-formed
// address looks like.
const exampleAddress = "7pQHLgaTrP25TjmSaoGvTJJKeS2ZyGT2xAAvYLHsSXtk"

const welcomeText = "🔮 **Solana Investment Advisor**\n\n" +
	"I analyze Solana wallets and suggest what to do with them:\n" +
	"• Portfolio breakdown with USD valuation\n" +
	"• Staking recommendations with estimated annual returns\n" +
	"• Diversification and market advice from a curated knowledge base\n\n" +
	"Please provide your Solana wallet address to get started!"

const helpText = "🤔 I need a Solana wallet address to analyze your portfolio.\n\n" +
	"Please provide a valid Solana wallet address (32-44 characters, base58 encoded).\n\n" +
	"You can find your wallet address in:\n" +
	"• Phantom wallet\n" +
	"• Solflare wallet\n" +
	"• Any other Solana wallet\n\n" +
	"**Example:** `" + exampleAddress + "`"

const invalidAddressText = "❌ **Invalid Wallet Address**\n\n" +
	"The address you provided doesn't appear to be a valid Solana wallet address.\n\n" +
	"Please provide a valid Solana wallet address (32-44 characters, base58 encoded).\n\n" +
	"**Example:** `" + exampleAddress + "`"

// ChatServiceImpl implements port.ChatService: the conversational surface
// over the advisor pipeline.
type ChatServiceImpl struct {
	advisor  port.AdvisorService
	renderer port.ReportRenderer
	logger   port.Logger
}

// NewChatService creates the chat-turn handler.
func NewChatService(advisor port.AdvisorService, renderer port.ReportRenderer, l port.Logger) port.ChatService {
	return &ChatServiceImpl{
		advisor:  advisor,
		renderer: renderer,
		logger:   l,
	}
}

// Handle processes one inbound chat turn. The acknowledgement always goes
// out first, whatever the message type.
func (s *ChatServiceImpl) Handle(ctx context.Context, msg entity.InboundMessage, out port.Messenger) {
	metrics.ChatMessages.WithLabelValues(string(msg.Type)).Inc()
	s.send(ctx, out, entity.NewAck(msg.ID))

	switch msg.Type {
	case entity.MessageStartSession:
		s.logger.Info("Investment advisor session started", "sender", msg.Sender)
		s.send(ctx, out, entity.NewTextReply(welcomeText))
	case entity.MessageEndSession:
		s.logger.Info("Investment advisor session ended", "sender", msg.Sender)
	case entity.MessageText:
		s.handleText(ctx, msg, out)
	default:
		s.logger.Debug("Ignoring unsupported message type", "type", msg.Type, "sender", msg.Sender)
	}
}

func (s *ChatServiceImpl) handleText(ctx context.Context, msg entity.InboundMessage, out port.Messenger) {
	input := strings.TrimSpace(msg.Text)

	address := entity.ExtractAddress(input)
	if address == "" && len(input) >= 32 && len(input) <= 44 {
		// The whole message may be an address that the pattern rejected
		// only because of a bad character; let validation name the problem.
		address = input
	}

	if address == "" {
		s.send(ctx, out, entity.NewTextReply(helpText))
		return
	}
	if !entity.IsValidAddress(address) {
		s.send(ctx, out, entity.NewTextReply(invalidAddressText))
		return
	}

	s.send(ctx, out, entity.NewTextReply(fmt.Sprintf(
		"🔍 Analyzing wallet `%s`... This may take a moment.", utils.TruncateAddress(address))))

	analysis, err := s.advisor.AnalyzeWallet(ctx, address)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			s.send(ctx, out, entity.NewTextReply(invalidAddressText))
			return
		}
		// Exhausted sources: the analysis still carries the error-typed
		// recommendation, so render it as the failure report.
		s.send(ctx, out, entity.NewTextReply(s.renderer.Render(analysis)))
		return
	}

	s.send(ctx, out, entity.NewTextReply("**Wallet Analysis Complete!**\n\n"+s.renderer.Render(analysis)))
}

func (s *ChatServiceImpl) send(ctx context.Context, out port.Messenger, message entity.OutboundMessage) {
	if err := out.Send(ctx, message); err != nil {
		s.logger.Warn("Failed to deliver outbound message", "type", message.Type, "error", err)
	}
}
