package port

import (
	"context"

	"solana_advisor/internal/domain/entity"
)

// Messenger delivers outbound messages over whatever substrate carried the
// inbound one. The webhook handler implements it with a request-scoped
// collector.
type Messenger interface {
	Send(ctx context.Context, msg entity.OutboundMessage) error
}

// ChatService handles one conversation turn: acknowledge, extract an
// address, drive the pipeline and reply.
type ChatService interface {
	Handle(ctx context.Context, msg entity.InboundMessage, out Messenger)
}
