package entity

import "time"

// InboundMessageType is the kind of envelope the messaging substrate
// delivers.
type InboundMessageType string

const (
	MessageText         InboundMessageType = "text"
	MessageStartSession InboundMessageType = "start_session"
	MessageEndSession   InboundMessageType = "end_session"
)

// OutboundMessageType is the kind of reply we emit.
type OutboundMessageType string

const (
	ReplyAck  OutboundMessageType = "ack"
	ReplyText OutboundMessageType = "text"
)

// InboundMessage is one chat turn from the messaging substrate.
type InboundMessage struct {
	ID        string             `json:"id"`
	Sender    string             `json:"sender"`
	Timestamp time.Time          `json:"timestamp"`
	Type      InboundMessageType `json:"type"`
	Text      string             `json:"text,omitempty"`
}

// OutboundMessage is one reply sent back through the substrate.
type OutboundMessage struct {
	Type      OutboundMessageType `json:"type"`
	AckFor    string              `json:"ackFor,omitempty"`
	Text      string              `json:"text,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewAck builds the acknowledgement reply for an inbound message id.
func NewAck(msgID string) OutboundMessage {
	return OutboundMessage{Type: ReplyAck, AckFor: msgID, Timestamp: time.Now().UTC()}
}

// NewTextReply builds a plain text reply.
func NewTextReply(text string) OutboundMessage {
	return OutboundMessage{Type: ReplyText, Text: text, Timestamp: time.Now().UTC()}
}
