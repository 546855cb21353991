package models

import "time"

type CallStatus string

const (
	CallStatusCompleted CallStatus = "Completed"
	CallStatusBusy      CallStatus = "Busy"
	CallStatusNoAnswer  CallStatus = "No-Answer"
	CallStatusFailed    CallStatus = "Failed"
)

type MessageDirection string

const (
	MessageInbound  MessageDirection = "inbound"
	MessageOutbound MessageDirection = "outbound"
)

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "Sent"
	MessageStatusDelivered MessageStatus = "Delivered"
	MessageStatusReceived  MessageStatus = "Received"
	MessageStatusFailed    MessageStatus = "Failed"
)

// The log types are immutable rows produced by the telephony event pipeline;
// this API only reads them. Stored columns from_number/to_number surface as
// "from"/"to" in responses.

type CallLog struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Duration  int        `json:"duration"`
	Status    CallStatus `json:"status"`
	Cost      float64    `json:"cost"`
	Direction string     `json:"direction"`
	CallType  string     `json:"callType"`
}

type ErrorLog struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Date    time.Time `json:"date"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

type MessageLog struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Date      time.Time        `json:"date"`
	Direction MessageDirection `json:"direction"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Body      string           `json:"body"`
	Status    MessageStatus    `json:"status"`
}

type CallRecording struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	CallSID  string    `json:"callSid"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
	URL      string    `json:"url"`
}
