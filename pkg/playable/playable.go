package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"blackjack-trainer/pkg/deck"
)

// Playable is a game that can be played from a transport (websocket, HTTP, terminal)
type Playable interface {
	// Action performs with a message
	// If response is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(message *PayloadIn) (response *Response, updateState bool, err error)

	// GetState returns the current state of the game
	GetState() (*Response, error)

	// GetEndOfRoundDetails returns the details after a round is settled
	// If the round is still in progress, nil will be returned and the second param will be false
	GetEndOfRoundDetails() (details *RoundOverDetails, isRoundOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If Hands is empty, assume it's a general statement, otherwise the message is about those hands
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Hands   []string     `json:"hands"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// RoundOverDetails provides details on how a round ended
type RoundOverDetails struct {
	// BalanceAdjustments is the net result in cents, keyed by hand
	BalanceAdjustments map[string]int
	Log                interface{}
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(hand string, format string, a ...interface{}) *LogMessage {
	var hands []string
	if hand != "" {
		hands = []string{hand}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Hands:   hands,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(hand string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(hand, format, a...)}
}
