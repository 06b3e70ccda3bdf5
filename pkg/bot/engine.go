// Package bot implements the per-user conversational state machine that
// turns short text messages into currency conversions.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/convobot/pkg/amount"
	"github.com/amirasaad/convobot/pkg/currency"
	"github.com/amirasaad/convobot/pkg/dialog"
	"github.com/amirasaad/convobot/pkg/exchange/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NonTextInput is the reserved marker the transport substitutes when an
// update carries content it cannot render as text (stickers, photos, voice).
// It is generated once per process so no real user can ever type it.
var NonTextInput = "\x00nontext:" + uuid.NewString()

// Converter resolves a validated conversion request into a converted
// amount. Satisfied by the provider chain.
type Converter interface {
	Convert(ctx context.Context, req core.ConversionRequest) (decimal.Decimal, error)
}

// Engine consumes one inbound message at a time per user and produces one
// outbound response, mutating the dialog store as the conversation moves.
type Engine struct {
	catalog   *currency.Registry
	store     *dialog.Store
	converter Converter
	logger    *slog.Logger
}

// New creates a conversation engine.
func New(catalog *currency.Registry, store *dialog.Store, converter Converter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		catalog:   catalog,
		store:     store,
		converter: converter,
		logger:    logger,
	}
}

// Handle processes one inbound message synchronously and returns the
// response text. State is read once at the start and written once at the
// end; the transport delivers a user's messages one at a time.
func (e *Engine) Handle(ctx context.Context, user dialog.User, text string) string {
	st := e.store.Get(user.ID)
	response, next := e.dispatch(ctx, st, text)
	e.store.Put(user.ID, next)

	e.logger.Debug("message handled",
		"user", user.ID, "step", st.Step.String(), "next_step", next.Step.String())
	return response
}

// dispatch classifies the message and applies the transition. Branch order
// is a strict priority: sentinel, one-line shorthand, commands, then
// step-conditional handling.
func (e *Engine) dispatch(ctx context.Context, st dialog.State, text string) (string, dialog.State) {
	idle := dialog.State{}

	if text == NonTextInput {
		return msgNonText, idle
	}

	text = strings.TrimSpace(text)

	if tokens := strings.Fields(text); len(tokens) == 4 && isConnector(tokens[2]) {
		return e.quickConvert(ctx, tokens[0], tokens[1], tokens[3]), idle
	}

	switch text {
	case cmdStart:
		return msgGreeting, idle
	case cmdStop:
		return msgStop, idle
	case cmdConvert:
		return msgAskFrom, dialog.State{Step: dialog.StepAwaitFrom}
	}

	switch st.Step {
	case dialog.StepAwaitFrom:
		code := normalizeCode(text)
		if !e.catalog.IsValid(code) {
			return fmt.Sprintf(msgInvalidCurrency, code) + "\n" + msgAskFrom, st
		}
		return fmt.Sprintf(msgAskTo, code), dialog.State{Step: dialog.StepAwaitTo, From: code}

	case dialog.StepAwaitTo:
		code := normalizeCode(text)
		if !e.catalog.IsValid(code) {
			return fmt.Sprintf(msgInvalidCurrency, code) + "\n" + fmt.Sprintf(msgAskTo, st.From), st
		}
		return fmt.Sprintf(msgAskAmount, st.From, code),
			dialog.State{Step: dialog.StepAwaitAmount, From: st.From, To: code}

	case dialog.StepAwaitAmount:
		amt, err := amount.Parse(text)
		if err != nil {
			// The only validation failure that does not advance the step.
			return msgInvalidAmount + "\n" + fmt.Sprintf(msgAskAmount, st.From, st.To), st
		}
		return e.convert(ctx, text, st.From, st.To, amt), idle

	default:
		return msgUnknown, idle
	}
}

// quickConvert handles the one-line shorthand "<amount> <FROM> {to|in} <TO>".
func (e *Engine) quickConvert(ctx context.Context, amountText, fromText, toText string) string {
	amt, err := amount.Parse(amountText)
	if err != nil {
		return msgInvalidAmount
	}
	return e.convert(ctx, amountText, normalizeCode(fromText), normalizeCode(toText), amt)
}

// convert validates both codes, then delegates to the provider chain. The
// original amount text is echoed back so "10,5" stays "10,5" in the reply.
func (e *Engine) convert(ctx context.Context, amountText, from, to string, amt decimal.Decimal) string {
	for _, code := range []string{from, to} {
		if !e.catalog.IsValid(code) {
			return fmt.Sprintf(msgInvalidCurrency, code)
		}
	}

	result, err := e.converter.Convert(ctx, core.ConversionRequest{From: from, To: to, Amount: amt})
	if err != nil {
		e.logger.Warn("conversion failed", "pair", from+"/"+to, "error", err)
		return renderConversionError(err)
	}
	return fmt.Sprintf(msgResult, amountText, from, result.String(), to)
}

// renderConversionError maps the chain's aggregated error onto the
// user-facing phrasing.
func renderConversionError(err error) string {
	var unsupported *core.UnsupportedCurrencyError
	var pair *core.UnsupportedPairError

	switch {
	case errors.Is(err, core.ErrNoConnection):
		return msgNoConnection
	case errors.Is(err, core.ErrServerNotResponding):
		return msgServerNotResponding
	case errors.As(err, &unsupported):
		return fmt.Sprintf(msgCurrencyNotSupported, unsupported.Currency)
	case errors.As(err, &pair):
		return msgPairNotSupported
	default:
		return msgServerNotResponding
	}
}

// isConnector matches the shorthand connector token case-insensitively.
func isConnector(token string) bool {
	return strings.EqualFold(token, "to") || strings.EqualFold(token, "in")
}

// normalizeCode strips internal whitespace and uppercases, so "p l n"
// becomes "PLN".
func normalizeCode(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), ""))
}
