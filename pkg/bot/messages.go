package bot

// Command keywords. Matched exactly after surrounding whitespace is
// stripped.
const (
	cmdStart   = "/start"
	cmdStop    = "/stop"
	cmdConvert = "/convert"
)

// User-facing response texts.
const (
	msgGreeting = "Hi! I can convert currencies for you. " +
		"Send /convert to go step by step, or just type something like \"10 USD to EUR\"."
	msgStop = "Okay, I'll be here if you need me. Send /convert to start a new conversion."

	msgAskFrom   = "Please, type in the currency to convert from (e.g. USD)."
	msgAskTo     = "Converting from %s to what currency?"
	msgAskAmount = "Enter the amount to convert from %s to %s."

	msgInvalidCurrency = "Currency not valid: %s"
	msgInvalidAmount   = "That does not look like a valid number."

	msgNonText = "I can only work with text messages."
	msgUnknown = "Sorry, I did not get that. " +
		"Send /convert to start a conversion, or type something like \"10 USD to EUR\"."

	msgResult = "%s %s is %s %s"

	msgNoConnection         = "No internet connection, please try again later."
	msgServerNotResponding  = "The currency service is not responding, please try again later."
	msgCurrencyNotSupported = "Currency not supported: %s"
	msgPairNotSupported     = "One or two of these currencies are not supported."
)
