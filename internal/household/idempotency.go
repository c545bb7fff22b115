package household

// ledgerRecord is the frozen snapshot of the first successful response for
// an idempotency key. Exactly one of Attention or Automation is set,
// depending on the operation the key scopes. Records live for the process
// lifetime with no TTL or eviction.
type ledgerRecord struct {
	Status     int
	Attention  *AttentionItem
	Automation *Automation
}

// Ledger keys are composite: operation, target entity, then the
// client-supplied key, so the same client key cannot collide across
// operations or targets.

func resolveLedgerKey(attentionID, clientKey string) string {
	return "attention_resolve:" + attentionID + ":" + clientKey
}

func automationLedgerKey(clientKey string) string {
	return "automation_create:" + clientKey
}
