package models

// SwapResult is the outcome of one swap attempt. A failed attempt always
// carries ErrorDetail; partial on-chain state (approve sent, swap rejected)
// still resolves to a result, never to a panic or a raw error.
type SwapResult struct {
	Success     bool
	TxHash      string
	ErrorDetail string
}
