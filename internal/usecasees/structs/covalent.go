package structs

// BalancesResponse is the Covalent balances_v2 payload, trimmed to the
// fields the whale jobs read.
type BalancesResponse struct {
	Data struct {
		Address string        `json:"address"`
		Items   []BalanceItem `json:"items"`
	} `json:"data"`
	Error        bool   `json:"error"`
	ErrorMessage string `json:"error_message"`
}

type BalanceItem struct {
	ContractName     string  `json:"contract_name"`
	ContractTicker   string  `json:"contract_ticker_symbol"`
	ContractAddress  string  `json:"contract_address"`
	ContractDecimals int     `json:"contract_decimals"`
	Balance          string  `json:"balance"`
	Quote            float64 `json:"quote"`
	Quote24h         float64 `json:"quote_24h"`
	PrettyQuote      string  `json:"pretty_quote"`
}

// TokenTxResponse is the Etherscan account/tokentx payload.
type TokenTxResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Result  []TokenTxEntry `json:"result"`
}

type TokenTxEntry struct {
	ContractAddress string `json:"contractAddress"`
	To              string `json:"to"`
	From            string `json:"from"`
	TokenSymbol     string `json:"tokenSymbol"`
	TimeStamp       string `json:"timeStamp"`
	Value           string `json:"value"`
}
