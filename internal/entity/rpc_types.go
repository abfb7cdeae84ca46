package entity

// RPCRequest is a JSON-RPC 2.0 request envelope.
type RPCRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// RPCError is the error member of a JSON-RPC response. Its presence marks
// the endpoint attempt as failed regardless of HTTP status.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BalanceResponse is the getBalance result envelope.
type BalanceResponse struct {
	Result *struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value uint64 `json:"value"`
	} `json:"result"`
	Error *RPCError `json:"error"`
}

// TokenAccountsResponse is the getTokenAccountsByOwner result envelope with
// jsonParsed encoding. Amount fields are left untyped: some endpoints return
// uiAmount as null, others as a string.
type TokenAccountsResponse struct {
	Result *struct {
		Value []TokenAccountEntry `json:"value"`
	} `json:"result"`
	Error *RPCError `json:"error"`
}

// TokenAccountEntry is one token account owned by the queried address.
type TokenAccountEntry struct {
	Pubkey  string `json:"pubkey"`
	Account struct {
		Data struct {
			Parsed struct {
				Info struct {
					Mint        string `json:"mint"`
					TokenAmount struct {
						Amount         string      `json:"amount"`
						Decimals       int         `json:"decimals"`
						UIAmount       interface{} `json:"uiAmount"`
						UIAmountString string      `json:"uiAmountString"`
					} `json:"tokenAmount"`
				} `json:"info"`
			} `json:"parsed"`
		} `json:"data"`
	} `json:"account"`
}
