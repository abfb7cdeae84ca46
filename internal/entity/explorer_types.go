package entity

// ExplorerAccountResponse is the Solscan-style account endpoint payload.
// Only the lamport balance is consumed; the explorer exposes no token
// holdings in this shape.
type ExplorerAccountResponse struct {
	Data *struct {
		Lamports interface{} `json:"lamports"`
	} `json:"data"`
}
