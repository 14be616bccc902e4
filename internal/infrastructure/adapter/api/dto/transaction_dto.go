package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for creating a
// transaction. Amount is a json.Number so both numeric literals and their
// exact decimal representation survive decoding.
type CreateTransactionRequest struct {
	NetID       string      `json:"netid" binding:"required"`
	Amount      json.Number `json:"amount" binding:"required"`
	Description string      `json:"description"`
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	NetID       string    `json:"netid"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionToResponse converts a Transaction entity to its API representation
func TransactionToResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		NetID:       transaction.NetID,
		Amount:      transaction.Amount(),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// TransactionListResponse bundles a user's transactions with their balance
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      string                `json:"balance"`
}

// TransactionsToListResponse converts a slice of transactions plus the
// current balance to the list API representation
func TransactionsToListResponse(transactions []*entity.Transaction, balance string) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, TransactionToResponse(transaction))
	}
	return TransactionListResponse{
		Transactions: responses,
		Balance:      balance,
	}
}
