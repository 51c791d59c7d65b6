package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

// OpenAccount opens a new account with a zero balance.
type OpenAccount struct {
	AccountID string `json:"account_id" validate:"required;max:64"`
	Owner     string `json:"owner" validate:"required;min:2;max:128"`
}

// DepositFunds credits an account.
type DepositFunds struct {
	AccountID string `json:"account_id" validate:"required"`
	Amount    int64  `json:"amount" validate:"positive"`
}

// WithdrawFunds debits an account.
type WithdrawFunds struct {
	AccountID string `json:"account_id" validate:"required"`
	Amount    int64  `json:"amount" validate:"positive"`
}

// CloseAccount closes an account with a zero balance.
type CloseAccount struct {
	AccountID string `json:"account_id" validate:"required"`
}

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// InsufficientFundsError is returned when a withdrawal exceeds the balance.
type InsufficientFundsError struct {
	AccountID string
	Balance   int64
	Requested int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %s has insufficient funds: balance %d, requested %d", e.AccountID, e.Balance, e.Requested)
}

// accounts is an in-memory account store.
type accounts struct {
	mu       sync.Mutex
	balances map[string]int64
	owners   map[string]string
}

func newAccounts() *accounts {
	return &accounts{
		balances: make(map[string]int64),
		owners:   make(map[string]string),
	}
}

// accountNotEmpty is returned when closing an account that still holds funds.
func accountNotEmpty(id string, balance int64) error {
	return problem.AsError(problem.New(http.StatusConflict).
		WithType("urn:commandserver:account-not-empty").
		WithTitle("Account not empty").
		WithDetail(fmt.Sprintf("account %s still holds %d", id, balance)).
		With("balance", balance))
}

func (a *accounts) open(_ context.Context, cmd OpenAccount) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.balances[cmd.AccountID]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, cmd.AccountID)
	}
	a.balances[cmd.AccountID] = 0
	a.owners[cmd.AccountID] = cmd.Owner
	return nil
}

func (a *accounts) deposit(_ context.Context, cmd DepositFunds) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.balances[cmd.AccountID]; !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, cmd.AccountID)
	}
	a.balances[cmd.AccountID] += cmd.Amount
	return nil
}

func (a *accounts) withdraw(_ context.Context, cmd WithdrawFunds) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	balance, ok := a.balances[cmd.AccountID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, cmd.AccountID)
	}
	if balance < cmd.Amount {
		return &InsufficientFundsError{AccountID: cmd.AccountID, Balance: balance, Requested: cmd.Amount}
	}
	a.balances[cmd.AccountID] = balance - cmd.Amount
	return nil
}

func (a *accounts) close(_ context.Context, cmd CloseAccount) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	balance, ok := a.balances[cmd.AccountID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, cmd.AccountID)
	}
	if balance != 0 {
		return accountNotEmpty(cmd.AccountID, balance)
	}
	delete(a.balances, cmd.AccountID)
	delete(a.owners, cmd.AccountID)
	return nil
}

func (a *accounts) balance(id string) (int64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.balances[id]
	return b, ok
}

// module registers the account command handlers.
func (a *accounts) module() (*command.Module, error) {
	m := command.NewModule()
	err := errors.Join(
		command.For[OpenAccount](m).HandleContext(a.open),
		command.For[DepositFunds](m).HandleContext(a.deposit),
		command.For[WithdrawFunds](m).HandleContext(a.withdraw),
		command.For[CloseAccount](m).HandleContext(a.close),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// converters classify account errors as problem documents.
func converters() []problem.Converter {
	return []problem.Converter{
		problem.Is(ErrAccountExists, problem.New(http.StatusConflict).
			WithType("urn:commandserver:account-exists").
			WithTitle("Account already exists")),
		problem.Is(ErrAccountNotFound, problem.New(http.StatusNotFound).
			WithType("urn:commandserver:account-not-found").
			WithTitle("Account not found")),
		problem.Match(func(e *InsufficientFundsError) problem.Details {
			return problem.New(http.StatusUnprocessableEntity).
				WithType("urn:commandserver:insufficient-funds").
				WithTitle("Insufficient funds").
				WithDetail(e.Error()).
				With("balance", e.Balance).
				With("requested", e.Requested)
		}),
		problem.FromStatusCoder,
	}
}
