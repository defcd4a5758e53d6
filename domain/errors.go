package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller fails an ownership or admin check
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrNotApproved will throw if the marketplace lacks transfer approval for the token
	ErrNotApproved = errors.New("marketplace not approved for token")
	// ErrCollectionAlreadyRegistered will throw when registering a collection twice
	ErrCollectionAlreadyRegistered = errors.New("collection already registered")
	// ErrCollectionNotFound will throw when updating an unregistered collection
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrCollectionPaused will throw when listing or buying on a paused collection
	ErrCollectionPaused = errors.New("collection is paused")
	// ErrSaleDoesNotExist will throw if the requested sale is not listed
	ErrSaleDoesNotExist = errors.New("sale does not exist")
	// ErrDenomNotSupported will throw if a price denomination differs from the accepted currency
	ErrDenomNotSupported = errors.New("denom not supported")
	// ErrInsufficientFunds will throw if attached funds do not match the sale price exactly
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrRoyaltyTooHigh will throw if taker fee plus royalty exceeds the paid amount
	ErrRoyaltyTooHigh = errors.New("taker fee plus royalty exceeds 100 percent")

	// request error
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidPercentage   = errors.New("percentage out of range")
	ErrInvalidNumberFormat = errors.New("invalid number format")
)
