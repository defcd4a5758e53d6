package domain

// Instructions are data, not side effects. The settlement engine returns
// them and the enclosing environment executes them after the operation
// commits.

// BankSendInstruction moves value to an address on the payment rail.
type BankSendInstruction struct {
	ToAddress Address `json:"toAddress" bson:"toAddress"`
	Amount    string  `json:"amount" bson:"amount"`
	Denom     string  `json:"denom" bson:"denom"`
}

// TokenTransferInstruction moves token custody on the external registry.
type TokenTransferInstruction struct {
	Erc721Address Address `json:"erc721Address" bson:"erc721Address"`
	TokenId       TokenId `json:"tokenId" bson:"tokenId"`
	ToAddress     Address `json:"toAddress" bson:"toAddress"`
}
