package domain

const (
	// PUBLIC_KEY_LENGTH is the decoded length of an account address
	PUBLIC_KEY_LENGTH = 32

	// MAX_ADDRESS_LENGTH bounds the encoded form of an account address
	MAX_ADDRESS_LENGTH = 44
)
