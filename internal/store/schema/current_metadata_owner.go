package schema

// CurrentMetadataOwner represents the current_metadata_owners table - point-in-time owner of a mint
type CurrentMetadataOwner struct {
	// MintAddress is the token mint (primary key, at most one current owner per mint)
	MintAddress string `gorm:"column:mint_address;primaryKey;type:varchar(48)"`
	// OwnerAddress is the wallet currently holding the token
	OwnerAddress string `gorm:"column:owner_address;not null;type:varchar(48);index:idx_current_metadata_owners_owner"`
	// TokenAccountAddress is the token account holding the token
	TokenAccountAddress string `gorm:"column:token_account_address;not null;type:varchar(48)"`
	// Slot is the slot at which the ownership was observed
	Slot int64 `gorm:"column:slot;not null"`
}

// TableName specifies the table name for the CurrentMetadataOwner model
func (CurrentMetadataOwner) TableName() string {
	return "current_metadata_owners"
}
