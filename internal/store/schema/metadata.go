package schema

import (
	"time"
)

// Metadata represents the metadatas table - one row per on-chain token metadata account
type Metadata struct {
	// Address is the metadata account address (base58)
	Address string `gorm:"column:address;primaryKey;type:varchar(48)"`
	// Name is the on-chain token name
	Name string `gorm:"column:name;not null;type:text;index:idx_metadatas_name"`
	// Symbol is the on-chain token symbol
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// URI points at the off-chain JSON metadata
	URI string `gorm:"column:uri;not null;type:text"`
	// SellerFeeBasisPoints is the royalty in basis points
	SellerFeeBasisPoints int32 `gorm:"column:seller_fee_basis_points;not null"`
	// UpdateAuthorityAddress is the account allowed to update the metadata
	UpdateAuthorityAddress string `gorm:"column:update_authority_address;not null;type:varchar(48);index:idx_metadatas_update_authority"`
	// MintAddress is the token mint this metadata describes
	MintAddress string `gorm:"column:mint_address;not null;uniqueIndex;type:varchar(48)"`
	// PrimarySaleHappened is set once the first sale completed
	PrimarySaleHappened bool `gorm:"column:primary_sale_happened;not null;default:false"`
	// IsMutable indicates whether the update authority may still change the metadata
	IsMutable bool `gorm:"column:is_mutable;not null;default:true"`
	// EditionNonce is the bump seed of the edition PDA, if any
	EditionNonce *int32 `gorm:"column:edition_nonce"`
	// Slot is the slot at which this row was last written by ingestion
	Slot *int64 `gorm:"column:slot"`
	// BurnedAt is set when the token has been burned
	BurnedAt *time.Time `gorm:"column:burned_at;type:timestamp"`
}

// TableName specifies the table name for the Metadata model
func (Metadata) TableName() string {
	return "metadatas"
}

// Burned reports whether the token has been burned
func (m Metadata) Burned() bool {
	return m.BurnedAt != nil
}
