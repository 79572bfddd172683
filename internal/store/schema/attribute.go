package schema

import (
	"github.com/google/uuid"
)

// Attribute represents the attributes table - one trait of a metadata's JSON document
type Attribute struct {
	// ID is the surrogate key assigned by ingestion
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// MetadataAddress references metadatas.address
	MetadataAddress string `gorm:"column:metadata_address;not null;type:varchar(48);index:idx_attributes_metadata_trait,priority:1"`
	// TraitType is the trait name, e.g. "Background"
	TraitType *string `gorm:"column:trait_type;type:text;index:idx_attributes_metadata_trait,priority:2"`
	// Value is the trait value, e.g. "Blue"
	Value *string `gorm:"column:value;type:text"`
	// FirstVerifiedCreator is the first verified creator of the metadata, used to scope traits to a collection
	FirstVerifiedCreator *string `gorm:"column:first_verified_creator;type:varchar(48)"`
}

// TableName specifies the table name for the Attribute model
func (Attribute) TableName() string {
	return "attributes"
}

// MetadataCreator represents the metadata_creators table
type MetadataCreator struct {
	// MetadataAddress references metadatas.address
	MetadataAddress string `gorm:"column:metadata_address;primaryKey;type:varchar(48)"`
	// CreatorAddress is the creator wallet
	CreatorAddress string `gorm:"column:creator_address;primaryKey;type:varchar(48);index:idx_metadata_creators_creator"`
	// Share is the creator's royalty share in percent
	Share int32 `gorm:"column:share;not null"`
	// Verified is set when the creator signed the metadata
	Verified bool `gorm:"column:verified;not null;default:false"`
	// Position is the creator's index in the on-chain creators array
	Position *int32 `gorm:"column:position"`
}

// TableName specifies the table name for the MetadataCreator model
func (MetadataCreator) TableName() string {
	return "metadata_creators"
}

// MetadataCollectionKey represents the metadata_collection_keys table - collection membership
type MetadataCollectionKey struct {
	// MetadataAddress references metadatas.address
	MetadataAddress string `gorm:"column:metadata_address;primaryKey;type:varchar(48)"`
	// CollectionAddress is the collection mint address
	CollectionAddress string `gorm:"column:collection_address;primaryKey;type:varchar(48);index:idx_metadata_collection_keys_collection"`
	// Verified is set when the collection authority verified the membership
	Verified bool `gorm:"column:verified;not null;default:false"`
}

// TableName specifies the table name for the MetadataCollectionKey model
func (MetadataCollectionKey) TableName() string {
	return "metadata_collection_keys"
}
