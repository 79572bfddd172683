package schema

import (
	"gorm.io/datatypes"
)

// MetadataJSON represents the metadata_jsons table - the parsed off-chain JSON of a metadata (one-to-one)
type MetadataJSON struct {
	// MetadataAddress references metadatas.address (primary key, one-to-one relationship)
	MetadataAddress string `gorm:"column:metadata_address;primaryKey;type:varchar(48)"`
	// Description is the description field of the JSON document
	Description *string `gorm:"column:description;type:text"`
	// Image is the image URL of the JSON document
	Image *string `gorm:"column:image;type:text"`
	// AnimationURL is the animation_url field of the JSON document
	AnimationURL *string `gorm:"column:animation_url;type:text"`
	// ExternalURL is the external_url field of the JSON document
	ExternalURL *string `gorm:"column:external_url;type:text"`
	// Category is properties.category of the JSON document
	Category *string `gorm:"column:category;type:text"`
	// Model is the schema model detected by ingestion
	Model *string `gorm:"column:model;type:text"`
	// RawContent is the full JSON document as fetched
	RawContent datatypes.JSON `gorm:"column:raw_content;type:jsonb"`
}

// TableName specifies the table name for the MetadataJSON model
func (MetadataJSON) TableName() string {
	return "metadata_jsons"
}
