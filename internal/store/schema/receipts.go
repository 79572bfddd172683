package schema

import (
	"time"
)

// ListingReceipt represents the listing_receipts table - append-only auction house listings
type ListingReceipt struct {
	// Address is the listing receipt account address
	Address string `gorm:"column:address;primaryKey;type:varchar(48)"`
	// TradeState is the auction house trade state account
	TradeState string `gorm:"column:trade_state;not null;type:varchar(48)"`
	// Bookkeeper is the account that paid for the receipt
	Bookkeeper string `gorm:"column:bookkeeper;not null;type:varchar(48)"`
	// AuctionHouse is the auction house the listing was placed on
	AuctionHouse string `gorm:"column:auction_house;not null;type:varchar(48)"`
	// Seller is the wallet that placed the listing
	Seller string `gorm:"column:seller;not null;type:varchar(48)"`
	// Metadata references metadatas.address
	Metadata string `gorm:"column:metadata;not null;type:varchar(48);index:idx_listing_receipts_metadata"`
	// PurchaseReceipt is set once the listing has been filled
	PurchaseReceipt *string `gorm:"column:purchase_receipt;type:varchar(48)"`
	// Price is the asking price in lamports
	Price int64 `gorm:"column:price;not null"`
	// TokenSize is the number of tokens listed
	TokenSize int64 `gorm:"column:token_size;not null"`
	// CreatedAt is when the listing was created on-chain
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// CanceledAt is set when the listing was canceled
	CanceledAt *time.Time `gorm:"column:canceled_at;type:timestamp"`
}

// TableName specifies the table name for the ListingReceipt model
func (ListingReceipt) TableName() string {
	return "listing_receipts"
}

// Active reports whether the listing has been neither purchased nor canceled
func (l ListingReceipt) Active() bool {
	return l.PurchaseReceipt == nil && l.CanceledAt == nil
}

// BidReceipt represents the bid_receipts table - append-only auction house offers
type BidReceipt struct {
	// Address is the bid receipt account address
	Address string `gorm:"column:address;primaryKey;type:varchar(48)"`
	// TradeState is the auction house trade state account
	TradeState string `gorm:"column:trade_state;not null;type:varchar(48)"`
	// Bookkeeper is the account that paid for the receipt
	Bookkeeper string `gorm:"column:bookkeeper;not null;type:varchar(48)"`
	// AuctionHouse is the auction house the offer was placed on
	AuctionHouse string `gorm:"column:auction_house;not null;type:varchar(48)"`
	// Buyer is the wallet that placed the offer
	Buyer string `gorm:"column:buyer;not null;type:varchar(48);index:idx_bid_receipts_buyer"`
	// Metadata references metadatas.address
	Metadata string `gorm:"column:metadata;not null;type:varchar(48);index:idx_bid_receipts_metadata"`
	// PurchaseReceipt is set once the offer has been accepted
	PurchaseReceipt *string `gorm:"column:purchase_receipt;type:varchar(48)"`
	// Price is the offered price in lamports
	Price int64 `gorm:"column:price;not null"`
	// TokenSize is the number of tokens bid on
	TokenSize int64 `gorm:"column:token_size;not null"`
	// CreatedAt is when the offer was created on-chain
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
	// CanceledAt is set when the offer was canceled
	CanceledAt *time.Time `gorm:"column:canceled_at;type:timestamp"`
}

// TableName specifies the table name for the BidReceipt model
func (BidReceipt) TableName() string {
	return "bid_receipts"
}

// Active reports whether the offer has been neither accepted nor canceled
func (b BidReceipt) Active() bool {
	return b.PurchaseReceipt == nil && b.CanceledAt == nil
}

// PurchaseReceipt represents the purchase_receipts table - executed sales
type PurchaseReceipt struct {
	// Address is the purchase receipt account address
	Address string `gorm:"column:address;primaryKey;type:varchar(48)"`
	// Bookkeeper is the account that paid for the receipt
	Bookkeeper string `gorm:"column:bookkeeper;not null;type:varchar(48)"`
	// Buyer is the purchasing wallet
	Buyer string `gorm:"column:buyer;not null;type:varchar(48)"`
	// Seller is the selling wallet
	Seller string `gorm:"column:seller;not null;type:varchar(48)"`
	// AuctionHouse is the auction house that settled the sale
	AuctionHouse string `gorm:"column:auction_house;not null;type:varchar(48)"`
	// Metadata references metadatas.address
	Metadata string `gorm:"column:metadata;not null;type:varchar(48);index:idx_purchase_receipts_metadata"`
	// TokenSize is the number of tokens sold
	TokenSize int64 `gorm:"column:token_size;not null"`
	// Price is the sale price in lamports
	Price int64 `gorm:"column:price;not null"`
	// CreatedAt is when the sale happened on-chain
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamp"`
}

// TableName specifies the table name for the PurchaseReceipt model
func (PurchaseReceipt) TableName() string {
	return "purchase_receipts"
}
