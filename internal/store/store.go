package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

// Store defines the read-only interface over the marketplace read model
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListNfts retrieves one page of NFTs matching the filter, decorated with their best active listing
	ListNfts(ctx context.Context, filter NftQueryFilter) ([]*Nft, error)
	// GetNftsByAddresses retrieves NFTs keyed by metadata address; unknown or burned addresses are absent
	GetNftsByAddresses(ctx context.Context, addresses []string) (map[string]*Nft, error)
	// GetListingReceiptsBulk retrieves all listing receipts for multiple metadatas, newest first
	GetListingReceiptsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.ListingReceipt, error)
	// GetActiveListingsBulk retrieves the best active listing placed by the current owner for multiple metadatas
	GetActiveListingsBulk(ctx context.Context, metadataAddresses []string) (map[string]*schema.ListingReceipt, error)
	// GetActiveOffersBulk retrieves active offers for multiple metadatas, highest price first
	GetActiveOffersBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.BidReceipt, error)
	// GetPurchaseReceiptsBulk retrieves purchase receipts for multiple metadatas, newest first
	GetPurchaseReceiptsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.PurchaseReceipt, error)
	// GetCreatorsBulk retrieves creators for multiple metadatas in on-chain order
	GetCreatorsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.MetadataCreator, error)
	// GetAttributesBulk retrieves attributes for multiple metadatas
	GetAttributesBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.Attribute, error)
	// GetCollectionsBulk retrieves the verified collection membership for multiple metadatas
	GetCollectionsBulk(ctx context.Context, metadataAddresses []string) (map[string]*schema.MetadataCollectionKey, error)
	// GetTwitterHandlesBulk retrieves registered twitter handles keyed by wallet address
	GetTwitterHandlesBulk(ctx context.Context, wallets []string) (map[string]string, error)
	// GetActivities retrieves listing and purchase activity for the given metadatas, newest first
	GetActivities(ctx context.Context, metadataAddresses []string) ([]*Activity, error)
}

// AttributeFilter narrows NFTs to those having trait TraitType with any of Values
type AttributeFilter struct {
	TraitType string
	Values    []string
}

// NftQueryFilter describes one page request over NFTs.
// Every empty field imposes no constraint; non-empty fields narrow the result conjunctively.
type NftQueryFilter struct {
	Addresses         []string
	Owners            []string
	UpdateAuthorities []string
	Creators          []string
	AuctionHouses     []string
	Offerers          []string
	Collections       []string
	Attributes        []AttributeFilter
	// Listed constrains the presence of a decorated listing when set
	Listed     *bool
	WithOffers bool
	Limit      int
	Offset     int
}

// Nft is one row of the NFT read model: metadata, its JSON projection, its current owner and
// the best active listing placed by that owner (if any)
type Nft struct {
	Address                string  `gorm:"column:address"`
	Name                   string  `gorm:"column:name"`
	Symbol                 string  `gorm:"column:symbol"`
	URI                    string  `gorm:"column:uri"`
	SellerFeeBasisPoints   int32   `gorm:"column:seller_fee_basis_points"`
	UpdateAuthorityAddress string  `gorm:"column:update_authority_address"`
	MintAddress            string  `gorm:"column:mint_address"`
	PrimarySaleHappened    bool    `gorm:"column:primary_sale_happened"`
	Slot                   *int64  `gorm:"column:slot"`
	Description            *string `gorm:"column:description"`
	Image                  *string `gorm:"column:image"`
	AnimationURL           *string `gorm:"column:animation_url"`
	ExternalURL            *string `gorm:"column:external_url"`
	Category               *string `gorm:"column:category"`
	Model                  *string `gorm:"column:model"`
	OwnerAddress           string  `gorm:"column:owner_address"`
	TokenAccountAddress    string  `gorm:"column:token_account_address"`

	ListingAddress      *string    `gorm:"column:listing_address"`
	ListingPrice        *int64     `gorm:"column:listing_price"`
	ListingAuctionHouse *string    `gorm:"column:listing_auction_house"`
	ListingCreatedAt    *time.Time `gorm:"column:listing_created_at"`
}

// NftListing is the listing decoration of an Nft
type NftListing struct {
	Address      string
	Seller       string
	AuctionHouse string
	Price        int64
	CreatedAt    time.Time
}

// Listing returns the decorated listing, or nil when the NFT has no active listing by its owner
func (n *Nft) Listing() *NftListing {
	if n.ListingAddress == nil || n.ListingPrice == nil {
		return nil
	}

	listing := &NftListing{
		Address: *n.ListingAddress,
		Seller:  n.OwnerAddress,
		Price:   *n.ListingPrice,
	}
	if n.ListingAuctionHouse != nil {
		listing.AuctionHouse = *n.ListingAuctionHouse
	}
	if n.ListingCreatedAt != nil {
		listing.CreatedAt = *n.ListingCreatedAt
	}

	return listing
}

// ActivityType identifies the kind of marketplace activity
type ActivityType string

const (
	// ActivityTypeListing is a listing placed on an auction house
	ActivityTypeListing ActivityType = "listing"
	// ActivityTypePurchase is an executed sale
	ActivityTypePurchase ActivityType = "purchase"
)

// Activity is one row of the activity feed.
// Listings carry one wallet (seller); purchases carry two (seller, buyer).
// WalletTwitterHandles is positionally aligned with Wallets.
type Activity struct {
	Address              string                       `gorm:"column:address"`
	Metadata             string                       `gorm:"column:metadata"`
	AuctionHouse         string                       `gorm:"column:auction_house"`
	Price                int64                        `gorm:"column:price"`
	CreatedAt            time.Time                    `gorm:"column:created_at"`
	Wallets              datatypes.JSONSlice[string]  `gorm:"column:wallets"`
	WalletTwitterHandles datatypes.JSONSlice[*string] `gorm:"column:wallet_twitter_handles"`
	ActivityType         ActivityType                 `gorm:"column:activity_type"`
}
