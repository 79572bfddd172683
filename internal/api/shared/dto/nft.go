package dto

import (
	"time"

	"github.com/feral-file/ff-marketplace-api/internal/store"
	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

// NftResponse represents an NFT with optional expansions
type NftResponse struct {
	Address              string  `json:"address"`
	Name                 string  `json:"name"`
	Symbol               string  `json:"symbol"`
	URI                  string  `json:"uri"`
	SellerFeeBasisPoints int32   `json:"seller_fee_basis_points"`
	UpdateAuthority      string  `json:"update_authority"`
	MintAddress          string  `json:"mint_address"`
	PrimarySaleHappened  bool    `json:"primary_sale_happened"`
	Slot                 *int64  `json:"slot"`
	Description          *string `json:"description"`
	Image                *string `json:"image"`
	AnimationURL         *string `json:"animation_url"`
	ExternalURL          *string `json:"external_url"`
	Category             *string `json:"category"`
	Model                *string `json:"model"`
	Owner                string  `json:"owner"`
	TokenAccount         string  `json:"token_account"`

	// Listing is the best active listing placed by the current owner
	Listing *ListingResponse `json:"listing"`

	// Expansions
	Creators     []CreatorResponse   `json:"creators,omitempty"`
	Attributes   []AttributeResponse `json:"attributes,omitempty"`
	Offers       []OfferResponse     `json:"offers,omitempty"`
	Listings     []ListingResponse   `json:"listings,omitempty"`
	Purchases    []PurchaseResponse  `json:"purchases,omitempty"`
	Collection   *CollectionResponse `json:"collection,omitempty"`
	OwnerProfile *ProfileResponse    `json:"owner_profile,omitempty"`
}

// NftListResponse represents a page of NFTs
type NftListResponse struct {
	Nfts []NftResponse `json:"items"`
	// Offset is the offset of the next page, absent on the last page
	Offset *int `json:"offset,omitempty"`
}

// ListingResponse represents a listing receipt
type ListingResponse struct {
	Address      string     `json:"address"`
	Seller       string     `json:"seller"`
	AuctionHouse string     `json:"auction_house"`
	Price        int64      `json:"price"`
	TokenSize    int64      `json:"token_size,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
	Purchased    bool       `json:"purchased"`
}

// OfferResponse represents an active bid receipt
type OfferResponse struct {
	Address      string    `json:"address"`
	Buyer        string    `json:"buyer"`
	AuctionHouse string    `json:"auction_house"`
	Price        int64     `json:"price"`
	TokenSize    int64     `json:"token_size"`
	CreatedAt    time.Time `json:"created_at"`
}

// PurchaseResponse represents an executed sale
type PurchaseResponse struct {
	Address      string    `json:"address"`
	Seller       string    `json:"seller"`
	Buyer        string    `json:"buyer"`
	AuctionHouse string    `json:"auction_house"`
	Price        int64     `json:"price"`
	TokenSize    int64     `json:"token_size"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreatorResponse represents a creator of an NFT
type CreatorResponse struct {
	Address  string `json:"address"`
	Share    int32  `json:"share"`
	Verified bool   `json:"verified"`
}

// AttributeResponse represents a trait of an NFT
type AttributeResponse struct {
	TraitType *string `json:"trait_type"`
	Value     *string `json:"value"`
}

// CollectionResponse represents the verified collection of an NFT
type CollectionResponse struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
}

// MapNftToDTO maps a store.Nft to NftResponse
func MapNftToDTO(nft *store.Nft) *NftResponse {
	if nft == nil {
		return nil
	}

	resp := &NftResponse{
		Address:              nft.Address,
		Name:                 nft.Name,
		Symbol:               nft.Symbol,
		URI:                  nft.URI,
		SellerFeeBasisPoints: nft.SellerFeeBasisPoints,
		UpdateAuthority:      nft.UpdateAuthorityAddress,
		MintAddress:          nft.MintAddress,
		PrimarySaleHappened:  nft.PrimarySaleHappened,
		Slot:                 nft.Slot,
		Description:          nft.Description,
		Image:                nft.Image,
		AnimationURL:         nft.AnimationURL,
		ExternalURL:          nft.ExternalURL,
		Category:             nft.Category,
		Model:                nft.Model,
		Owner:                nft.OwnerAddress,
		TokenAccount:         nft.TokenAccountAddress,
	}

	if listing := nft.Listing(); listing != nil {
		resp.Listing = &ListingResponse{
			Address:      listing.Address,
			Seller:       listing.Seller,
			AuctionHouse: listing.AuctionHouse,
			Price:        listing.Price,
			CreatedAt:    listing.CreatedAt,
		}
	}

	return resp
}

// MapListingToDTO maps a schema.ListingReceipt to ListingResponse
func MapListingToDTO(listing *schema.ListingReceipt) *ListingResponse {
	if listing == nil {
		return nil
	}

	return &ListingResponse{
		Address:      listing.Address,
		Seller:       listing.Seller,
		AuctionHouse: listing.AuctionHouse,
		Price:        listing.Price,
		TokenSize:    listing.TokenSize,
		CreatedAt:    listing.CreatedAt,
		CanceledAt:   listing.CanceledAt,
		Purchased:    listing.PurchaseReceipt != nil,
	}
}

// MapOfferToDTO maps a schema.BidReceipt to OfferResponse
func MapOfferToDTO(offer *schema.BidReceipt) *OfferResponse {
	return &OfferResponse{
		Address:      offer.Address,
		Buyer:        offer.Buyer,
		AuctionHouse: offer.AuctionHouse,
		Price:        offer.Price,
		TokenSize:    offer.TokenSize,
		CreatedAt:    offer.CreatedAt,
	}
}

// MapPurchaseToDTO maps a schema.PurchaseReceipt to PurchaseResponse
func MapPurchaseToDTO(purchase *schema.PurchaseReceipt) *PurchaseResponse {
	return &PurchaseResponse{
		Address:      purchase.Address,
		Seller:       purchase.Seller,
		Buyer:        purchase.Buyer,
		AuctionHouse: purchase.AuctionHouse,
		Price:        purchase.Price,
		TokenSize:    purchase.TokenSize,
		CreatedAt:    purchase.CreatedAt,
	}
}

// MapCreatorToDTO maps a schema.MetadataCreator to CreatorResponse
func MapCreatorToDTO(creator *schema.MetadataCreator) *CreatorResponse {
	return &CreatorResponse{
		Address:  creator.CreatorAddress,
		Share:    creator.Share,
		Verified: creator.Verified,
	}
}

// MapAttributeToDTO maps a schema.Attribute to AttributeResponse
func MapAttributeToDTO(attribute *schema.Attribute) *AttributeResponse {
	return &AttributeResponse{
		TraitType: attribute.TraitType,
		Value:     attribute.Value,
	}
}

// MapCollectionToDTO maps a schema.MetadataCollectionKey to CollectionResponse
func MapCollectionToDTO(collection *schema.MetadataCollectionKey) *CollectionResponse {
	if collection == nil {
		return nil
	}

	return &CollectionResponse{
		Address:  collection.CollectionAddress,
		Verified: collection.Verified,
	}
}
