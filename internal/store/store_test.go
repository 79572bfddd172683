package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

const (
	testUpdateAuthority = "update-authority-1"
	testAuctionHouse    = "auction-house-1"
	testAuctionHouse2   = "auction-house-2"
)

var testBaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestMetadata creates a metadata row with a mint derived from its address
func buildTestMetadata(address, name string) schema.Metadata {
	return schema.Metadata{
		Address:                address,
		Name:                   name,
		Symbol:                 "TEST",
		URI:                    "https://arweave.net/" + address,
		SellerFeeBasisPoints:   500,
		UpdateAuthorityAddress: testUpdateAuthority,
		MintAddress:            "mint-" + address,
	}
}

// buildTestListing creates an active listing receipt
func buildTestListing(address, metadata, seller string, price int64, createdAt time.Time) schema.ListingReceipt {
	return schema.ListingReceipt{
		Address:      address,
		TradeState:   "trade-state-" + address,
		Bookkeeper:   "bookkeeper",
		AuctionHouse: testAuctionHouse,
		Seller:       seller,
		Metadata:     metadata,
		Price:        price,
		TokenSize:    1,
		CreatedAt:    createdAt,
	}
}

// buildTestOffer creates an active bid receipt
func buildTestOffer(address, metadata, buyer string, price int64, createdAt time.Time) schema.BidReceipt {
	return schema.BidReceipt{
		Address:      address,
		TradeState:   "trade-state-" + address,
		Bookkeeper:   "bookkeeper",
		AuctionHouse: testAuctionHouse,
		Buyer:        buyer,
		Metadata:     metadata,
		Price:        price,
		TokenSize:    1,
		CreatedAt:    createdAt,
	}
}

// buildTestPurchase creates a purchase receipt
func buildTestPurchase(address, metadata, seller, buyer string, price int64, createdAt time.Time) schema.PurchaseReceipt {
	return schema.PurchaseReceipt{
		Address:      address,
		Bookkeeper:   "bookkeeper",
		Buyer:        buyer,
		Seller:       seller,
		AuctionHouse: testAuctionHouse,
		Metadata:     metadata,
		TokenSize:    1,
		Price:        price,
		CreatedAt:    createdAt,
	}
}

// buildTestAttribute creates an attribute row
func buildTestAttribute(metadata, traitType, value string) schema.Attribute {
	return schema.Attribute{
		ID:              uuid.New(),
		MetadataAddress: metadata,
		TraitType:       stringPtr(traitType),
		Value:           stringPtr(value),
	}
}

// buildTestCreator creates a creator row
func buildTestCreator(metadata, creator string, verified bool, position int32) schema.MetadataCreator {
	return schema.MetadataCreator{
		MetadataAddress: metadata,
		CreatorAddress:  creator,
		Share:           100,
		Verified:        verified,
		Position:        &position,
	}
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

// seeder writes read model rows inside the test transaction
type seeder struct {
	t  *testing.T
	db *gorm.DB
}

func (s seeder) create(values ...any) {
	s.t.Helper()
	for _, v := range values {
		require.NoError(s.t, s.db.Create(v).Error)
	}
}

// nft creates the metadata, its JSON projection and its current owner
func (s seeder) nft(metadata schema.Metadata, owner string) schema.Metadata {
	s.t.Helper()
	s.create(
		&metadata,
		&schema.MetadataJSON{
			MetadataAddress: metadata.Address,
			Description:     stringPtr("description of " + metadata.Name),
			Image:           stringPtr("https://arweave.net/" + metadata.Address + ".png"),
		},
		&schema.CurrentMetadataOwner{
			MintAddress:         metadata.MintAddress,
			OwnerAddress:        owner,
			TokenAccountAddress: "ata-" + metadata.Address,
			Slot:                1,
		},
	)
	return metadata
}

func nftAddresses(nfts []*Nft) []string {
	return lo.Map(nfts, func(n *Nft, _ int) string {
		return n.Address
	})
}

// =============================================================================
// Test: ListNfts
// =============================================================================

func testListNftsOrdering(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("order-1", "Alpha"), "owner-1")
	seed.nft(buildTestMetadata("order-2", "Beta"), "owner-1")
	seed.nft(buildTestMetadata("order-3", "Gamma"), "owner-2")
	seed.nft(buildTestMetadata("order-4", "Aardvark"), "owner-2")

	burned := buildTestMetadata("order-5", "Burned")
	burnedAt := testBaseTime
	burned.BurnedAt = &burnedAt
	seed.nft(burned, "owner-1")

	seed.create(
		lo.ToPtr(buildTestListing("order-l1", "order-1", "owner-1", 300, testBaseTime)),
		lo.ToPtr(buildTestListing("order-l2", "order-2", "owner-1", 100, testBaseTime)),
		lo.ToPtr(buildTestListing("order-l5", "order-5", "owner-1", 50, testBaseTime)),
	)

	t.Run("listed by price then unlisted by name", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"order-2", "order-1", "order-4", "order-3"}, nftAddresses(nfts))
	})

	t.Run("rows carry projection owner and listing", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Addresses: []string{"order-2"}})
		require.NoError(t, err)
		require.Len(t, nfts, 1)

		nft := nfts[0]
		assert.Equal(t, "Beta", nft.Name)
		assert.Equal(t, "mint-order-2", nft.MintAddress)
		assert.Equal(t, "owner-1", nft.OwnerAddress)
		assert.Equal(t, "ata-order-2", nft.TokenAccountAddress)
		require.NotNil(t, nft.Image)
		assert.Equal(t, "https://arweave.net/order-2.png", *nft.Image)

		listing := nft.Listing()
		require.NotNil(t, listing)
		assert.Equal(t, "order-l2", listing.Address)
		assert.Equal(t, int64(100), listing.Price)
		assert.Equal(t, "owner-1", listing.Seller)
		assert.Equal(t, testAuctionHouse, listing.AuctionHouse)
	})

	t.Run("burned nfts are never returned", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Addresses: []string{"order-5"}})
		require.NoError(t, err)
		assert.Empty(t, nfts)
	})

	t.Run("unknown identifiers produce an empty page", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Owners: []string{"nobody"}})
		require.NoError(t, err)
		assert.Empty(t, nfts)
	})

	t.Run("update authority filter", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{UpdateAuthorities: []string{testUpdateAuthority}})
		require.NoError(t, err)
		assert.Len(t, nfts, 4)

		nfts, err = store.ListNfts(ctx, NftQueryFilter{UpdateAuthorities: []string{"other-authority"}})
		require.NoError(t, err)
		assert.Empty(t, nfts)
	})
}

func testListNftsListingDecoration(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("dec-1", "Decorated"), "owner-a")
	seed.nft(buildTestMetadata("dec-2", "Stale"), "owner-b")

	canceledAt := testBaseTime.Add(time.Hour)

	previousOwner := buildTestListing("dec-l1", "dec-1", "owner-old", 10, testBaseTime)
	canceled := buildTestListing("dec-l2", "dec-1", "owner-a", 50, testBaseTime)
	canceled.CanceledAt = &canceledAt
	purchased := buildTestListing("dec-l3", "dec-1", "owner-a", 60, testBaseTime)
	purchased.PurchaseReceipt = stringPtr("dec-p1")
	later := buildTestListing("dec-l4", "dec-1", "owner-a", 70, testBaseTime.Add(2*time.Minute))
	earlier := buildTestListing("dec-l5", "dec-1", "owner-a", 70, testBaseTime.Add(time.Minute))
	otherHouse := buildTestListing("dec-l6", "dec-1", "owner-a", 90, testBaseTime)
	otherHouse.AuctionHouse = testAuctionHouse2
	staleOnly := buildTestListing("dec-l7", "dec-2", "owner-old", 5, testBaseTime)

	seed.create(&previousOwner, &canceled, &purchased, &later, &earlier, &otherHouse, &staleOnly)

	t.Run("cheapest active listing by the current owner wins with earliest tie-break", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Addresses: []string{"dec-1"}})
		require.NoError(t, err)
		require.Len(t, nfts, 1)

		listing := nfts[0].Listing()
		require.NotNil(t, listing)
		assert.Equal(t, "dec-l5", listing.Address)
		assert.Equal(t, int64(70), listing.Price)
	})

	t.Run("auction house narrows the decoration", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{
			Addresses:     []string{"dec-1"},
			AuctionHouses: []string{testAuctionHouse2},
		})
		require.NoError(t, err)
		require.Len(t, nfts, 1)

		listing := nfts[0].Listing()
		require.NotNil(t, listing)
		assert.Equal(t, "dec-l6", listing.Address)
		assert.Equal(t, testAuctionHouse2, listing.AuctionHouse)
	})

	t.Run("listing by a previous owner does not decorate", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Addresses: []string{"dec-2"}})
		require.NoError(t, err)
		require.Len(t, nfts, 1)
		assert.Nil(t, nfts[0].Listing())

		nfts, err = store.ListNfts(ctx, NftQueryFilter{Listed: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, []string{"dec-2"}, nftAddresses(nfts))
	})

	t.Run("active listing bulk lookup matches the decoration", func(t *testing.T) {
		listings, err := store.GetActiveListingsBulk(ctx, []string{"dec-1", "dec-2", "dec-missing"})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		require.Contains(t, listings, "dec-1")
		assert.Equal(t, "dec-l5", listings["dec-1"].Address)
	})
}

func testListNftsDeduplication(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("dup-1", "Many Relations"), "owner-1")
	seed.nft(buildTestMetadata("dup-2", "Unverified"), "owner-1")

	seed.create(
		lo.ToPtr(buildTestCreator("dup-1", "creator-1", true, 0)),
		lo.ToPtr(buildTestCreator("dup-1", "creator-2", true, 1)),
		lo.ToPtr(buildTestCreator("dup-1", "creator-3", true, 2)),
		lo.ToPtr(buildTestCreator("dup-2", "creator-1", false, 0)),
		lo.ToPtr(buildTestAttribute("dup-1", "background", "red")),
		lo.ToPtr(buildTestAttribute("dup-1", "background", "red")),
		lo.ToPtr(buildTestAttribute("dup-1", "background", "blue")),
		lo.ToPtr(buildTestOffer("dup-o1", "dup-1", "buyer-1", 10, testBaseTime)),
		lo.ToPtr(buildTestOffer("dup-o2", "dup-1", "buyer-2", 20, testBaseTime)),
		lo.ToPtr(buildTestOffer("dup-o3", "dup-1", "buyer-3", 30, testBaseTime)),
		&schema.MetadataCollectionKey{MetadataAddress: "dup-1", CollectionAddress: "collection-1", Verified: true},
		&schema.MetadataCollectionKey{MetadataAddress: "dup-1", CollectionAddress: "collection-2", Verified: true},
		lo.ToPtr(buildTestListing("dup-l1", "dup-1", "owner-1", 100, testBaseTime)),
		lo.ToPtr(buildTestListing("dup-l2", "dup-1", "owner-1", 200, testBaseTime)),
	)

	t.Run("each nft appears at most once", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{
			Creators:    []string{"creator-1", "creator-2", "creator-3"},
			Attributes:  []AttributeFilter{{TraitType: "background", Values: []string{"red", "blue"}}},
			WithOffers:  true,
			Offerers:    []string{"buyer-1", "buyer-2", "buyer-3"},
			Collections: []string{"collection-1", "collection-2"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"dup-1"}, nftAddresses(nfts))
	})

	t.Run("unverified creators do not match", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Creators: []string{"creator-1"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"dup-1"}, nftAddresses(nfts))
	})

	t.Run("collection filter", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Collections: []string{"collection-2"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"dup-1"}, nftAddresses(nfts))
	})
}

func testListNftsAttributes(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("attr-a", "attr-a"), "owner-1")
	seed.nft(buildTestMetadata("attr-b", "attr-b"), "owner-1")
	seed.nft(buildTestMetadata("attr-c", "attr-c"), "owner-1")

	seed.create(
		lo.ToPtr(buildTestAttribute("attr-a", "background", "red")),
		lo.ToPtr(buildTestAttribute("attr-a", "eyes", "blue")),
		lo.ToPtr(buildTestAttribute("attr-b", "background", "blue")),
		lo.ToPtr(buildTestAttribute("attr-b", "eyes", "blue")),
		lo.ToPtr(buildTestAttribute("attr-c", "background", "red")),
		lo.ToPtr(buildTestAttribute("attr-c", "eyes", "green")),
	)

	tests := []struct {
		name       string
		attributes []AttributeFilter
		expected   []string
	}{
		{
			name: "OR within values AND across trait types",
			attributes: []AttributeFilter{
				{TraitType: "background", Values: []string{"red", "blue"}},
				{TraitType: "eyes", Values: []string{"blue"}},
			},
			expected: []string{"attr-a", "attr-b"},
		},
		{
			name:       "single value",
			attributes: []AttributeFilter{{TraitType: "background", Values: []string{"red"}}},
			expected:   []string{"attr-a", "attr-c"},
		},
		{
			name: "filters on the same trait type merge",
			attributes: []AttributeFilter{
				{TraitType: "background", Values: []string{"red"}},
				{TraitType: "background", Values: []string{"blue"}},
			},
			expected: []string{"attr-a", "attr-b", "attr-c"},
		},
		{
			name:       "filter without values matches nothing",
			attributes: []AttributeFilter{{TraitType: "background"}},
			expected:   []string{},
		},
		{
			name:       "unknown value",
			attributes: []AttributeFilter{{TraitType: "eyes", Values: []string{"purple"}}},
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfts, err := store.ListNfts(ctx, NftQueryFilter{Attributes: tt.attributes})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, nftAddresses(nfts))
		})
	}
}

func testListNftsOwnerAndListed(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("own-x1", "x1"), "owner-x")
	seed.nft(buildTestMetadata("own-x2", "x2"), "owner-x")
	seed.nft(buildTestMetadata("own-x3", "x3"), "owner-x")
	seed.nft(buildTestMetadata("own-y1", "y1"), "owner-y")

	seed.create(
		lo.ToPtr(buildTestListing("own-l1", "own-x1", "owner-x", 100, testBaseTime)),
		lo.ToPtr(buildTestListing("own-l3", "own-x3", "owner-previous", 100, testBaseTime)),
		lo.ToPtr(buildTestListing("own-l4", "own-y1", "owner-y", 100, testBaseTime)),
	)

	t.Run("listed", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Owners: []string{"owner-x"}, Listed: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, []string{"own-x1"}, nftAddresses(nfts))
	})

	t.Run("unlisted", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Owners: []string{"owner-x"}, Listed: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, []string{"own-x2", "own-x3"}, nftAddresses(nfts))
	})

	t.Run("listed not set", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Owners: []string{"owner-x"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"own-x1", "own-x2", "own-x3"}, nftAddresses(nfts))
	})

	t.Run("multiple owners", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Owners: []string{"owner-x", "owner-y"}, Listed: boolPtr(true)})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"own-x1", "own-y1"}, nftAddresses(nfts))
	})
}

func testListNftsPagination(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	for _, address := range []string{"page-4", "page-1", "page-7", "page-3", "page-6", "page-2", "page-5"} {
		seed.nft(buildTestMetadata(address, "Same Name"), "owner-1")
	}
	seed.nft(buildTestMetadata("page-8", "Listed"), "owner-1")
	seed.nft(buildTestMetadata("page-9", "Listed"), "owner-1")
	seed.create(
		lo.ToPtr(buildTestListing("page-l8", "page-8", "owner-1", 500, testBaseTime)),
		lo.ToPtr(buildTestListing("page-l9", "page-9", "owner-1", 500, testBaseTime)),
	)

	expected := []string{"page-8", "page-9", "page-1", "page-2", "page-3", "page-4", "page-5", "page-6", "page-7"}

	t.Run("full page is totally ordered", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, expected, nftAddresses(nfts))
	})

	t.Run("consecutive pages neither skip nor repeat", func(t *testing.T) {
		var collected []string
		for offset := 0; offset < len(expected); offset += 3 {
			nfts, err := store.ListNfts(ctx, NftQueryFilter{Limit: 3, Offset: offset})
			require.NoError(t, err)
			collected = append(collected, nftAddresses(nfts)...)
		}
		assert.Equal(t, expected, collected)
	})

	t.Run("repeated requests return the same page", func(t *testing.T) {
		first, err := store.ListNfts(ctx, NftQueryFilter{Limit: 4, Offset: 2})
		require.NoError(t, err)
		second, err := store.ListNfts(ctx, NftQueryFilter{Limit: 4, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, nftAddresses(first), nftAddresses(second))
		assert.Equal(t, expected[2:6], nftAddresses(first))
	})

	t.Run("negative offset starts at the beginning", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Limit: 2, Offset: -5})
		require.NoError(t, err)
		assert.Equal(t, expected[:2], nftAddresses(nfts))
	})

	t.Run("zero limit uses the default page size", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{})
		require.NoError(t, err)
		assert.Len(t, nfts, len(expected))
	})
}

func testListNftsOffers(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("offer-1", "offer-1"), "owner-1")
	seed.nft(buildTestMetadata("offer-2", "offer-2"), "owner-1")
	seed.nft(buildTestMetadata("offer-3", "offer-3"), "owner-1")
	seed.nft(buildTestMetadata("offer-4", "offer-4"), "owner-1")

	canceledAt := testBaseTime.Add(time.Hour)
	canceled := buildTestOffer("offer-o2", "offer-2", "buyer-2", 10, testBaseTime)
	canceled.CanceledAt = &canceledAt
	otherHouse := buildTestOffer("offer-o3", "offer-3", "buyer-1", 10, testBaseTime)
	otherHouse.AuctionHouse = testAuctionHouse2

	seed.create(
		lo.ToPtr(buildTestOffer("offer-o1", "offer-1", "buyer-1", 10, testBaseTime)),
		&canceled,
		&otherHouse,
	)

	t.Run("with offers", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{WithOffers: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"offer-1", "offer-3"}, nftAddresses(nfts))
	})

	t.Run("canceled offers do not count", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{Offerers: []string{"buyer-2"}})
		require.NoError(t, err)
		assert.Empty(t, nfts)
	})

	t.Run("offerer narrowed by auction house", func(t *testing.T) {
		nfts, err := store.ListNfts(ctx, NftQueryFilter{
			Offerers:      []string{"buyer-1"},
			AuctionHouses: []string{testAuctionHouse2},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"offer-3"}, nftAddresses(nfts))
	})

	t.Run("active offers bulk", func(t *testing.T) {
		offers, err := store.GetActiveOffersBulk(ctx, []string{"offer-1", "offer-2", "offer-3", "offer-4"})
		require.NoError(t, err)
		assert.Len(t, offers, 2)
		assert.Len(t, offers["offer-1"], 1)
		assert.Len(t, offers["offer-3"], 1)
		assert.NotContains(t, offers, "offer-2")
	})
}

// =============================================================================
// Test: bulk getters
// =============================================================================

func testBulkGetters(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("bulk-1", "bulk-1"), "owner-1")
	seed.nft(buildTestMetadata("bulk-2", "bulk-2"), "owner-2")

	seed.create(
		lo.ToPtr(buildTestCreator("bulk-1", "creator-b", true, 1)),
		lo.ToPtr(buildTestCreator("bulk-1", "creator-a", true, 0)),
		lo.ToPtr(buildTestAttribute("bulk-1", "eyes", "blue")),
		lo.ToPtr(buildTestAttribute("bulk-1", "background", "red")),
		&schema.MetadataCollectionKey{MetadataAddress: "bulk-1", CollectionAddress: "collection-1", Verified: true},
		&schema.MetadataCollectionKey{MetadataAddress: "bulk-2", CollectionAddress: "collection-2", Verified: false},
		lo.ToPtr(buildTestListing("bulk-l1", "bulk-1", "owner-1", 100, testBaseTime)),
		lo.ToPtr(buildTestListing("bulk-l2", "bulk-1", "owner-1", 200, testBaseTime.Add(time.Minute))),
		lo.ToPtr(buildTestPurchase("bulk-p1", "bulk-2", "owner-0", "owner-2", 50, testBaseTime)),
		&schema.TwitterHandleNameService{WalletAddress: "owner-1", TwitterHandle: "owner_one", Slot: 1},
	)

	t.Run("nfts by addresses omit unknown keys", func(t *testing.T) {
		nfts, err := store.GetNftsByAddresses(ctx, []string{"bulk-1", "bulk-missing", "bulk-2", "bulk-1"})
		require.NoError(t, err)
		assert.Len(t, nfts, 2)
		assert.Equal(t, "owner-1", nfts["bulk-1"].OwnerAddress)
		assert.Equal(t, "owner-2", nfts["bulk-2"].OwnerAddress)
		assert.NotContains(t, nfts, "bulk-missing")
	})

	t.Run("creators in position order", func(t *testing.T) {
		creators, err := store.GetCreatorsBulk(ctx, []string{"bulk-1", "bulk-2"})
		require.NoError(t, err)
		require.Len(t, creators["bulk-1"], 2)
		assert.Equal(t, "creator-a", creators["bulk-1"][0].CreatorAddress)
		assert.Equal(t, "creator-b", creators["bulk-1"][1].CreatorAddress)
		assert.NotContains(t, creators, "bulk-2")
	})

	t.Run("attributes sorted by trait type", func(t *testing.T) {
		attributes, err := store.GetAttributesBulk(ctx, []string{"bulk-1"})
		require.NoError(t, err)
		require.Len(t, attributes["bulk-1"], 2)
		assert.Equal(t, "background", *attributes["bulk-1"][0].TraitType)
		assert.Equal(t, "eyes", *attributes["bulk-1"][1].TraitType)
	})

	t.Run("only verified collections", func(t *testing.T) {
		collections, err := store.GetCollectionsBulk(ctx, []string{"bulk-1", "bulk-2"})
		require.NoError(t, err)
		require.Len(t, collections, 1)
		assert.Equal(t, "collection-1", collections["bulk-1"].CollectionAddress)
	})

	t.Run("listing receipts newest first", func(t *testing.T) {
		listings, err := store.GetListingReceiptsBulk(ctx, []string{"bulk-1"})
		require.NoError(t, err)
		require.Len(t, listings["bulk-1"], 2)
		assert.Equal(t, "bulk-l2", listings["bulk-1"][0].Address)
		assert.Equal(t, "bulk-l1", listings["bulk-1"][1].Address)
	})

	t.Run("purchase receipts", func(t *testing.T) {
		purchases, err := store.GetPurchaseReceiptsBulk(ctx, []string{"bulk-1", "bulk-2"})
		require.NoError(t, err)
		require.Len(t, purchases["bulk-2"], 1)
		assert.Equal(t, "owner-2", purchases["bulk-2"][0].Buyer)
		assert.NotContains(t, purchases, "bulk-1")
	})

	t.Run("twitter handles", func(t *testing.T) {
		handles, err := store.GetTwitterHandlesBulk(ctx, []string{"owner-1", "owner-2"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"owner-1": "owner_one"}, handles)
	})

	t.Run("empty input", func(t *testing.T) {
		nfts, err := store.GetNftsByAddresses(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, nfts)

		creators, err := store.GetCreatorsBulk(ctx, []string{})
		require.NoError(t, err)
		assert.Empty(t, creators)

		handles, err := store.GetTwitterHandlesBulk(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, handles)
	})
}

// =============================================================================
// Test: GetActivities
// =============================================================================

func testGetActivities(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	seed := seeder{t: t, db: db}

	seed.nft(buildTestMetadata("act-1", "act-1"), "buyer-1")
	seed.nft(buildTestMetadata("act-2", "act-2"), "seller-2")
	seed.nft(buildTestMetadata("act-3", "act-3"), "seller-3")

	seed.create(
		lo.ToPtr(buildTestListing("act-l1", "act-1", "seller-1", 100, testBaseTime.Add(time.Minute))),
		lo.ToPtr(buildTestPurchase("act-p1", "act-1", "seller-1", "buyer-1", 100, testBaseTime.Add(3*time.Minute))),
		lo.ToPtr(buildTestListing("act-l2", "act-2", "seller-2", 200, testBaseTime.Add(2*time.Minute))),
		lo.ToPtr(buildTestListing("act-l3", "act-3", "seller-3", 300, testBaseTime.Add(4*time.Minute))),
		&schema.TwitterHandleNameService{WalletAddress: "seller-1", TwitterHandle: "seller_one", Slot: 1},
	)

	t.Run("newest first across listings and purchases", func(t *testing.T) {
		activities, err := store.GetActivities(ctx, []string{"act-1", "act-2"})
		require.NoError(t, err)
		require.Len(t, activities, 3)

		assert.Equal(t, "act-p1", activities[0].Address)
		assert.Equal(t, ActivityTypePurchase, activities[0].ActivityType)
		assert.Equal(t, "act-l2", activities[1].Address)
		assert.Equal(t, ActivityTypeListing, activities[1].ActivityType)
		assert.Equal(t, "act-l1", activities[2].Address)
		assert.Equal(t, ActivityTypeListing, activities[2].ActivityType)
	})

	t.Run("wallets and handles are positionally aligned", func(t *testing.T) {
		activities, err := store.GetActivities(ctx, []string{"act-1"})
		require.NoError(t, err)
		require.Len(t, activities, 2)

		purchase := activities[0]
		assert.Equal(t, "act-1", purchase.Metadata)
		assert.Equal(t, int64(100), purchase.Price)
		assert.Equal(t, []string{"seller-1", "buyer-1"}, []string(purchase.Wallets))
		require.Len(t, purchase.WalletTwitterHandles, 2)
		require.NotNil(t, purchase.WalletTwitterHandles[0])
		assert.Equal(t, "seller_one", *purchase.WalletTwitterHandles[0])
		assert.Nil(t, purchase.WalletTwitterHandles[1])

		listing := activities[1]
		assert.Equal(t, []string{"seller-1"}, []string(listing.Wallets))
		require.Len(t, listing.WalletTwitterHandles, 1)
		require.NotNil(t, listing.WalletTwitterHandles[0])
		assert.Equal(t, "seller_one", *listing.WalletTwitterHandles[0])
	})

	t.Run("listing without handle", func(t *testing.T) {
		activities, err := store.GetActivities(ctx, []string{"act-2"})
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, []string{"seller-2"}, []string(activities[0].Wallets))
		require.Len(t, activities[0].WalletTwitterHandles, 1)
		assert.Nil(t, activities[0].WalletTwitterHandles[0])
	})

	t.Run("empty input", func(t *testing.T) {
		activities, err := store.GetActivities(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, activities)
	})
}

// RunStoreTests runs every store test, each inside its own transaction
func RunStoreTests(t *testing.T, initDB func(t *testing.T) (Store, *gorm.DB)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *gorm.DB)
	}{
		{"ListNftsOrdering", testListNftsOrdering},
		{"ListNftsListingDecoration", testListNftsListingDecoration},
		{"ListNftsDeduplication", testListNftsDeduplication},
		{"ListNftsAttributes", testListNftsAttributes},
		{"ListNftsOwnerAndListed", testListNftsOwnerAndListed},
		{"ListNftsPagination", testListNftsPagination},
		{"ListNftsOffers", testListNftsOffers},
		{"BulkGetters", testBulkGetters},
		{"GetActivities", testGetActivities},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, db := initDB(t)
			tt.fn(t, store, db)
		})
	}
}
