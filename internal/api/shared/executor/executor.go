package executor

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-marketplace-api/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-marketplace-api/internal/api/shared/errors"
	"github.com/feral-file/ff-marketplace-api/internal/api/shared/types"
	"github.com/feral-file/ff-marketplace-api/internal/dataloader"
	"github.com/feral-file/ff-marketplace-api/internal/domain"
	"github.com/feral-file/ff-marketplace-api/internal/identity"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
	"github.com/feral-file/ff-marketplace-api/internal/store"
	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

// Executor is the interface for the API executor.
// A nil loaders argument makes the executor create request-scoped loaders itself.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ListNfts retrieves a page of NFTs matching filter with optional expansions
	ListNfts(ctx context.Context, loaders *dataloader.Loaders, filter store.NftQueryFilter, expand []types.Expansion) (*dto.NftListResponse, error)

	// GetNft retrieves a single NFT by its metadata address with optional expansions
	GetNft(ctx context.Context, loaders *dataloader.Loaders, address string, expand []types.Expansion) (*dto.NftResponse, error)

	// GetActivities retrieves the listing and purchase feed of NFTs, newest first
	GetActivities(ctx context.Context, loaders *dataloader.Loaders, addresses []string) (*dto.ActivityListResponse, error)
}

type executor struct {
	store    store.Store
	identity identity.Client
}

func NewExecutor(store store.Store, identity identity.Client) Executor {
	return &executor{store: store, identity: identity}
}

func (e *executor) ListNfts(ctx context.Context, loaders *dataloader.Loaders, filter store.NftQueryFilter, expand []types.Expansion) (*dto.NftListResponse, error) {
	loaders = e.ensureLoaders(loaders)

	nfts, err := e.store.ListNfts(ctx, filter)
	if err != nil {
		return nil, storageError(err, "Failed to list nfts")
	}

	// Later point lookups within the request are served from the page
	for _, nft := range nfts {
		loaders.Nft.Prime(nft.Address, nft)
	}

	nftDTOs := make([]*dto.NftResponse, len(nfts))
	for i, nft := range nfts {
		nftDTOs[i] = dto.MapNftToDTO(nft)
	}

	if err := e.expandNfts(ctx, loaders, nftDTOs, types.NewExpansions(expand)); err != nil {
		return nil, err
	}

	items := make([]dto.NftResponse, len(nftDTOs))
	for i, nftDTO := range nftDTOs {
		items[i] = *nftDTO
	}

	// A full page may be followed by another one
	var nextOffset *int
	limit, offset := store.NormalizePagination(filter.Limit, filter.Offset)
	if len(nfts) == limit {
		nextOffset = lo.ToPtr(offset + len(nfts))
	}

	return &dto.NftListResponse{
		Nfts:   items,
		Offset: nextOffset,
	}, nil
}

func (e *executor) GetNft(ctx context.Context, loaders *dataloader.Loaders, address string, expand []types.Expansion) (*dto.NftResponse, error) {
	loaders = e.ensureLoaders(loaders)

	nftThunk := loaders.Nft.LoadThunk(ctx, address)
	listingThunk := loaders.ActiveListing.LoadThunk(ctx, address)
	loaders.Flush()

	nft, err := nftThunk()
	if err != nil {
		return nil, storageError(err, "Failed to get nft")
	}
	if nft == nil {
		return nil, domain.ErrNftNotFound
	}

	listing, err := listingThunk()
	if err != nil {
		return nil, storageError(err, "Failed to get active listing")
	}

	nftDTO := dto.MapNftToDTO(nft)
	nftDTO.Listing = dto.MapListingToDTO(listing)

	if err := e.expandNfts(ctx, loaders, []*dto.NftResponse{nftDTO}, types.NewExpansions(expand)); err != nil {
		return nil, err
	}

	return nftDTO, nil
}

func (e *executor) GetActivities(ctx context.Context, loaders *dataloader.Loaders, addresses []string) (*dto.ActivityListResponse, error) {
	loaders = e.ensureLoaders(loaders)

	feeds, errs := loaders.Activities.LoadMany(ctx, lo.Uniq(addresses))
	for _, err := range errs {
		if err != nil {
			return nil, storageError(err, "Failed to get activities")
		}
	}

	activities := lo.Flatten(feeds)
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.ActivityType != b.ActivityType {
			return a.ActivityType < b.ActivityType
		}
		return a.Address < b.Address
	})

	activityDTOs := make([]dto.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityDTOs[i] = *dto.MapActivityToDTO(activity)
	}

	// Enqueue every handle before resolving any of them
	type walletRef struct {
		activity, wallet int
		thunk            dataloader.Thunk[*identity.Profile]
	}
	var refs []walletRef
	for i := range activityDTOs {
		for j, wallet := range activityDTOs[i].Wallets {
			if wallet.TwitterHandle == nil || *wallet.TwitterHandle == "" {
				continue
			}
			refs = append(refs, walletRef{
				activity: i,
				wallet:   j,
				thunk:    loaders.TwitterProfile.LoadThunk(ctx, *wallet.TwitterHandle),
			})
		}
	}
	loaders.TwitterProfile.Flush()

	for _, ref := range refs {
		profile, err := ref.thunk()
		if err != nil {
			if domain.IsCancellation(err) {
				return nil, err
			}
			logger.WarnCtx(ctx, "Failed to resolve identity profile",
				zap.String("handle", *activityDTOs[ref.activity].Wallets[ref.wallet].TwitterHandle),
				zap.Error(err))
			continue
		}
		activityDTOs[ref.activity].Wallets[ref.wallet].Profile = dto.MapProfileToDTO(profile)
	}

	return &dto.ActivityListResponse{
		Activities: activityDTOs,
	}, nil
}

// Helper methods for expanding nft data

// expandNfts enqueues the requested relations of every NFT first, then resolves each relation in
// its own goroutine so every relation costs one batch for the whole page.
// Each goroutine writes a distinct field of the DTOs.
func (e *executor) expandNfts(ctx context.Context, loaders *dataloader.Loaders, nfts []*dto.NftResponse, expand types.Expansions) error {
	if len(nfts) == 0 || len(expand) == 0 {
		return nil
	}

	n := len(nfts)
	creators := make([]dataloader.Thunk[[]schema.MetadataCreator], n)
	attributes := make([]dataloader.Thunk[[]schema.Attribute], n)
	offers := make([]dataloader.Thunk[[]schema.BidReceipt], n)
	listings := make([]dataloader.Thunk[[]schema.ListingReceipt], n)
	purchases := make([]dataloader.Thunk[[]schema.PurchaseReceipt], n)
	collections := make([]dataloader.Thunk[*schema.MetadataCollectionKey], n)
	handles := make([]dataloader.Thunk[*string], n)

	for i, nft := range nfts {
		if expand.Has(types.ExpansionCreators) {
			creators[i] = loaders.Creators.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionAttributes) {
			attributes[i] = loaders.Attributes.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionOffers) {
			offers[i] = loaders.Offers.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionListings) {
			listings[i] = loaders.Listings.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionPurchases) {
			purchases[i] = loaders.Purchases.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionCollection) {
			collections[i] = loaders.Collection.LoadThunk(ctx, nft.Address)
		}
		if expand.Has(types.ExpansionOwnerProfile) && nft.Owner != "" {
			handles[i] = loaders.TwitterHandle.LoadThunk(ctx, nft.Owner)
		}
	}
	loaders.Flush()

	g, gctx := errgroup.WithContext(ctx)

	if expand.Has(types.ExpansionCreators) {
		g.Go(func() error {
			return resolveEach(creators, "creators", func(i int, values []schema.MetadataCreator) {
				nfts[i].Creators = make([]dto.CreatorResponse, len(values))
				for j := range values {
					nfts[i].Creators[j] = *dto.MapCreatorToDTO(&values[j])
				}
			})
		})
	}
	if expand.Has(types.ExpansionAttributes) {
		g.Go(func() error {
			return resolveEach(attributes, "attributes", func(i int, values []schema.Attribute) {
				nfts[i].Attributes = make([]dto.AttributeResponse, len(values))
				for j := range values {
					nfts[i].Attributes[j] = *dto.MapAttributeToDTO(&values[j])
				}
			})
		})
	}
	if expand.Has(types.ExpansionOffers) {
		g.Go(func() error {
			return resolveEach(offers, "offers", func(i int, values []schema.BidReceipt) {
				nfts[i].Offers = make([]dto.OfferResponse, len(values))
				for j := range values {
					nfts[i].Offers[j] = *dto.MapOfferToDTO(&values[j])
				}
			})
		})
	}
	if expand.Has(types.ExpansionListings) {
		g.Go(func() error {
			return resolveEach(listings, "listings", func(i int, values []schema.ListingReceipt) {
				nfts[i].Listings = make([]dto.ListingResponse, len(values))
				for j := range values {
					nfts[i].Listings[j] = *dto.MapListingToDTO(&values[j])
				}
			})
		})
	}
	if expand.Has(types.ExpansionPurchases) {
		g.Go(func() error {
			return resolveEach(purchases, "purchases", func(i int, values []schema.PurchaseReceipt) {
				nfts[i].Purchases = make([]dto.PurchaseResponse, len(values))
				for j := range values {
					nfts[i].Purchases[j] = *dto.MapPurchaseToDTO(&values[j])
				}
			})
		})
	}
	if expand.Has(types.ExpansionCollection) {
		g.Go(func() error {
			return resolveEach(collections, "collection", func(i int, value *schema.MetadataCollectionKey) {
				nfts[i].Collection = dto.MapCollectionToDTO(value)
			})
		})
	}
	if expand.Has(types.ExpansionOwnerProfile) {
		g.Go(func() error {
			return e.expandOwnerProfiles(gctx, loaders, nfts, handles)
		})
	}

	return g.Wait()
}

// expandOwnerProfiles resolves owner wallets to handles, then handles to profiles.
// Identity service failures leave the profile absent.
func (e *executor) expandOwnerProfiles(ctx context.Context, loaders *dataloader.Loaders, nfts []*dto.NftResponse, handles []dataloader.Thunk[*string]) error {
	profiles := make([]dataloader.Thunk[*identity.Profile], len(nfts))
	err := resolveEach(handles, "twitter handles", func(i int, handle *string) {
		if handle != nil && *handle != "" {
			profiles[i] = loaders.TwitterProfile.LoadThunk(ctx, *handle)
		}
	})
	if err != nil {
		return err
	}
	loaders.TwitterProfile.Flush()

	for i, thunk := range profiles {
		if thunk == nil {
			continue
		}
		profile, err := thunk()
		if err != nil {
			if domain.IsCancellation(err) {
				return err
			}
			logger.WarnCtx(ctx, "Failed to resolve owner profile",
				zap.String("owner", nfts[i].Owner),
				zap.Error(err))
			continue
		}
		nfts[i].OwnerProfile = dto.MapProfileToDTO(profile)
	}

	return nil
}

// resolveEach evaluates the non-nil thunks in order and hands each value to assign
func resolveEach[V any](thunks []dataloader.Thunk[V], relation string, assign func(i int, value V)) error {
	for i, thunk := range thunks {
		if thunk == nil {
			continue
		}
		value, err := thunk()
		if err != nil {
			return storageError(err, fmt.Sprintf("Failed to get %s", relation))
		}
		assign(i, value)
	}
	return nil
}

func (e *executor) ensureLoaders(loaders *dataloader.Loaders) *dataloader.Loaders {
	if loaders != nil {
		return loaders
	}
	return dataloader.NewLoaders(e.store, e.identity)
}

// storageError maps a storage failure to a database APIError. Cancellation passes through unwrapped.
func storageError(err error, message string) error {
	if domain.IsCancellation(err) {
		return err
	}
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return apierrors.NewDatabaseError(message, err.Error())
}
