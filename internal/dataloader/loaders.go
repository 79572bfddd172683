package dataloader

import (
	"context"

	"github.com/feral-file/ff-marketplace-api/internal/identity"
	"github.com/feral-file/ff-marketplace-api/internal/store"
	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

// Loaders holds one Loader per relation of the read model. A Loaders value is created per
// request and must not be shared across requests.
type Loaders struct {
	Nft            *Loader[string, *store.Nft]
	Listings       *Loader[string, []schema.ListingReceipt]
	ActiveListing  *Loader[string, *schema.ListingReceipt]
	Offers         *Loader[string, []schema.BidReceipt]
	Purchases      *Loader[string, []schema.PurchaseReceipt]
	Creators       *Loader[string, []schema.MetadataCreator]
	Attributes     *Loader[string, []schema.Attribute]
	Collection     *Loader[string, *schema.MetadataCollectionKey]
	Activities     *Loader[string, []*store.Activity]
	TwitterHandle  *Loader[string, *string]
	TwitterProfile *Loader[string, *identity.Profile]
}

// NewLoaders builds the request-scoped loaders over st and identityClient.
// opts apply to every loader; each loader is named after its relation.
func NewLoaders(st store.Store, identityClient identity.Client, opts ...Option) *Loaders {
	named := func(name string) []Option {
		return append(append([]Option{}, opts...), WithName(name))
	}

	return &Loaders{
		Nft:            NewLoaderFunc(st.GetNftsByAddresses, named("nft")...),
		Listings:       NewLoaderFunc(st.GetListingReceiptsBulk, named("listings")...),
		ActiveListing:  NewLoaderFunc(st.GetActiveListingsBulk, named("active_listing")...),
		Offers:         NewLoaderFunc(st.GetActiveOffersBulk, named("offers")...),
		Purchases:      NewLoaderFunc(st.GetPurchaseReceiptsBulk, named("purchases")...),
		Creators:       NewLoaderFunc(st.GetCreatorsBulk, named("creators")...),
		Attributes:     NewLoaderFunc(st.GetAttributesBulk, named("attributes")...),
		Collection:     NewLoaderFunc(st.GetCollectionsBulk, named("collection")...),
		Activities:     NewLoaderFunc(activitiesBatcher(st), named("activities")...),
		TwitterHandle:  NewLoaderFunc(twitterHandleBatcher(st), named("twitter_handle")...),
		TwitterProfile: NewLoaderFunc(identityClient.GetProfiles, named("twitter_profile")...),
	}
}

// Flush dispatches the pending batch of every loader so relations resolve concurrently
func (l *Loaders) Flush() {
	l.Nft.Flush()
	l.Listings.Flush()
	l.ActiveListing.Flush()
	l.Offers.Flush()
	l.Purchases.Flush()
	l.Creators.Flush()
	l.Attributes.Flush()
	l.Collection.Flush()
	l.Activities.Flush()
	l.TwitterHandle.Flush()
	l.TwitterProfile.Flush()
}

// Stats returns the counters of every loader keyed by loader name
func (l *Loaders) Stats() map[string]Stats {
	return map[string]Stats{
		l.Nft.Name():            l.Nft.Stats(),
		l.Listings.Name():       l.Listings.Stats(),
		l.ActiveListing.Name():  l.ActiveListing.Stats(),
		l.Offers.Name():         l.Offers.Stats(),
		l.Purchases.Name():      l.Purchases.Stats(),
		l.Creators.Name():       l.Creators.Stats(),
		l.Attributes.Name():     l.Attributes.Stats(),
		l.Collection.Name():     l.Collection.Stats(),
		l.Activities.Name():     l.Activities.Stats(),
		l.TwitterHandle.Name():  l.TwitterHandle.Stats(),
		l.TwitterProfile.Name(): l.TwitterProfile.Stats(),
	}
}

// activitiesBatcher groups the activity feed of several metadatas by metadata address
func activitiesBatcher(st store.Store) func(context.Context, []string) (map[string][]*store.Activity, error) {
	return func(ctx context.Context, keys []string) (map[string][]*store.Activity, error) {
		activities, err := st.GetActivities(ctx, keys)
		if err != nil {
			return nil, err
		}

		result := make(map[string][]*store.Activity, len(keys))
		for _, a := range activities {
			result[a.Metadata] = append(result[a.Metadata], a)
		}
		return result, nil
	}
}

func twitterHandleBatcher(st store.Store) func(context.Context, []string) (map[string]*string, error) {
	return func(ctx context.Context, keys []string) (map[string]*string, error) {
		handles, err := st.GetTwitterHandlesBulk(ctx, keys)
		if err != nil {
			return nil, err
		}

		result := make(map[string]*string, len(handles))
		for wallet, handle := range handles {
			result[wallet] = &handle
		}
		return result, nil
	}
}

type loadersKey struct{}

// NewContext returns a copy of ctx carrying loaders
func NewContext(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, loaders)
}

// FromContext returns the loaders stored in ctx, or nil
func FromContext(ctx context.Context) *Loaders {
	loaders, _ := ctx.Value(loadersKey{}).(*Loaders)
	return loaders
}
