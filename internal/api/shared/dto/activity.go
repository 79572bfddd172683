package dto

import (
	"time"

	"github.com/feral-file/ff-marketplace-api/internal/identity"
	"github.com/feral-file/ff-marketplace-api/internal/store"
)

// ActivityResponse represents a listing or purchase of an NFT
type ActivityResponse struct {
	Address      string             `json:"address"`
	Metadata     string             `json:"metadata"`
	AuctionHouse string             `json:"auction_house"`
	Price        int64              `json:"price"`
	CreatedAt    time.Time          `json:"created_at"`
	ActivityType store.ActivityType `json:"activity_type"`
	// Wallets holds the seller, followed by the buyer for purchases
	Wallets []WalletResponse `json:"wallets"`
}

// WalletResponse represents a wallet taking part in an activity
type WalletResponse struct {
	Address       string           `json:"address"`
	TwitterHandle *string          `json:"twitter_handle"`
	Profile       *ProfileResponse `json:"profile"`
}

// ActivityListResponse represents the activity feed of a set of NFTs
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"items"`
}

// ProfileResponse represents an identity profile
type ProfileResponse struct {
	Handle    string  `json:"handle"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Verified  bool    `json:"verified"`
}

// MapActivityToDTO maps a store.Activity to ActivityResponse. Profiles are left for the caller.
func MapActivityToDTO(activity *store.Activity) *ActivityResponse {
	wallets := make([]WalletResponse, len(activity.Wallets))
	for i, wallet := range activity.Wallets {
		wallets[i].Address = wallet
		if i < len(activity.WalletTwitterHandles) {
			wallets[i].TwitterHandle = activity.WalletTwitterHandles[i]
		}
	}

	return &ActivityResponse{
		Address:      activity.Address,
		Metadata:     activity.Metadata,
		AuctionHouse: activity.AuctionHouse,
		Price:        activity.Price,
		CreatedAt:    activity.CreatedAt,
		ActivityType: activity.ActivityType,
		Wallets:      wallets,
	}
}

// MapProfileToDTO maps an identity.Profile to ProfileResponse
func MapProfileToDTO(profile *identity.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	return &ProfileResponse{
		Handle:    profile.Handle,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		Bio:       profile.Bio,
		Verified:  profile.Verified,
	}
}
