package store

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	// DefaultNftLimit is the page size used when a filter carries no limit
	DefaultNftLimit = 25
	// MaxNftLimit is the largest page a single statement returns
	MaxNftLimit = 250
)

// Statement is a parameterized SQL statement.
// Placeholders are gorm-style "?"; slice arguments expand into IN lists.
type Statement struct {
	SQL  string
	Args []any
}

const nftSelectColumns = `SELECT
	metadatas.address,
	metadatas.name,
	metadatas.symbol,
	metadatas.uri,
	metadatas.seller_fee_basis_points,
	metadatas.update_authority_address,
	metadatas.mint_address,
	metadatas.primary_sale_happened,
	metadatas.slot,
	metadata_jsons.description,
	metadata_jsons.image,
	metadata_jsons.animation_url,
	metadata_jsons.external_url,
	metadata_jsons.category,
	metadata_jsons.model,
	current_metadata_owners.owner_address,
	current_metadata_owners.token_account_address,
	listing.address AS listing_address,
	listing.price AS listing_price,
	listing.auction_house AS listing_auction_house,
	listing.created_at AS listing_created_at
FROM metadatas
INNER JOIN metadata_jsons ON metadata_jsons.metadata_address = metadatas.address
INNER JOIN current_metadata_owners ON current_metadata_owners.mint_address = metadatas.mint_address`

// The lateral sub-query yields at most one listing per row: the cheapest active listing placed
// by the current owner, ties going to the earliest and then the lowest listing address.
const nftListingLateralHead = `
LEFT JOIN LATERAL (
	SELECT lr.address, lr.price, lr.auction_house, lr.created_at
	FROM listing_receipts lr
	WHERE lr.metadata = metadatas.address
		AND lr.seller = current_metadata_owners.owner_address
		AND lr.purchase_receipt IS NULL
		AND lr.canceled_at IS NULL`

const nftListingLateralTail = `
	ORDER BY lr.price ASC, lr.created_at ASC, lr.address ASC
	LIMIT 1
) listing ON true`

const nftOrderBy = `
ORDER BY listing.price ASC NULLS LAST, metadatas.name ASC, metadatas.address ASC
LIMIT ? OFFSET ?`

// CompileNftQuery builds the NFT page statement for a filter.
// The statement text depends only on which filter fields are present, never on their values.
func CompileNftQuery(filter NftQueryFilter) Statement {
	var sb strings.Builder
	args := make([]any, 0, 16)

	sb.WriteString(nftSelectColumns)

	sb.WriteString(nftListingLateralHead)
	if len(filter.AuctionHouses) > 0 {
		sb.WriteString("\n\t\tAND lr.auction_house IN ?")
		args = append(args, filter.AuctionHouses)
	}
	sb.WriteString(nftListingLateralTail)

	conditions := []string{"metadatas.burned_at IS NULL"}

	if len(filter.Addresses) > 0 {
		conditions = append(conditions, "metadatas.address IN ?")
		args = append(args, filter.Addresses)
	}

	if len(filter.Owners) > 0 {
		conditions = append(conditions, "current_metadata_owners.owner_address IN ?")
		args = append(args, filter.Owners)
	}

	if len(filter.UpdateAuthorities) > 0 {
		conditions = append(conditions, "metadatas.update_authority_address IN ?")
		args = append(args, filter.UpdateAuthorities)
	}

	if len(filter.Creators) > 0 {
		conditions = append(conditions, `EXISTS (
		SELECT 1 FROM metadata_creators mc
		WHERE mc.metadata_address = metadatas.address
			AND mc.creator_address IN ?
			AND mc.verified = true
	)`)
		args = append(args, filter.Creators)
	}

	for _, attr := range normalizeAttributeFilters(filter.Attributes) {
		// No allowed value can match
		if len(attr.Values) == 0 {
			conditions = append(conditions, "FALSE")
			continue
		}
		conditions = append(conditions, `EXISTS (
		SELECT 1 FROM attributes attr
		WHERE attr.metadata_address = metadatas.address
			AND attr.trait_type = ?
			AND attr.value IN ?
	)`)
		args = append(args, attr.TraitType, attr.Values)
	}

	if len(filter.Collections) > 0 {
		conditions = append(conditions, `EXISTS (
		SELECT 1 FROM metadata_collection_keys mck
		WHERE mck.metadata_address = metadatas.address
			AND mck.collection_address IN ?
			AND mck.verified = true
	)`)
		args = append(args, filter.Collections)
	}

	if filter.WithOffers || len(filter.Offerers) > 0 {
		offer := `EXISTS (
		SELECT 1 FROM bid_receipts br
		WHERE br.metadata = metadatas.address
			AND br.purchase_receipt IS NULL
			AND br.canceled_at IS NULL`
		if len(filter.Offerers) > 0 {
			offer += "\n\t\t\tAND br.buyer IN ?"
			args = append(args, filter.Offerers)
		}
		if len(filter.AuctionHouses) > 0 {
			offer += "\n\t\t\tAND br.auction_house IN ?"
			args = append(args, filter.AuctionHouses)
		}
		offer += "\n\t)"
		conditions = append(conditions, offer)
	}

	if filter.Listed != nil {
		if *filter.Listed {
			conditions = append(conditions, "listing.price IS NOT NULL")
		} else {
			conditions = append(conditions, "listing.price IS NULL")
		}
	}

	sb.WriteString("\nWHERE ")
	sb.WriteString(strings.Join(conditions, "\n\tAND "))

	limit, offset := NormalizePagination(filter.Limit, filter.Offset)
	sb.WriteString(nftOrderBy)
	args = append(args, limit, offset)

	return Statement{SQL: sb.String(), Args: args}
}

// normalizeAttributeFilters merges filters sharing a trait type and sorts the result so equal
// filters compile to identical statements. A trait whose merged value set is empty keeps nil Values.
func normalizeAttributeFilters(filters []AttributeFilter) []AttributeFilter {
	if len(filters) == 0 {
		return nil
	}

	byTrait := make(map[string][]string)
	for _, f := range filters {
		byTrait[f.TraitType] = append(byTrait[f.TraitType], f.Values...)
	}

	traits := lo.Keys(byTrait)
	slices.Sort(traits)

	result := make([]AttributeFilter, 0, len(traits))
	for _, trait := range traits {
		var values []string
		if len(byTrait[trait]) > 0 {
			values = lo.Uniq(byTrait[trait])
			slices.Sort(values)
		}
		result = append(result, AttributeFilter{TraitType: trait, Values: values})
	}

	return result
}

// NormalizePagination applies the default and maximum page size and clamps negative offsets
func NormalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultNftLimit
	}
	if limit > MaxNftLimit {
		limit = MaxNftLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
