package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/feral-file/ff-marketplace-api/internal/api/shared/constants"
	"github.com/feral-file/ff-marketplace-api/internal/api/shared/types"
	"github.com/feral-file/ff-marketplace-api/internal/domain"
	"github.com/feral-file/ff-marketplace-api/internal/store"
)

// GetNftQueryParams holds query parameters for GET /nfts/:address
type GetNftQueryParams struct {
	Expand []types.Expansion `form:"expand"`
}

// ListNftsQueryParams holds query parameters for GET /nfts
type ListNftsQueryParams struct {
	// Filters
	Addresses         []string `form:"address"`
	Owners            []string `form:"owner"`
	UpdateAuthorities []string `form:"update_authority"`
	Creators          []string `form:"creator"`
	AuctionHouses     []string `form:"auction_house"`
	Offerers          []string `form:"offerer"`
	Collections       []string `form:"collection"`
	Attributes        []string `form:"attribute"`
	Listed            *bool    `form:"listed"`
	WithOffers        bool     `form:"with_offers"`

	// Pagination
	Limit  int `form:"limit,default=25"`
	Offset int `form:"offset,default=0"`

	// Expansion
	Expand []types.Expansion `form:"expand"`
}

// GetActivitiesQueryParams holds query parameters for GET /activities
type GetActivitiesQueryParams struct {
	Addresses []string `form:"address"`
}

// ParseGetNftQuery parses query parameters for GET /nfts/:address
func ParseGetNftQuery(c *gin.Context) (*GetNftQueryParams, error) {
	var params GetNftQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Expand = splitExpansions(params.Expand)

	return &params, nil
}

// ParseListNftsQuery parses query parameters for GET /nfts.
// List values may be repeated or comma separated.
func ParseListNftsQuery(c *gin.Context) (*ListNftsQueryParams, error) {
	var params ListNftsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Addresses = splitValues(params.Addresses)
	params.Owners = splitValues(params.Owners)
	params.UpdateAuthorities = splitValues(params.UpdateAuthorities)
	params.Creators = splitValues(params.Creators)
	params.AuctionHouses = splitValues(params.AuctionHouses)
	params.Offerers = splitValues(params.Offerers)
	params.Collections = splitValues(params.Collections)
	params.Expand = splitExpansions(params.Expand)

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseGetActivitiesQuery parses query parameters for GET /activities
func ParseGetActivitiesQuery(c *gin.Context) (*GetActivitiesQueryParams, error) {
	var params GetActivitiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Addresses = splitValues(params.Addresses)

	return &params, nil
}

// Validate validates the query parameters
func (p *GetNftQueryParams) Validate() error {
	return validateExpansions(p.Expand)
}

// Validate validates the query parameters
func (p *ListNftsQueryParams) Validate() error {
	if p.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}

	for _, values := range [][]string{
		p.Addresses,
		p.Owners,
		p.UpdateAuthorities,
		p.Creators,
		p.AuctionHouses,
		p.Offerers,
		p.Collections,
	} {
		if len(values) > constants.MAX_ADDRESSES_PER_REQUEST {
			return fmt.Errorf("too many addresses, maximum is %d", constants.MAX_ADDRESSES_PER_REQUEST)
		}
		if _, err := domain.ParseAddresses(values); err != nil {
			return err
		}
	}

	if len(p.Attributes) > constants.MAX_ATTRIBUTES_PER_REQUEST {
		return fmt.Errorf("too many attribute filters, maximum is %d", constants.MAX_ATTRIBUTES_PER_REQUEST)
	}
	if _, err := ParseAttributeFilters(p.Attributes); err != nil {
		return err
	}

	return validateExpansions(p.Expand)
}

// Validate validates the query parameters
func (p *GetActivitiesQueryParams) Validate() error {
	if len(p.Addresses) == 0 {
		return fmt.Errorf("at least one address is required")
	}
	if len(p.Addresses) > constants.MAX_ADDRESSES_PER_REQUEST {
		return fmt.Errorf("too many addresses, maximum is %d", constants.MAX_ADDRESSES_PER_REQUEST)
	}
	_, err := domain.ParseAddresses(p.Addresses)
	return err
}

// Filter converts validated query parameters to a store filter
func (p *ListNftsQueryParams) Filter() (store.NftQueryFilter, error) {
	attributes, err := ParseAttributeFilters(p.Attributes)
	if err != nil {
		return store.NftQueryFilter{}, err
	}

	return store.NftQueryFilter{
		Addresses:         p.Addresses,
		Owners:            p.Owners,
		UpdateAuthorities: p.UpdateAuthorities,
		Creators:          p.Creators,
		AuctionHouses:     p.AuctionHouses,
		Offerers:          p.Offerers,
		Collections:       p.Collections,
		Attributes:        attributes,
		Listed:            p.Listed,
		WithOffers:        p.WithOffers,
		Limit:             p.Limit,
		Offset:            p.Offset,
	}, nil
}

// ParseAttributeFilters parses values of the form <trait>:<value1>|<value2>
func ParseAttributeFilters(values []string) ([]store.AttributeFilter, error) {
	var filters []store.AttributeFilter
	for _, raw := range values {
		trait, rawValues, ok := strings.Cut(raw, ":")
		trait = strings.TrimSpace(trait)
		if !ok || trait == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAttributeFilter, raw)
		}

		traitValues := lo.Filter(
			lo.Map(strings.Split(rawValues, "|"), func(v string, _ int) string { return strings.TrimSpace(v) }),
			func(v string, _ int) bool { return v != "" },
		)

		filters = append(filters, store.AttributeFilter{
			TraitType: trait,
			Values:    traitValues,
		})
	}

	return filters, nil
}

func validateExpansions(expand []types.Expansion) error {
	for _, e := range expand {
		if !e.Valid() {
			return fmt.Errorf("invalid expansion: %s", e)
		}
	}
	return nil
}

// splitValues splits comma separated values, trimming and dropping empty ones
func splitValues(values []string) []string {
	result := lo.Uniq(lo.FlatMap(values, func(v string, _ int) []string {
		return lo.Filter(
			lo.Map(strings.Split(v, ","), func(s string, _ int) string { return strings.TrimSpace(s) }),
			func(s string, _ int) bool { return s != "" },
		)
	}))
	if len(result) == 0 {
		return nil
	}
	return result
}

func splitExpansions(expand []types.Expansion) []types.Expansion {
	values := splitValues(lo.Map(expand, func(e types.Expansion, _ int) string { return string(e) }))
	if values == nil {
		return nil
	}
	return lo.Map(values, func(v string, _ int) types.Expansion { return types.Expansion(v) })
}
