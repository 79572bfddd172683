package store

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feral-file/ff-marketplace-api/internal/logger"
	"github.com/feral-file/ff-marketplace-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool applies pool settings to the sql.DB behind a gorm connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings fills zero settings with defaults and keeps idle connections
// within the open connection bound.
//
// Defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// The open connection bound is never zero, which database/sql would read as unlimited.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// ListNfts retrieves one page of NFTs matching the filter
func (s *pgStore) ListNfts(ctx context.Context, filter NftQueryFilter) ([]*Nft, error) {
	stmt := CompileNftQuery(filter)

	var nfts []*Nft
	if err := s.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(&nfts).Error; err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}

	logger.DebugCtx(ctx, "Listed nfts", zap.Int("count", len(nfts)), zap.Int("args", len(stmt.Args)))

	return nfts, nil
}

// GetNftsByAddresses retrieves NFTs keyed by metadata address
func (s *pgStore) GetNftsByAddresses(ctx context.Context, addresses []string) (map[string]*Nft, error) {
	result := make(map[string]*Nft, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	// A page is capped at MaxNftLimit rows, so larger key sets are fetched in chunks
	for _, chunk := range lo.Chunk(lo.Uniq(addresses), MaxNftLimit) {
		nfts, err := s.ListNfts(ctx, NftQueryFilter{
			Addresses: chunk,
			Limit:     len(chunk),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get nfts by addresses: %w", err)
		}

		for _, nft := range nfts {
			result[nft.Address] = nft
		}
	}

	return result, nil
}

// GetListingReceiptsBulk retrieves listing receipts for multiple metadatas
func (s *pgStore) GetListingReceiptsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.ListingReceipt, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string][]schema.ListingReceipt), nil
	}

	var receipts []schema.ListingReceipt
	err := s.db.WithContext(ctx).
		Where("metadata IN ?", metadataAddresses).
		Order("created_at DESC, address ASC").
		Find(&receipts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get listing receipts bulk: %w", err)
	}

	result := make(map[string][]schema.ListingReceipt)
	for _, r := range receipts {
		result[r.Metadata] = append(result[r.Metadata], r)
	}

	return result, nil
}

// GetActiveListingsBulk retrieves the best active listing placed by the current owner for multiple metadatas
func (s *pgStore) GetActiveListingsBulk(ctx context.Context, metadataAddresses []string) (map[string]*schema.ListingReceipt, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string]*schema.ListingReceipt), nil
	}

	// Same ordering as the lateral decoration of CompileNftQuery
	var receipts []schema.ListingReceipt
	err := s.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (lr.metadata) lr.*
		FROM listing_receipts lr
		INNER JOIN metadatas ON metadatas.address = lr.metadata
		INNER JOIN current_metadata_owners ON current_metadata_owners.mint_address = metadatas.mint_address
		WHERE lr.metadata IN ?
			AND lr.seller = current_metadata_owners.owner_address
			AND lr.purchase_receipt IS NULL
			AND lr.canceled_at IS NULL
		ORDER BY lr.metadata, lr.price ASC, lr.created_at ASC, lr.address ASC
	`, metadataAddresses).Scan(&receipts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active listings bulk: %w", err)
	}

	result := make(map[string]*schema.ListingReceipt, len(receipts))
	for i := range receipts {
		result[receipts[i].Metadata] = &receipts[i]
	}

	return result, nil
}

// GetActiveOffersBulk retrieves active offers for multiple metadatas
func (s *pgStore) GetActiveOffersBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.BidReceipt, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string][]schema.BidReceipt), nil
	}

	var offers []schema.BidReceipt
	err := s.db.WithContext(ctx).
		Where("metadata IN ?", metadataAddresses).
		Where("purchase_receipt IS NULL AND canceled_at IS NULL").
		Order("price DESC, created_at ASC, address ASC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active offers bulk: %w", err)
	}

	result := make(map[string][]schema.BidReceipt)
	for _, o := range offers {
		result[o.Metadata] = append(result[o.Metadata], o)
	}

	return result, nil
}

// GetPurchaseReceiptsBulk retrieves purchase receipts for multiple metadatas
func (s *pgStore) GetPurchaseReceiptsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.PurchaseReceipt, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string][]schema.PurchaseReceipt), nil
	}

	var purchases []schema.PurchaseReceipt
	err := s.db.WithContext(ctx).
		Where("metadata IN ?", metadataAddresses).
		Order("created_at DESC, address ASC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase receipts bulk: %w", err)
	}

	result := make(map[string][]schema.PurchaseReceipt)
	for _, p := range purchases {
		result[p.Metadata] = append(result[p.Metadata], p)
	}

	return result, nil
}

// GetCreatorsBulk retrieves creators for multiple metadatas
func (s *pgStore) GetCreatorsBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.MetadataCreator, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string][]schema.MetadataCreator), nil
	}

	var creators []schema.MetadataCreator
	err := s.db.WithContext(ctx).
		Where("metadata_address IN ?", metadataAddresses).
		Order("position ASC NULLS LAST, creator_address ASC").
		Find(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get creators bulk: %w", err)
	}

	result := make(map[string][]schema.MetadataCreator)
	for _, c := range creators {
		result[c.MetadataAddress] = append(result[c.MetadataAddress], c)
	}

	return result, nil
}

// GetAttributesBulk retrieves attributes for multiple metadatas
func (s *pgStore) GetAttributesBulk(ctx context.Context, metadataAddresses []string) (map[string][]schema.Attribute, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string][]schema.Attribute), nil
	}

	var attributes []schema.Attribute
	err := s.db.WithContext(ctx).
		Where("metadata_address IN ?", metadataAddresses).
		Order("trait_type ASC NULLS LAST, value ASC NULLS LAST").
		Find(&attributes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attributes bulk: %w", err)
	}

	result := make(map[string][]schema.Attribute)
	for _, a := range attributes {
		result[a.MetadataAddress] = append(result[a.MetadataAddress], a)
	}

	return result, nil
}

// GetCollectionsBulk retrieves the verified collection of multiple metadatas
func (s *pgStore) GetCollectionsBulk(ctx context.Context, metadataAddresses []string) (map[string]*schema.MetadataCollectionKey, error) {
	if len(metadataAddresses) == 0 {
		return make(map[string]*schema.MetadataCollectionKey), nil
	}

	var keys []schema.MetadataCollectionKey
	err := s.db.WithContext(ctx).
		Where("metadata_address IN ?", metadataAddresses).
		Where("verified = ?", true).
		Order("metadata_address ASC, collection_address ASC").
		Find(&keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collections bulk: %w", err)
	}

	// A metadata belongs to at most one verified collection; keep the first if the data disagrees
	result := make(map[string]*schema.MetadataCollectionKey, len(keys))
	for i := range keys {
		if _, ok := result[keys[i].MetadataAddress]; ok {
			continue
		}
		result[keys[i].MetadataAddress] = &keys[i]
	}

	return result, nil
}

// GetTwitterHandlesBulk retrieves twitter handles keyed by wallet address
func (s *pgStore) GetTwitterHandlesBulk(ctx context.Context, wallets []string) (map[string]string, error) {
	if len(wallets) == 0 {
		return make(map[string]string), nil
	}

	var handles []schema.TwitterHandleNameService
	err := s.db.WithContext(ctx).
		Where("wallet_address IN ?", wallets).
		Find(&handles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get twitter handles bulk: %w", err)
	}

	result := make(map[string]string, len(handles))
	for _, h := range handles {
		result[h.WalletAddress] = h.TwitterHandle
	}

	return result, nil
}

// GetActivities retrieves the activity feed for the given metadatas
func (s *pgStore) GetActivities(ctx context.Context, metadataAddresses []string) ([]*Activity, error) {
	if len(metadataAddresses) == 0 {
		return []*Activity{}, nil
	}

	var activities []*Activity
	err := s.db.WithContext(ctx).
		Raw(ActivitiesQuery, metadataAddresses, metadataAddresses).
		Scan(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	return activities, nil
}
