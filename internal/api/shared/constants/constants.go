package constants

import "github.com/feral-file/ff-marketplace-api/internal/store"

const (
	MAX_ADDRESSES_PER_REQUEST  = 50
	MAX_ATTRIBUTES_PER_REQUEST = 20
	MAX_PAGE_SIZE              = store.MaxNftLimit
	DEFAULT_NFTS_LIMIT         = store.DefaultNftLimit
	DEFAULT_OFFSET             = 0
)
