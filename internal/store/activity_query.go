package store

// ActivitiesQuery selects listing and purchase activity for a set of metadata addresses.
// Each row carries its wallets as a JSON array (seller, then buyer for purchases) and the
// registered twitter handles of those wallets at the same positions.
const ActivitiesQuery = `
SELECT * FROM (
	SELECT
		lr.address,
		lr.metadata,
		lr.auction_house,
		lr.price,
		lr.created_at,
		jsonb_build_array(lr.seller) AS wallets,
		jsonb_build_array(seller_handle.twitter_handle) AS wallet_twitter_handles,
		'listing' AS activity_type
	FROM listing_receipts lr
	LEFT JOIN twitter_handle_name_services seller_handle ON seller_handle.wallet_address = lr.seller
	WHERE lr.metadata IN ?

	UNION ALL

	SELECT
		pr.address,
		pr.metadata,
		pr.auction_house,
		pr.price,
		pr.created_at,
		jsonb_build_array(pr.seller, pr.buyer) AS wallets,
		jsonb_build_array(seller_handle.twitter_handle, buyer_handle.twitter_handle) AS wallet_twitter_handles,
		'purchase' AS activity_type
	FROM purchase_receipts pr
	LEFT JOIN twitter_handle_name_services seller_handle ON seller_handle.wallet_address = pr.seller
	LEFT JOIN twitter_handle_name_services buyer_handle ON buyer_handle.wallet_address = pr.buyer
	WHERE pr.metadata IN ?
) activities
ORDER BY created_at DESC, activity_type ASC, address ASC`
