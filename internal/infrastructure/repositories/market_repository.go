package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/edmetrics/galaxydata/internal/core/domain/market"
	"github.com/edmetrics/galaxydata/internal/core/ports"
	"github.com/edmetrics/galaxydata/internal/infrastructure/db"
)

// maskedStation matches fleet-carrier style placeholder names (a three
// character code, a dash, a three character code). Listings from such
// stations are excluded from extremal price resolution because the station
// has no stable display name.
var maskedStation = regexp.MustCompile(`^[A-Z0-9]{3}-[A-Z0-9]{3}$`)

// minBuyStock is the stock floor a listing must exceed to qualify as a best
// buy offer; thin listings would otherwise dominate the minimum.
const minBuyStock = 1000

// MarketRepository aggregates commodity market listings.
type MarketRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewMarketRepository creates a new market repository.
func NewMarketRepository(database *db.Database, logger *logrus.Logger) ports.MarketRepository {
	return &MarketRepository{
		db:     database,
		logger: logger,
	}
}

type commodityAggregate struct {
	Listings     int64           `db:"listings"`
	AvgBuyPrice  sql.NullFloat64 `db:"avg_buy_price"`
	AvgSellPrice sql.NullFloat64 `db:"avg_sell_price"`
	AvgMeanPrice sql.NullFloat64 `db:"avg_mean_price"`
}

type offerRow struct {
	BuyPrice    sql.NullFloat64 `db:"buy_price"`
	SellPrice   sql.NullFloat64 `db:"sell_price"`
	Stock       sql.NullInt64   `db:"stock"`
	StationName string          `db:"station_name"`
	SystemName  string          `db:"system_name"`
}

// GetCommodity computes the headline averages for name and resolves the best
// buy and sell offers across its listings. Returns ports.ErrNotFound when no
// listing matches the name and edition filter; a commodity whose listings all
// carry NULL prices is returned with nil price fields instead.
func (r *MarketRepository) GetCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
	var agg commodityAggregate

	aggQuery := `
		SELECT count(*) AS listings,
		       avg(buy_price) AS avg_buy_price,
		       avg(sell_price) AS avg_sell_price,
		       avg(mean_price) AS avg_mean_price
		FROM commodities
		WHERE name = $1 AND odyssey = $2`

	if err := r.db.DB.GetContext(ctx, &agg, aggQuery, name, odyssey); err != nil {
		return nil, fmt.Errorf("failed to aggregate commodity: %w", err)
	}
	if agg.Listings == 0 {
		return nil, ports.ErrNotFound
	}

	offerQuery := `
		SELECT buy_price, sell_price, stock, station_name, system_name
		FROM commodities
		WHERE name = $1 AND odyssey = $2
		ORDER BY id`

	var offers []offerRow
	if err := r.db.DB.SelectContext(ctx, &offers, offerQuery, name, odyssey); err != nil {
		return nil, fmt.Errorf("failed to load commodity listings: %w", err)
	}

	return &market.Commodity{
		Name:         name,
		AvgBuyPrice:  nullFloat(agg.AvgBuyPrice),
		AvgSellPrice: nullFloat(agg.AvgSellPrice),
		AvgMeanPrice: nullFloat(agg.AvgMeanPrice),
		BestBuy:      bestBuyOffer(offers),
		BestSell:     bestSellOffer(offers),
	}, nil
}

// bestBuyOffer resolves the lowest qualifying buy price: positive price,
// stock above the floor, station not masked. Ties keep the earlier row.
func bestBuyOffer(rows []offerRow) *market.Offer {
	var best *market.Offer
	for _, row := range rows {
		if !row.BuyPrice.Valid || row.BuyPrice.Float64 <= 0 {
			continue
		}
		if !row.Stock.Valid || row.Stock.Int64 <= minBuyStock {
			continue
		}
		if maskedStation.MatchString(row.StationName) {
			continue
		}
		if best == nil || row.BuyPrice.Float64 < best.Price {
			best = &market.Offer{
				Price:   row.BuyPrice.Float64,
				Station: row.StationName,
				System:  row.SystemName,
			}
		}
	}
	return best
}

// bestSellOffer resolves the highest qualifying sell price, independently of
// bestBuyOffer. Same station-mask exclusion; ties keep the earlier row.
func bestSellOffer(rows []offerRow) *market.Offer {
	var best *market.Offer
	for _, row := range rows {
		if !row.SellPrice.Valid || row.SellPrice.Float64 <= 0 {
			continue
		}
		if maskedStation.MatchString(row.StationName) {
			continue
		}
		if best == nil || row.SellPrice.Float64 > best.Price {
			best = &market.Offer{
				Price:   row.SellPrice.Float64,
				Station: row.StationName,
				System:  row.SystemName,
			}
		}
	}
	return best
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
