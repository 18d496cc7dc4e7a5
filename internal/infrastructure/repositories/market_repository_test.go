package repositories

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func buyRow(price float64, stock int64, station, system string) offerRow {
	return offerRow{
		BuyPrice:    sql.NullFloat64{Float64: price, Valid: true},
		Stock:       sql.NullInt64{Int64: stock, Valid: true},
		StationName: station,
		SystemName:  system,
	}
}

func sellRow(price float64, station, system string) offerRow {
	return offerRow{
		SellPrice:   sql.NullFloat64{Float64: price, Valid: true},
		StationName: station,
		SystemName:  system,
	}
}

func TestBestBuyOffer_PicksLowestQualifying(t *testing.T) {
	rows := []offerRow{
		buyRow(200, 5000, "Jameson Memorial", "Shinrarta Dezhra"),
		buyRow(100, 5000, "Abraham Lincoln", "Sol"),
		buyRow(150, 5000, "Daedalus", "Sol"),
	}
	best := bestBuyOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, 100.0, best.Price)
	require.Equal(t, "Abraham Lincoln", best.Station)
	require.Equal(t, "Sol", best.System)
}

func TestBestBuyOffer_SkipsThinStock(t *testing.T) {
	rows := []offerRow{
		buyRow(50, 1000, "Cheap But Thin", "Sol"), // stock must exceed the floor
		buyRow(80, 1001, "Just Enough", "Sol"),
	}
	best := bestBuyOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, "Just Enough", best.Station)
}

func TestBestBuyOffer_SkipsMaskedStations(t *testing.T) {
	rows := []offerRow{
		buyRow(50, 5000, "X7H-88T", "Deciat"),
		buyRow(120, 5000, "Farseer Inc", "Deciat"),
	}
	best := bestBuyOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, "Farseer Inc", best.Station)
	require.Equal(t, 120.0, best.Price)
}

func TestBestBuyOffer_NoQualifyingRows(t *testing.T) {
	rows := []offerRow{
		buyRow(50, 5000, "K9Q-0BB", "Deciat"),
		{StationName: "No Prices", SystemName: "Sol"},
		buyRow(0, 5000, "Zero Price", "Sol"),
	}
	require.Nil(t, bestBuyOffer(rows))
}

func TestBestBuyOffer_TieKeepsRowOrder(t *testing.T) {
	rows := []offerRow{
		buyRow(100, 5000, "First", "Sol"),
		buyRow(100, 9000, "Second", "Sol"),
	}
	best := bestBuyOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, "First", best.Station)
}

func TestBestSellOffer_PicksHighestAndIgnoresStock(t *testing.T) {
	rows := []offerRow{
		sellRow(900, "Low Ball", "Sol"),
		{
			SellPrice:   sql.NullFloat64{Float64: 1500, Valid: true},
			Stock:       sql.NullInt64{Int64: 1, Valid: true}, // stock filter applies to buys only
			StationName: "Top Dollar",
			SystemName:  "Lave",
		},
		sellRow(1200, "Middle", "Sol"),
	}
	best := bestSellOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, 1500.0, best.Price)
	require.Equal(t, "Top Dollar", best.Station)
}

func TestBestSellOffer_SkipsMaskedStations(t *testing.T) {
	rows := []offerRow{
		sellRow(2000, "A1B-C2D", "Deciat"),
		sellRow(1100, "Farseer Inc", "Deciat"),
	}
	best := bestSellOffer(rows)
	require.NotNil(t, best)
	require.Equal(t, "Farseer Inc", best.Station)
}

func TestMaskedStationPattern(t *testing.T) {
	masked := []string{"X7H-88T", "AAA-000", "K9Q-0BB"}
	for _, name := range masked {
		require.True(t, maskedStation.MatchString(name), name)
	}
	unmasked := []string{"Jameson Memorial", "X7H-88TX", "x7h-88t", "AB-CDE", "AAAA-000"}
	for _, name := range unmasked {
		require.False(t, maskedStation.MatchString(name), name)
	}
}

func TestNullFloat(t *testing.T) {
	require.Nil(t, nullFloat(sql.NullFloat64{}))
	v := nullFloat(sql.NullFloat64{Float64: 3.5, Valid: true})
	require.NotNil(t, v)
	require.Equal(t, 3.5, *v)
}
