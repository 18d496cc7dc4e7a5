package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/edmetrics/galaxydata/internal/core/domain/galaxy"
	"github.com/edmetrics/galaxydata/internal/core/ports"
	"github.com/edmetrics/galaxydata/internal/infrastructure/db"
)

// GalaxyRepository assembles system records with their star and planet
// collections.
type GalaxyRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewGalaxyRepository creates a new galaxy repository.
func NewGalaxyRepository(database *db.Database, logger *logrus.Logger) ports.GalaxyRepository {
	return &GalaxyRepository{
		db:     database,
		logger: logger,
	}
}

type starRow struct {
	Name                string         `db:"name"`
	Type                *string        `db:"type"`
	DistanceFromArrival *float64       `db:"distance_from_arrival"`
	Age                 *int64         `db:"age"`
	SolarMasses         *float64       `db:"solar_masses"`
	SolarRadius         *float64       `db:"solar_radius"`
	SurfaceTemperature  *float64       `db:"surface_temperature"`
	Luminosity          *string        `db:"luminosity"`
	OrbitalPeriod       *float64       `db:"orbital_period"`
	RotationalPeriod    *float64       `db:"rotational_period"`
	WasDiscovered       sql.NullString `db:"was_discovered"`
	WasMapped           sql.NullString `db:"was_mapped"`
}

type planetRow struct {
	Name                string         `db:"name"`
	SubType             *string        `db:"sub_type"`
	DistanceFromArrival *float64       `db:"distance_from_arrival"`
	IsLandable          *bool          `db:"is_landable"`
	Gravity             *float64       `db:"gravity"`
	EarthMasses         *float64       `db:"earth_masses"`
	Radius              *float64       `db:"radius"`
	SurfaceTemperature  *float64       `db:"surface_temperature"`
	AtmosphereType      *string        `db:"atmosphere_type"`
	VolcanismType       *string        `db:"volcanism_type"`
	TerraformingState   *string        `db:"terraforming_state"`
	OrbitalPeriod       *float64       `db:"orbital_period"`
	RotationalPeriod    *float64       `db:"rotational_period"`
	WasDiscovered       sql.NullString `db:"was_discovered"`
	WasMapped           sql.NullString `db:"was_mapped"`
}

// GetSystem fetches the system attributes and both body collections. The
// three queries are not transactionally linked; the dataset is read-mostly
// and slowly changing, so a torn read across them is accepted. Any query
// error aborts the whole record.
func (r *GalaxyRepository) GetSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error) {
	system := &galaxy.System{}

	systemQuery := `
		SELECT address, name, body_count, non_body_count, population,
		       allegiance, economy, government, security, controlling_faction,
		       x, y, z
		FROM systems
		WHERE address = $1 AND odyssey = $2`

	if err := r.db.DB.GetContext(ctx, system, systemQuery, int64(address), odyssey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	starQuery := `
		SELECT name, type, distance_from_arrival, age, solar_masses,
		       solar_radius, surface_temperature, luminosity,
		       orbital_period, rotational_period, was_discovered, was_mapped
		FROM stars
		WHERE system_address = $1 AND odyssey = $2
		ORDER BY id`

	var starRows []starRow
	if err := r.db.DB.SelectContext(ctx, &starRows, starQuery, int64(address), odyssey); err != nil {
		return nil, fmt.Errorf("failed to list stars: %w", err)
	}

	planetQuery := `
		SELECT name, sub_type, distance_from_arrival, is_landable, gravity,
		       earth_masses, radius, surface_temperature, atmosphere_type,
		       volcanism_type, terraforming_state, orbital_period,
		       rotational_period, was_discovered, was_mapped
		FROM planets
		WHERE system_address = $1 AND odyssey = $2
		ORDER BY id`

	var planetRows []planetRow
	if err := r.db.DB.SelectContext(ctx, &planetRows, planetQuery, int64(address), odyssey); err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}

	system.Stars = make([]galaxy.Star, 0, len(starRows))
	for _, row := range starRows {
		system.Stars = append(system.Stars, galaxy.Star{
			Name:                row.Name,
			Type:                row.Type,
			DistanceFromArrival: row.DistanceFromArrival,
			Age:                 row.Age,
			SolarMasses:         row.SolarMasses,
			SolarRadius:         row.SolarRadius,
			SurfaceTemperature:  row.SurfaceTemperature,
			Luminosity:          row.Luminosity,
			OrbitalPeriod:       row.OrbitalPeriod,
			RotationalPeriod:    row.RotationalPeriod,
			WasDiscovered:       r.parseDiscoveryFlag(row.WasDiscovered, "was_discovered", row.Name),
			WasMapped:           r.parseDiscoveryFlag(row.WasMapped, "was_mapped", row.Name),
		})
	}

	system.Planets = make([]galaxy.Planet, 0, len(planetRows))
	for _, row := range planetRows {
		system.Planets = append(system.Planets, galaxy.Planet{
			Name:                row.Name,
			SubType:             row.SubType,
			DistanceFromArrival: row.DistanceFromArrival,
			IsLandable:          row.IsLandable,
			Gravity:             row.Gravity,
			EarthMasses:         row.EarthMasses,
			Radius:              row.Radius,
			SurfaceTemperature:  row.SurfaceTemperature,
			AtmosphereType:      row.AtmosphereType,
			VolcanismType:       row.VolcanismType,
			TerraformingState:   row.TerraformingState,
			OrbitalPeriod:       row.OrbitalPeriod,
			RotationalPeriod:    row.RotationalPeriod,
			WasDiscovered:       r.parseDiscoveryFlag(row.WasDiscovered, "was_discovered", row.Name),
			WasMapped:           r.parseDiscoveryFlag(row.WasMapped, "was_mapped", row.Name),
		})
	}

	return system, nil
}

// parseDiscoveryFlag interprets the textual discovery-state columns the
// survey feed delivers. NULL or unparseable text degrades the single field to
// nil ("unknown") rather than failing the record.
func (r *GalaxyRepository) parseDiscoveryFlag(raw sql.NullString, field, body string) *bool {
	if !raw.Valid {
		return nil
	}
	v, err := strconv.ParseBool(raw.String)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"field": field, "body": body, "value": raw.String}).
				Debug("unparseable discovery flag, treating as unknown")
		}
		return nil
	}
	return &v
}
