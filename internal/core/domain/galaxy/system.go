package galaxy

// System is an astronomical system record with its surveyed bodies attached.
// Stars and Planets are owned by the System for the lifetime of one response;
// they carry no identity of their own. Both collections are always non-nil,
// empty when the system has no surveyed bodies of that kind.
type System struct {
	Address            uint64   `json:"address" db:"address"`
	Name               string   `json:"name" db:"name"`
	BodyCount          *int64   `json:"body_count,omitempty" db:"body_count"`
	NonBodyCount       *int64   `json:"non_body_count,omitempty" db:"non_body_count"`
	Population         *int64   `json:"population,omitempty" db:"population"`
	Allegiance         *string  `json:"allegiance,omitempty" db:"allegiance"`
	Economy            *string  `json:"economy,omitempty" db:"economy"`
	Government         *string  `json:"government,omitempty" db:"government"`
	Security           *string  `json:"security,omitempty" db:"security"`
	ControllingFaction *string  `json:"controlling_faction,omitempty" db:"controlling_faction"`
	X                  *float64 `json:"x,omitempty" db:"x"`
	Y                  *float64 `json:"y,omitempty" db:"y"`
	Z                  *float64 `json:"z,omitempty" db:"z"`
	Stars              []Star   `json:"stars" db:"-"`
	Planets            []Planet `json:"planets" db:"-"`
}

// Star is a stellar body belonging to a System. WasDiscovered and WasMapped
// are nil when the survey feed carried no parseable value for them.
type Star struct {
	Name                string   `json:"name"`
	Type                *string  `json:"type,omitempty"`
	DistanceFromArrival *float64 `json:"distance_from_arrival,omitempty"`
	Age                 *int64   `json:"age,omitempty"`
	SolarMasses         *float64 `json:"solar_masses,omitempty"`
	SolarRadius         *float64 `json:"solar_radius,omitempty"`
	SurfaceTemperature  *float64 `json:"surface_temperature,omitempty"`
	Luminosity          *string  `json:"luminosity,omitempty"`
	OrbitalPeriod       *float64 `json:"orbital_period,omitempty"`
	RotationalPeriod    *float64 `json:"rotational_period,omitempty"`
	WasDiscovered       *bool    `json:"was_discovered,omitempty"`
	WasMapped           *bool    `json:"was_mapped,omitempty"`
}

// Planet is a planetary body belonging to a System.
type Planet struct {
	Name                string   `json:"name"`
	SubType             *string  `json:"sub_type,omitempty"`
	DistanceFromArrival *float64 `json:"distance_from_arrival,omitempty"`
	IsLandable          *bool    `json:"is_landable,omitempty"`
	Gravity             *float64 `json:"gravity,omitempty"`
	EarthMasses         *float64 `json:"earth_masses,omitempty"`
	Radius              *float64 `json:"radius,omitempty"`
	SurfaceTemperature  *float64 `json:"surface_temperature,omitempty"`
	AtmosphereType      *string  `json:"atmosphere_type,omitempty"`
	VolcanismType       *string  `json:"volcanism_type,omitempty"`
	TerraformingState   *string  `json:"terraforming_state,omitempty"`
	OrbitalPeriod       *float64 `json:"orbital_period,omitempty"`
	RotationalPeriod    *float64 `json:"rotational_period,omitempty"`
	WasDiscovered       *bool    `json:"was_discovered,omitempty"`
	WasMapped           *bool    `json:"was_mapped,omitempty"`
}
